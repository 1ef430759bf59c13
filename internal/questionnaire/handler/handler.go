package handler

import (
	"net/http"

	"roommatch_backend/internal/questionnaire/service"
	"roommatch_backend/internal/questionnaire/transport"
	"roommatch_backend/platform/httpkit"
	"roommatch_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Get)
	rg.PUT("", h.Save)
}

func (h *Handler) Save(c *gin.Context) {
	var req transport.SaveQuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed)
		return
	}

	identity := httpkit.GetIdentity(c)

	questionnaire, err := h.svc.Save(c.Request.Context(), identity.UserID(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, questionnaire)
}

func (h *Handler) Get(c *gin.Context) {
	identity := httpkit.GetIdentity(c)

	questionnaire, err := h.svc.Get(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, questionnaire)
}
