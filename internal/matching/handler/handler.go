package handler

import (
	"net/http"
	"strconv"

	"roommatch_backend/internal/matching/service"
	"roommatch_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const msgInvalidRequest = "invalid request"

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterMatchRoutes mounts the ranked match list.
func (h *Handler) RegisterMatchRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListMatches)
}

// RegisterListingRoutes mounts the per-listing score endpoint.
func (h *Handler) RegisterListingRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id/score", h.ScoreListing)
}

func (h *Handler) ListMatches(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	identity := httpkit.GetIdentity(c)

	matches, err := h.svc.TopMatches(c.Request.Context(), identity.UserID(), limit)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, matches)
}

func (h *Handler) ScoreListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	identity := httpkit.GetIdentity(c)

	score, err := h.svc.ScoreListing(c.Request.Context(), identity.UserID(), listingID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, score)
}
