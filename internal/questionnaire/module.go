// Package questionnaire provides the roommate preference questionnaire
// bounded context module.
package questionnaire

import (
	"roommatch_backend/internal/events"
	apphttp "roommatch_backend/internal/http"
	"roommatch_backend/internal/questionnaire/handler"
	"roommatch_backend/internal/questionnaire/repository"
	"roommatch_backend/internal/questionnaire/service"
	"roommatch_backend/platform/logger"
	"roommatch_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the questionnaire bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	repo    *repository.Repository
}

// NewModule wires the questionnaire repository, service, and handler.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, eventBus, log)

	return &Module{
		handler: handler.New(svc, val),
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "questionnaire"
}

// Repository exposes the questionnaire repository for sibling modules that
// read preferences directly, such as matching.
func (m *Module) Repository() *repository.Repository {
	return m.repo
}

// RegisterRoutes mounts questionnaire routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/questionnaire")
	m.handler.RegisterRoutes(group)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
