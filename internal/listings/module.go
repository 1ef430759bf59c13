// Package listings provides the housing listings bounded context module.
package listings

import (
	"roommatch_backend/internal/events"
	apphttp "roommatch_backend/internal/http"
	"roommatch_backend/internal/listings/handler"
	"roommatch_backend/internal/listings/repository"
	"roommatch_backend/internal/listings/service"
	"roommatch_backend/platform/logger"
	"roommatch_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the listings bounded context module implementing http.Module.
type Module struct {
	handler *Handlers
	service *service.Service
	repo    *repository.Repository
}

// Handlers holds the HTTP handlers exposed by the module.
type Handlers struct {
	listings *handler.Handler
}

// NewModule wires the listings repository, service, and handlers.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, eventBus, log)

	return &Module{
		handler: &Handlers{listings: handler.New(svc, val)},
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "listings"
}

// Repository exposes the listings repository for sibling modules that read
// listings directly, such as matching.
func (m *Module) Repository() *repository.Repository {
	return m.repo
}

// RegisterRoutes mounts listings routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	public := ctx.V1.Group("/listings")
	m.handler.listings.RegisterPublicRoutes(public)

	protected := ctx.Protected.Group("/listings")
	m.handler.listings.RegisterProtectedRoutes(protected)

	me := ctx.Protected.Group("/me")
	m.handler.listings.RegisterOwnerRoutes(me)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
