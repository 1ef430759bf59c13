// Package matching provides the compatibility matching bounded context
// module: on-demand scoring of listings against the caller's questionnaire.
package matching

import (
	apphttp "roommatch_backend/internal/http"
	"roommatch_backend/internal/matching/handler"
	"roommatch_backend/internal/matching/scoring"
	"roommatch_backend/internal/matching/service"
	"roommatch_backend/platform/config"
	"roommatch_backend/platform/logger"
)

// Module is the matching bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule wires the scoring engine and match service. The listings and
// questionnaire readers come from their sibling modules; resolver may be nil
// when no geo stack is configured.
func NewModule(listings service.ListingsReader, questionnaires service.QuestionnaireReader, resolver scoring.DistanceResolver, cfg config.MatchingConfig, log *logger.Logger) *Module {
	engine := scoring.NewEngine(resolver, cfg, log)
	svc := service.New(listings, questionnaires, engine, cfg, log)

	return &Module{
		handler: handler.New(svc),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "matching"
}

// RegisterRoutes mounts matching routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	matches := ctx.Protected.Group("/matches")
	m.handler.RegisterMatchRoutes(matches)

	listings := ctx.Protected.Group("/listings")
	m.handler.RegisterListingRoutes(listings)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
