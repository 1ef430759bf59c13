// Package http wires domain modules onto the gin engine. Modules register
// their own routes so the router never imports domain packages.
package http

import (
	"roommatch_backend/platform/config"

	"github.com/gin-gonic/gin"
)

// Module is a bounded context that mounts its own HTTP routes.
type Module interface {
	// Name identifies the module in startup logs.
	Name() string
	// RegisterRoutes mounts the module's routes using the shared groups
	// in ctx.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext bundles the route groups and middleware every module needs
// during registration.
type RouterContext struct {
	// Engine is the root gin engine, for modules needing engine-level hooks.
	Engine *gin.Engine
	// V1 is the public /api/v1 group.
	V1 *gin.RouterGroup
	// Protected is the JWT-authenticated group under /api/v1.
	Protected *gin.RouterGroup
	// Config exposes only the JWT settings auth middleware needs.
	Config config.JWTConfig
	// AuthMiddleware is the JWT verification middleware on Protected.
	AuthMiddleware gin.HandlerFunc
}
