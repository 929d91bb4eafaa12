package server

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines anything that can wire its routes into a Gin group.
type RouteRegistrar interface {
	// RegisterRoutes should add one or more routes on the provided router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// RegisterRoutes wires up the root registrars (welcome and health probes)
// and the /api/v1 registrars.
func RegisterRoutes(r *gin.Engine, rootRegs, apiRegs []RouteRegistrar) {
	// Global middleware
	r.Use(gin.Logger(), gin.Recovery())

	root := r.Group("")
	for _, reg := range rootRegs {
		reg.RegisterRoutes(root)
	}

	api := r.Group("/api/v1")
	for _, reg := range apiRegs {
		reg.RegisterRoutes(api)
	}
}
