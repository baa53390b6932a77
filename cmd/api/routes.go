package main

import (
	"slices"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/middleware"
)

// routeOptions carries the limits applied in front of the handlers
type routeOptions struct {
	limiter          *middleware.RateLimiter
	quota            middleware.WindowChecker
	publishPerMinute int64
}

func setupRouter(api *API, opts routeOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(api.logger))

	// Health check
	router.GET("/health", api.healthCheck)

	v1 := router.Group("/api/v1")
	if opts.limiter != nil {
		v1.Use(middleware.RateLimit(opts.limiter))
	}

	write := []gin.HandlerFunc{
		middleware.JWTAuth(),
		middleware.RequireScope(middleware.ScopeWrite),
	}
	if opts.quota != nil && opts.publishPerMinute > 0 {
		write = append(write, middleware.WindowLimit(opts.quota, "publish", opts.publishPerMinute, time.Minute))
	}
	write = slices.Clip(write)

	manifests := v1.Group("/manifests")
	{
		manifests.POST("/validate", api.validateManifest)
		manifests.POST("/generate", api.generateManifest)
		manifests.GET("", api.listManifests)

		manifests.GET("/:name", api.getManifest)
		manifests.GET("/:name/summary", api.getSummary)
		manifests.GET("/:name/revisions", api.listRevisions)
		manifests.GET("/:name/query", api.queryManifest)
		manifests.GET("/:name/url", api.manifestURL)

		manifests.PUT("/:name", append(write, api.publishManifest)...)
		manifests.DELETE("/:name", append(write, api.deleteManifest)...)
	}

	return router
}
