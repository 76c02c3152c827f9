package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"power-cost-backend/config"
	"power-cost-backend/internal/mw"
	"power-cost-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg *config.Config, dispatcher Dispatcher) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, cfg.Estimator, dispatcher)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst, cfg.Server.RequestIPHeader)

	ttl := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(ttl, 2*ttl)
	caching := mw.Cache(cacheStore, ttl)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Pure lookups and calculations; safe to cache.
		api.GET("/devices", caching, handler.ListDevices)
		api.GET("/tips", caching, handler.GetTip)
		api.GET("/estimate", caching, handler.GetEstimate)

		api.POST("/estimates", handler.CreateEstimate)
		api.GET("/estimates", handler.ListEstimates)
		api.GET("/estimates/summary", handler.SummarizeEstimates)
		api.GET("/estimates/:id", handler.GetSavedEstimate)
		api.DELETE("/estimates/:id", handler.DeleteEstimate)
	}

	return r
}
