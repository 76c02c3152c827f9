package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"power-cost-backend/config"
	"power-cost-backend/internal/estimate"
	"power-cost-backend/internal/model"
	"power-cost-backend/internal/store"
)

// Dispatcher queues saved estimates for background publishing.
type Dispatcher interface {
	Dispatch(e model.Estimate) bool
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store      store.Store
	estimator  config.EstimatorConfig
	dispatcher Dispatcher
}

// NewHandler creates a new API handler. dispatcher may be nil.
func NewHandler(s store.Store, estimator config.EstimatorConfig, dispatcher Dispatcher) *Handler {
	return &Handler{
		store:      s,
		estimator:  estimator,
		dispatcher: dispatcher,
	}
}

// writeError maps domain errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, estimate.ErrInvalidInput):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
