package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tredora.backend/internal/interfaces/http/response"
	"tredora.backend/internal/usecases"
)

// AnalyticsHandler handles the analytics endpoint.
type AnalyticsHandler struct {
	analyticsUsecase *usecases.AnalyticsUsecase
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analyticsUsecase *usecases.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase}
}

// Get handles GET /analytics
func (h *AnalyticsHandler) Get(c *gin.Context) {
	analytics, err := h.analyticsUsecase.GetAnalytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, analytics)
}
