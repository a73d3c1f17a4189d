package handlers

import (
	"net/http"

	"github.com/BSIT-Sanchez/LGC/middlewares"
	"github.com/BSIT-Sanchez/LGC/services"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GetDashboardStats returns the aggregate counts for the dashboard cards.
func (h *ReportHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.service.GetDashboardStats(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, "Failed to get dashboard stats", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, stats)
}

// GetDailySummary returns per-date activity and revenue rows for the reports page.
func (h *ReportHandler) GetDailySummary(c *gin.Context) {
	summary, err := h.service.GetDailySummary(c.Request.Context())
	if err != nil {
		middlewares.RespondError(c, "Failed to get daily summary", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, summary)
}
