package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jfletch/haul-analytics-go/internal/analysis"
	"github.com/jfletch/haul-analytics-go/internal/export"
	"github.com/jfletch/haul-analytics-go/internal/models"
	"github.com/jfletch/haul-analytics-go/internal/service"
	"github.com/jfletch/haul-analytics-go/pkg/response"
)

// AnalyticsHandler serves the derived report tables. Every request triggers
// a full recomputation from the current dataset.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func reportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analysis.ErrSourceUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "Record store unavailable", err)
	case errors.Is(err, analysis.ErrSchemaViolation):
		response.Error(c, http.StatusInternalServerError, "Stored dataset violates schema", err)
	default:
		response.Error(c, http.StatusInternalServerError, "Analysis failed", err)
	}
}

func (h *AnalyticsHandler) run(c *gin.Context) (*models.AnalysisReport, bool) {
	report, err := h.service.RunAnalysis()
	if err != nil {
		reportError(c, err)
		return nil, false
	}
	return report, true
}

// GetProfitability handles GET /api/v1/reports/profitability
func (h *AnalyticsHandler) GetProfitability(c *gin.Context) {
	report, ok := h.run(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{
		"generated_at": report.GeneratedAt,
		"data":         report.Profitability,
	})
}

// GetRoutes handles GET /api/v1/reports/routes
func (h *AnalyticsHandler) GetRoutes(c *gin.Context) {
	report, ok := h.run(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{
		"generated_at": report.GeneratedAt,
		"data":         report.Routes,
	})
}

// GetMonthlyExpenses handles GET /api/v1/reports/expenses/monthly
func (h *AnalyticsHandler) GetMonthlyExpenses(c *gin.Context) {
	report, ok := h.run(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{
		"generated_at": report.GeneratedAt,
		"data":         report.MonthlyExpenses,
	})
}

// GetExpenseDetails handles GET /api/v1/reports/expenses/details
func (h *AnalyticsHandler) GetExpenseDetails(c *gin.Context) {
	details, err := h.service.GetExpenseDetails()
	if err != nil {
		reportError(c, err)
		return
	}
	response.Success(c, gin.H{"data": details})
}

// GetRepresentativeTrips handles GET /api/v1/reports/trips/representative
func (h *AnalyticsHandler) GetRepresentativeTrips(c *gin.Context) {
	report, ok := h.run(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{
		"generated_at": report.GeneratedAt,
		"data":         report.Representative,
		"warnings":     report.Warnings,
	})
}

// GetSummary handles GET /api/v1/reports/summary
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	report, ok := h.run(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{
		"generated_at": report.GeneratedAt,
		"data":         report.Summary,
		"warnings":     report.Warnings,
	})
}

// ExportReport handles GET /api/v1/reports/export and streams the full
// report workbook as an xlsx attachment.
func (h *AnalyticsHandler) ExportReport(c *gin.Context) {
	report, ok := h.run(c)
	if !ok {
		return
	}

	details, err := h.service.GetExpenseDetails()
	if err != nil {
		reportError(c, err)
		return
	}

	f, err := export.BuildWorkbook(report, details)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to build report workbook", err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("haul-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(c.Writer); err != nil {
		// Headers are already out; all we can do is abort the stream.
		c.Abort()
	}
}
