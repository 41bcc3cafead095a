package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfletch/haul-analytics-go/internal/analysis"
	"github.com/jfletch/haul-analytics-go/internal/models"
	"github.com/jfletch/haul-analytics-go/internal/service"
	"github.com/jfletch/haul-analytics-go/pkg/response"
)

// IngestHandler handles dataset replacement requests
type IngestHandler struct {
	service *service.IngestService
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(service *service.IngestService) *IngestHandler {
	return &IngestHandler{service: service}
}

// ReplaceDataset handles POST /api/v1/ingest
func (h *IngestHandler) ReplaceDataset(c *gin.Context) {
	var req models.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.ReplaceDataset(req)
	if err != nil {
		if errors.Is(err, analysis.ErrSchemaViolation) {
			response.Error(c, http.StatusBadRequest, "Dataset rejected", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to replace dataset", err)
		return
	}

	response.Success(c, result)
}
