package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jfletch/haul-analytics-go/internal/models"
	"github.com/jfletch/haul-analytics-go/internal/service"
	"github.com/jfletch/haul-analytics-go/pkg/response"
)

// LoadHandler handles HTTP requests for loads
type LoadHandler struct {
	service *service.LoadService
}

// NewLoadHandler creates a new load handler
func NewLoadHandler(service *service.LoadService) *LoadHandler {
	return &LoadHandler{service: service}
}

// GetLoads handles GET /api/v1/loads
func (h *LoadHandler) GetLoads(c *gin.Context) {
	var filter models.LoadFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	loads, total, err := h.service.GetLoads(filter)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to get loads", err)
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	response.Success(c, gin.H{
		"data":       loads,
		"total":      total,
		"page":       filter.Page,
		"pageSize":   filter.PageSize,
		"totalPages": totalPages,
	})
}

// GetLoadByID handles GET /api/v1/loads/:id
func (h *LoadHandler) GetLoadByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid load ID", err)
		return
	}

	load, err := h.service.GetLoadByID(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get load", err)
		return
	}

	if load == nil {
		response.Error(c, http.StatusNotFound, "Load not found", nil)
		return
	}

	response.Success(c, load)
}
