package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/bodymap-backend-go/internal/middleware"
	"github.com/jengzang/bodymap-backend-go/internal/models"
	"github.com/jengzang/bodymap-backend-go/internal/service"
	"github.com/jengzang/bodymap-backend-go/pkg/response"
)

// BodyMapHandler handles HTTP requests for the body map view
type BodyMapHandler struct {
	service *service.BodyMapService
}

// NewBodyMapHandler creates a new body map handler
func NewBodyMapHandler(service *service.BodyMapService) *BodyMapHandler {
	return &BodyMapHandler{service: service}
}

// GetBodyMap handles GET /api/v1/body-map
func (h *BodyMapHandler) GetBodyMap(c *gin.Context) {
	var filter models.BodyMapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	result, err := h.service.BodyMap(c.Request.Context(), middleware.UserID(c), filter)
	if err != nil {
		respondError(c, "Failed to build body map", err)
		return
	}

	response.Success(c, result)
}

// GetRegionSymptoms handles GET /api/v1/body-map/regions/:id/symptoms
func (h *BodyMapHandler) GetRegionSymptoms(c *gin.Context) {
	var filter models.BodyMapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	regionID := c.Param("id")
	records, err := h.service.RegionSymptoms(c.Request.Context(), middleware.UserID(c), regionID, filter)
	if err != nil {
		respondError(c, "Failed to get region symptoms", err)
		return
	}

	response.Success(c, gin.H{
		"region": lookup(regionID),
		"data":   records,
		"count":  len(records),
	})
}

// GetBreakdown handles GET /api/v1/symptoms/breakdown
func (h *BodyMapHandler) GetBreakdown(c *gin.Context) {
	var filter models.BreakdownFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	result, err := h.service.Breakdown(c.Request.Context(), middleware.UserID(c), filter)
	if err != nil {
		respondError(c, "Failed to build breakdown", err)
		return
	}

	response.Success(c, result)
}
