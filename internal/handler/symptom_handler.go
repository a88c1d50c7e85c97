package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/bodymap-backend-go/internal/middleware"
	"github.com/jengzang/bodymap-backend-go/internal/models"
	"github.com/jengzang/bodymap-backend-go/internal/service"
	"github.com/jengzang/bodymap-backend-go/pkg/response"
)

// SymptomHandler handles HTTP requests for logged symptoms
type SymptomHandler struct {
	service *service.SymptomService
}

// NewSymptomHandler creates a new symptom handler
func NewSymptomHandler(service *service.SymptomService) *SymptomHandler {
	return &SymptomHandler{service: service}
}

// ListSymptoms handles GET /api/v1/symptoms
func (h *SymptomHandler) ListSymptoms(c *gin.Context) {
	var filter models.SymptomFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	records, err := h.service.List(c.Request.Context(), middleware.UserID(c), filter)
	if err != nil {
		respondError(c, "Failed to list symptoms", err)
		return
	}

	response.Success(c, gin.H{
		"data":  records,
		"count": len(records),
	})
}

// CreateSymptom handles POST /api/v1/symptoms
func (h *SymptomHandler) CreateSymptom(c *gin.Context) {
	var req models.CreateSymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	rec, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, "Failed to create symptom", err)
		return
	}

	response.Created(c, rec)
}

// GetSymptom handles GET /api/v1/symptoms/:id
func (h *SymptomHandler) GetSymptom(c *gin.Context) {
	rec, err := h.service.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get symptom", err)
		return
	}

	response.Success(c, rec)
}

// DeleteSymptom handles DELETE /api/v1/symptoms/:id
func (h *SymptomHandler) DeleteSymptom(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, "Failed to delete symptom", err)
		return
	}

	response.Success(c, gin.H{"id": id, "deleted": true})
}
