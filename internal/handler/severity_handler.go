package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/bodymap-backend-go/internal/severity"
	"github.com/jengzang/bodymap-backend-go/pkg/response"
)

// SeverityHandler serves the severity bands
type SeverityHandler struct{}

// NewSeverityHandler creates a new severity handler
func NewSeverityHandler() *SeverityHandler {
	return &SeverityHandler{}
}

// Legend handles GET /api/v1/severity/legend
func (h *SeverityHandler) Legend(c *gin.Context) {
	legend := severity.Legend()
	response.Success(c, gin.H{
		"data":    legend,
		"count":   len(legend),
		"default": severity.Default,
	})
}

// Classify handles GET /api/v1/severity/classify?value=
func (h *SeverityHandler) Classify(c *gin.Context) {
	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil || math.IsNaN(value) {
		response.Error(c, http.StatusBadRequest, "Invalid severity value", err)
		return
	}

	band := severity.Classify(value)
	response.Success(c, gin.H{
		"value": value,
		"band":  band,
		"rank":  severity.Rank(band),
	})
}
