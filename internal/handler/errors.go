package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/bodymap-backend-go/internal/repository"
	"github.com/jengzang/bodymap-backend-go/internal/service"
	"github.com/jengzang/bodymap-backend-go/pkg/response"
)

// respondError maps service and repository errors onto HTTP status codes
func respondError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Symptom not found", err)
	case errors.Is(err, service.ErrInvalidSymptom), errors.Is(err, service.ErrInvalidFilter):
		response.Error(c, http.StatusBadRequest, message, err)
	default:
		response.InternalError(c, message, err)
	}
}
