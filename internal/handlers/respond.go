package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/recipebook-dev/recipebook/internal/apperrors"
)

// respondError maps a service failure to its outward status. Anything that
// is not a known failure kind is logged with detail and surfaced as a bare
// internal error.
func respondError(ctx *gin.Context, err error) {
	var notFound *apperrors.NotFoundError

	if errors.As(err, &notFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "NOT_FOUND", "message": notFound.Error()})
		return
	}

	var duplicate *apperrors.DuplicateResourceError

	if errors.As(err, &duplicate) {
		ctx.JSON(http.StatusConflict, gin.H{"error": "DUPLICATE", "message": duplicate.Error()})
		return
	}

	log.Printf("Unexpected error: %v", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL_ERROR"})
}

func respondBindError(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION_ERROR", "message": "Invalid request"})
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "VALIDATION_ERROR", "message": "Invalid id"})
		return 0, false
	}

	return uint(id), true
}
