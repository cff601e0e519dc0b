package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"recipe-api-backend/repositories"
	"recipe-api-backend/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service and repository errors onto the HTTP taxonomy:
// validation failures are 400, missing-or-not-owned rows are a uniform 404,
// anything else is a 500 with no detail leaked to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrTagNotFound),
		errors.Is(err, services.ErrIngredientNotFound),
		errors.Is(err, services.ErrFieldsRequired),
		errors.Is(err, services.ErrNotImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseID reads a numeric path parameter. A malformed id behaves exactly
// like a missing row.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}

// parseIDList parses a comma-separated id filter like "1,2,3".
func parseIDList(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
