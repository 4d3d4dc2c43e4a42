package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/domain"
	usersvc "storefront-api/internal/service/user"
)

// writeError translates service and domain errors into HTTP responses.
// Unexpected errors surface as a plain 500 without internals.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"message": "already exists"})
	case errors.Is(err, usersvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
	case errors.Is(err, usersvc.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "email already registered"})
	case errors.Is(err, domain.ErrNoActivePrice):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "product has no active price"})
	case errors.Is(err, domain.ErrMixedCurrency):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "cart mixes currencies"})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

func writeBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}
