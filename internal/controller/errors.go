// errors.go
package controller

import (
	"errors"
	"net/http"

	"aventura-gamer-service/internal/gamification"
	"aventura-gamer-service/internal/repository"
	"aventura-gamer-service/internal/service"
	"aventura-gamer-service/internal/status"

	"github.com/gin-gonic/gin"
)

// respondError traduce los errores de negocio al status HTTP que espera el
// frontend. Ningún error del core es fatal: todos son por llamada.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, status.ErrInvalidTransition),
		errors.Is(err, status.ErrFinalState),
		errors.Is(err, gamification.ErrInvalidArgument),
		errors.Is(err, gamification.ErrNotUnlocked):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gamification.ErrAlreadyClaimed),
		errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func isStaff(c *gin.Context) bool {
	return service.RoleAtLeast(c.GetString("userRole"), "staff")
}
