package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RohitValiveti/Fitness-Tracker/middlewares"
	"github.com/RohitValiveti/Fitness-Tracker/models"
	"github.com/RohitValiveti/Fitness-Tracker/services"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrNoSuchEmail):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, services.ErrWrongPassword), errors.Is(err, services.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}

// currentUser returns the user the auth middleware resolved for this
// request.
func currentUser(c *gin.Context) *models.User {
	value, exists := c.Get(middlewares.ContextUserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrValidation.Error()})
		return 0, false
	}
	return uint(id), true
}
