package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitValiveti/Fitness-Tracker/services"
)

type AdminController struct {
	Users *services.UserService
}

func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.Users.List()
	if err != nil {
		abortWithError(c, err)
		return
	}
	out := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		out = append(out, users[i].SimpleSerialize())
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// DeleteUser destroys an account and cascades through everything it owns.
func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	user, err := ac.Users.Delete(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.SimpleSerialize())
}

// ResetTables empties the workout hierarchy.
func (ac *AdminController) ResetTables(c *gin.Context) {
	if err := ac.Users.ResetTables(); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted all tables."})
}
