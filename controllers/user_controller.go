package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitValiveti/Fitness-Tracker/services"
)

type UserController struct {
	Users *services.UserService
}

// Get returns the full view of the requested user: simple views of their
// workouts and friends, one level deep.
func (uc *UserController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	user, err := uc.Users.Get(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.Serialize())
}

// AddFriend appends the named user to the caller's friend list.
func (uc *UserController) AddFriend(c *gin.Context) {
	friendID, ok := parseIDParam(c, "friend_id")
	if !ok {
		return
	}
	friend, err := uc.Users.AddFriend(currentUser(c), friendID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, friend.SimpleSerialize())
}
