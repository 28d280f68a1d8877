package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RohitValiveti/Fitness-Tracker/middlewares"
	"github.com/RohitValiveti/Fitness-Tracker/services"
)

type AuthController struct {
	Auth *services.AuthService
}

type CredentialsInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func sessionResponse(creds *services.SessionCredentials) gin.H {
	return gin.H{
		"session_token":      creds.SessionToken,
		"session_expiration": creds.SessionExpiration.Format(time.RFC3339),
		"update_token":       creds.UpdateToken,
	}
}

// Register creates an account and returns its first token triple.
func (ac *AuthController) Register(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, creds, err := ac.Auth.Register(input.Email, input.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sessionResponse(creds))
}

func (ac *AuthController) Login(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, creds, err := ac.Auth.Login(input.Email, input.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(creds))
}

func (ac *AuthController) Logout(c *gin.Context) {
	user := currentUser(c)
	if err := ac.Auth.Logout(user); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "you have been logged out"})
}

// UpdateSession reads the bearer token as an update token and rotates the
// pair. This route sits outside the auth middleware: the session token is
// exactly what the caller no longer has.
func (ac *AuthController) UpdateSession(c *gin.Context) {
	token, ok := middlewares.ExtractBearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not extract token"})
		return
	}

	_, creds, err := ac.Auth.RenewSession(token)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(creds))
}
