package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RohitValiveti/Fitness-Tracker/services"
)

const (
	// ContextUserKey is where the middleware stores the resolved user.
	ContextUserKey = "user"
	// ContextUserIDKey holds the resolved user's id.
	ContextUserIDKey = "userID"
)

// ExtractBearerToken pulls the token out of the Authorization header.
// The "Bearer " scheme prefix is stripped when present; a header that is
// missing or empty after stripping fails.
func ExtractBearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", false
	}
	return token, true
}

// AuthMiddleware resolves the bearer token to a user via the session
// store. Missing header, malformed header, unknown token, and expired
// session all produce the same 401 so a caller cannot tell which check
// failed.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := ExtractBearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not extract token"})
			return
		}

		user, err := auth.GetUserBySessionToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": services.ErrUnauthenticated.Error()})
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)

		c.Next()
	}
}
