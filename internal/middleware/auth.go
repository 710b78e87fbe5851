package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"microblog/internal/services"
)

const UserIDContextKey = "userID"

// Auth requires a valid bearer token and attaches the decoded user id to
// the request context. Every failure mode reads the same to the client.
func Auth(tokens *services.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthenticated(c)
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuth proceeds anonymously when the header is absent or not a
// bearer header. A token that is present but fails verification is still
// rejected.
func OptionalAuth(tokens *services.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Next()
	}
}

// GetUserID returns the authenticated user id, or "" for anonymous
// requests.
func GetUserID(c *gin.Context) string {
	if id, exists := c.Get(UserIDContextKey); exists {
		return id.(string)
	}
	return ""
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated."})
}
