package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/healthhub/camp-server-go/config"
	utils "github.com/healthhub/camp-server-go/utils"
)

// IdentityKey is where the decoded token claims land on the context.
const IdentityKey = "identity"

// AuthMiddleware validates the session cookie and attaches the decoded
// identity to the request context. Applied to every mutating or
// account-scoped route.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(utils.TokenCookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		claims, err := utils.VerifyToken(tokenString, cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		c.Set(IdentityKey, claims)
		if email, ok := claims["email"].(string); ok {
			c.Set("email", email)
		}
		c.Next()
	}
}
