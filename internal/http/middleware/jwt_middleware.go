package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ksoltys/teagarden/internal/infrastructure/auth"
)

// PlayerIdentityMiddleware resolves the acting player from a bearer token
// when one is present. Requests without a token pass through untouched and
// fall back to the legacy first-player behavior, so the historical clients
// keep working while token-aware ones get real identity.
func PlayerIdentityMiddleware(jwtService auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			// An invalid token is ignored rather than rejected; the
			// endpoints themselves are public.
			c.Next()
			return
		}

		if playerID, err := strconv.ParseInt(claims.PlayerID, 10, 64); err == nil && playerID > 0 {
			c.Set("player_id", playerID)
			c.Set("username", claims.Username)
		}
		c.Next()
	}
}
