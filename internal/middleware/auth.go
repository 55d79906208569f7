package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"petsitter/internal/pkg/jwt"
	"petsitter/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenChecker answers whether a presented token hash is still live.
// Logout revokes the row, so a structurally valid JWT can still be rejected.
type TokenChecker interface {
	IsActive(ctx context.Context, tokenHash string) (bool, error)
}

func Auth(jwtSvc *jwt.Service, tokens TokenChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "Empty token")
			c.Abort()
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		if tokens != nil {
			active, err := tokens.IsActive(c.Request.Context(), HashToken(tokenStr))
			if err != nil || !active {
				response.Error(c, http.StatusUnauthorized, "Token has been revoked")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("token", tokenStr)

		c.Next()
	}
}

// HashToken is the canonical hash under which issued tokens are stored.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
