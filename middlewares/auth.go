package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie carries the JWT for browser clients; API clients may send a
// Bearer header instead.
const SessionCookie = "token"

// AuthMiddleware checks the token and, when requireAdmin is set, the admin
// claim.
func AuthMiddleware(secret string, requireAdmin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tokenStr = strings.TrimPrefix(h, "Bearer ")
		} else if v, err := c.Cookie(SessionCookie); err == nil {
			tokenStr = v
		}
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid claims"})
			c.Abort()
			return
		}

		var admin bool
		if v, ok := claims["admin"].(bool); ok {
			admin = v
		}
		var userId uint
		switch v := claims["userId"].(type) {
		case float64:
			userId = uint(v)
		case int:
			userId = uint(v)
		case int64:
			userId = uint(v)
		case uint:
			userId = v
		}

		c.Set("userId", userId)
		c.Set("admin", admin)

		if requireAdmin && !admin {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}
