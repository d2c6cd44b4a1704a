package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tescursos/pkg/utils"
)

// Session cookie set by the identity provider's frontend SDK.
const sessionCookie = "sb-access-token"

// sessionClaims pulls the session token from the Authorization header or
// the session cookie and verifies it. Returns nil for anonymous callers.
func sessionClaims(c *gin.Context, secret []byte) *utils.SessionClaims {
	var token string
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		token = strings.TrimPrefix(h, "Bearer ")
	} else if cookie, err := c.Cookie(sessionCookie); err == nil {
		token = cookie
	}
	if token == "" {
		return nil
	}

	claims, err := utils.ParseSessionToken(token, secret)
	if err != nil {
		return nil
	}
	return claims
}

// RequireSession guards API routes that need a verified identity.
func RequireSession(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := sessionClaims(c, secret)
		if claims == nil {
			utils.RespondError(c, http.StatusForbidden, "Não autorizado")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID())
		c.Set("email", claims.Email)
		c.Next()
	}
}

// RequireAdmin guards the admin API. Every privileged route goes through
// this same verified-session path; there is no header-based identity.
func RequireAdmin(secret []byte, admins *utils.Admins) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := sessionClaims(c, secret)
		if claims == nil || !admins.IsAdmin(claims.Email, claims.AppMetadata) {
			utils.RespondError(c, http.StatusForbidden, "Não autorizado")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID())
		c.Set("email", claims.Email)
		c.Next()
	}
}

// GetUserID reads the verified user id placed by the session middleware.
func GetUserID(c *gin.Context) string {
	return c.GetString("user_id")
}
