package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tescursos/internal/config"
	"tescursos/internal/repositories"
	"tescursos/pkg/utils"
)

// AccessGate authorizes page navigation by path prefix: the admin area
// needs an admin session, the dashboard needs a session plus a paid
// purchase, everything else passes through. Purchase lookup errors count
// as "not paid" so the gate fails closed.
func AccessGate(cfg *config.Config, admins *utils.Admins, purchases repositories.PurchaseRepository, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Explicit bypass switch; config.Load logs loudly when it is on.
		if cfg.TestMode {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		switch {
		case strings.HasPrefix(path, "/admin"):
			claims := sessionClaims(c, secret)
			if claims == nil {
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			if !admins.IsAdmin(claims.Email, claims.AppMetadata) {
				c.Redirect(http.StatusFound, "/dashboard")
				c.Abort()
				return
			}

		case strings.HasPrefix(path, "/dashboard"):
			claims := sessionClaims(c, secret)
			if claims == nil {
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			purchase, err := purchases.FindByUserID(c.Request.Context(), claims.UserID())
			if err != nil {
				log.Printf("access gate: purchase lookup for %s: %v", claims.UserID(), err)
				purchase = nil
			}
			if purchase == nil || !purchase.Paid {
				c.Redirect(http.StatusFound, "/checkout")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
