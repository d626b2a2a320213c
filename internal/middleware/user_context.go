package middleware

import (
	"strings"

	"checktrack/internal/auth"
	"checktrack/internal/services"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the gin context key the resolved user is stored under.
const CurrentUserKey = "CurrentUser"

// CurrentUser resolves a bearer token into the current user and puts it on
// the request context. It never blocks the request: the token is an identity
// claim the handlers may consult, not an access gate.
func CurrentUser(authSvc *auth.Service, users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if uid, err := authSvc.ResolveToken(token); err == nil {
				// Re-fetch on every request so edits and deletions take
				// effect immediately.
				if user, err := users.Get(uid); err == nil {
					c.Set(CurrentUserKey, user.Redacted())
				}
			}
		}
		c.Next()
	}
}
