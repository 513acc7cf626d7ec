package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recruitwarx/portal/internal/models"
)

const sessionKey = "session"

// Middleware resolves the session cookie and gates routes by role.
type Middleware struct {
	Store      SessionStore
	CookieName string
}

func NewMiddleware(store SessionStore, cookieName string) *Middleware {
	return &Middleware{Store: store, CookieName: cookieName}
}

// resolveSession looks up the session behind the request cookie.
func (m *Middleware) resolveSession(c *gin.Context) (Session, bool) {
	id, err := c.Cookie(m.CookieName)
	if err != nil {
		return Session{}, false
	}
	return m.Store.Get(id)
}

// RequireAuth rejects requests without a live session and stashes the
// resolved Session in the gin context for downstream handlers.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := m.resolveSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireRole authenticates like RequireAuth and additionally checks role
// membership. The downstream handler only runs once both checks pass.
func (m *Middleware) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := m.resolveSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		for _, r := range roles {
			if sess.Role == r {
				c.Set(sessionKey, sess)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Unauthorized"})
	}
}

// CurrentSession returns the Session placed by RequireAuth. It panics if
// called on a route that is not behind the middleware.
func CurrentSession(c *gin.Context) Session {
	return c.MustGet(sessionKey).(Session)
}
