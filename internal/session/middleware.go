package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CookieName is the name of the session cookie.
const CookieName = "portfolio_session"

const contextKey = "portfolio.session"

// Middleware loads the visitor's session from the cookie.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(CookieName)
		s := m.Decode(token)
		c.Set(contextKey, &s)
		c.Next()
	}
}

// FromContext returns the session loaded by Middleware, or an anonymous one.
func FromContext(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	s := Anonymous()
	c.Set(contextKey, &s)
	return &s
}

// Save writes s back to the cookie. Signed-out sessions clear it.
func (m *Manager) Save(c *gin.Context, s *Session) error {
	c.SetSameSite(http.SameSiteStrictMode)
	if !s.SignedIn {
		c.SetCookie(CookieName, "", -1, "/", "", false, true)
		return nil
	}

	token, err := m.Encode(*s)
	if err != nil {
		return err
	}
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", c.Request.TLS != nil, true)
	return nil
}

// RequireEditMode rejects requests unless a signed-in admin has edit mode on.
func (m *Manager) RequireEditMode() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := FromContext(c)
		if !s.CanEdit() {
			m.l.Info("rejected edit request",
				zap.String("path", c.Request.URL.Path),
				zap.String("client", m.HashIP(c.ClientIP())),
			)
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
