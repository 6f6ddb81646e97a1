package web

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/store"
)

// VisitLog records anonymised page views.
type VisitLog interface {
	RecordVisit(ctx context.Context, v store.Visit) error
	VisitStats(ctx context.Context, now time.Time, recent int) (*store.VisitStats, error)
}

var untrackedPrefixes = []string{"/static/", "/images/", "/admin/", "/favicon", "/healthz"}

// trackVisits records successful GETs of public pages. Requests with
// "DNT: 1" are never recorded.
func (s *Server) trackVisits() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if s.visits == nil || c.Request.Method != http.MethodGet || c.Writer.Status() != http.StatusOK {
			return
		}
		if c.GetHeader("DNT") == "1" {
			return
		}
		path := c.Request.URL.Path
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				return
			}
		}

		err := s.visits.RecordVisit(c.Request.Context(), store.Visit{
			HashedIP:  s.sessions.HashIP(c.ClientIP()),
			UserAgent: c.Request.UserAgent(),
			Path:      path,
		})
		if err != nil {
			s.l.Warn("recording visit", zap.Error(err))
		}
	}
}

func (s *Server) handleStats(c *gin.Context) {
	sess := session.FromContext(c)
	if !sess.SignedIn || !sess.IsAdmin {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	if s.visits == nil {
		c.JSON(http.StatusOK, &store.VisitStats{Recent: []store.Visit{}})
		return
	}

	stats, err := s.visits.VisitStats(c.Request.Context(), time.Now(), 50)
	if err != nil {
		s.l.Error("loading visit stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
