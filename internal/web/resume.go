package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleResume answers with the resume as an attachment so the browser
// downloads it under the configured file name.
func (s *Server) handleResume(c *gin.Context) {
	if s.resume.Path != "" {
		c.FileAttachment(s.resume.Path, s.resume.Filename)
		return
	}
	if s.resume.URL == "" {
		c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, s.resume.URL, nil)
	if err != nil {
		s.fail(c, fmt.Errorf("building resume request: %w", err))
		return
	}
	client := s.resume.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		s.l.Error("fetching resume", zap.Error(err))
		c.String(http.StatusBadGateway, http.StatusText(http.StatusBadGateway))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.l.Error("fetching resume", zap.Int("upstream_status", resp.StatusCode))
		c.String(http.StatusBadGateway, http.StatusText(http.StatusBadGateway))
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, resp.ContentLength, contentType, resp.Body, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", s.resume.Filename),
	})
}
