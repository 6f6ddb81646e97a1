// Package web serves the portfolio page and the admin editing routes.
package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/editor"
	"github.com/Zachkp/portfolio/internal/session"
)

// Resume locates the downloadable resume. Path wins over URL.
type Resume struct {
	Path     string
	URL      string
	Filename string
	Client   *http.Client
}

// Options configures a Server.
type Options struct {
	Title     string
	Content   *content.Store
	Sessions  *session.Manager
	Submitter *contact.Submitter
	Resume    Resume
	StaticDir string
	ImagesDir string
	Logger    *zap.Logger

	// Visits is optional. Page views are not recorded without it.
	Visits VisitLog
}

// Server is the HTTP front end of the site.
type Server struct {
	title     string
	content   *content.Store
	editor    *editor.Editor
	sessions  *session.Manager
	submitter *contact.Submitter
	resume    Resume
	visits    VisitLog
	l         *zap.Logger
	engine    *gin.Engine
}

// New builds the gin engine and registers every route.
func New(opts Options) (*Server, error) {
	if opts.Content == nil || opts.Sessions == nil || opts.Submitter == nil {
		return nil, fmt.Errorf("web: content store, session manager and submitter are required")
	}
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		title:     opts.Title,
		content:   opts.Content,
		editor:    editor.New(opts.Content),
		sessions:  opts.Sessions,
		submitter: opts.Submitter,
		resume:    opts.Resume,
		visits:    opts.Visits,
		l:         l.Named("web"),
	}
	if s.resume.Filename == "" {
		s.resume.Filename = "Resume.pdf"
	}

	r := gin.New()
	r.Use(requestLogger(s.l, opts.Sessions.HashIP), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	if opts.ImagesDir != "" {
		r.Static("/images", opts.ImagesDir)
	}
	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	site := r.Group("/", opts.Sessions.Middleware(), s.trackVisits())
	site.GET("/", s.handleIndex)
	site.POST("/contact", s.handleContact)
	site.GET("/resume", s.handleResume)

	admin := site.Group("/admin")
	admin.GET("/login", s.handleLoginPage)
	admin.POST("/login", s.handleLogin)
	admin.POST("/logout", s.handleLogout)
	admin.POST("/mode", s.handleToggleMode)
	admin.GET("/stats", s.handleStats)

	edit := admin.Group("/", opts.Sessions.RequireEditMode())
	edit.GET("/edit/close", s.handleCloseDialog)
	edit.GET("/edit/:dialog", s.handleOpenDialog)
	edit.GET("/edit/:dialog/:index", s.handleOpenDialog)
	edit.POST("/edit/:dialog", s.handleSaveDialog)
	edit.POST("/edit/:dialog/:index", s.handleSaveDialog)
	edit.POST("/skills/:cat/add", s.handleAddSkill)
	edit.POST("/skills/:cat/remove/:idx", s.handleRemoveSkill)
	edit.POST("/work/:index/delete", s.handleDeleteWork)
	edit.POST("/portfolio/:index/delete", s.handleDeletePortfolio)
	edit.POST("/reset", s.handleReset)

	s.engine = r
	return s, nil
}

// Handler returns the HTTP handler for the site.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// requestLogger logs one line per request with the client IP hashed.
func requestLogger(l *zap.Logger, hashIP func(string) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		l.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client", hashIP(c.ClientIP())),
		)
	}
}
