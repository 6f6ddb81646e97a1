package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/web"
)

// Development sign-in used when no users are configured in debug mode.
const (
	devUsername = "admin"
	devPassword = "admin123"
)

func newServeCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	color.New(color.FgCyan).Print(banner)
	fmt.Println()

	debug := cfg.Server.Mode == gin.DebugMode
	l, err := logging.New(debug, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer l.Sync()
	gin.SetMode(cfg.Server.Mode)

	db, err := store.NewSQLiteStore(cfg.Database.Path, l)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	users, err := sessionUsers(cfg, l)
	if err != nil {
		return err
	}
	sessions, err := session.NewManager(session.Config{
		Secret: cfg.Auth.SessionSecret,
		TTL:    cfg.Auth.SessionTTL,
		Users:  users,
	}, l)
	if err != nil {
		return fmt.Errorf("creating session manager: %w", err)
	}

	srv, err := web.New(web.Options{
		Title:     cfg.Site.Title,
		Content:   content.NewStore(db, l),
		Sessions:  sessions,
		Submitter: contact.NewSubmitter(newSender(cfg.Contact, l), cfg.Contact.DirectEmail, l),
		Resume: web.Resume{
			Path:     cfg.Resume.Path,
			URL:      cfg.Resume.URL,
			Filename: cfg.Resume.Filename,
		},
		StaticDir: cfg.Site.StaticDir,
		ImagesDir: cfg.Site.ImagesDir,
		Logger:    l,
		Visits:    db,
	})
	if err != nil {
		return err
	}

	go pruneVisits(ctx, db, l)

	green := color.New(color.FgGreen)
	green.Print("    ▶ ")
	fmt.Printf("HTTP:      %s\n", cfg.Server.Addr)
	green.Print("    ▶ ")
	fmt.Printf("Database:  %s\n", cfg.Database.Path)
	green.Print("    ▶ ")
	fmt.Printf("Mode:      %s\n\n", cfg.Server.Mode)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("listening", zap.String("addr", cfg.Server.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	l.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// visitRetention is how long page visits are kept.
const visitRetention = 12 * 30 * 24 * time.Hour

// pruneVisits deletes expired visits at startup and then once a day.
func pruneVisits(ctx context.Context, db *store.SQLiteStore, l *zap.Logger) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		n, err := db.PruneVisits(ctx, time.Now().Add(-visitRetention))
		if err != nil {
			l.Warn("pruning visits", zap.Error(err))
		} else if n > 0 {
			l.Info("pruned old visits", zap.Int64("rows", n))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func sessionUsers(cfg *config.Config, l *zap.Logger) ([]session.User, error) {
	users := make([]session.User, 0, len(cfg.Auth.Users))
	for _, u := range cfg.Auth.Users {
		users = append(users, session.User{Username: u.Username, PasswordHash: u.PasswordHash, Admin: u.Admin})
	}
	if len(users) > 0 {
		return users, nil
	}

	if cfg.Server.Mode != gin.DebugMode {
		l.Warn("no users configured; admin sign-in is disabled")
		return users, nil
	}

	hash, err := session.HashPassword(devPassword)
	if err != nil {
		return nil, err
	}
	l.Warn("no users configured; using development credentials",
		zap.String("username", devUsername),
		zap.String("password", devPassword),
	)
	return append(users, session.User{Username: devUsername, PasswordHash: hash, Admin: true}), nil
}

// newSender picks how contact submissions leave the site: the HTTP endpoint
// when one is set, SMTP when credentials are, otherwise an unconfigured HTTP
// sender whose every send fails.
func newSender(cfg config.ContactConfig, l *zap.Logger) contact.Sender {
	switch {
	case cfg.Endpoint != "":
		return &contact.HTTPSender{Endpoint: cfg.Endpoint}
	case cfg.SMTP.Enabled():
		return contact.NewSMTPSender(contact.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			To:       cfg.SMTP.To,
		})
	default:
		l.Warn("no contact endpoint or SMTP configured; contact submissions will fail")
		return &contact.HTTPSender{}
	}
}
