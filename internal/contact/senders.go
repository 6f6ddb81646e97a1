package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/smtp"
	"strings"
)

// HTTPSender posts submissions as JSON to a fixed endpoint.
type HTTPSender struct {
	Endpoint string
	Client   *http.Client
}

// Send issues one POST. Any non-2xx status is a failure.
func (h *HTTPSender) Send(ctx context.Context, f Form) error {
	if h.Endpoint == "" {
		return errors.New("contact endpoint not configured")
	}

	body, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("sending submission: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("contact endpoint returned %s", resp.Status)
	}
	return nil
}

// SMTPConfig holds mail settings for SMTPSender.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string
}

// SMTPSender mails submissions to the site owner.
type SMTPSender struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender returns a sender using cfg. Host defaults to smtp.gmail.com:587.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &SMTPSender{cfg: cfg, send: smtp.SendMail}
}

// Send mails f. The context is not observed by net/smtp.
func (s *SMTPSender) Send(_ context.Context, f Form) error {
	if s.cfg.Username == "" || s.cfg.Password == "" {
		return errors.New("SMTP credentials not configured")
	}
	if s.cfg.To == "" {
		return errors.New("SMTP recipient not configured")
	}

	msg := composeMail(s.cfg.Username, s.cfg.To, f)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := s.send(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.Username, []string{s.cfg.To}, msg); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}

func composeMail(from, to string, f Form) []byte {
	subject := "Portfolio Contact: " + headerSafe(f.Name)
	if f.Subject != "" {
		subject += " - " + headerSafe(f.Subject)
	}

	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, f.Name, f.Email, f.Subject, f.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerSafe(f.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe strips line breaks so visitor input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
