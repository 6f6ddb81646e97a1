// Package config loads the portfolio server configuration.
//
// Configuration is a YAML file. Values may reference environment variables as
// ${VAR_NAME}; unset variables expand to the empty string. A PORT environment
// variable overrides the port of server.addr.
//
//	server:
//	  addr: ":8080"
//	  mode: "release"            # debug, release, test
//	database:
//	  path: "data/portfolio.db"
//	auth:
//	  session_secret: "${SESSION_SECRET}"
//	  session_ttl: "24h"
//	  users:
//	    - username: "owner"
//	      password_hash: "$2a$10$..."   # portfolio hash-password
//	      admin: true
//	contact:
//	  endpoint: "https://example.com/api/send-email"
//	  direct_email: "owner@example.com"
//	resume:
//	  url: "https://example.com/files/resume.pdf"
//	  filename: "Resume.pdf"
//	logging:
//	  level: "info"
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Contact  ContactConfig  `yaml:"contact"`
	Resume   ResumeConfig   `yaml:"resume"`
	Logging  LoggingConfig  `yaml:"logging"`
	Site     SiteConfig     `yaml:"site"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	Mode string `yaml:"mode"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig holds admin sign-in settings.
type AuthConfig struct {
	SessionSecret string        `yaml:"session_secret"`
	SessionTTL    time.Duration `yaml:"-"`
	SessionTTLRaw string        `yaml:"session_ttl"`
	Users         []UserConfig  `yaml:"users"`
}

type UserConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	Admin        bool   `yaml:"admin"`
}

// ContactConfig selects how contact form submissions are delivered. Endpoint
// wins over SMTP when both are set.
type ContactConfig struct {
	Endpoint    string     `yaml:"endpoint"`
	DirectEmail string     `yaml:"direct_email"`
	SMTP        SMTPConfig `yaml:"smtp"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	To       string `yaml:"to"`
}

// Enabled reports whether enough is set to try sending mail.
func (s SMTPConfig) Enabled() bool {
	return s.Username != "" && s.Password != ""
}

// ResumeConfig points at the downloadable resume. Path (a local file) wins
// over URL.
type ResumeConfig struct {
	URL      string `yaml:"url"`
	Path     string `yaml:"path"`
	Filename string `yaml:"filename"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type SiteConfig struct {
	Title     string `yaml:"title"`
	StaticDir string `yaml:"static_dir"`
	ImagesDir string `yaml:"images_dir"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8080", Mode: "debug"},
		Database: DatabaseConfig{Path: "data/portfolio.db"},
		Auth:     AuthConfig{SessionTTL: 24 * time.Hour},
		Resume:   ResumeConfig{Filename: "Resume.pdf"},
		Logging:  LoggingConfig{Level: "info"},
		Site:     SiteConfig{Title: "Portfolio", StaticDir: "./static", ImagesDir: "./images"},
	}
}

// Load reads the file at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML data on top of the defaults, applies environment
// overrides and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Auth.SessionTTLRaw != "" {
		ttl, err := time.ParseDuration(cfg.Auth.SessionTTLRaw)
		if err != nil {
			return nil, fmt.Errorf("parsing session_ttl %q: %w", cfg.Auth.SessionTTLRaw, err)
		}
		cfg.Auth.SessionTTL = ttl
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv applies environment overrides that do not go through the file.
func (c *Config) ApplyEnv() error {
	port := os.Getenv("PORT")
	if port == "" {
		return nil
	}
	host, _, err := net.SplitHostPort(c.Server.Addr)
	if err != nil {
		host = ""
	}
	c.Server.Addr = net.JoinHostPort(host, port)
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode %q must be debug, release or test", c.Server.Mode)
	}
	if c.Database.Path == "" {
		return errors.New("database.path is required")
	}
	if c.Auth.SessionTTL <= 0 {
		return errors.New("auth.session_ttl must be positive")
	}

	seen := map[string]bool{}
	for i, u := range c.Auth.Users {
		if u.Username == "" {
			return fmt.Errorf("auth.users[%d].username is required", i)
		}
		if u.PasswordHash == "" {
			return fmt.Errorf("auth.users[%d].password_hash is required", i)
		}
		if seen[u.Username] {
			return fmt.Errorf("auth.users: duplicate username %q", u.Username)
		}
		seen[u.Username] = true
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be debug, info, warn or error", c.Logging.Level)
	}
	return nil
}
