package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when a username or password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// DefaultTTL is how long a sign-in lasts.
const DefaultTTL = 24 * time.Hour

// User is an account allowed to sign in.
type User struct {
	Username     string
	PasswordHash string // bcrypt
	Admin        bool
}

// Config holds the Manager settings.
type Config struct {
	// Secret signs session tokens. A random one is generated when empty,
	// which signs everybody out on restart.
	Secret string
	TTL    time.Duration
	Users  []User
}

// Manager signs users in and encodes sessions into cookie tokens.
type Manager struct {
	key   []byte
	salt  string
	ttl   time.Duration
	users map[string]User
	l     *zap.Logger
	now   func() time.Time
}

type claims struct {
	Admin    bool `json:"adm"`
	EditMode bool `json:"edit"`
	jwt.RegisteredClaims
}

// NewManager builds a Manager from cfg.
func NewManager(cfg Config, l *zap.Logger) (*Manager, error) {
	if l == nil {
		l = zap.NewNop()
	}
	l = l.Named("session")

	secret := cfg.Secret
	if secret == "" {
		generated, err := randomHex(32)
		if err != nil {
			return nil, fmt.Errorf("generating session secret: %w", err)
		}
		secret = generated
		l.Warn("no session secret configured, using a random one; sessions end on restart")
	}

	salt, err := randomHex(16)
	if err != nil {
		return nil, fmt.Errorf("generating hashing salt: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	users := make(map[string]User, len(cfg.Users))
	for _, u := range cfg.Users {
		if u.Username == "" || u.PasswordHash == "" {
			return nil, fmt.Errorf("user %q: username and password hash are required", u.Username)
		}
		users[u.Username] = u
	}

	return &Manager{
		key:   []byte(secret),
		salt:  salt,
		ttl:   ttl,
		users: users,
		l:     l,
		now:   time.Now,
	}, nil
}

// SignIn checks the credentials and returns a fresh signed-in session.
func (m *Manager) SignIn(username, password string) (Session, error) {
	u, ok := m.users[username]
	if !ok {
		return Anonymous(), ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return Anonymous(), ErrInvalidCredentials
	}

	return Session{
		ID:        uuid.NewString(),
		Username:  u.Username,
		SignedIn:  true,
		IsAdmin:   u.Admin,
		ExpiresAt: m.now().Add(m.ttl),
	}, nil
}

// Encode signs s into a token. Only signed-in sessions can be encoded.
func (m *Manager) Encode(s Session) (string, error) {
	if !s.SignedIn {
		return "", errors.New("cannot encode a signed-out session")
	}

	c := claims{
		Admin:    s.IsAdmin,
		EditMode: s.EditMode,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Subject:   s.Username,
			IssuedAt:  jwt.NewNumericDate(m.now()),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(m.key)
}

// Decode parses a token. Invalid, expired or tampered tokens, and tokens for
// users that no longer exist, yield the anonymous session.
func (m *Manager) Decode(tokenString string) Session {
	if tokenString == "" {
		return Anonymous()
	}

	var c claims
	_, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		m.l.Debug("discarding session token", zap.Error(err))
		return Anonymous()
	}

	u, ok := m.users[c.Subject]
	if !ok {
		return Anonymous()
	}

	return Session{
		ID:        c.ID,
		Username:  u.Username,
		SignedIn:  true,
		IsAdmin:   u.Admin && c.Admin,
		EditMode:  u.Admin && c.Admin && c.EditMode,
		ExpiresAt: c.ExpiresAt.Time,
	}
}

// TTL returns how long sign-ins last.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// HashIP hashes an address with a per-process salt so logs never hold raw IPs.
func (m *Manager) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + m.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// HashPassword returns a bcrypt hash suitable for the users config.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
