// Package auth provides JWT issuance and verification for the HTTP boundary.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BaltasisKos/Task-Manager-Server/internal/config"
)

// ErrInvalidToken indicates the token is missing, malformed, expired or has a bad signature.
var ErrInvalidToken = errors.New("invalid token")

// Actor is the authenticated caller resolved from a verified token.
// Downstream code treats it as opaque trusted input.
type Actor struct {
	UserID  string
	IsAdmin bool
}

// Claims is the JWT payload carried in the auth cookie.
type Claims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// Manager issues and verifies signed tokens.
type Manager struct {
	cfg config.AuthConfig
}

// NewManager creates a token manager from auth configuration.
func NewManager(cfg config.AuthConfig) *Manager {
	return &Manager{cfg: cfg}
}

// CookieName returns the name of the cookie carrying the token.
func (m *Manager) CookieName() string {
	return m.cfg.CookieName
}

// CookieSecure reports whether the auth cookie is HTTPS-only.
func (m *Manager) CookieSecure() bool {
	return m.cfg.CookieSecure
}

// TokenTTL returns the lifetime of issued tokens.
func (m *Manager) TokenTTL() time.Duration {
	return m.cfg.TokenTTL
}

// Issue creates a signed token for the given user.
func (m *Manager) Issue(userID string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a signed token and returns the actor it carries.
func (m *Manager) Verify(tokenString string) (*Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Actor{
		UserID:  claims.Subject,
		IsAdmin: claims.IsAdmin,
	}, nil
}
