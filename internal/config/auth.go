package config

import (
	"fmt"
	"time"
)

// AuthConfig holds JWT authentication configuration.
type AuthConfig struct {
	// Secret is the HMAC signing key for access tokens.
	Secret string
	// TokenTTL is how long an issued token stays valid.
	TokenTTL time.Duration
	// CookieName is the name of the cookie carrying the token.
	CookieName string
	// CookieSecure marks the auth cookie as HTTPS-only.
	CookieSecure bool
}

// LoadAuthConfigFromEnv loads authentication configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		Secret:       GetEnv("JWT_SECRET", ""),
		TokenTTL:     GetEnvDuration("JWT_TOKEN_TTL", 24*time.Hour),
		CookieName:   GetEnv("AUTH_COOKIE_NAME", "token"),
		CookieSecure: GetEnvBool("AUTH_COOKIE_SECURE", false),
	}
}

// Validate validates authentication configuration.
func (c AuthConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TokenTTL must be greater than 0")
	}
	if c.CookieName == "" {
		return fmt.Errorf("CookieName must not be empty")
	}
	return nil
}
