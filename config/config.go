package config

import (
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Auth   AuthConfig
	Sentry struct {
		DSN string
	}
}

// AuthConfig holds the admin credentials and the token signing secret.
// All of them are externally supplied; when any is empty, login fails
// closed and no cookie is ever issued.
type AuthConfig struct {
	Username       string
	Password       string
	TokenSecret    string
	CookieTTLHours int
	SecureCookie   bool
}

// CookieTTLHoursOrDefault returns the configured cookie lifetime,
// falling back to 24 hours.
func (a AuthConfig) CookieTTLHoursOrDefault() int {
	if a.CookieTTLHours <= 0 {
		return 24
	}
	return a.CookieTTLHours
}
