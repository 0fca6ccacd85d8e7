// Package config holds the explicit configuration object every handler is
// constructed with. All values come from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is parsed once at startup and passed into handlers by value.
type Config struct {
	Addr        string   `env:"SITEAPI_ADDR" envDefault:"127.0.0.1:8080"`
	BaseURL     string   `env:"SITEAPI_BASE_URL" envDefault:"http://localhost:8080"`
	DBPath      string   `env:"SITEAPI_DB" envDefault:"siteapi.db"`
	RedisAddr   string   `env:"REDIS_ADDR"`
	CORSOrigins []string `env:"SITEAPI_CORS_ORIGINS" envSeparator:"," envDefault:"https://motaiot.com"`

	// SessionCookie names the cookie carrying "<sessionToken>|<userId>".
	SessionCookie string `env:"SITEAPI_SESSION_COOKIE" envDefault:"app_session_id"`

	// Optional YAML catalog of sign-in providers; empty means Google only.
	ProvidersFile string `env:"SITEAPI_PROVIDERS_FILE"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	// Endpoint URLs are configurable so tests can point the flow at a fake
	// provider.
	GoogleAuthURL     string `env:"GOOGLE_AUTH_URL" envDefault:"https://accounts.google.com/o/oauth2/v2/auth"`
	GoogleTokenURL    string `env:"GOOGLE_TOKEN_URL" envDefault:"https://oauth2.googleapis.com/token"`
	GoogleUserinfoURL string `env:"GOOGLE_USERINFO_URL" envDefault:"https://www.googleapis.com/oauth2/v3/userinfo"`

	RAGBaseURL   string `env:"AUTORAG_BASE_URL" envDefault:"https://api.cloudflare.com/client/v4"`
	RAGAccountID string `env:"AUTORAG_ACCOUNT_ID"`
	RAGIndex     string `env:"AUTORAG_INDEX" envDefault:"mota-steep-math-2e65"`
	RAGAPIToken  string `env:"AUTORAG_API_TOKEN"`

	ResendBaseURL string `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
	ResendAPIKey  string `env:"RESEND_API_KEY"`
	ContactFrom   string `env:"CONTACT_FROM" envDefault:"MOTA TECHLINK Contact <website@motaiot.com>"`
	ContactTo     string `env:"CONTACT_TO" envDefault:"contact@motaiot.com"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
