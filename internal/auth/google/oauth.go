package google

import (
	"github.com/motaiot/siteapi/internal/config"
	"golang.org/x/oauth2"
)

// Provider is the provider name recorded on account links and accepted in
// the login/callback routes.
const Provider = "google"

// Scopes requested during login. Email is the minimum claim the callback
// requires.
var Scopes = []string{"openid", "email", "profile"}

// OAuthConfig builds the oauth2 config for the web login flow. Endpoint URLs
// come from configuration so tests can point the flow at a fake provider;
// the redirect URI must exactly match the one registered with Google.
func OAuthConfig(cfg config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.BaseURL + "/callback/google",
		Scopes:       Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.GoogleAuthURL,
			TokenURL: cfg.GoogleTokenURL,
		},
	}
}
