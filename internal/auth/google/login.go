package google

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/motaiot/siteapi/internal/auth/state"
	"github.com/motaiot/siteapi/internal/config"
)

// HandleLogin starts the OAuth flow: mint a state token, persist it, and
// redirect the browser to the provider's consent page. If the state cannot
// be persisted the handler fails without redirecting.
func HandleLogin(cfg config.Config, states state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "provider") != Provider {
			http.Error(w, "Unknown provider", http.StatusNotFound)
			return
		}

		token := uuid.New().String()
		if err := states.Save(r.Context(), token, state.TTL); err != nil {
			log.Printf("login: saving state failed: %v", err)
			http.Error(w, fmt.Sprintf("Failed to persist login state: %v", err), http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, OAuthConfig(cfg).AuthCodeURL(token), http.StatusFound)
	}
}
