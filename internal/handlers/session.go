package handlers

import (
	"log"
	"net/http"

	"github.com/motaiot/siteapi/internal/auth"
	"github.com/motaiot/siteapi/internal/config"
	"gorm.io/gorm"
)

// SessionHandler reports the logged-in user, or {"user": null} for anonymous
// visitors. It is a query, not a gate: it always answers 200.
func SessionHandler(cfg config.Config, database *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := auth.SessionUser(database, r, cfg.SessionCookie)
		if err != nil {
			log.Printf("session: lookup failed: %v", err)
			user = nil
		}
		if user == nil {
			writeJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
			return
		}

		// Keep an active session's cookie fresh.
		token, userID, _ := auth.ParseSessionCookie(r, cfg.SessionCookie)
		auth.SetSessionCookie(w, cfg.SessionCookie, token, userID)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"user": map[string]string{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
			},
		})
	}
}
