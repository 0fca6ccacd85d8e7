package handlers

import (
	"log"
	"net/http"

	"github.com/motaiot/siteapi/internal/auth"
	"github.com/motaiot/siteapi/internal/config"
	"github.com/motaiot/siteapi/internal/db"
	"github.com/motaiot/siteapi/internal/db/models"
	"gorm.io/gorm"
)

// HistoryHandler returns the caller's recent chat exchanges, oldest first.
// Unlike the session query this endpoint gates access.
func HistoryHandler(cfg config.Config, database *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := auth.SessionUser(database, r, cfg.SessionCookie)
		if err != nil {
			log.Printf("history: session lookup failed: %v", err)
		}
		if user == nil {
			writeError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		entries, err := db.ListChatHistory(database, user.ID)
		if err != nil {
			log.Printf("history: list failed: %v", err)
			writeError(w, "Failed to fetch history", http.StatusInternalServerError)
			return
		}
		if entries == nil {
			entries = []models.ChatHistoryEntry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}
