// Package auth holds the session cookie contract shared by the login
// callback and every handler that resolves the caller's session.
package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/motaiot/siteapi/internal/db"
	"github.com/motaiot/siteapi/internal/db/models"
	"gorm.io/gorm"
)

// CookieMaxAge mirrors the session TTL.
const CookieMaxAge = int(db.SessionTTL / time.Second)

// SetSessionCookie writes the session cookie, value "<sessionToken>|<userID>".
func SetSessionCookie(w http.ResponseWriter, name, sessionToken, userID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    sessionToken + "|" + userID,
		Path:     "/",
		MaxAge:   CookieMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ParseSessionCookie splits the session cookie into (sessionToken, userID).
func ParseSessionCookie(r *http.Request, name string) (sessionToken, userID string, ok bool) {
	cookie, err := r.Cookie(name)
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(cookie.Value, "|", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// SessionUser resolves the request's session cookie to a user. It returns
// nil with no error when the cookie is missing or malformed, the session is
// absent or expired, or the user row is gone.
func SessionUser(database *gorm.DB, r *http.Request, cookieName string) (*models.User, error) {
	token, userID, ok := ParseSessionCookie(r, cookieName)
	if !ok {
		return nil, nil
	}
	session, err := db.LookupSession(database, token, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	return db.GetUser(database, session.UserID)
}
