package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/motaiot/siteapi/internal/db/models"
	"gorm.io/gorm"
)

// SessionTTL is how long a login session stays valid.
const SessionTTL = 30 * 24 * time.Hour

// CreateSession mints a new session row for the user. The token doubles as
// the bearer credential carried by the cookie.
func CreateSession(db *gorm.DB, userID string) (*models.Session, error) {
	session := models.Session{
		ID:           uuid.New().String(),
		UserID:       userID,
		SessionToken: uuid.New().String(),
		Expires:      time.Now().Add(SessionTTL),
	}
	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// LookupSession returns the session for (token, userID), or nil when the row
// is absent or past its expiry. Expired rows are deleted on sight.
func LookupSession(db *gorm.DB, token, userID string) (*models.Session, error) {
	var session models.Session
	err := db.Where("session_token = ? AND user_id = ?", token, userID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !session.Expires.After(time.Now()) {
		db.Delete(&models.Session{}, "id = ?", session.ID)
		return nil, nil
	}
	return &session, nil
}

// DeleteSession removes a session row by token.
func DeleteSession(db *gorm.DB, token string) error {
	return db.Delete(&models.Session{}, "session_token = ?", token).Error
}
