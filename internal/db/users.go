package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/motaiot/siteapi/internal/db/models"
	"gorm.io/gorm"
)

// UpsertUserByEmail refreshes name/avatar for an existing user, or creates a
// new one with a fresh UUID and EmailVerified set to now.
func UpsertUserByEmail(db *gorm.DB, email, name, avatar string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		user.Name = name
		if avatar != "" {
			user.Avatar = avatar
		}
		if err := db.Save(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	user = models.User{
		ID:            uuid.New().String(),
		Name:          name,
		Email:         email,
		EmailVerified: &now,
		Avatar:        avatar,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser loads a user by id. Returns nil when absent.
func GetUser(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// LinkAccount records the (provider, subject) identity for a user. The link
// is created once; repeat logins leave the existing row untouched.
func LinkAccount(db *gorm.DB, userID, provider, subject, accessToken string, expiresAt *time.Time, idToken string) error {
	var existing models.Account
	err := db.Where("provider = ? AND provider_account_id = ?", provider, subject).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	account := models.Account{
		ID:                uuid.New().String(),
		UserID:            userID,
		Type:              "oauth",
		Provider:          provider,
		ProviderAccountID: subject,
		AccessToken:       accessToken,
		ExpiresAt:         expiresAt,
		IDToken:           idToken,
	}
	return db.Create(&account).Error
}
