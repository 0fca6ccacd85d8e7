package models

import "time"

// Account links one provider identity (provider + subject id) to a user.
// The link is created on first login and never overwritten after that.
type Account struct {
	ID                string `gorm:"primaryKey"` // UUID
	UserID            string `gorm:"index"`
	Type              string // e.g. "oauth"
	Provider          string `gorm:"uniqueIndex:idx_provider_subject"` // e.g. "google"
	ProviderAccountID string `gorm:"uniqueIndex:idx_provider_subject"` // provider's subject claim
	AccessToken       string
	ExpiresAt         *time.Time
	IDToken           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
