package models

import "time"

// User is a site visitor identified by email. Several provider accounts may
// link to one user.
type User struct {
	ID            string `gorm:"primaryKey"` // UUID
	Name          string
	Email         string `gorm:"uniqueIndex"`
	EmailVerified *time.Time
	Avatar        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
