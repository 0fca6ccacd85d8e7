package models

import "time"

// Session is the bearer credential behind the session cookie. A session whose
// Expires has passed is treated as absent regardless of row presence.
type Session struct {
	ID           string `gorm:"primaryKey"` // UUID
	UserID       string `gorm:"index"`
	SessionToken string `gorm:"uniqueIndex"`
	Expires      time.Time
	CreatedAt    time.Time
}
