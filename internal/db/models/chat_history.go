package models

// ChatHistoryEntry is an append-only record of one chat exchange.
type ChatHistoryEntry struct {
	ID          string `gorm:"primaryKey" json:"-"` // UUID
	UserID      string `gorm:"index" json:"-"`
	UserMessage string `json:"userMessage"`
	AIResponse  string `json:"aiResponse"`
	Timestamp   int64  `gorm:"index" json:"timestamp"` // milliseconds
}
