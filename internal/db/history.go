package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/motaiot/siteapi/internal/db/models"
	"gorm.io/gorm"
)

// HistoryLimit caps how many chat exchanges a listing returns.
const HistoryLimit = 20

// AppendChatHistory records one completed exchange.
func AppendChatHistory(db *gorm.DB, userID, userMessage, aiResponse string) error {
	entry := models.ChatHistoryEntry{
		ID:          uuid.New().String(),
		UserID:      userID,
		UserMessage: userMessage,
		AIResponse:  aiResponse,
		Timestamp:   time.Now().UnixMilli(),
	}
	return db.Create(&entry).Error
}

// ListChatHistory returns the caller's most recent exchanges, oldest first.
func ListChatHistory(db *gorm.DB, userID string) ([]models.ChatHistoryEntry, error) {
	var entries []models.ChatHistoryEntry
	// Query newest-first to apply the cap, then serve oldest-first.
	err := db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(HistoryLimit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}
