package handlers

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/motaiot/siteapi/internal/config"
	"github.com/motaiot/siteapi/internal/db"
	"github.com/motaiot/siteapi/internal/db/models"
	"gorm.io/gorm"
)

func testConfig() config.Config {
	return config.Config{SessionCookie: "app_session_id"}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := db.InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	return database
}

// loginUser seeds a user with a live session and returns both.
func loginUser(t *testing.T, database *gorm.DB, email string) (*models.User, *models.Session) {
	t.Helper()
	user, err := db.UpsertUserByEmail(database, email, "Test User", "")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	session, err := db.CreateSession(database, user.ID)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return user, session
}

func sessionCookie(session *models.Session) *http.Cookie {
	return &http.Cookie{
		Name:  "app_session_id",
		Value: session.SessionToken + "|" + session.UserID,
	}
}
