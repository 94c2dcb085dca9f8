package repository

import (
	"testing"

	"warbler/internal/database"
	"warbler/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema
// and foreign key enforcement, so cascade and constraint behavior is
// exercised the same way the Postgres schema enforces it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()
	u := &models.User{
		Username: username,
		Email:    email,
		Password: "HASHED_PASSWORD",
		ImageURL: models.DefaultImageURL,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createTestMessage(t *testing.T, db *gorm.DB, userID uint, text string) *models.Message {
	t.Helper()
	m := &models.Message{Text: text, UserID: userID}
	require.NoError(t, db.Create(m).Error)
	return m
}
