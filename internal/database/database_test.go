package database

import (
	"testing"

	"warbler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func TestMigrate_CreatesSchema(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"users", "messages", "follows", "likes"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestMigrate_UserUniqueness(t *testing.T) {
	db := openTestDB(t)

	u := models.User{Username: "testuser", Email: "test@test.com", Password: "HASHED_PASSWORD"}
	require.NoError(t, db.Create(&u).Error)

	dupUsername := models.User{Username: "testuser", Email: "test2@test.com", Password: "HASHED_PASSWORD"}
	assert.Error(t, db.Create(&dupUsername).Error)

	dupEmail := models.User{Username: "otheruser", Email: "test@test.com", Password: "HASHED_PASSWORD"}
	assert.Error(t, db.Create(&dupEmail).Error)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMigrate_DeleteUserCascadesMessages(t *testing.T) {
	db := openTestDB(t)

	u := models.User{Username: "testuser", Email: "test@test.com", Password: "HASHED_PASSWORD"}
	require.NoError(t, db.Create(&u).Error)

	m := models.Message{Text: "Hello", UserID: u.ID}
	require.NoError(t, db.Create(&m).Error)

	require.NoError(t, db.Delete(&models.User{}, u.ID).Error)

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Where("user_id = ?", u.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestMigrate_MessageRequiresExistingUser(t *testing.T) {
	db := openTestDB(t)

	m := models.Message{Text: "orphan", UserID: 999}
	assert.Error(t, db.Create(&m).Error)
}
