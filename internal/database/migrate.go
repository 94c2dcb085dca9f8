package database

import (
	"warbler/internal/models"

	"gorm.io/gorm"
)

// Models lists every persisted entity, leaves first, so AutoMigrate creates
// referenced tables before the tables that point at them.
func Models() []any {
	return []any{
		&models.User{},
		&models.Message{},
		&models.Follow{},
		&models.Like{},
	}
}

// Migrate creates or updates the schema for all registered models.
// Cascade rules live in the schema itself (foreign keys with ON DELETE
// CASCADE from the model constraint tags), not in application hooks.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
