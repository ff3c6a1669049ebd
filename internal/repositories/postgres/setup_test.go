package postgres

import (
	"testing"

	"github.com/hirestack/hirestack/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB initializes an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.JobPosting{},
		&models.Application{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}
