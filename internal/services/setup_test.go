package services

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/hirestack/hirestack/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

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

func createUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	u := &models.User{
		ID:        uuid.NewString(),
		SubjectID: uuid.NewString(),
		Email:     uuid.NewString() + "@acme.test",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// fakeUploader records the last upload and returns a deterministic URL.
type fakeUploader struct {
	lastObject      string
	lastContentType string
	err             error
}

func (f *fakeUploader) Upload(_ context.Context, objectName, contentType string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastObject = objectName
	f.lastContentType = contentType
	_, _ = io.Copy(io.Discard, r)
	return "https://cdn.test/" + objectName, nil
}
