package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hirestack/hirestack/internal/models"
	"github.com/hirestack/hirestack/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateBySubjectCreatesOnce(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	first, err := repo.FindOrCreateBySubject(ctx, "sub-1", "a@b.test", "+919876543210")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// Second sight of the same subject must resolve to the same row.
	second, err := repo.FindOrCreateBySubject(ctx, "sub-1", "a@b.test", "+919876543210")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("subject_id = ?", "sub-1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFindOrCreateBySubjectRefreshesClaims(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	u, err := repo.FindOrCreateBySubject(ctx, "sub-1", "old@b.test", "")
	require.NoError(t, err)

	refreshed, err := repo.FindOrCreateBySubject(ctx, "sub-1", "new@b.test", "+919876543210")
	require.NoError(t, err)
	assert.Equal(t, u.ID, refreshed.ID)
	assert.Equal(t, "new@b.test", refreshed.Email)
	assert.Equal(t, "+919876543210", refreshed.MobileNo)
}

func TestFindOrCreateBySubjectKeepsCompanyLink(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	u, err := repo.FindOrCreateBySubject(ctx, "sub-1", "a@b.test", "")
	require.NoError(t, err)

	companyID := uuid.NewString()
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", u.ID).Update("company_id", companyID).Error)

	again, err := repo.FindOrCreateBySubject(ctx, "sub-1", "a@b.test", "")
	require.NoError(t, err)
	require.NotNil(t, again.CompanyID)
	assert.Equal(t, companyID, *again.CompanyID)
}

func TestGetByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{
		ID:        uuid.NewString(),
		SubjectID: uuid.NewString(),
		Email:     "owner@acme.test",
		Password:  "hash",
	}))

	u, err := repo.GetByEmail(ctx, "owner@acme.test")
	require.NoError(t, err)
	assert.Equal(t, "owner@acme.test", u.Email)

	_, err = repo.GetByEmail(ctx, "missing@acme.test")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestEmailExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	taken, err := repo.EmailExists(ctx, "owner@acme.test")
	require.NoError(t, err)
	assert.False(t, taken)

	require.NoError(t, repo.Create(ctx, &models.User{
		ID:        uuid.NewString(),
		SubjectID: uuid.NewString(),
		Email:     "owner@acme.test",
	}))

	taken, err = repo.EmailExists(ctx, "owner@acme.test")
	require.NoError(t, err)
	assert.True(t, taken)
}
