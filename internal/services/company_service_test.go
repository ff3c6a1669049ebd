package services

import (
	"context"
	"strings"
	"testing"

	"github.com/hirestack/hirestack/internal/models"
	pgrepo "github.com/hirestack/hirestack/internal/repositories/postgres"
	"github.com/hirestack/hirestack/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCompanyService(db *gorm.DB) CompanyService {
	return NewCompanyService(pgrepo.NewCompanyRepo(db), &fakeUploader{}, "IN")
}

func strPtr(s string) *string { return &s }

func TestRegisterCompanyLinksOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := newCompanyService(db)
	ctx := context.Background()
	owner := createUser(t, db)

	c, err := svc.Register(ctx, owner.ID, "", RegisterCompanyInput{
		CompanyName:      "Acme",
		IndustryType:     "Tech",
		OrganizationType: "Private",
		TeamSize:         "11-50",
		AboutCompany:     "<p>We make <b>anvils</b></p>",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, c.OwnerID)
	assert.Equal(t, "Private", c.OrganizationsType)
	assert.Equal(t, "We make anvils", c.AboutCompany)

	var u models.User
	require.NoError(t, db.Take(&u, "id = ?", owner.ID).Error)
	require.NotNil(t, u.CompanyID)
	assert.Equal(t, c.ID, *u.CompanyID)

	got, err := svc.GetProfile(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestRegisterCompanyTwiceRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newCompanyService(db)
	ctx := context.Background()
	owner := createUser(t, db)

	first, err := svc.Register(ctx, owner.ID, "", RegisterCompanyInput{
		CompanyName: "Acme", IndustryType: "Tech", OrganizationType: "Private", TeamSize: "11-50",
	})
	require.NoError(t, err)

	// With the refreshed link.
	_, err = svc.Register(ctx, owner.ID, first.ID, RegisterCompanyInput{
		CompanyName: "Acme Again", IndustryType: "Tech", OrganizationType: "Private", TeamSize: "11-50",
	})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	// Even with a stale actor whose link claim is missing.
	_, err = svc.Register(ctx, owner.ID, "", RegisterCompanyInput{
		CompanyName: "Acme Again", IndustryType: "Tech", OrganizationType: "Private", TeamSize: "11-50",
	})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	// Original row unchanged.
	got, err := svc.GetProfile(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.CompanyName)
}

func TestGetProfileNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newCompanyService(db)
	owner := createUser(t, db)

	_, err := svc.GetProfile(context.Background(), owner.ID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestUpdateProfilePartial(t *testing.T) {
	db := setupTestDB(t)
	svc := newCompanyService(db)
	ctx := context.Background()
	owner := createUser(t, db)

	_, err := svc.Register(ctx, owner.ID, "", RegisterCompanyInput{
		CompanyName: "Acme", IndustryType: "Tech", OrganizationType: "Private", TeamSize: "11-50",
		AboutCompany: "We make anvils",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, owner.ID, UpdateCompanyInput{
		OrganizationType: strPtr("Public"),
		CompanyVision:    strPtr("<h1>Anvils</h1> everywhere"),
	})
	require.NoError(t, err)

	// The singular API field lands in the pluralized storage column.
	assert.Equal(t, "Public", updated.OrganizationsType)
	assert.Equal(t, "Anvils everywhere", updated.CompanyVision)

	// Untouched fields are byte-for-byte unchanged.
	assert.Equal(t, "Acme", updated.CompanyName)
	assert.Equal(t, "Tech", updated.IndustryType)
	assert.Equal(t, "11-50", updated.TeamSize)
	assert.Equal(t, "We make anvils", updated.AboutCompany)
}

func TestUpdateProfileNoFields(t *testing.T) {
	db := setupTestDB(t)
	svc := newCompanyService(db)
	ctx := context.Background()
	owner := createUser(t, db)

	_, err := svc.Register(ctx, owner.ID, "", RegisterCompanyInput{
		CompanyName: "Acme", IndustryType: "Tech", OrganizationType: "Private", TeamSize: "11-50",
	})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, owner.ID, UpdateCompanyInput{})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Contains(t, err.Error(), "no valid fields")
}

func TestUpdateProfileBadPhone(t *testing.T) {
	db := setupTestDB(t)
	svc := newCompanyService(db)
	ctx := context.Background()
	owner := createUser(t, db)

	_, err := svc.Register(ctx, owner.ID, "", RegisterCompanyInput{
		CompanyName: "Acme", IndustryType: "Tech", OrganizationType: "Private", TeamSize: "11-50",
	})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, owner.ID, UpdateCompanyInput{
		HeadquarterPhoneNo: strPtr("not a phone"),
	})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestUpdateProfileWithoutCompany(t *testing.T) {
	db := setupTestDB(t)
	svc := newCompanyService(db)
	owner := createUser(t, db)

	_, err := svc.UpdateProfile(context.Background(), owner.ID, UpdateCompanyInput{
		TeamSize: strPtr("1-10"),
	})
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestUploadAsset(t *testing.T) {
	db := setupTestDB(t)
	up := &fakeUploader{}
	svc := NewCompanyService(pgrepo.NewCompanyRepo(db), up, "IN")
	ctx := context.Background()
	owner := createUser(t, db)

	_, err := svc.Register(ctx, owner.ID, "", RegisterCompanyInput{
		CompanyName: "Acme", IndustryType: "Tech", OrganizationType: "Private", TeamSize: "11-50",
	})
	require.NoError(t, err)

	url, err := svc.UploadAsset(ctx, owner.ID, AssetLogo, "logo.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(up.lastObject, "company/logo/"))
	assert.Equal(t, "image/png", up.lastContentType)

	got, err := svc.GetProfile(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, url, got.CompanyLogoURL)
}

func TestUploadAssetWithoutCompany(t *testing.T) {
	db := setupTestDB(t)
	svc := newCompanyService(db)
	owner := createUser(t, db)

	_, err := svc.UploadAsset(context.Background(), owner.ID, AssetBanner, "b.png", "image/png", strings.NewReader("x"))
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestListDefaultsAndTotals(t *testing.T) {
	db := setupTestDB(t)
	svc := newCompanyService(db)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		owner := createUser(t, db)
		_, err := svc.Register(ctx, owner.ID, "", RegisterCompanyInput{
			CompanyName: "Co", IndustryType: "Tech", OrganizationType: "Private", TeamSize: "1-10",
		})
		require.NoError(t, err)
	}

	out, err := svc.List(ctx, ListCompaniesInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 10, out.Count)
	assert.EqualValues(t, 12, out.Total)
	assert.Equal(t, 2, out.TotalPages)
}
