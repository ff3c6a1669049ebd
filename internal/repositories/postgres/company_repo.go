package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hirestack/hirestack/internal/models"
	"github.com/hirestack/hirestack/internal/utils"
	"gorm.io/gorm"
)

// Columns a company asset upload may touch.
const (
	CompanyLogoColumn   = "company_logo_url"
	CompanyBannerColumn = "company_banner_url"
)

// CompanyListFilter is the public-listing filter: case-insensitive
// substring search over name/about/industry, exact industry match, and
// page/limit pagination.
type CompanyListFilter struct {
	Search       string
	IndustryType string
	Page         int
	Limit        int
}

type CompanyRepository interface {
	GetByOwner(ctx context.Context, ownerID string) (*models.Company, error)
	ExistsByOwner(ctx context.Context, ownerID string) (bool, error)
	// CreateWithOwnerLink inserts the company and sets the owning
	// user's company_id in a single transaction; neither side may
	// commit without the other.
	CreateWithOwnerLink(ctx context.Context, c *models.Company) error
	UpdateByOwner(ctx context.Context, ownerID string, changes map[string]any) (*models.Company, error)
	SetAssetURL(ctx context.Context, ownerID, column, url string) error
	List(ctx context.Context, f CompanyListFilter) ([]models.Company, int64, error)
}

type companyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) GetByOwner(ctx context.Context, ownerID string) (*models.Company, error) {
	var c models.Company
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *companyRepo) ExistsByOwner(ctx context.Context, ownerID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Company{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count > 0, err
}

func (r *companyRepo) CreateWithOwnerLink(ctx context.Context, c *models.Company) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		res := tx.Model(&models.User{}).
			Where("id = ?", c.OwnerID).
			Update("company_id", c.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("owner %s not found while linking company", c.OwnerID)
		}
		return nil
	})
}

func (r *companyRepo) UpdateByOwner(ctx context.Context, ownerID string, changes map[string]any) (*models.Company, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Company{}).
		Where("owner_id = ?", ownerID).
		Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.ErrNotFound
	}
	return r.GetByOwner(ctx, ownerID)
}

func (r *companyRepo) SetAssetURL(ctx context.Context, ownerID, column, url string) error {
	if column != CompanyLogoColumn && column != CompanyBannerColumn {
		return fmt.Errorf("unexpected asset column %q", column)
	}
	res := r.db.WithContext(ctx).
		Model(&models.Company{}).
		Where("owner_id = ?", ownerID).
		Update(column, url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *companyRepo) List(ctx context.Context, f CompanyListFilter) ([]models.Company, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Company{})

	if f.Search != "" {
		// LOWER(... LIKE ...) rather than ILIKE so the sqlite test
		// double behaves the same as Postgres.
		pattern := "%" + f.Search + "%"
		q = q.Where(
			"LOWER(company_name) LIKE LOWER(?) OR LOWER(about_company) LIKE LOWER(?) OR LOWER(industry_type) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	if f.IndustryType != "" {
		q = q.Where("industry_type = ?", f.IndustryType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Company
	err := q.
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
