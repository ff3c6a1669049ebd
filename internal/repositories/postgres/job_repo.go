package postgres

import (
	"context"
	"errors"

	"github.com/hirestack/hirestack/internal/models"
	"github.com/hirestack/hirestack/internal/utils"
	"gorm.io/gorm"
)

// JobRepository scopes every read, update and delete by the owning
// company id. A job that exists under another company comes back as
// utils.ErrNotFound, indistinguishable from an absent id.
type JobRepository interface {
	Create(ctx context.Context, j *models.JobPosting) error
	GetByID(ctx context.Context, companyID, jobID string) (*models.JobPosting, error)
	ListByCompany(ctx context.Context, companyID string) ([]models.JobWithApplications, error)
	Update(ctx context.Context, companyID, jobID string, changes map[string]any) (*models.JobPosting, error)
	Delete(ctx context.Context, companyID, jobID string) error
	Stats(ctx context.Context, companyID string) (*models.JobStats, error)
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, j *models.JobPosting) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jobRepo) GetByID(ctx context.Context, companyID, jobID string) (*models.JobPosting, error) {
	var j models.JobPosting
	err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", jobID, companyID).
		Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) ListByCompany(ctx context.Context, companyID string) ([]models.JobWithApplications, error) {
	var rows []models.JobWithApplications
	err := r.db.WithContext(ctx).
		Model(&models.JobPosting{}).
		Select("job_postings.*, COUNT(DISTINCT applications.id) AS application_count").
		Joins("LEFT JOIN applications ON applications.job_posting_id = job_postings.id").
		Where("job_postings.company_id = ?", companyID).
		Group("job_postings.id").
		Order("job_postings.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *jobRepo) Update(ctx context.Context, companyID, jobID string, changes map[string]any) (*models.JobPosting, error) {
	res := r.db.WithContext(ctx).
		Model(&models.JobPosting{}).
		Where("id = ? AND company_id = ?", jobID, companyID).
		Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.ErrNotFound
	}
	return r.GetByID(ctx, companyID, jobID)
}

func (r *jobRepo) Delete(ctx context.Context, companyID, jobID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", jobID, companyID).
		Delete(&models.JobPosting{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Stats(ctx context.Context, companyID string) (*models.JobStats, error) {
	var stats models.JobStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_jobs,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS active_jobs,
			COALESCE(SUM(application_count), 0) AS total_applications
		FROM (
			SELECT j.id, j.status, COUNT(DISTINCT a.id) AS application_count
			FROM job_postings j
			LEFT JOIN applications a ON a.job_posting_id = j.id
			WHERE j.company_id = ?
			GROUP BY j.id, j.status
		) job_stats`,
		models.JobStatusActive, companyID,
	).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
