package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hirestack/hirestack/internal/models"
	"github.com/hirestack/hirestack/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// FindOrCreateBySubject resolves a verified external subject to the
	// internal user row, creating it on first sight and refreshing
	// email/phone on every subsequent one. Safe under concurrent
	// first-time requests: the unique index on subject_id plus the
	// conflict clause guarantee at most one row per subject.
	FindOrCreateBySubject(ctx context.Context, subjectID, email, phone string) (*models.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepo) FindOrCreateBySubject(ctx context.Context, subjectID, email, phone string) (*models.User, error) {
	row := &models.User{
		ID:        uuid.NewString(),
		SubjectID: subjectID,
		Email:     email,
		MobileNo:  phone,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subject_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "mobile_no", "updated_at"}),
		}).
		Create(row).Error
	if err != nil {
		return nil, err
	}

	// Re-read: on conflict the existing row kept its id and company link.
	var u models.User
	err = r.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Take(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
