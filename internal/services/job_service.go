package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hirestack/hirestack/internal/models"
	pgrepo "github.com/hirestack/hirestack/internal/repositories/postgres"
	"github.com/hirestack/hirestack/internal/utils"
)

type CreateJobInput struct {
	JobTitle        string `json:"job_title" binding:"required"`
	JobType         string `json:"job_type" binding:"required"`
	ExperienceLevel string `json:"experience_level" binding:"required"`
	WorkMode        string `json:"work_mode" binding:"required"`
	Location        string `json:"location"`

	SalaryMin OptionalInt `json:"salary_min"`
	SalaryMax OptionalInt `json:"salary_max"`

	JobDescription string       `json:"job_description"`
	RequiredSkills SkillList    `json:"required_skills"`
	Openings       OptionalInt  `json:"openings"`
	Deadline       OptionalDate `json:"deadline"`
}

type UpdateJobInput struct {
	JobTitle        *string `json:"job_title"`
	JobType         *string `json:"job_type"`
	ExperienceLevel *string `json:"experience_level"`
	WorkMode        *string `json:"work_mode"`
	Location        *string `json:"location"`

	SalaryMin OptionalInt `json:"salary_min"`
	SalaryMax OptionalInt `json:"salary_max"`

	JobDescription *string      `json:"job_description"`
	RequiredSkills *SkillList   `json:"required_skills"`
	Openings       OptionalInt  `json:"openings"`
	Deadline       OptionalDate `json:"deadline"`
	Status         *string      `json:"status"`
}

type JobService interface {
	// Create requires the actor's user to carry a linked company id;
	// an authenticated user without one is rejected as forbidden, not
	// as not-found.
	Create(ctx context.Context, companyID string, in CreateJobInput) (*models.JobPosting, error)
	ListMine(ctx context.Context, companyID string) ([]models.JobWithApplications, error)
	Get(ctx context.Context, companyID, jobID string) (*models.JobPosting, error)
	Update(ctx context.Context, companyID, jobID string, in UpdateJobInput) (*models.JobPosting, error)
	Delete(ctx context.Context, companyID, jobID string) error
	Stats(ctx context.Context, companyID string) (*models.JobStats, error)
}

type jobService struct {
	jobs pgrepo.JobRepository
}

func NewJobService(jobs pgrepo.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

func skillsJSON(skills SkillList) ([]byte, error) {
	if skills == nil {
		skills = SkillList{}
	}
	return json.Marshal(skills)
}

func (s *jobService) Create(ctx context.Context, companyID string, in CreateJobInput) (*models.JobPosting, error) {
	const op = "JobService.Create"

	if companyID == "" {
		return nil, utils.E(utils.CodeForbidden, op, "complete company setup before posting jobs", nil)
	}

	if in.SalaryMin.Set && in.SalaryMin.Value < 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "minimum salary must be a non-negative number", nil)
	}
	if in.SalaryMax.Set && in.SalaryMax.Value < 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "maximum salary must be a non-negative number", nil)
	}

	openings := 1
	if in.Openings.Set {
		if in.Openings.Value < 1 {
			return nil, utils.E(utils.CodeInvalidArgument, op, "openings must be at least 1", nil)
		}
		openings = in.Openings.Value
	}

	skills, err := skillsJSON(in.RequiredSkills)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to encode skills", err)
	}

	j := &models.JobPosting{
		ID:              uuid.NewString(),
		CompanyID:       companyID,
		JobTitle:        in.JobTitle,
		JobType:         in.JobType,
		ExperienceLevel: in.ExperienceLevel,
		WorkMode:        in.WorkMode,
		Location:        in.Location,
		JobDescription:  utils.SanitizeText(in.JobDescription),
		RequiredSkills:  skills,
		Openings:        openings,
		Status:          models.JobStatusActive,
	}
	if in.SalaryMin.Set {
		v := in.SalaryMin.Value
		j.SalaryMin = &v
	}
	if in.SalaryMax.Set {
		v := in.SalaryMax.Value
		j.SalaryMax = &v
	}
	if in.Deadline.Set {
		t := in.Deadline.Time
		j.Deadline = &t
	}

	if err := s.jobs.Create(ctx, j); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create job", err)
	}
	return j, nil
}

func (s *jobService) ListMine(ctx context.Context, companyID string) ([]models.JobWithApplications, error) {
	const op = "JobService.ListMine"

	// No linked company is a legitimate pre-setup state, not an error.
	if companyID == "" {
		return []models.JobWithApplications{}, nil
	}
	rows, err := s.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	return rows, nil
}

func (s *jobService) Get(ctx context.Context, companyID, jobID string) (*models.JobPosting, error) {
	const op = "JobService.Get"

	if companyID == "" {
		return nil, utils.E(utils.CodeNotFound, op, "job not found", nil)
	}
	j, err := s.jobs.GetByID(ctx, companyID, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}
	return j, nil
}

func (s *jobService) Update(ctx context.Context, companyID, jobID string, in UpdateJobInput) (*models.JobPosting, error) {
	const op = "JobService.Update"

	if companyID == "" {
		return nil, utils.E(utils.CodeNotFound, op, "job not found", nil)
	}

	changes := map[string]any{}

	for _, f := range []struct {
		column string
		value  *string
	}{
		{"job_title", in.JobTitle},
		{"job_type", in.JobType},
		{"experience_level", in.ExperienceLevel},
		{"work_mode", in.WorkMode},
		{"location", in.Location},
	} {
		if f.value == nil {
			continue
		}
		if strings.TrimSpace(*f.value) == "" {
			return nil, utils.E(utils.CodeInvalidArgument, op, f.column+" must not be empty", nil)
		}
		changes[f.column] = *f.value
	}

	if in.SalaryMin.Set {
		if in.SalaryMin.Value < 0 {
			return nil, utils.E(utils.CodeInvalidArgument, op, "minimum salary must be a non-negative number", nil)
		}
		changes["salary_min"] = in.SalaryMin.Value
	}
	if in.SalaryMax.Set {
		if in.SalaryMax.Value < 0 {
			return nil, utils.E(utils.CodeInvalidArgument, op, "maximum salary must be a non-negative number", nil)
		}
		changes["salary_max"] = in.SalaryMax.Value
	}
	if in.Openings.Set {
		if in.Openings.Value < 1 {
			return nil, utils.E(utils.CodeInvalidArgument, op, "openings must be at least 1", nil)
		}
		changes["openings"] = in.Openings.Value
	}
	if in.Deadline.Set {
		changes["deadline"] = in.Deadline.Time
	}
	if in.JobDescription != nil {
		changes["job_description"] = utils.SanitizeText(*in.JobDescription)
	}
	if in.RequiredSkills != nil {
		skills, err := skillsJSON(*in.RequiredSkills)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to encode skills", err)
		}
		changes["required_skills"] = skills
	}
	if in.Status != nil {
		if !models.ValidJobStatus(models.JobStatus(*in.Status)) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "status must be one of Active, Draft, Closed", nil)
		}
		changes["status"] = *in.Status
	}

	if len(changes) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "no valid fields to update", nil)
	}

	j, err := s.jobs.Update(ctx, companyID, jobID, changes)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update job", err)
	}
	return j, nil
}

func (s *jobService) Delete(ctx context.Context, companyID, jobID string) error {
	const op = "JobService.Delete"

	if companyID == "" {
		return utils.E(utils.CodeNotFound, op, "job not found", nil)
	}
	if err := s.jobs.Delete(ctx, companyID, jobID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete job", err)
	}
	return nil
}

func (s *jobService) Stats(ctx context.Context, companyID string) (*models.JobStats, error) {
	const op = "JobService.Stats"

	if companyID == "" {
		return &models.JobStats{}, nil
	}
	stats, err := s.jobs.Stats(ctx, companyID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to compute job stats", err)
	}
	return stats, nil
}
