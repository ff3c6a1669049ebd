package models

import (
	"time"

	"gorm.io/datatypes"
)

type JobStatus string

const (
	JobStatusActive JobStatus = "Active"
	JobStatusDraft  JobStatus = "Draft"
	JobStatusClosed JobStatus = "Closed"
)

func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusActive, JobStatusDraft, JobStatusClosed:
		return true
	}
	return false
}

// JobPosting belongs to exactly one company. RequiredSkills is a JSON
// array of strings so it round-trips to the caller as a list without a
// conversion step. Salary bounds are nullable and individually
// non-negative; min <= max is deliberately not enforced.
type JobPosting struct {
	ID        string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CompanyID string `gorm:"column:company_id;type:uuid;index" json:"company_id"`

	JobTitle        string `gorm:"column:job_title;type:text" json:"job_title"`
	JobType         string `gorm:"column:job_type;type:text" json:"job_type"`
	ExperienceLevel string `gorm:"column:experience_level;type:text" json:"experience_level"`
	WorkMode        string `gorm:"column:work_mode;type:text" json:"work_mode"`
	Location        string `gorm:"column:location;type:text" json:"location"`

	SalaryMin *int `gorm:"column:salary_min" json:"salary_min"`
	SalaryMax *int `gorm:"column:salary_max" json:"salary_max"`

	JobDescription string         `gorm:"column:job_description;type:text" json:"job_description"`
	RequiredSkills datatypes.JSON `gorm:"column:required_skills" json:"required_skills"`

	Openings int        `gorm:"column:openings;default:1" json:"openings"`
	Deadline *time.Time `gorm:"column:deadline;type:date" json:"deadline,omitempty"`
	Status   JobStatus  `gorm:"column:status;type:text" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (JobPosting) TableName() string { return "job_postings" }

// JobWithApplications is a JobPosting annotated with its application
// count for the owner-facing listing.
type JobWithApplications struct {
	JobPosting       `gorm:"embedded"`
	ApplicationCount int `gorm:"column:application_count" json:"application_count"`
}

// JobStats is the aggregate view for a company's dashboard. A user with
// no linked company gets the zero value, never an error.
type JobStats struct {
	TotalJobs         int `json:"total_jobs"`
	ActiveJobs        int `json:"active_jobs"`
	TotalApplications int `json:"total_applications"`
}
