package models

import "time"

// Application is owned by the applicant-facing side of the product; this
// service only ever counts rows against job postings.
type Application struct {
	ID             string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	JobPostingID   string    `gorm:"column:job_posting_id;type:uuid;index" json:"job_posting_id"`
	ApplicantName  string    `gorm:"column:applicant_name;type:text" json:"applicant_name"`
	ApplicantEmail string    `gorm:"column:applicant_email;type:text" json:"applicant_email"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (Application) TableName() string { return "applications" }
