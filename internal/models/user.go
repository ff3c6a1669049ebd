package models

import "time"

// User is the internal identity record. SubjectID is the stable external
// subject identifier handed out by the credential provider; the unique
// index on it is what keeps the find-or-create upsert race-free.
// CompanyID is set at most once, when the user registers a company.
type User struct {
	ID        string  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	SubjectID string  `gorm:"column:subject_id;type:text;uniqueIndex" json:"-"`
	Email     string  `gorm:"column:email;type:text" json:"email"`
	Password  string  `gorm:"column:password;type:text" json:"-"`
	FirstName string  `gorm:"column:first_name;type:text" json:"first_name"`
	LastName  string  `gorm:"column:last_name;type:text" json:"last_name"`
	MobileNo  string  `gorm:"column:mobile_no;type:text" json:"mobile_no,omitempty"`
	CompanyID *string `gorm:"column:company_id;type:uuid" json:"company_id,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (User) TableName() string { return "users" }
