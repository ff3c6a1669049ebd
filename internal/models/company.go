package models

import "time"

// Company is the one-per-owner employer profile. The storage column for
// the organization type is pluralized ("organizations_type") while the
// API field is singular; the update field table in the company service
// owns that mapping. AboutCompany and CompanyVision are stored with all
// markup stripped.
type Company struct {
	ID      string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	OwnerID string `gorm:"column:owner_id;type:uuid;uniqueIndex" json:"owner_id"`

	CompanyName       string `gorm:"column:company_name;type:text" json:"company_name"`
	IndustryType      string `gorm:"column:industry_type;type:text" json:"industry_type"`
	OrganizationsType string `gorm:"column:organizations_type;type:text" json:"organizations_type"`
	TeamSize          string `gorm:"column:team_size;type:text" json:"team_size"`

	AboutCompany  string `gorm:"column:about_company;type:text" json:"about_company"`
	CompanyVision string `gorm:"column:company_vision;type:text" json:"company_vision"`

	CompanyWebsite string `gorm:"column:company_website;type:text" json:"company_website"`
	MapLocationURL string `gorm:"column:map_location_url;type:text" json:"map_location_url"`
	CareersLink    string `gorm:"column:careers_link;type:text" json:"careers_link"`

	CompanyLogoURL   string `gorm:"column:company_logo_url;type:text" json:"company_logo_url"`
	CompanyBannerURL string `gorm:"column:company_banner_url;type:text" json:"company_banner_url"`

	HeadquarterPhoneNo string `gorm:"column:headquarter_phone_no;type:text" json:"headquarter_phone_no"`
	SocialLinks        string `gorm:"column:social_links;type:text" json:"social_links"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Company) TableName() string { return "company_profiles" }
