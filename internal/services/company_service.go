package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/hirestack/hirestack/internal/models"
	pgrepo "github.com/hirestack/hirestack/internal/repositories/postgres"
	"github.com/hirestack/hirestack/internal/storage"
	"github.com/hirestack/hirestack/internal/utils"
)

type RegisterCompanyInput struct {
	CompanyName      string `json:"company_name" binding:"required"`
	IndustryType     string `json:"industry_type" binding:"required"`
	OrganizationType string `json:"organization_type" binding:"required"`
	TeamSize         string `json:"team_size" binding:"required"`
	AboutCompany     string `json:"about_company"`
	CompanyWebsite   string `json:"company_website" binding:"omitempty,url"`
}

// UpdateCompanyInput covers every updatable profile field; only non-nil
// fields are applied.
type UpdateCompanyInput struct {
	CompanyName        *string `json:"company_name"`
	IndustryType       *string `json:"industry_type"`
	OrganizationType   *string `json:"organization_type"`
	TeamSize           *string `json:"team_size"`
	CompanyWebsite     *string `json:"company_website" binding:"omitempty,url"`
	MapLocationURL     *string `json:"map_location_url" binding:"omitempty,url"`
	CareersLink        *string `json:"careers_link" binding:"omitempty,url"`
	HeadquarterPhoneNo *string `json:"headquarter_phone_no"`
	SocialLinks        *string `json:"social_links"`
	AboutCompany       *string `json:"about_company"`
	CompanyVision      *string `json:"company_vision"`
}

// companyUpdateFields is the fixed mapping from API field name to storage
// column, with the sanitize flag marking free-text fields. Note the API's
// singular "organization_type" lands in the pluralized column.
var companyUpdateFields = []struct {
	api      string
	column   string
	sanitize bool
	value    func(in *UpdateCompanyInput) *string
}{
	{"company_name", "company_name", false, func(in *UpdateCompanyInput) *string { return in.CompanyName }},
	{"industry_type", "industry_type", false, func(in *UpdateCompanyInput) *string { return in.IndustryType }},
	{"organization_type", "organizations_type", false, func(in *UpdateCompanyInput) *string { return in.OrganizationType }},
	{"team_size", "team_size", false, func(in *UpdateCompanyInput) *string { return in.TeamSize }},
	{"company_website", "company_website", false, func(in *UpdateCompanyInput) *string { return in.CompanyWebsite }},
	{"map_location_url", "map_location_url", false, func(in *UpdateCompanyInput) *string { return in.MapLocationURL }},
	{"careers_link", "careers_link", false, func(in *UpdateCompanyInput) *string { return in.CareersLink }},
	{"headquarter_phone_no", "headquarter_phone_no", false, func(in *UpdateCompanyInput) *string { return in.HeadquarterPhoneNo }},
	{"social_links", "social_links", false, func(in *UpdateCompanyInput) *string { return in.SocialLinks }},
	{"about_company", "about_company", true, func(in *UpdateCompanyInput) *string { return in.AboutCompany }},
	{"company_vision", "company_vision", true, func(in *UpdateCompanyInput) *string { return in.CompanyVision }},
}

type ListCompaniesInput struct {
	Search       string
	IndustryType string
	Page         int
	Limit        int
}

type CompanyList struct {
	Companies  []models.Company `json:"companies"`
	Count      int              `json:"count"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

type CompanyService interface {
	Register(ctx context.Context, userID, linkedCompanyID string, in RegisterCompanyInput) (*models.Company, error)
	GetProfile(ctx context.Context, userID string) (*models.Company, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateCompanyInput) (*models.Company, error)
	UploadAsset(ctx context.Context, userID, kind, filename, contentType string, r io.Reader) (string, error)
	List(ctx context.Context, in ListCompaniesInput) (*CompanyList, error)
}

// Asset kinds accepted by UploadAsset.
const (
	AssetLogo   = "logo"
	AssetBanner = "banner"
)

type companyService struct {
	companies   pgrepo.CompanyRepository
	uploader    storage.Uploader
	phoneRegion string
}

func NewCompanyService(companies pgrepo.CompanyRepository, uploader storage.Uploader, phoneRegion string) CompanyService {
	return &companyService{companies: companies, uploader: uploader, phoneRegion: phoneRegion}
}

func (s *companyService) Register(ctx context.Context, userID, linkedCompanyID string, in RegisterCompanyInput) (*models.Company, error) {
	const op = "CompanyService.Register"

	if linkedCompanyID != "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "company already registered for this user", nil)
	}
	// Defense in depth: the link could have been created by a request
	// racing this one.
	exists, err := s.companies.ExistsByOwner(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to register company", err)
	}
	if exists {
		return nil, utils.E(utils.CodeInvalidArgument, op, "company already registered for this user", nil)
	}

	c := &models.Company{
		ID:                uuid.NewString(),
		OwnerID:           userID,
		CompanyName:       in.CompanyName,
		IndustryType:      in.IndustryType,
		OrganizationsType: in.OrganizationType,
		TeamSize:          in.TeamSize,
		AboutCompany:      utils.SanitizeText(in.AboutCompany),
		CompanyWebsite:    in.CompanyWebsite,
	}
	if err := s.companies.CreateWithOwnerLink(ctx, c); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to register company", err)
	}
	return c, nil
}

func (s *companyService) GetProfile(ctx context.Context, userID string) (*models.Company, error) {
	const op = "CompanyService.GetProfile"

	c, err := s.companies.GetByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "company not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get company", err)
	}
	return c, nil
}

func (s *companyService) UpdateProfile(ctx context.Context, userID string, in UpdateCompanyInput) (*models.Company, error) {
	const op = "CompanyService.UpdateProfile"

	if in.HeadquarterPhoneNo != nil && !utils.ValidPhone(*in.HeadquarterPhoneNo, s.phoneRegion) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid phone number format", nil)
	}

	changes := map[string]any{}
	for _, f := range companyUpdateFields {
		v := f.value(&in)
		if v == nil {
			continue
		}
		if f.sanitize {
			changes[f.column] = utils.SanitizeText(*v)
		} else {
			changes[f.column] = *v
		}
	}
	if len(changes) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "no valid fields to update", nil)
	}

	c, err := s.companies.UpdateByOwner(ctx, userID, changes)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "company profile not found, register your company first", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update company profile", err)
	}
	return c, nil
}

func (s *companyService) UploadAsset(ctx context.Context, userID, kind, filename, contentType string, r io.Reader) (string, error) {
	const op = "CompanyService.UploadAsset"

	var column string
	switch kind {
	case AssetLogo:
		column = pgrepo.CompanyLogoColumn
	case AssetBanner:
		column = pgrepo.CompanyBannerColumn
	default:
		return "", utils.E(utils.CodeInvalidArgument, op, fmt.Sprintf("unknown asset kind %q", kind), nil)
	}

	if _, err := s.companies.GetByOwner(ctx, userID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeNotFound, op, "company not found", err)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to load company", err)
	}

	objectName := "company/" + kind + "/" + uuid.NewString() + path.Ext(filename)
	url, err := s.uploader.Upload(ctx, objectName, contentType, r)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to upload file", err)
	}

	if err := s.companies.SetAssetURL(ctx, userID, column, url); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to persist asset url", err)
	}
	return url, nil
}

func (s *companyService) List(ctx context.Context, in ListCompaniesInput) (*CompanyList, error) {
	const op = "CompanyService.List"

	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	rows, total, err := s.companies.List(ctx, pgrepo.CompanyListFilter{
		Search:       in.Search,
		IndustryType: in.IndustryType,
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list companies", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &CompanyList{
		Companies:  rows,
		Count:      len(rows),
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}
