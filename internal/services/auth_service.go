package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hirestack/hirestack/internal/models"
	pgrepo "github.com/hirestack/hirestack/internal/repositories/postgres"
	"github.com/hirestack/hirestack/internal/token"
	"github.com/hirestack/hirestack/internal/utils"
)

type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	MobileNo  string `json:"mobile_no"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, in LoginInput) (string, *models.User, error)
	// Resolve maps a verified external subject to the internal user,
	// creating it on first sight and refreshing email/phone after.
	Resolve(ctx context.Context, subjectID, email, phone string) (*models.User, error)
}

type authService struct {
	users       pgrepo.UserRepository
	tokens      *token.Manager
	phoneRegion string
}

func NewAuthService(users pgrepo.UserRepository, tokens *token.Manager, phoneRegion string) AuthService {
	return &authService{users: users, tokens: tokens, phoneRegion: phoneRegion}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	const op = "AuthService.Register"

	email := utils.SanitizeText(in.Email)
	mobile := utils.SanitizeText(in.MobileNo)

	if !utils.ValidPhone(mobile, s.phoneRegion) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid phone number format", nil)
	}

	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "registration failed", err)
	}
	if taken {
		return nil, utils.E(utils.CodeConflict, op, "email already registered", nil)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "registration failed", err)
	}

	u := &models.User{
		ID:        uuid.NewString(),
		SubjectID: uuid.NewString(),
		Email:     email,
		Password:  hash,
		FirstName: utils.SanitizeText(in.FirstName),
		LastName:  utils.SanitizeText(in.LastName),
		MobileNo:  mobile,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "registration failed", err)
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, in LoginInput) (string, *models.User, error) {
	const op = "AuthService.Login"

	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			// Same message as a password mismatch.
			return "", nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
		}
		return "", nil, utils.E(utils.CodeInternal, op, "login failed", err)
	}

	if err := utils.CheckPassword(u.Password, in.Password); err != nil {
		return "", nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	tok, err := s.tokens.Sign(u.SubjectID, u.Email, u.MobileNo)
	if err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, "login failed", err)
	}
	return tok, u, nil
}

func (s *authService) Resolve(ctx context.Context, subjectID, email, phone string) (*models.User, error) {
	const op = "AuthService.Resolve"

	if subjectID == "" {
		return nil, utils.E(utils.CodeUnauthorized, op, "missing subject", nil)
	}
	u, err := s.users.FindOrCreateBySubject(ctx, subjectID, email, phone)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "user authentication failed", err)
	}
	return u, nil
}
