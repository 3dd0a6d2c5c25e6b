package service

import (
	"errors"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/pkg/token"
)

var (
	// ErrBadSecret deliberately carries a generic message so a response
	// never reveals that the registration secret was the failing check.
	ErrBadSecret = errors.New("Bad request")

	ErrUsernameTaken = errors.New("Username already exists")

	// ErrInvalidCredentials is shared by the unknown-username and
	// wrong-password paths to prevent username enumeration.
	ErrInvalidCredentials = errors.New("Invalid username or password")
)

type AuthService interface {
	Register(secretKey, username, password string) (*model.Admin, error)
	Login(username, password string) (string, *model.Admin, error)
}

type authService struct {
	adminRepo       repository.AdminRepository
	tokens          *token.Manager
	registrationKey string
}

func NewAuthService(adminRepo repository.AdminRepository, tokens *token.Manager, registrationKey string) AuthService {
	return &authService{
		adminRepo:       adminRepo,
		tokens:          tokens,
		registrationKey: registrationKey,
	}
}

// Register creates a new admin. The operator secret is checked before
// anything else, including username availability.
func (s *authService) Register(secretKey, username, password string) (*model.Admin, error) {
	if secretKey != s.registrationKey {
		return nil, ErrBadSecret
	}

	if existing, _ := s.adminRepo.FindByUsername(username); existing != nil {
		return nil, ErrUsernameTaken
	}

	admin := &model.Admin{Username: username}
	if err := admin.SetPassword(password); err != nil {
		return nil, err
	}

	if err := s.adminRepo.Create(admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// Login verifies credentials and issues a signed access token.
func (s *authService) Login(username, password string) (string, *model.Admin, error) {
	admin, err := s.adminRepo.FindByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !admin.CheckPassword(password) {
		return "", nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Generate(admin.ID, admin.Username)
	if err != nil {
		return "", nil, errors.New("failed to generate token")
	}

	return accessToken, admin, nil
}
