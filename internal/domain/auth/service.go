package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/devbhoomi/tourism-api/internal/pkg/jwt"
	"github.com/devbhoomi/tourism-api/internal/pkg/logger"
	"github.com/devbhoomi/tourism-api/internal/pkg/password"
)

// Service handles admin authentication
type Service struct {
	repo       Repository
	jwtService *jwt.Service
}

// NewService creates auth service
func NewService(repo Repository, jwtService *jwt.Service) *Service {
	return &Service{repo: repo, jwtService: jwtService}
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// burnHash spends one bcrypt comparison so unknown emails take as long as
// wrong passwords.
func burnHash(plain string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = password.Hash("not-a-real-password")
	})
	password.Verify(plain, dummyHash)
}

// Login authenticates an admin and issues an access token
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	email := normalizeEmail(req.Email)

	admin, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrAdminNotFound) {
		burnHash(req.Password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !password.Verify(req.Password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return nil, err
	}

	if err := s.repo.TouchLastLogin(ctx, admin.ID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("admin_id", admin.ID).Msg("Failed to record login time")
	}

	return &AuthResponse{
		Admin:       AdminResponseFromEntity(admin),
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// Me returns the admin behind an authenticated principal
func (s *Service) Me(ctx context.Context, adminID int64) (*Admin, error) {
	return s.repo.GetByID(ctx, adminID)
}

// CreateAdmin seeds an account with a bcrypt-hashed password
func (s *Service) CreateAdmin(ctx context.Context, email, plain, name string) (*Admin, error) {
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}

	admin := &Admin{
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		Name:         name,
		Role:         RoleAdmin,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// normalizeEmail makes lookups case- and whitespace-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
