package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/jwt"
	"github.com/devbhoomi/tourism-api/internal/pkg/password"
)

type fakeAdminRepo struct {
	mu      sync.Mutex
	nextID  int64
	admins  map[string]*Admin
	touched []int64
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*Admin{}}
}

func (f *fakeAdminRepo) Create(ctx context.Context, a *Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.admins[a.Email]; ok {
		return ErrEmailAlreadyExists
	}
	f.nextID++
	a.ID = f.nextID
	a.CreatedAt = time.Now()
	cp := *a
	f.admins[a.Email] = &cp
	return nil
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.admins[email]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, ErrAdminNotFound
}

func (f *fakeAdminRepo) GetByID(ctx context.Context, id int64) (*Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrAdminNotFound
}

func (f *fakeAdminRepo) TouchLastLogin(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = append(f.touched, id)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeAdminRepo, *jwt.Service) {
	t.Helper()
	repo := newFakeAdminRepo()
	jwtService := jwt.NewService("test-secret", time.Hour)
	return NewService(repo, jwtService), repo, jwtService
}

func TestCreateAdminHashesAndNormalizes(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	admin, err := svc.CreateAdmin(ctx, "  Editor@Example.com ", "password123", "Editor")
	if err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if admin.Email != "editor@example.com" || admin.Role != RoleAdmin {
		t.Fatalf("unexpected admin %+v", admin)
	}
	stored := repo.admins["editor@example.com"]
	if stored.PasswordHash == "password123" || !password.Verify("password123", stored.PasswordHash) {
		t.Fatal("password should be stored as a bcrypt hash")
	}

	if _, err := svc.CreateAdmin(ctx, "editor@example.com", "password123", "Again"); !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, repo, jwtService := newTestService(t)
	ctx := context.Background()
	admin, err := svc.CreateAdmin(ctx, "ops@example.com", "password123", "Ops")
	if err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "wrong password", email: "ops@example.com", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@example.com", password: "password123", wantErr: ErrInvalidCredentials},
		{name: "success with mixed case email", email: "OPS@example.com", password: "password123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Login(ctx, &LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			principal, err := jwtService.Authenticate(result.AccessToken)
			if err != nil {
				t.Fatalf("issued token does not validate: %v", err)
			}
			if principal.AdminID != admin.ID || principal.Role != RoleAdmin || result.TokenType != "Bearer" {
				t.Fatalf("unexpected principal %+v", principal)
			}
		})
	}

	if len(repo.touched) != 1 || repo.touched[0] != admin.ID {
		t.Fatalf("last login should be recorded once, got %v", repo.touched)
	}
}
