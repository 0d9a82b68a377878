package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hivcare/art-tracker/internal/core/domain"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

type stubRevoker struct {
	revoked map[string]time.Duration
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (s *stubRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	s.revoked[jti] = ttl
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := s.revoked[jti]
	return ok, nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour)

	user, err := svc.Register(context.Background(), "pc007", "pass123", domain.RoleProfessionalCounselor, 1)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleProfessionalCounselor {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if user.FacilityID != 1 {
		t.Fatalf("unexpected facility: %d", user.FacilityID)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "pass", domain.RoleClinician, 1); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := svc.Register(context.Background(), "bob", "pass", "superuser", 1); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "bob", "pass", domain.RoleLayCounselor, 1)
	if _, err := svc.Register(context.Background(), "bob", "pass2", domain.RoleLayCounselor, 1); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "admin", "admin123", domain.RoleSystemAdmin, 1); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "admin" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleSystemAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleSystemAdmin, claims["role"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatalf("expected jti claim")
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "dave", "goodpass", domain.RoleClinician, 1)
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	repo := newStubAuthRepo()
	revoker := newStubRevoker()
	svc := NewAuthService(repo, revoker, "secret", time.Hour)

	exp := time.Now().Add(30 * time.Minute).Unix()
	if err := svc.Logout(context.Background(), "session-1", exp); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if revoked, _ := revoker.IsRevoked(context.Background(), "session-1"); !revoked {
		t.Fatalf("expected session to be revoked")
	}
}

func TestAuthService_Logout_ExpiredTokenIsNoop(t *testing.T) {
	repo := newStubAuthRepo()
	revoker := newStubRevoker()
	svc := NewAuthService(repo, revoker, "secret", time.Hour)

	exp := time.Now().Add(-time.Minute).Unix()
	if err := svc.Logout(context.Background(), "session-2", exp); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if revoked, _ := revoker.IsRevoked(context.Background(), "session-2"); revoked {
		t.Fatalf("expired token should not be added to the revocation list")
	}
}
