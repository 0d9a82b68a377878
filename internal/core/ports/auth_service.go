package ports

import (
	"context"

	"github.com/hivcare/art-tracker/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string, facilityID uint) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the session identified by the token's jti claim.
	Logout(ctx context.Context, jti string, expiresAt int64) error
}
