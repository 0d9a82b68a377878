package ports

import (
	"context"

	"github.com/hivcare/art-tracker/internal/core/domain"
)

// FacilityRepository defines persistence operations for facilities.
type FacilityRepository interface {
	Create(ctx context.Context, f *domain.Facility) error
	FindByID(ctx context.Context, id uint) (*domain.Facility, error)
	List(ctx context.Context) ([]*domain.Facility, error)
}
