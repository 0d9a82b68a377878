package ports

import (
	"context"

	"github.com/hivcare/art-tracker/internal/core/domain"
)

// ListClientsFilter carries all query parameters for listing clients.
// FacilityID is always enforced by the service layer for non-admin callers.
type ListClientsFilter struct {
	FacilityID uint   // 0 = no filter (system_admin); non-zero = scoped to facility
	Status     string // optional: filter by client status
	Search     string // optional: partial match on art_number or full_name
}

// ClientRepository defines persistence operations for ART clients.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	// FindByARTNumber retrieves a client by ART number. When facilityID is
	// non-zero, the query is additionally scoped to that facility.
	FindByARTNumber(ctx context.Context, artNumber string, facilityID uint) (*domain.Client, error)
	List(ctx context.Context, filter ListClientsFilter) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, artNumber string) error
}
