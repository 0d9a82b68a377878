package ports

import (
	"context"
	"time"

	"github.com/hivcare/art-tracker/internal/core/domain"
)

// Caller identifies the authenticated user on whose behalf an operation runs.
// Role and FacilityID enforce facility scoping: non-admin roles only see
// clients of their own facility.
type Caller struct {
	Username   string
	Role       string
	FacilityID uint
}

// RegisterClientInput carries all data needed to enrol a new client.
type RegisterClientInput struct {
	ARTNumber  string
	FullName   string
	Age        int
	Address    string
	NextPickup *time.Time
	FacilityID uint
}

// UpdateClientInput carries the mutable client fields. Nil pointers mean
// "leave unchanged"; ClearPickup removes the scheduled pickup.
type UpdateClientInput struct {
	FullName    *string
	Age         *int
	Address     *string
	NextPickup  *time.Time
	ClearPickup bool
	Status      *domain.ClientStatus
}

// ClientService defines use-case operations for ART clients.
type ClientService interface {
	Register(ctx context.Context, caller Caller, input RegisterClientInput) (*domain.Client, error)
	Get(ctx context.Context, caller Caller, artNumber string) (*domain.Client, error)
	List(ctx context.Context, caller Caller, status, search string) ([]*domain.Client, error)
	Update(ctx context.Context, caller Caller, artNumber string, input UpdateClientInput) (*domain.Client, error)
	// RecordPickup registers a completed medication pickup and schedules the next one.
	RecordPickup(ctx context.Context, caller Caller, artNumber string, nextPickup time.Time) (*domain.Client, error)
	Delete(ctx context.Context, caller Caller, artNumber string) error
	// Stats returns the authoritative due/overdue summary for the caller's scope.
	Stats(ctx context.Context, caller Caller, today time.Time) (domain.Stats, error)
}
