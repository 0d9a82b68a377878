package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hivcare/art-tracker/internal/core/domain"
	"github.com/hivcare/art-tracker/internal/core/ports"
)

type ClientService struct {
	repo   ports.ClientRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, audit ports.AuditRecorder, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, audit: audit, logger: logger}
}

// scopeFacility returns the facility filter for the caller: admins see every
// facility, everyone else only their own.
func scopeFacility(caller ports.Caller) uint {
	if caller.Role == domain.RoleSystemAdmin {
		return 0
	}
	return caller.FacilityID
}

// Register enrols a new client. The ART number is issued by the registering
// facility and must be unique across the system.
func (s *ClientService) Register(ctx context.Context, caller ports.Caller, input ports.RegisterClientInput) (*domain.Client, error) {
	artNumber := strings.TrimSpace(input.ARTNumber)
	if artNumber == "" {
		return nil, domain.ErrInvalidARTNumber
	}

	facilityID := input.FacilityID
	if caller.Role != domain.RoleSystemAdmin {
		// non-admins can only register into their own facility
		if facilityID != 0 && facilityID != caller.FacilityID {
			return nil, domain.ErrForbidden
		}
		facilityID = caller.FacilityID
	}

	now := time.Now().UTC()
	client := &domain.Client{
		ARTNumber:  artNumber,
		FullName:   input.FullName,
		Age:        input.Age,
		Address:    input.Address,
		NextPickup: input.NextPickup,
		Status:     domain.StatusActive,
		FacilityID: facilityID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		s.logger.Error().Err(err).Str("art_number", artNumber).Msg("failed to register client")
		return nil, err
	}

	s.logger.Info().Str("art_number", artNumber).Uint("facility_id", facilityID).Msg("client registered")
	s.record(domain.AuditClientRegistered, client, caller, "")

	return client, nil
}

func (s *ClientService) Get(ctx context.Context, caller ports.Caller, artNumber string) (*domain.Client, error) {
	return s.repo.FindByARTNumber(ctx, artNumber, scopeFacility(caller))
}

func (s *ClientService) List(ctx context.Context, caller ports.Caller, status, search string) ([]*domain.Client, error) {
	if status != "" && !domain.ValidStatus(domain.ClientStatus(status)) {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.List(ctx, ports.ListClientsFilter{
		FacilityID: scopeFacility(caller),
		Status:     status,
		Search:     search,
	})
}

func (s *ClientService) Update(ctx context.Context, caller ports.Caller, artNumber string, input ports.UpdateClientInput) (*domain.Client, error) {
	client, err := s.repo.FindByARTNumber(ctx, artNumber, scopeFacility(caller))
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		client.FullName = *input.FullName
	}
	if input.Age != nil {
		client.Age = *input.Age
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.ClearPickup {
		client.NextPickup = nil
	} else if input.NextPickup != nil {
		client.NextPickup = input.NextPickup
	}
	if input.Status != nil {
		if !domain.ValidStatus(*input.Status) {
			return nil, domain.ErrInvalidStatus
		}
		client.Status = *input.Status
	}
	client.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, client); err != nil {
		s.logger.Error().Err(err).Str("art_number", artNumber).Msg("failed to update client")
		return nil, err
	}

	s.record(domain.AuditClientUpdated, client, caller, string(client.Status))
	return client, nil
}

// RecordPickup schedules the client's next medication pickup. A pickup on a
// lost-to-follow-up client reactivates them.
func (s *ClientService) RecordPickup(ctx context.Context, caller ports.Caller, artNumber string, nextPickup time.Time) (*domain.Client, error) {
	client, err := s.repo.FindByARTNumber(ctx, artNumber, scopeFacility(caller))
	if err != nil {
		return nil, err
	}

	pickup := nextPickup.UTC()
	client.NextPickup = &pickup
	if client.Status == domain.StatusLostToFollowup {
		client.Status = domain.StatusActive
	}
	client.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, client); err != nil {
		s.logger.Error().Err(err).Str("art_number", artNumber).Msg("failed to record pickup")
		return nil, err
	}

	s.logger.Info().Str("art_number", artNumber).Time("next_pickup", pickup).Msg("pickup recorded")
	s.record(domain.AuditPickupRecorded, client, caller, pickup.Format("2006-01-02"))

	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, caller ports.Caller, artNumber string) error {
	client, err := s.repo.FindByARTNumber(ctx, artNumber, scopeFacility(caller))
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, client.ARTNumber); err != nil {
		s.logger.Error().Err(err).Str("art_number", artNumber).Msg("failed to delete client")
		return err
	}

	s.record(domain.AuditClientDeleted, client, caller, "")
	return nil
}

// Stats computes the due/overdue summary over the caller's visible clients.
func (s *ClientService) Stats(ctx context.Context, caller ports.Caller, today time.Time) (domain.Stats, error) {
	clients, err := s.repo.List(ctx, ports.ListClientsFilter{FacilityID: scopeFacility(caller)})
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Summarize(today, clients), nil
}

func (s *ClientService) record(action domain.AuditAction, client *domain.Client, caller ports.Caller, details string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		ARTNumber:  client.ARTNumber,
		Action:     action,
		Actor:      caller.Username,
		FacilityID: client.FacilityID,
		Timestamp:  time.Now().UTC(),
		Details:    details,
	})
}
