package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hivcare/art-tracker/internal/core/domain"
	"github.com/hivcare/art-tracker/internal/core/ports"
)

// FacilityService manages clinic sites.
type FacilityService struct {
	repo   ports.FacilityRepository
	logger zerolog.Logger
}

func NewFacilityService(repo ports.FacilityRepository, logger zerolog.Logger) *FacilityService {
	return &FacilityService{repo: repo, logger: logger}
}

func (s *FacilityService) Create(ctx context.Context, name, location string) (*domain.Facility, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidFacilityName
	}

	facility := &domain.Facility{Name: name, Location: location, Active: true}
	if err := s.repo.Create(ctx, facility); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create facility")
		return nil, err
	}

	s.logger.Info().Str("name", name).Uint("facility_id", facility.ID).Msg("facility created")
	return facility, nil
}

func (s *FacilityService) List(ctx context.Context) ([]*domain.Facility, error) {
	return s.repo.List(ctx)
}

func (s *FacilityService) Get(ctx context.Context, id uint) (*domain.Facility, error) {
	return s.repo.FindByID(ctx, id)
}
