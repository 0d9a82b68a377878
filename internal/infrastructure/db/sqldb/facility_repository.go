package sqldb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hivcare/art-tracker/internal/core/domain"
)

// FacilityRepository implements ports.FacilityRepository on the relational store.
type FacilityRepository struct {
	db *gorm.DB
}

func NewFacilityRepository(db *gorm.DB) *FacilityRepository {
	return &FacilityRepository{db: db}
}

func (r *FacilityRepository) Create(ctx context.Context, f *domain.Facility) error {
	record := &facilityRecord{Name: f.Name, Location: f.Location, Active: f.Active}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return err
	}
	f.ID = record.ID
	return nil
}

func (r *FacilityRepository) FindByID(ctx context.Context, id uint) (*domain.Facility, error) {
	var record facilityRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFacilityNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *FacilityRepository) List(ctx context.Context) ([]*domain.Facility, error) {
	var records []facilityRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}

	facilities := make([]*domain.Facility, len(records))
	for i := range records {
		facilities[i] = records[i].toDomain()
	}
	return facilities, nil
}
