package sqldb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hivcare/art-tracker/internal/core/domain"
	"github.com/hivcare/art-tracker/internal/core/ports"
)

// ClientRepository implements ports.ClientRepository on the relational store.
type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	record := fromDomainClient(c)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateClient
		}
		return err
	}
	c.ID = record.ID
	return nil
}

// FindByARTNumber retrieves a client by ART number. When facilityID is
// non-zero the lookup is additionally scoped to that facility.
func (r *ClientRepository) FindByARTNumber(ctx context.Context, artNumber string, facilityID uint) (*domain.Client, error) {
	q := r.db.WithContext(ctx).Where("art_number = ?", artNumber)
	if facilityID != 0 {
		q = q.Where("facility_id = ?", facilityID)
	}

	var record clientRecord
	if err := q.First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *ClientRepository) List(ctx context.Context, filter ports.ListClientsFilter) ([]*domain.Client, error) {
	q := r.db.WithContext(ctx).Model(&clientRecord{})
	if filter.FacilityID != 0 {
		q = q.Where("facility_id = ?", filter.FacilityID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("art_number LIKE ? OR full_name LIKE ?", pattern, pattern)
	}

	var records []clientRecord
	if err := q.Order("art_number").Find(&records).Error; err != nil {
		return nil, err
	}

	clients := make([]*domain.Client, len(records))
	for i := range records {
		clients[i] = records[i].toDomain()
	}
	return clients, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	record := fromDomainClient(c)
	// Save with explicit column selection so nil NextPickup clears the column.
	err := r.db.WithContext(ctx).Model(&clientRecord{}).
		Where("art_number = ?", c.ARTNumber).
		Select("full_name", "age", "address", "next_pickup", "status", "updated_at").
		Updates(record).Error
	return err
}

func (r *ClientRepository) Delete(ctx context.Context, artNumber string) error {
	result := r.db.WithContext(ctx).Where("art_number = ?", artNumber).Delete(&clientRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}
