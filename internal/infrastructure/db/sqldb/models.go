package sqldb

import (
	"strconv"
	"time"

	"github.com/hivcare/art-tracker/internal/core/domain"
)

// clientRecord is the clients table row.
type clientRecord struct {
	ID         uint   `gorm:"primaryKey"`
	ARTNumber  string `gorm:"column:art_number;type:varchar(64);uniqueIndex"`
	FullName   string `gorm:"type:varchar(255)"`
	Age        int
	Address    string `gorm:"type:varchar(255)"`
	NextPickup *time.Time
	Status     string `gorm:"type:varchar(32);index"`
	FacilityID uint   `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (clientRecord) TableName() string { return "clients" }

// userRecord is the users table row.
type userRecord struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(64);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255)"`
	Role         string `gorm:"type:varchar(32)"`
	FacilityID   uint   `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

// facilityRecord is the facilities table row.
type facilityRecord struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"type:varchar(200)"`
	Location string `gorm:"type:varchar(255)"`
	Active   bool   `gorm:"default:true"`
}

func (facilityRecord) TableName() string { return "facilities" }

func (r *clientRecord) toDomain() *domain.Client {
	return &domain.Client{
		ID:         r.ID,
		ARTNumber:  r.ARTNumber,
		FullName:   r.FullName,
		Age:        r.Age,
		Address:    r.Address,
		NextPickup: r.NextPickup,
		Status:     domain.ClientStatus(r.Status),
		FacilityID: r.FacilityID,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func fromDomainClient(c *domain.Client) *clientRecord {
	return &clientRecord{
		ID:         c.ID,
		ARTNumber:  c.ARTNumber,
		FullName:   c.FullName,
		Age:        c.Age,
		Address:    c.Address,
		NextPickup: c.NextPickup,
		Status:     string(c.Status),
		FacilityID: c.FacilityID,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           strconv.FormatUint(uint64(r.ID), 10),
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		FacilityID:   r.FacilityID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *facilityRecord) toDomain() *domain.Facility {
	return &domain.Facility{
		ID:       r.ID,
		Name:     r.Name,
		Location: r.Location,
		Active:   r.Active,
	}
}
