package sqldb

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hivcare/art-tracker/internal/core/domain"
)

// Migrate creates or updates the schema for all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&facilityRecord{}, &userRecord{}, &clientRecord{})
}

// demoAccount is a pre-seeded login for demo and development environments.
type demoAccount struct {
	username string
	password string
	role     string
}

var demoAccounts = []demoAccount{
	{"admin", "admin123", domain.RoleSystemAdmin},
	{"pc001", "pc123", domain.RoleProfessionalCounselor},
	{"lc001", "lc123", domain.RoleLayCounselor},
	{"cl001", "cl123", domain.RoleClinician},
}

// Seed populates empty tables: the default facility and the demo accounts are
// always created when missing; demo clients only when seedDemoClients is set.
func Seed(db *gorm.DB, seedDemoClients bool, log zerolog.Logger) error {
	facilityID, err := seedDefaultFacility(db, log)
	if err != nil {
		return err
	}

	if err := seedAccounts(db, facilityID, log); err != nil {
		return err
	}

	if seedDemoClients {
		if err := seedClients(db, facilityID, log); err != nil {
			return err
		}
	}
	return nil
}

func seedDefaultFacility(db *gorm.DB, log zerolog.Logger) (uint, error) {
	var count int64
	if err := db.Model(&facilityRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		var first facilityRecord
		if err := db.Order("id").First(&first).Error; err != nil {
			return 0, err
		}
		return first.ID, nil
	}

	record := facilityRecord{Name: "Default", Location: "Main", Active: true}
	if err := db.Create(&record).Error; err != nil {
		return 0, err
	}
	log.Info().Uint("facility_id", record.ID).Msg("seeded default facility")
	return record.ID, nil
}

func seedAccounts(db *gorm.DB, facilityID uint, log zerolog.Logger) error {
	var count int64
	if err := db.Model(&userRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, acc := range demoAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		record := userRecord{
			Username:     acc.username,
			PasswordHash: string(hash),
			Role:         acc.role,
			FacilityID:   facilityID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := db.Create(&record).Error; err != nil {
			return err
		}
	}
	log.Info().Int("accounts", len(demoAccounts)).Msg("seeded demo accounts")
	return nil
}

func seedClients(db *gorm.DB, facilityID uint, log zerolog.Logger) error {
	var count int64
	if err := db.Model(&clientRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	lastWeek := today.AddDate(0, 0, -7)
	nextWeek := today.AddDate(0, 0, 7)

	demo := []clientRecord{
		{ARTNumber: "ART-0001", FullName: "Grace Banda", Age: 34, Address: "12 Chilimba Rd", NextPickup: &today, Status: string(domain.StatusActive), FacilityID: facilityID},
		{ARTNumber: "ART-0002", FullName: "Joseph Phiri", Age: 41, Address: "Area 25, Lilongwe", NextPickup: &lastWeek, Status: string(domain.StatusActive), FacilityID: facilityID},
		{ARTNumber: "ART-0003", FullName: "Mary Mwale", Age: 28, Address: "Zingwangwa, Blantyre", NextPickup: &nextWeek, Status: string(domain.StatusActive), FacilityID: facilityID},
		{ARTNumber: "ART-0004", FullName: "Peter Kachale", Age: 52, Address: "Mzuzu", Status: string(domain.StatusTransferred), FacilityID: facilityID},
	}
	for i := range demo {
		demo[i].CreatedAt = now
		demo[i].UpdatedAt = now
		if err := db.Create(&demo[i]).Error; err != nil {
			return err
		}
	}
	log.Info().Int("clients", len(demo)).Msg("seeded demo clients")
	return nil
}
