package sqldb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hivcare/art-tracker/internal/core/domain"
)

// AuthRepository implements ports.AuthRepository on the relational store.
type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	record := &userRecord{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		FacilityID:   user.FacilityID,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserExists
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *AuthRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var record userRecord
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}
