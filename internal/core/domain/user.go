package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

const (
	RoleSystemAdmin           = "system_admin"
	RoleProfessionalCounselor = "professional_counselor"
	RoleLayCounselor          = "lay_counselor"
	RoleClinician             = "clinician"
)

// ValidRole reports whether role is one of the four account types.
func ValidRole(role string) bool {
	switch role {
	case RoleSystemAdmin, RoleProfessionalCounselor, RoleLayCounselor, RoleClinician:
		return true
	}
	return false
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	FacilityID   uint      `json:"facility_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
