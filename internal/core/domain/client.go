package domain

import (
	"errors"
	"time"
)

// ClientStatus represents the follow-up state of an ART client.
type ClientStatus string

const (
	StatusActive         ClientStatus = "active"
	StatusLostToFollowup ClientStatus = "lost_to_followup"
	StatusTransferred    ClientStatus = "transferred"
)

var ErrClientNotFound = errors.New("client not found")
var ErrDuplicateClient = errors.New("client already exists")
var ErrInvalidStatus = errors.New("invalid client status")
var ErrInvalidARTNumber = errors.New("invalid ART number")

// ErrForbidden marks operations the caller's role or facility does not permit.
var ErrForbidden = errors.New("access forbidden")

// ValidStatus reports whether s is a known client status.
func ValidStatus(s ClientStatus) bool {
	switch s {
	case StatusActive, StatusLostToFollowup, StatusTransferred:
		return true
	}
	return false
}

// Client is the core aggregate: one person enrolled in ART tracking.
// ARTNumber uniquely identifies a client.
type Client struct {
	ID         uint         `json:"-"`
	ARTNumber  string       `json:"artNumber"`
	FullName   string       `json:"fullName"`
	Age        int          `json:"age"`
	Address    string       `json:"address"`
	NextPickup *time.Time   `json:"-"`
	Status     ClientStatus `json:"status"`
	FacilityID uint         `json:"facilityId,omitempty"`
	CreatedAt  time.Time    `json:"-"`
	UpdatedAt  time.Time    `json:"-"`
}
