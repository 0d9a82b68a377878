package domain

import "time"

// AuditAction identifies the kind of client mutation being recorded.
type AuditAction string

const (
	AuditClientRegistered AuditAction = "client_registered"
	AuditPickupRecorded   AuditAction = "pickup_recorded"
	AuditClientUpdated    AuditAction = "client_updated"
	AuditClientDeleted    AuditAction = "client_deleted"
)

// AuditEvent records a single client mutation for the audit trail.
type AuditEvent struct {
	ARTNumber  string
	Action     AuditAction
	Actor      string // username of the authenticated user
	FacilityID uint
	Timestamp  time.Time
	Details    string
}
