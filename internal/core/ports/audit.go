package ports

import (
	"context"

	"github.com/hivcare/art-tracker/internal/core/domain"
)

// AuditRecorder accepts audit events for asynchronous processing. Recording
// must never block or fail a client operation.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit events to the audit trail sink.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
