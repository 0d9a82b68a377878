package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hivcare/art-tracker/internal/core/domain"
	"github.com/hivcare/art-tracker/internal/core/ports"
)

const auditCollection = "audit_events"

// AuditRepository persists client audit events to MongoDB.
type AuditRepository struct {
	db *mongo.Database
}

// NewAuditRepository creates an AuditRepository on the audit_events collection.
func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

// Insert writes one audit event document.
func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	doc := bson.M{
		"art_number":  event.ARTNumber,
		"action":      string(event.Action),
		"actor":       event.Actor,
		"facility_id": event.FacilityID,
		"timestamp":   event.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if event.Details != "" {
		doc["details"] = event.Details
	}

	_, err := r.db.Collection(auditCollection).InsertOne(ctx, doc)
	return err
}

// NoopAuditRepository discards audit events. Used when no audit sink is
// configured so the rest of the pipeline stays unchanged.
type NoopAuditRepository struct{}

func (NoopAuditRepository) Insert(context.Context, *domain.AuditEvent) error { return nil }

var _ ports.AuditRepository = (*AuditRepository)(nil)
var _ ports.AuditRepository = NoopAuditRepository{}
