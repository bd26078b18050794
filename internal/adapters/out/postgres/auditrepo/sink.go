// Package auditrepo persists audit entries. The sink writes on the base
// database connection, outside any unit of work: audit is recorded after the
// operation commits and a failed write must never roll the operation back.
package auditrepo

import (
	"context"
	"encoding/json"
	"time"

	"medorders/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditEntryDTO represents one persisted audit record. Details are stored as
// a JSON document since each record kind carries different fields.
type AuditEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind       string    `gorm:"index;size:64"`
	EntityID   string    `gorm:"index;size:64"`
	Actor      string    `gorm:"size:128"`
	Details    string    `gorm:"type:text"`
	OccurredAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "audit_entries".
func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}

// GormAuditSink implements AuditSink using GORM.
type GormAuditSink struct {
	db *gorm.DB
}

// NewGormAuditSink creates an audit sink over the given connection.
func NewGormAuditSink(db *gorm.DB) *GormAuditSink {
	return &GormAuditSink{db: db}
}

// Record persists one audit entry.
func (s *GormAuditSink) Record(ctx context.Context, entry ports.AuditEntry) error {
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return err
	}

	occurredAt := entry.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	dto := AuditEntryDTO{
		ID:         uuid.New(),
		Kind:       entry.Kind,
		EntityID:   entry.EntityID,
		Actor:      entry.Actor,
		Details:    string(details),
		OccurredAt: occurredAt,
	}

	return s.db.WithContext(ctx).Create(&dto).Error
}
