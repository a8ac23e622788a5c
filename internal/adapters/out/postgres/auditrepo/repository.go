// Package auditrepo persists the operation audit trail. Audit writes are
// best-effort from the handlers' point of view, so this repository never
// participates in the business transaction.
package auditrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogDTO represents one row of the audit trail.
type AuditLogDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActionType  string    `gorm:"size:50;index"`
	EntityType  string    `gorm:"size:50;index"`
	EntityID    uuid.UUID `gorm:"type:uuid;index"`
	Description string    `gorm:"size:500"`
	Metadata    []byte    `gorm:"type:jsonb"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for audit log entries.
func (AuditLogDTO) TableName() string {
	return "audit_logs"
}

// GormAuditRepository implements ports.AuditSink using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Record appends one audit entry.
func (r *GormAuditRepository) Record(ctx context.Context, entry ports.AuditEntry) error {
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return err
	}

	dto := AuditLogDTO{
		ID:          uuid.New(),
		ActionType:  entry.ActionType,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID.Bytes(),
		Description: entry.Description,
		Metadata:    metadata,
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
