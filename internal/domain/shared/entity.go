package shared

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// AuditedEntity provides the identifier and lifecycle fields shared by every
// mutable entity: a time-ordered unique ID, creation/update/deletion timestamps
// and the identity of the user that performed each transition.
//
// Deletion is logical and final. DeletedAt uses gorm's soft-delete type so that
// every default query excludes deleted rows; history reads must opt in
// explicitly through the repository's IncludingDeleted variants.
type AuditedEntity struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy uuid.UUID      `gorm:"type:uuid;not null"`
	UpdatedBy *uuid.UUID     `gorm:"type:uuid"`
	DeletedBy *uuid.UUID     `gorm:"type:uuid"`
}

// NewAuditedEntity creates the audit fields for a freshly created entity.
// The identifier is a UUID v7: globally unique without coordination between
// writers and lexically sortable by creation time, so storage engines can use
// it as a clustering key without write hot-spotting.
func NewAuditedEntity(actor uuid.UUID) AuditedEntity {
	now := time.Now()
	return AuditedEntity{
		ID:        uuid.Must(uuid.NewV7()),
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: actor,
	}
}

// GetID returns the entity ID
func (e *AuditedEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *AuditedEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *AuditedEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// IsDeleted reports whether the entity has been logically deleted.
func (e *AuditedEntity) IsDeleted() bool {
	return e.DeletedAt.Valid
}

// Touch records a mutation by the given actor. Mutating a deleted entity is an
// error, never a silent no-op.
func (e *AuditedEntity) Touch(actor uuid.UUID) error {
	if e.IsDeleted() {
		return ErrInvalidStateTransition
	}
	e.UpdatedAt = time.Now()
	e.UpdatedBy = &actor
	return nil
}

// MarkDeleted records the logical deletion of the entity by the given actor.
// Once set, the deletion is never cleared; reintroducing an entity requires a
// new identifier.
func (e *AuditedEntity) MarkDeleted(actor uuid.UUID) error {
	if e.IsDeleted() {
		return ErrInvalidStateTransition
	}
	e.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	e.DeletedBy = &actor
	return nil
}
