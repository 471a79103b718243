package org

import (
	"strings"

	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/shared"
	"github.com/clinistock/backend/internal/domain/shared/valueobject"
)

// Location is the root of the organizational hierarchy: a physical facility
// holding sections, which in turn hold wards.
type Location struct {
	shared.AuditedEntity
	Name    string               `gorm:"not null"`
	Code    string               `gorm:"not null;uniqueIndex"`
	Address *valueobject.Address `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (Location) TableName() string {
	return "location"
}

// NewLocation creates a new location
func NewLocation(actor uuid.UUID, name, code string) (*Location, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Location creation requires an authenticated actor")
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateCode(code); err != nil {
		return nil, err
	}

	return &Location{
		AuditedEntity: shared.NewAuditedEntity(actor),
		Name:          name,
		Code:          strings.ToUpper(code),
	}, nil
}

// Update updates the location's basic information
func (l *Location) Update(actor uuid.UUID, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := l.Touch(actor); err != nil {
		return err
	}
	l.Name = name
	return nil
}

// SetAddress sets the location's structured address
func (l *Location) SetAddress(actor uuid.UUID, address *valueobject.Address) error {
	if err := l.Touch(actor); err != nil {
		return err
	}
	l.Address = address
	return nil
}

// validateName validates an organizational unit name
func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

// validateCode validates an organizational unit code
func validateCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
