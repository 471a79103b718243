package catalog

import (
	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/shared"
)

// Contraindication is a named contraindication referenced by trade names.
// Deleting one detaches it from referencing trade names instead of deleting
// them.
type Contraindication struct {
	shared.AuditedEntity
	Name string `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Contraindication) TableName() string {
	return "contraindication"
}

// NewContraindication creates a new contraindication
func NewContraindication(actor uuid.UUID, name string) (*Contraindication, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Contraindication creation requires an authenticated actor")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Contraindication name cannot be empty")
	}

	return &Contraindication{
		AuditedEntity: shared.NewAuditedEntity(actor),
		Name:          name,
	}, nil
}

// Rename updates the contraindication's name
func (c *Contraindication) Rename(actor uuid.UUID, name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Contraindication name cannot be empty")
	}
	if err := c.Touch(actor); err != nil {
		return err
	}
	c.Name = name
	return nil
}

// ContainerMaterial is a named packaging material referenced by trade names,
// detached on deletion like Contraindication.
type ContainerMaterial struct {
	shared.AuditedEntity
	Name string `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ContainerMaterial) TableName() string {
	return "container_material"
}

// NewContainerMaterial creates a new container material
func NewContainerMaterial(actor uuid.UUID, name string) (*ContainerMaterial, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Container material creation requires an authenticated actor")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Container material name cannot be empty")
	}

	return &ContainerMaterial{
		AuditedEntity: shared.NewAuditedEntity(actor),
		Name:          name,
	}, nil
}

// Rename updates the container material's name
func (c *ContainerMaterial) Rename(actor uuid.UUID, name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Container material name cannot be empty")
	}
	if err := c.Touch(actor); err != nil {
		return err
	}
	c.Name = name
	return nil
}
