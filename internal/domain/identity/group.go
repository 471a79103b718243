package identity

import (
	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/shared"
)

// Group is a named collection of users maintained by administrators.
type Group struct {
	shared.AuditedEntity
	Name        string `gorm:"not null"`
	Description string
}

// TableName returns the table name for GORM
func (Group) TableName() string {
	return "group"
}

// NewGroup creates a new group
func NewGroup(actor uuid.UUID, name, description string) (*Group, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Group creation requires an authenticated actor")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Group name cannot be empty")
	}

	return &Group{
		AuditedEntity: shared.NewAuditedEntity(actor),
		Name:          name,
		Description:   description,
	}, nil
}

// Rename updates the group's name and description
func (g *Group) Rename(actor uuid.UUID, name, description string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Group name cannot be empty")
	}
	if err := g.Touch(actor); err != nil {
		return err
	}
	g.Name = name
	g.Description = description
	return nil
}

// UserGroup binds a user to a group. The row is removed when either side is
// deleted.
type UserGroup struct {
	shared.AuditedEntity
	UserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	GroupID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (UserGroup) TableName() string {
	return "user_group"
}

// NewUserGroup creates a new group membership
func NewUserGroup(actor uuid.UUID, userID uuid.UUID, group *Group) (*UserGroup, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Membership creation requires an authenticated actor")
	}
	if userID == uuid.Nil {
		return nil, shared.ErrReferentialIntegrity
	}
	if group == nil || group.IsDeleted() {
		return nil, shared.ErrReferentialIntegrity
	}

	return &UserGroup{
		AuditedEntity: shared.NewAuditedEntity(actor),
		UserID:        userID,
		GroupID:       group.ID,
	}, nil
}
