package identity

import (
	"github.com/google/uuid"
)

// UserIdentity is the reference to a user owned by the external authentication
// subsystem. The data core never creates or mutates identities; the mapping
// exists only so that relational policies (scope and membership rows cascading
// on user removal) can be declared against the user table.
type UserIdentity struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (UserIdentity) TableName() string {
	return "user"
}
