package access

import (
	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/org"
	"github.com/clinistock/backend/internal/domain/shared"
)

// Scope grants a user visibility and operational rights over an organizational
// subtree. A record with only the location set grants the entire location;
// adding a section narrows the grant to that section and its wards; adding a
// ward narrows it to exactly that ward.
//
// Deleting the referenced section or ward cascades the scope row itself; the
// grant is not widened to the parent level.
type Scope struct {
	shared.AuditedEntity
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	LocationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	SectionID  *uuid.UUID `gorm:"type:uuid;index"`
	WardID     *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Scope) TableName() string {
	return "user_access_location"
}

// NewScope creates a new access scope for the given user. Section and ward may
// be nil for location-wide or section-wide grants. The referenced units must
// form a consistent path: the section must belong to the location and the ward
// to the section.
func NewScope(actor, userID uuid.UUID, location *org.Location, section *org.Section, ward *org.Ward) (*Scope, error) {
	if actor == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Scope creation requires an authenticated actor")
	}
	if userID == uuid.Nil {
		return nil, shared.ErrReferentialIntegrity
	}
	if location == nil || location.IsDeleted() {
		return nil, shared.ErrReferentialIntegrity
	}
	if section != nil && (section.IsDeleted() || section.LocationID != location.ID) {
		return nil, shared.ErrReferentialIntegrity
	}
	if ward != nil {
		// A ward grant requires the section level to be pinned as well.
		if section == nil {
			return nil, shared.ErrReferentialIntegrity
		}
		if ward.IsDeleted() || ward.SectionID != section.ID || ward.LocationID != location.ID {
			return nil, shared.ErrReferentialIntegrity
		}
	}

	scope := &Scope{
		AuditedEntity: shared.NewAuditedEntity(actor),
		UserID:        userID,
		LocationID:    location.ID,
	}
	if section != nil {
		id := section.ID
		scope.SectionID = &id
	}
	if ward != nil {
		id := ward.ID
		scope.WardID = &id
	}
	return scope, nil
}

// Subsumes reports whether this scope record covers the requested
// (location, section, ward) triple. A nil level in the record means "any"
// at that level; a uuid.Nil in the request means the whole level is requested,
// which only a broader record can cover.
func (s *Scope) Subsumes(locationID, sectionID, wardID uuid.UUID) bool {
	if s.LocationID != locationID {
		return false
	}
	if s.SectionID != nil && (sectionID == uuid.Nil || *s.SectionID != sectionID) {
		return false
	}
	if s.WardID != nil && (wardID == uuid.Nil || *s.WardID != wardID) {
		return false
	}
	return true
}

// ScopeSet is the collection of a user's scope records. The effective
// permission for a triple is the union across records: access is granted if
// any record subsumes the request.
type ScopeSet []Scope

// Allows reports whether any scope in the set subsumes the requested triple.
func (set ScopeSet) Allows(locationID, sectionID, wardID uuid.UUID) bool {
	for i := range set {
		if set[i].Subsumes(locationID, sectionID, wardID) {
			return true
		}
	}
	return false
}
