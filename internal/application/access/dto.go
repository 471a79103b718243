package access

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/access"
)

// GrantScopeRequest is the request to grant a user access to an organizational
// subtree. SectionID and WardID may be nil for location-wide or section-wide
// grants.
type GrantScopeRequest struct {
	Actor      uuid.UUID
	UserID     uuid.UUID
	LocationID uuid.UUID
	SectionID  *uuid.UUID
	WardID     *uuid.UUID
}

// AuthorizeRequest is the request to check a user's access to a triple. A Nil
// section or ward means the whole level is requested.
type AuthorizeRequest struct {
	UserID     uuid.UUID
	LocationID uuid.UUID
	SectionID  uuid.UUID
	WardID     uuid.UUID
}

// ScopeResponse is the response representation of a scope record
type ScopeResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	LocationID uuid.UUID  `json:"locationId"`
	SectionID  *uuid.UUID `json:"sectionId,omitempty"`
	WardID     *uuid.UUID `json:"wardId,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ToScopeResponse converts a scope to its response representation
func ToScopeResponse(scope *access.Scope) *ScopeResponse {
	return &ScopeResponse{
		ID:         scope.ID,
		UserID:     scope.UserID,
		LocationID: scope.LocationID,
		SectionID:  scope.SectionID,
		WardID:     scope.WardID,
		CreatedAt:  scope.CreatedAt,
	}
}
