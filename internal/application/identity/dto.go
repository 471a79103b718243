package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/identity"
)

// CreateGroupRequest is the request to create a group
type CreateGroupRequest struct {
	Actor       uuid.UUID
	Name        string
	Description string
}

// GroupResponse is the response representation of a group
type GroupResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToGroupResponse converts a group to its response representation
func ToGroupResponse(group *identity.Group) *GroupResponse {
	return &GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

// MembershipResponse is the response representation of a group membership
type MembershipResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	GroupID   uuid.UUID `json:"groupId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToMembershipResponse converts a membership to its response representation
func ToMembershipResponse(membership *identity.UserGroup) *MembershipResponse {
	return &MembershipResponse{
		ID:        membership.ID,
		UserID:    membership.UserID,
		GroupID:   membership.GroupID,
		CreatedAt: membership.CreatedAt,
	}
}
