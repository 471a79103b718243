package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinistock/backend/internal/domain/identity"
	"github.com/clinistock/backend/internal/domain/shared"
)

// GroupService handles maintenance of user groups and memberships
type GroupService struct {
	groupRepo     identity.GroupRepository
	userGroupRepo identity.UserGroupRepository
	logger        *zap.Logger
}

// NewGroupService creates a new GroupService
func NewGroupService(
	groupRepo identity.GroupRepository,
	userGroupRepo identity.UserGroupRepository,
	logger *zap.Logger,
) *GroupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroupService{
		groupRepo:     groupRepo,
		userGroupRepo: userGroupRepo,
		logger:        logger,
	}
}

// Create creates a new group
func (s *GroupService) Create(ctx context.Context, req CreateGroupRequest) (*GroupResponse, error) {
	group, err := identity.NewGroup(req.Actor, req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.groupRepo.Save(ctx, group); err != nil {
		return nil, err
	}

	s.logger.Info("group created",
		zap.String("group_id", group.ID.String()))
	return ToGroupResponse(group), nil
}

// GetByID retrieves a group by ID
func (s *GroupService) GetByID(ctx context.Context, id uuid.UUID) (*GroupResponse, error) {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToGroupResponse(group), nil
}

// List lists groups matching the filter
func (s *GroupService) List(ctx context.Context, filter shared.Filter) ([]GroupResponse, error) {
	groups, err := s.groupRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]GroupResponse, len(groups))
	for i := range groups {
		responses[i] = *ToGroupResponse(&groups[i])
	}
	return responses, nil
}

// Rename renames a group
func (s *GroupService) Rename(ctx context.Context, id, actor uuid.UUID, name, description string) (*GroupResponse, error) {
	group, err := s.groupRepo.FindByIDIncludingDeleted(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := group.Rename(actor, name, description); err != nil {
		return nil, err
	}

	if err := s.groupRepo.Save(ctx, group); err != nil {
		return nil, err
	}
	return ToGroupResponse(group), nil
}

// Delete soft-deletes a group and its memberships
func (s *GroupService) Delete(ctx context.Context, id, actor uuid.UUID) error {
	if err := s.groupRepo.Delete(ctx, id, actor); err != nil {
		return err
	}
	s.logger.Info("group deleted",
		zap.String("group_id", id.String()),
		zap.String("deleted_by", actor.String()))
	return nil
}

// AddMember adds a user to a group
func (s *GroupService) AddMember(ctx context.Context, actor, userID, groupID uuid.UUID) (*MembershipResponse, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	membership, err := identity.NewUserGroup(actor, userID, group)
	if err != nil {
		return nil, err
	}

	if err := s.userGroupRepo.Save(ctx, membership); err != nil {
		return nil, err
	}

	s.logger.Info("group member added",
		zap.String("group_id", groupID.String()),
		zap.String("user_id", userID.String()))
	return ToMembershipResponse(membership), nil
}

// RemoveMember soft-deletes a single membership
func (s *GroupService) RemoveMember(ctx context.Context, membershipID, actor uuid.UUID) error {
	return s.userGroupRepo.Delete(ctx, membershipID, actor)
}

// ListMembers lists the active memberships of a group
func (s *GroupService) ListMembers(ctx context.Context, groupID uuid.UUID) ([]MembershipResponse, error) {
	memberships, err := s.userGroupRepo.FindByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	responses := make([]MembershipResponse, len(memberships))
	for i := range memberships {
		responses[i] = *ToMembershipResponse(&memberships[i])
	}
	return responses, nil
}
