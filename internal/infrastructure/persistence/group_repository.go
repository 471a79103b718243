package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinistock/backend/internal/domain/identity"
	"github.com/clinistock/backend/internal/domain/shared"
)

// GormGroupRepository implements GroupRepository using GORM
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGormGroupRepository creates a new GormGroupRepository
func NewGormGroupRepository(db *gorm.DB) *GormGroupRepository {
	return &GormGroupRepository{db: db}
}

// FindByID finds a group by its ID
func (r *GormGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Group, error) {
	var group identity.Group
	if err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// FindByIDIncludingDeleted finds a group by its ID regardless of deletion
func (r *GormGroupRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*identity.Group, error) {
	var group identity.Group
	if err := r.db.WithContext(ctx).Unscoped().First(&group, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// FindAll finds all groups matching the filter
func (r *GormGroupRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Group, error) {
	var groups []identity.Group
	query := applyFilter(r.db.WithContext(ctx).Model(&identity.Group{}), filter)
	if err := query.Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// Save creates or updates a group
func (r *GormGroupRepository) Save(ctx context.Context, group *identity.Group) error {
	return r.db.WithContext(ctx).Save(group).Error
}

// Delete soft-deletes a group and its memberships in one transaction
func (r *GormGroupRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group identity.Group
		if err := tx.Unscoped().First(&group, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if group.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}

		now := time.Now()
		if err := softDelete(tx, &identity.UserGroup{}, deletedBy, now, "group_id = ?", id); err != nil {
			return err
		}
		return softDelete(tx, &identity.Group{}, deletedBy, now, "id = ?", id)
	})
}

// Ensure GormGroupRepository implements GroupRepository
var _ identity.GroupRepository = (*GormGroupRepository)(nil)

// GormUserGroupRepository implements UserGroupRepository using GORM
type GormUserGroupRepository struct {
	db *gorm.DB
}

// NewGormUserGroupRepository creates a new GormUserGroupRepository
func NewGormUserGroupRepository(db *gorm.DB) *GormUserGroupRepository {
	return &GormUserGroupRepository{db: db}
}

// FindByGroup lists active memberships of a group
func (r *GormUserGroupRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]identity.UserGroup, error) {
	var memberships []identity.UserGroup
	if err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// FindByUser lists active memberships of a user
func (r *GormUserGroupRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]identity.UserGroup, error) {
	var memberships []identity.UserGroup
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// Save creates or updates a membership
func (r *GormUserGroupRepository) Save(ctx context.Context, membership *identity.UserGroup) error {
	return r.db.WithContext(ctx).Save(membership).Error
}

// Delete soft-deletes a single membership
func (r *GormUserGroupRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var membership identity.UserGroup
		if err := tx.Unscoped().First(&membership, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if membership.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}
		return softDelete(tx, &identity.UserGroup{}, deletedBy, time.Now(), "id = ?", id)
	})
}

// Ensure GormUserGroupRepository implements UserGroupRepository
var _ identity.UserGroupRepository = (*GormUserGroupRepository)(nil)
