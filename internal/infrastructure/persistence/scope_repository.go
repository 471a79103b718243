package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinistock/backend/internal/domain/access"
	"github.com/clinistock/backend/internal/domain/shared"
)

// GormScopeRepository implements ScopeRepository using GORM
type GormScopeRepository struct {
	db *gorm.DB
}

// NewGormScopeRepository creates a new GormScopeRepository
func NewGormScopeRepository(db *gorm.DB) *GormScopeRepository {
	return &GormScopeRepository{db: db}
}

// FindByID finds a scope by its ID
func (r *GormScopeRepository) FindByID(ctx context.Context, id uuid.UUID) (*access.Scope, error) {
	var scope access.Scope
	if err := r.db.WithContext(ctx).First(&scope, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &scope, nil
}

// FindByIDIncludingDeleted finds a scope by its ID regardless of deletion
func (r *GormScopeRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*access.Scope, error) {
	var scope access.Scope
	if err := r.db.WithContext(ctx).Unscoped().First(&scope, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &scope, nil
}

// FindByUser lists the active scope records of a user
func (r *GormScopeRepository) FindByUser(ctx context.Context, userID uuid.UUID) (access.ScopeSet, error) {
	var scopes []access.Scope
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&scopes).Error; err != nil {
		return nil, err
	}
	return access.ScopeSet(scopes), nil
}

// Save creates or updates a scope
func (r *GormScopeRepository) Save(ctx context.Context, scope *access.Scope) error {
	return r.db.WithContext(ctx).Save(scope).Error
}

// Delete soft-deletes a single scope record
func (r *GormScopeRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var scope access.Scope
		if err := tx.Unscoped().First(&scope, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if scope.IsDeleted() {
			return shared.ErrInvalidStateTransition
		}
		return softDelete(tx, &access.Scope{}, deletedBy, time.Now(), "id = ?", id)
	})
}

// Ensure GormScopeRepository implements ScopeRepository
var _ access.ScopeRepository = (*GormScopeRepository)(nil)
