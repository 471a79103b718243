package persistence

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinistock/backend/internal/domain/shared"
)

// applyFilter applies the common filter options to a query. Soft-deleted rows
// are excluded by gorm's default scope; IncludeDeleted lifts that explicitly.
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.IncludeDeleted {
		query = query.Unscoped()
	}

	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	}

	return query
}

// softDelete marks all rows matching the condition as logically deleted,
// recording the deleting actor. Rows already deleted are left untouched by
// gorm's soft-delete scope on the update.
func softDelete(tx *gorm.DB, model interface{}, deletedBy uuid.UUID, now time.Time, query string, args ...interface{}) error {
	return tx.Model(model).
		Where(query, args...).
		Updates(map[string]interface{}{
			"deleted_at": now,
			"deleted_by": deletedBy,
		}).Error
}

// detach sets a nullable foreign-key column to null on all rows matching the
// condition, recording the actor as updater. Used for set-null delete
// policies.
func detach(tx *gorm.DB, model interface{}, column string, updatedBy uuid.UUID, now time.Time, query string, args ...interface{}) error {
	return tx.Model(model).
		Where(query, args...).
		Updates(map[string]interface{}{
			column:       nil,
			"updated_at": now,
			"updated_by": updatedBy,
		}).Error
}
