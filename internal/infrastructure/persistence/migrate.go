package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/clinistock/backend/internal/domain/access"
	"github.com/clinistock/backend/internal/domain/catalog"
	"github.com/clinistock/backend/internal/domain/identity"
	"github.com/clinistock/backend/internal/domain/inventory"
	"github.com/clinistock/backend/internal/domain/org"
)

// AutoMigrate materializes the storage schema for every entity of the data
// core. Tables are created in foreign-key dependency order, leaves last.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&identity.UserIdentity{},
		&identity.Group{},
		&identity.UserGroup{},
		&org.Location{},
		&org.Section{},
		&org.Ward{},
		&access.Scope{},
		&catalog.Category{},
		&catalog.Subcategory{},
		&catalog.Substance{},
		&catalog.SubstanceCategoryLink{},
		&catalog.Vendor{},
		&catalog.Contraindication{},
		&catalog.ContainerMaterial{},
		&catalog.TradeName{},
		&inventory.Batch{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
