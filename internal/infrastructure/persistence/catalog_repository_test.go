package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/clinistock/backend/internal/domain/catalog"
	"github.com/clinistock/backend/internal/domain/inventory"
	"github.com/clinistock/backend/internal/domain/shared"
)

type catalogRepos struct {
	categories    *GormCategoryRepository
	subcategories *GormSubcategoryRepository
	substances    *GormSubstanceRepository
	links         *GormSubstanceCategoryLinkRepository
	vendors       *GormVendorRepository
	tradeNames    *GormTradeNameRepository
	contras       *GormContraindicationRepository
	materials     *GormContainerMaterialRepository
}

func newCatalogRepos(db *gorm.DB) catalogRepos {
	return catalogRepos{
		categories:    NewGormCategoryRepository(db),
		subcategories: NewGormSubcategoryRepository(db),
		substances:    NewGormSubstanceRepository(db),
		links:         NewGormSubstanceCategoryLinkRepository(db),
		vendors:       NewGormVendorRepository(db),
		tradeNames:    NewGormTradeNameRepository(db),
		contras:       NewGormContraindicationRepository(db),
		materials:     NewGormContainerMaterialRepository(db),
	}
}

func seedTradeName(t *testing.T, repos catalogRepos, actor uuid.UUID, substanceName, label string) (*catalog.Substance, *catalog.TradeName) {
	t.Helper()
	ctx := context.Background()

	substance, err := catalog.NewSubstance(actor, substanceName)
	require.NoError(t, err)
	require.NoError(t, repos.substances.Save(ctx, substance))

	tradeName, err := catalog.NewTradeName(actor, substance, label)
	require.NoError(t, err)
	require.NoError(t, repos.tradeNames.Save(ctx, tradeName))

	return substance, tradeName
}

func TestGormContraindicationRepository_DeleteDetachesTradeNames(t *testing.T) {
	db := setupTestDB(t)
	repos := newCatalogRepos(db)
	ctx := context.Background()
	actor := uuid.Must(uuid.NewV7())

	_, tradeName := seedTradeName(t, repos, actor, "Ibuprofen", "Nurofen 400mg")

	contra, err := catalog.NewContraindication(actor, "Pregnancy")
	require.NoError(t, err)
	require.NoError(t, repos.contras.Save(ctx, contra))

	require.NoError(t, tradeName.AssignContraindication(actor, contra))
	require.NoError(t, repos.tradeNames.Save(ctx, tradeName))

	require.NoError(t, repos.contras.Delete(ctx, contra.ID, actor))

	t.Run("reference row is gone", func(t *testing.T) {
		_, err := repos.contras.FindByID(ctx, contra.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("trade name survives with the reference cleared", func(t *testing.T) {
		kept, err := repos.tradeNames.FindByID(ctx, tradeName.ID)
		require.NoError(t, err)
		assert.False(t, kept.IsDeleted())
		assert.Nil(t, kept.ContraindicationID)
	})
}

func TestGormContainerMaterialRepository_DeleteDetachesTradeNames(t *testing.T) {
	db := setupTestDB(t)
	repos := newCatalogRepos(db)
	ctx := context.Background()
	actor := uuid.Must(uuid.NewV7())

	_, tradeName := seedTradeName(t, repos, actor, "Ibuprofen", "Nurofen 400mg")

	material, err := catalog.NewContainerMaterial(actor, "Amber glass")
	require.NoError(t, err)
	require.NoError(t, repos.materials.Save(ctx, material))

	require.NoError(t, tradeName.AssignContainerMaterial(actor, material))
	require.NoError(t, repos.tradeNames.Save(ctx, tradeName))

	require.NoError(t, repos.materials.Delete(ctx, material.ID, actor))

	kept, err := repos.tradeNames.FindByID(ctx, tradeName.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.ContainerMaterialID)
}

func TestGormSubstanceRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repos := newCatalogRepos(db)
	orgRepos := newOrgRepos(db)
	ctx := context.Background()
	actor := uuid.Must(uuid.NewV7())

	substance, tradeName := seedTradeName(t, repos, actor, "Ibuprofen", "Nurofen 400mg")
	_, otherTradeName := seedTradeName(t, repos, actor, "Paracetamol", "Dafalgan 500mg")

	category, err := catalog.NewCategory(actor, "Analgesics", catalog.CategoryTypeProducible)
	require.NoError(t, err)
	require.NoError(t, repos.categories.Save(ctx, category))

	link, err := catalog.NewSubstanceCategoryLink(actor, substance, category, nil)
	require.NoError(t, err)
	require.NoError(t, repos.links.Save(ctx, link))

	location, section, ward := seedHierarchy(t, orgRepos, actor, "MUC-01")
	batch, err := inventory.NewBatch(actor, location, section, ward, tradeName, "Lot A", decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, orgRepos.batches.Save(ctx, batch))

	otherBatch, err := inventory.NewBatch(actor, location, section, ward, otherTradeName, "Lot B", decimal.NewFromInt(20))
	require.NoError(t, err)
	require.NoError(t, orgRepos.batches.Save(ctx, otherBatch))

	require.NoError(t, repos.substances.Delete(ctx, substance.ID, actor))

	t.Run("substance, its trade names and their batches are gone", func(t *testing.T) {
		_, err := repos.substances.FindByID(ctx, substance.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = repos.tradeNames.FindByID(ctx, tradeName.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = orgRepos.batches.FindByID(ctx, batch.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("category links of the substance are removed", func(t *testing.T) {
		links, err := repos.links.FindBySubstance(ctx, substance.ID)
		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("unrelated trade name and batch survive", func(t *testing.T) {
		_, err := repos.tradeNames.FindByID(ctx, otherTradeName.ID)
		require.NoError(t, err)
		_, err = orgRepos.batches.FindByID(ctx, otherBatch.ID)
		require.NoError(t, err)
	})

	t.Run("category itself is untouched", func(t *testing.T) {
		_, err := repos.categories.FindByID(ctx, category.ID)
		require.NoError(t, err)
	})
}

func TestGormCategoryRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repos := newCatalogRepos(db)
	ctx := context.Background()
	actor := uuid.Must(uuid.NewV7())

	category, err := catalog.NewCategory(actor, "Analgesics", catalog.CategoryTypeProducible)
	require.NoError(t, err)
	require.NoError(t, repos.categories.Save(ctx, category))

	subcategory, err := catalog.NewSubcategory(actor, category, "NSAIDs")
	require.NoError(t, err)
	require.NoError(t, repos.subcategories.Save(ctx, subcategory))

	substance, _ := seedTradeName(t, repos, actor, "Ibuprofen", "Nurofen 400mg")
	link, err := catalog.NewSubstanceCategoryLink(actor, substance, category, subcategory)
	require.NoError(t, err)
	require.NoError(t, repos.links.Save(ctx, link))

	require.NoError(t, repos.categories.Delete(ctx, category.ID, actor))

	t.Run("category, subcategories and links are gone", func(t *testing.T) {
		_, err := repos.categories.FindByID(ctx, category.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = repos.subcategories.FindByID(ctx, subcategory.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		links, err := repos.links.FindByCategory(ctx, category.ID)
		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("substance keeps existing without the classification", func(t *testing.T) {
		_, err := repos.substances.FindByID(ctx, substance.ID)
		require.NoError(t, err)
	})
}

func TestGormSubcategoryRepository_DeleteDetachesLinks(t *testing.T) {
	db := setupTestDB(t)
	repos := newCatalogRepos(db)
	ctx := context.Background()
	actor := uuid.Must(uuid.NewV7())

	category, err := catalog.NewCategory(actor, "Analgesics", catalog.CategoryTypeProducible)
	require.NoError(t, err)
	require.NoError(t, repos.categories.Save(ctx, category))

	subcategory, err := catalog.NewSubcategory(actor, category, "NSAIDs")
	require.NoError(t, err)
	require.NoError(t, repos.subcategories.Save(ctx, subcategory))

	substance, _ := seedTradeName(t, repos, actor, "Ibuprofen", "Nurofen 400mg")
	link, err := catalog.NewSubstanceCategoryLink(actor, substance, category, subcategory)
	require.NoError(t, err)
	require.NoError(t, repos.links.Save(ctx, link))

	require.NoError(t, repos.subcategories.Delete(ctx, subcategory.ID, actor))

	// The link stays, widened to the parent category
	links, err := repos.links.FindByCategory(ctx, category.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Nil(t, links[0].SubcategoryID)
}

func TestGormVendorRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repos := newCatalogRepos(db)
	orgRepos := newOrgRepos(db)
	ctx := context.Background()
	actor := uuid.Must(uuid.NewV7())

	_, tradeName := seedTradeName(t, repos, actor, "Ibuprofen", "Nurofen 400mg")

	producer, err := catalog.NewVendor(actor, "Reckitt", catalog.VendorTypeProducer)
	require.NoError(t, err)
	require.NoError(t, repos.vendors.Save(ctx, producer))

	require.NoError(t, tradeName.AssignProducer(actor, producer))
	require.NoError(t, repos.tradeNames.Save(ctx, tradeName))

	location, section, ward := seedHierarchy(t, orgRepos, actor, "MUC-01")
	batch, err := inventory.NewBatch(actor, location, section, ward, tradeName, "Lot A", decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, orgRepos.batches.Save(ctx, batch))

	require.NoError(t, repos.vendors.Delete(ctx, producer.ID, actor))

	t.Run("vendor, its trade names and their batches are gone", func(t *testing.T) {
		_, err := repos.vendors.FindByID(ctx, producer.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = repos.tradeNames.FindByID(ctx, tradeName.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = orgRepos.batches.FindByID(ctx, batch.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormTradeNameRepository_FindBySubstance(t *testing.T) {
	db := setupTestDB(t)
	repos := newCatalogRepos(db)
	ctx := context.Background()
	actor := uuid.Must(uuid.NewV7())

	substance, first := seedTradeName(t, repos, actor, "Ibuprofen", "Nurofen 400mg")

	second, err := catalog.NewTradeName(actor, substance, "Advil 200mg")
	require.NoError(t, err)
	require.NoError(t, repos.tradeNames.Save(ctx, second))

	names, err := repos.tradeNames.FindBySubstance(ctx, substance.ID)
	require.NoError(t, err)
	require.Len(t, names, 2)
	// Ordered by label name
	assert.Equal(t, second.ID, names[0].ID)
	assert.Equal(t, first.ID, names[1].ID)
}
