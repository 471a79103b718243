package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinistock/backend/internal/domain/shared"
)

func TestNewSubstance(t *testing.T) {
	actor := uuid.New()

	t.Run("creates substance", func(t *testing.T) {
		substance, err := NewSubstance(actor, "Cisplatin")
		require.NoError(t, err)

		assert.Equal(t, "Cisplatin", substance.Name)
		assert.False(t, substance.Min.Valid)
		assert.False(t, substance.DoseLimit.Valid)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewSubstance(actor, "")
		require.Error(t, err)
	})

	t.Run("calculation mode is validated", func(t *testing.T) {
		substance, err := NewSubstance(actor, "Carboplatin")
		require.NoError(t, err)

		require.NoError(t, substance.SetCalculationMode(actor, CalculationModeAUC))
		assert.Equal(t, CalculationModeAUC, substance.CalculationMode)

		assert.Error(t, substance.SetCalculationMode(actor, CalculationMode("per-kg")))
	})

	t.Run("dose bounds are stored, not enforced", func(t *testing.T) {
		substance, err := NewSubstance(actor, "Doxorubicin")
		require.NoError(t, err)

		min := decimal.NewNullDecimal(decimal.RequireFromString("0.5000"))
		max := decimal.NewNullDecimal(decimal.RequireFromString("2.0000"))
		require.NoError(t, substance.SetDoseBounds(actor, min, max, decimal.NullDecimal{}, decimal.NullDecimal{}))

		assert.True(t, substance.Min.Valid)
		assert.True(t, substance.Max.Valid)
		assert.False(t, substance.Rounding.Valid)
	})
}

func TestNewSubstanceCategoryLink(t *testing.T) {
	actor := uuid.New()

	substance, err := NewSubstance(actor, "Cisplatin")
	require.NoError(t, err)
	category, err := NewCategory(actor, "Cytostatics", CategoryTypeProducible)
	require.NoError(t, err)
	subcategory, err := NewSubcategory(actor, category, "Platinum compounds")
	require.NoError(t, err)

	t.Run("links substance to category", func(t *testing.T) {
		link, err := NewSubstanceCategoryLink(actor, substance, category, nil)
		require.NoError(t, err)

		assert.Equal(t, substance.ID, link.SubstanceID)
		assert.Equal(t, category.ID, link.CategoryID)
		assert.Nil(t, link.SubcategoryID)
	})

	t.Run("links with matching subcategory", func(t *testing.T) {
		link, err := NewSubstanceCategoryLink(actor, substance, category, subcategory)
		require.NoError(t, err)

		require.NotNil(t, link.SubcategoryID)
		assert.Equal(t, subcategory.ID, *link.SubcategoryID)
	})

	t.Run("rejects subcategory from another category", func(t *testing.T) {
		otherCategory, err := NewCategory(actor, "Solutions", CategoryTypeSolution)
		require.NoError(t, err)

		_, err = NewSubstanceCategoryLink(actor, substance, otherCategory, subcategory)
		assert.Equal(t, shared.ErrReferentialIntegrity, err)
	})

	t.Run("rejects deleted substance", func(t *testing.T) {
		gone, err := NewSubstance(actor, "Retired substance")
		require.NoError(t, err)
		require.NoError(t, gone.MarkDeleted(actor))

		_, err = NewSubstanceCategoryLink(actor, gone, category, nil)
		assert.Equal(t, shared.ErrReferentialIntegrity, err)
	})
}

func TestNewCategory(t *testing.T) {
	actor := uuid.New()

	t.Run("creates active category", func(t *testing.T) {
		category, err := NewCategory(actor, "Cytostatics", CategoryTypeProducible)
		require.NoError(t, err)

		assert.Equal(t, CategoryStatusActive, category.Status)
		assert.True(t, category.IsActive())
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewCategory(actor, "Cytostatics", CategoryType("misc"))
		require.Error(t, err)
	})

	t.Run("subcategory requires live parent", func(t *testing.T) {
		category, err := NewCategory(actor, "Cytostatics", CategoryTypeProducible)
		require.NoError(t, err)
		require.NoError(t, category.MarkDeleted(actor))

		_, err = NewSubcategory(actor, category, "Platinum compounds")
		assert.Equal(t, shared.ErrReferentialIntegrity, err)
	})
}
