package inventory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinistock/backend/internal/domain/catalog"
	"github.com/clinistock/backend/internal/domain/org"
	"github.com/clinistock/backend/internal/domain/shared"
)

func newFixtures(t *testing.T) (uuid.UUID, *org.Location, *org.Section, *org.Ward, *catalog.TradeName) {
	t.Helper()
	actor := uuid.New()

	location, err := org.NewLocation(actor, "University Hospital", "LOC1")
	require.NoError(t, err)
	section, err := org.NewSection(actor, location, "Central Pharmacy", "PHARM1", org.SectionTypePharmacy)
	require.NoError(t, err)
	ward, err := org.NewWard(actor, location, section, "Ward A", "WARD-A")
	require.NoError(t, err)

	substance, err := catalog.NewSubstance(actor, "Cisplatin")
	require.NoError(t, err)
	tradeName, err := catalog.NewTradeName(actor, substance, "Cisplatin Accord 1 mg/ml")
	require.NoError(t, err)

	return actor, location, section, ward, tradeName
}

func TestNewBatch(t *testing.T) {
	actor, location, section, ward, tradeName := newFixtures(t)
	quantity := decimal.RequireFromString("10.0000")

	t.Run("creates batch at a consistent triple", func(t *testing.T) {
		batch, err := NewBatch(actor, location, section, ward, tradeName, "CIS-2024-001", quantity)
		require.NoError(t, err)

		assert.Equal(t, location.ID, batch.LocationID)
		assert.Equal(t, section.ID, batch.SectionID)
		assert.Equal(t, ward.ID, batch.WardID)
		assert.Equal(t, tradeName.ID, batch.TradeNameID)
		assert.True(t, batch.Quantity.Equal(quantity))
	})

	t.Run("rejects ward from a different location", func(t *testing.T) {
		otherActor := uuid.New()
		otherLocation, err := org.NewLocation(otherActor, "Satellite Clinic", "LOC2")
		require.NoError(t, err)
		otherSection, err := org.NewSection(otherActor, otherLocation, "Outpatients", "OUT1", org.SectionTypeOutpatients)
		require.NoError(t, err)

		_, err = NewBatch(actor, otherLocation, otherSection, ward, tradeName, "CIS-2024-002", quantity)
		assert.Equal(t, shared.ErrReferentialIntegrity, err)
	})

	t.Run("rejects section not owned by location", func(t *testing.T) {
		otherLocation, err := org.NewLocation(actor, "Satellite Clinic", "LOC3")
		require.NoError(t, err)

		_, err = NewBatch(actor, otherLocation, section, ward, tradeName, "CIS-2024-003", quantity)
		assert.Equal(t, shared.ErrReferentialIntegrity, err)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := NewBatch(actor, location, section, ward, tradeName, "CIS-2024-004", decimal.RequireFromString("-1"))
		require.Error(t, err)
	})

	t.Run("rejects deleted trade name", func(t *testing.T) {
		substance, err := catalog.NewSubstance(actor, "Carboplatin")
		require.NoError(t, err)
		gone, err := catalog.NewTradeName(actor, substance, "Retired brand")
		require.NoError(t, err)
		require.NoError(t, gone.MarkDeleted(actor))

		_, err = NewBatch(actor, location, section, ward, gone, "CARB-2024-001", quantity)
		assert.Equal(t, shared.ErrReferentialIntegrity, err)
	})
}

func TestBatch_Mutations(t *testing.T) {
	actor, location, section, ward, tradeName := newFixtures(t)

	t.Run("quantity stays non-negative", func(t *testing.T) {
		batch, err := NewBatch(actor, location, section, ward, tradeName, "CIS-2024-001", decimal.RequireFromString("10.0000"))
		require.NoError(t, err)

		require.NoError(t, batch.SetQuantity(actor, decimal.Zero))
		assert.Error(t, batch.SetQuantity(actor, decimal.RequireFromString("-0.0001")))
	})

	t.Run("expiry date is informational", func(t *testing.T) {
		batch, err := NewBatch(actor, location, section, ward, tradeName, "CIS-2024-001", decimal.RequireFromString("10.0000"))
		require.NoError(t, err)

		expiry := time.Now().Add(-24 * time.Hour)
		require.NoError(t, batch.SetExpiryDate(actor, &expiry))
		assert.True(t, batch.IsExpired(time.Now()))

		require.NoError(t, batch.SetExpiryDate(actor, nil))
		assert.False(t, batch.IsExpired(time.Now()))
	})

	t.Run("mutation after deletion fails", func(t *testing.T) {
		batch, err := NewBatch(actor, location, section, ward, tradeName, "CIS-2024-001", decimal.RequireFromString("10.0000"))
		require.NoError(t, err)
		require.NoError(t, batch.MarkDeleted(actor))

		assert.Equal(t, shared.ErrInvalidStateTransition, batch.SetQuantity(actor, decimal.Zero))
	})
}
