package org

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinistock/backend/internal/domain/shared"
)

func TestNewLocation(t *testing.T) {
	actor := uuid.New()

	t.Run("creates location with valid inputs", func(t *testing.T) {
		location, err := NewLocation(actor, "University Hospital", "LOC1")
		require.NoError(t, err)
		require.NotNil(t, location)

		assert.Equal(t, "University Hospital", location.Name)
		assert.Equal(t, "LOC1", location.Code)
		assert.Equal(t, actor, location.CreatedBy)
		assert.NotEqual(t, uuid.Nil, location.ID)
	})

	t.Run("converts code to uppercase", func(t *testing.T) {
		location, err := NewLocation(actor, "University Hospital", "loc1")
		require.NoError(t, err)
		assert.Equal(t, "LOC1", location.Code)
	})

	t.Run("fails without actor", func(t *testing.T) {
		_, err := NewLocation(uuid.Nil, "University Hospital", "LOC1")
		require.Error(t, err)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewLocation(actor, "", "LOC1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Name cannot be empty")
	})

	t.Run("fails with invalid code characters", func(t *testing.T) {
		_, err := NewLocation(actor, "University Hospital", "LOC 1!")
		require.Error(t, err)
	})
}

func TestNewSection(t *testing.T) {
	actor := uuid.New()
	location, err := NewLocation(actor, "University Hospital", "LOC1")
	require.NoError(t, err)

	t.Run("creates section under location", func(t *testing.T) {
		section, err := NewSection(actor, location, "Central Pharmacy", "PHARM1", SectionTypePharmacy)
		require.NoError(t, err)

		assert.Equal(t, location.ID, section.LocationID)
		assert.Equal(t, SectionTypePharmacy, section.Type)
		assert.Equal(t, UnitStatusActive, section.Status)
	})

	t.Run("fails without location", func(t *testing.T) {
		_, err := NewSection(actor, nil, "Central Pharmacy", "PHARM1", SectionTypePharmacy)
		assert.Equal(t, shared.ErrReferentialIntegrity, err)
	})

	t.Run("fails with deleted location", func(t *testing.T) {
		deleted, err := NewLocation(actor, "Closed Site", "LOC9")
		require.NoError(t, err)
		require.NoError(t, deleted.MarkDeleted(actor))

		_, err = NewSection(actor, deleted, "Central Pharmacy", "PHARM1", SectionTypePharmacy)
		assert.Equal(t, shared.ErrReferentialIntegrity, err)
	})

	t.Run("fails with unknown type", func(t *testing.T) {
		_, err := NewSection(actor, location, "Central Pharmacy", "PHARM1", SectionType("inpatients"))
		require.Error(t, err)
	})
}

func TestNewWard(t *testing.T) {
	actor := uuid.New()
	location, err := NewLocation(actor, "University Hospital", "LOC1")
	require.NoError(t, err)
	section, err := NewSection(actor, location, "Oncology Outpatients", "ONC1", SectionTypeOutpatients)
	require.NoError(t, err)

	t.Run("creates ward pinning both ancestors", func(t *testing.T) {
		ward, err := NewWard(actor, location, section, "Ward A", "WARD-A")
		require.NoError(t, err)

		assert.Equal(t, location.ID, ward.LocationID)
		assert.Equal(t, section.ID, ward.SectionID)
		assert.Equal(t, UnitStatusActive, ward.Status)
	})

	t.Run("rejects section belonging to another location", func(t *testing.T) {
		other, err := NewLocation(actor, "Satellite Clinic", "LOC2")
		require.NoError(t, err)

		_, err = NewWard(actor, other, section, "Ward A", "WARD-A")
		assert.Equal(t, shared.ErrReferentialIntegrity, err)
	})

	t.Run("rejects deleted section", func(t *testing.T) {
		gone, err := NewSection(actor, location, "Closed Section", "GONE1", SectionTypeOutpatients)
		require.NoError(t, err)
		require.NoError(t, gone.MarkDeleted(actor))

		_, err = NewWard(actor, location, gone, "Ward A", "WARD-A")
		assert.Equal(t, shared.ErrReferentialIntegrity, err)
	})
}

func TestSection_Lifecycle(t *testing.T) {
	actor := uuid.New()
	location, err := NewLocation(actor, "University Hospital", "LOC1")
	require.NoError(t, err)

	t.Run("deactivate and activate", func(t *testing.T) {
		section, err := NewSection(actor, location, "Central Pharmacy", "PHARM1", SectionTypePharmacy)
		require.NoError(t, err)

		require.NoError(t, section.Deactivate(actor))
		assert.False(t, section.IsActive())

		require.NoError(t, section.Activate(actor))
		assert.True(t, section.IsActive())
	})

	t.Run("mutation after deletion fails", func(t *testing.T) {
		section, err := NewSection(actor, location, "Central Pharmacy", "PHARM2", SectionTypePharmacy)
		require.NoError(t, err)
		require.NoError(t, section.MarkDeleted(actor))

		assert.Equal(t, shared.ErrInvalidStateTransition, section.Update(actor, "Renamed"))
		assert.Equal(t, shared.ErrInvalidStateTransition, section.Deactivate(actor))
	})

	t.Run("operational metadata", func(t *testing.T) {
		section, err := NewSection(actor, location, "Central Pharmacy", "PHARM3", SectionTypePharmacy)
		require.NoError(t, err)

		require.NoError(t, section.SetOperationalMetadata(actor, "CC-100", "ORD-7", "internal"))
		assert.Equal(t, "CC-100", section.CostCenterNumber)
		assert.Equal(t, "ORD-7", section.OrderNumber)
		assert.Equal(t, "internal", section.MovementType)
	})
}
