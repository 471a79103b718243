package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinistock/backend/internal/domain/org"
	"github.com/clinistock/backend/internal/domain/shared"
)

func newHierarchy(t *testing.T) (*org.Location, *org.Section, *org.Ward) {
	t.Helper()
	actor := uuid.New()

	location, err := org.NewLocation(actor, "University Hospital", "LOC1")
	require.NoError(t, err)
	section, err := org.NewSection(actor, location, "Central Pharmacy", "PHARM1", org.SectionTypePharmacy)
	require.NoError(t, err)
	ward, err := org.NewWard(actor, location, section, "Ward A", "WARD-A")
	require.NoError(t, err)

	return location, section, ward
}

func TestNewScope(t *testing.T) {
	actor := uuid.New()
	userID := uuid.New()
	location, section, ward := newHierarchy(t)

	t.Run("location-wide grant", func(t *testing.T) {
		scope, err := NewScope(actor, userID, location, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, userID, scope.UserID)
		assert.Equal(t, location.ID, scope.LocationID)
		assert.Nil(t, scope.SectionID)
		assert.Nil(t, scope.WardID)
	})

	t.Run("ward grant pins the full path", func(t *testing.T) {
		scope, err := NewScope(actor, userID, location, section, ward)
		require.NoError(t, err)

		require.NotNil(t, scope.SectionID)
		require.NotNil(t, scope.WardID)
		assert.Equal(t, section.ID, *scope.SectionID)
		assert.Equal(t, ward.ID, *scope.WardID)
	})

	t.Run("ward grant without section is rejected", func(t *testing.T) {
		_, err := NewScope(actor, userID, location, nil, ward)
		assert.Equal(t, shared.ErrReferentialIntegrity, err)
	})

	t.Run("section from another location is rejected", func(t *testing.T) {
		other, err := org.NewLocation(actor, "Satellite Clinic", "LOC2")
		require.NoError(t, err)

		_, err = NewScope(actor, userID, other, section, nil)
		assert.Equal(t, shared.ErrReferentialIntegrity, err)
	})

	t.Run("ward from another section is rejected", func(t *testing.T) {
		otherSection, err := org.NewSection(actor, location, "Outpatients", "OUT1", org.SectionTypeOutpatients)
		require.NoError(t, err)

		_, err = NewScope(actor, userID, location, otherSection, ward)
		assert.Equal(t, shared.ErrReferentialIntegrity, err)
	})

	t.Run("missing user is rejected", func(t *testing.T) {
		_, err := NewScope(actor, uuid.Nil, location, nil, nil)
		assert.Equal(t, shared.ErrReferentialIntegrity, err)
	})
}

func TestScopeSet_Allows(t *testing.T) {
	actor := uuid.New()
	userID := uuid.New()
	location, section, ward := newHierarchy(t)

	otherSection, err := org.NewSection(actor, location, "Outpatients", "OUT1", org.SectionTypeOutpatients)
	require.NoError(t, err)
	otherWard, err := org.NewWard(actor, location, otherSection, "Ward B", "WARD-B")
	require.NoError(t, err)

	t.Run("location-wide scope grants every section and ward", func(t *testing.T) {
		scope, err := NewScope(actor, userID, location, nil, nil)
		require.NoError(t, err)
		set := ScopeSet{*scope}

		assert.True(t, set.Allows(location.ID, section.ID, ward.ID))
		assert.True(t, set.Allows(location.ID, otherSection.ID, otherWard.ID))
		assert.True(t, set.Allows(location.ID, uuid.Nil, uuid.Nil))
		assert.False(t, set.Allows(uuid.New(), section.ID, ward.ID))
	})

	t.Run("section scope denies a sibling section", func(t *testing.T) {
		scope, err := NewScope(actor, userID, location, section, nil)
		require.NoError(t, err)
		set := ScopeSet{*scope}

		assert.True(t, set.Allows(location.ID, section.ID, ward.ID))
		assert.False(t, set.Allows(location.ID, otherSection.ID, otherWard.ID))
	})

	t.Run("ward scope grants exactly that ward", func(t *testing.T) {
		scope, err := NewScope(actor, userID, location, section, ward)
		require.NoError(t, err)
		set := ScopeSet{*scope}

		assert.True(t, set.Allows(location.ID, section.ID, ward.ID))
		assert.False(t, set.Allows(location.ID, otherSection.ID, otherWard.ID))
		// narrow scope does not cover a whole-section request
		assert.False(t, set.Allows(location.ID, section.ID, uuid.Nil))
	})

	t.Run("effective permission is the union of records", func(t *testing.T) {
		broad, err := NewScope(actor, userID, location, nil, nil)
		require.NoError(t, err)
		narrow, err := NewScope(actor, userID, location, section, ward)
		require.NoError(t, err)

		both := ScopeSet{*broad, *narrow}
		assert.True(t, both.Allows(location.ID, section.ID, ward.ID))

		// the broader scope alone still grants the triple
		broadOnly := ScopeSet{*broad}
		assert.True(t, broadOnly.Allows(location.ID, section.ID, ward.ID))
	})

	t.Run("empty set denies everything", func(t *testing.T) {
		assert.False(t, ScopeSet{}.Allows(location.ID, section.ID, ward.ID))
	})
}
