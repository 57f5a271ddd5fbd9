package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subscriptiondomain "github.com/Candratama/invow-sub000/internal/subscription/domain"
)

func TestRegistryHasExactlyOneFreeTemplate(t *testing.T) {
	free := 0
	for _, tmpl := range registry {
		if tmpl.Tier == subscriptiondomain.TierFree {
			free++
			assert.Equal(t, DefaultTemplateID(), tmpl.ID)
		}
	}
	assert.Equal(t, 1, free)
	assert.Len(t, registry, 8)
}

func TestRegistryIDsAreSlugsAndUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, tmpl := range registry {
		assert.NotEmpty(t, tmpl.ID)
		assert.False(t, seen[tmpl.ID], "duplicate id %s", tmpl.ID)
		seen[tmpl.ID] = true

		got, ok := Lookup(tmpl.ID)
		require.True(t, ok)
		assert.Equal(t, tmpl.Name, got.Name)
	}
}

func TestLookupUnknownID(t *testing.T) {
	_, ok := Lookup("nope")
	assert.False(t, ok)
}

func TestCanAccessMonotonicAcrossTiers(t *testing.T) {
	for _, tmpl := range registry {
		// Premium accesses everything; free accesses only free templates.
		assert.True(t, CanAccess(tmpl.ID, subscriptiondomain.TierPremium), tmpl.ID)
		assert.Equal(t, tmpl.Tier == subscriptiondomain.TierFree,
			CanAccess(tmpl.ID, subscriptiondomain.TierFree), tmpl.ID)
	}
	assert.False(t, CanAccess("nope", subscriptiondomain.TierPremium))
	assert.False(t, CanAccess("nope", subscriptiondomain.TierFree))
}

func TestTemplatesForTier(t *testing.T) {
	free := TemplatesForTier(subscriptiondomain.TierFree)
	require.Len(t, free, 1)
	assert.Equal(t, subscriptiondomain.TierFree, free[0].Tier)

	premium := TemplatesForTier(subscriptiondomain.TierPremium)
	assert.Len(t, premium, len(registry))
}

func TestTemplatesWithAccess(t *testing.T) {
	forFree := TemplatesWithAccess(subscriptiondomain.TierFree)
	require.Len(t, forFree, len(registry))
	locked := 0
	for _, entry := range forFree {
		if entry.IsLocked {
			locked++
			assert.Equal(t, subscriptiondomain.TierPremium, entry.Tier)
		} else {
			assert.Equal(t, subscriptiondomain.TierFree, entry.Tier)
		}
	}
	assert.Equal(t, len(registry)-1, locked)

	for _, entry := range TemplatesWithAccess(subscriptiondomain.TierPremium) {
		assert.False(t, entry.IsLocked, entry.ID)
	}
}

func TestBuildRegistryRejectsWrongFreeCount(t *testing.T) {
	assert.Panics(t, func() {
		buildRegistry([]templateSpec{
			{"One", "", subscriptiondomain.TierPremium, simpleContent},
		})
	})
	assert.Panics(t, func() {
		buildRegistry([]templateSpec{
			{"One", "", subscriptiondomain.TierFree, simpleContent},
			{"Two", "", subscriptiondomain.TierFree, classicContent},
		})
	})
}
