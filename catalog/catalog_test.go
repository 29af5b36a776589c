package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range All() {
		assert.Falsef(t, seen[s.ID], "duplicate service id %q", s.ID)
		seen[s.ID] = true
	}
	assert.True(t, seen[GeneralServiceID], "catalog must contain the general service")
}

func TestByID(t *testing.T) {
	s, ok := ByID("brake")
	assert.True(t, ok)
	assert.Equal(t, "Brake Specialist", s.Name)

	_, ok = ByID("turbo")
	assert.False(t, ok)
}

func TestFilterKnown(t *testing.T) {
	assert.Equal(t, []string{"oil", "brake"}, FilterKnown([]string{"oil", "turbo", "brake"}))
	assert.Empty(t, FilterKnown([]string{"turbo", "nitro"}))
	assert.Empty(t, FilterKnown(nil))
}

func TestNamesMatchCatalogOrder(t *testing.T) {
	names := Names()
	services := All()
	assert.Len(t, names, len(services))
	for i, s := range services {
		assert.Equal(t, s.Name, names[i])
	}
}

func TestByCategoryCoversEveryService(t *testing.T) {
	grouped := ByCategory()
	total := 0
	for _, svcs := range grouped {
		total += len(svcs)
	}
	assert.Equal(t, len(All()), total)
}
