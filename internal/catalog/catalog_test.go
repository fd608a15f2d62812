package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PreservesOrderAndDropsDuplicateIDs(t *testing.T) {
	c := New([]Location{
		{ID: "a", Name: "first", Category: "Yoga"},
		{ID: "b", Name: "second", Category: "Spa"},
		{ID: "a", Name: "dup of first", Category: "Fitness"},
		{ID: "c", Name: "third", Category: "Yoga"},
	})

	require.Equal(t, 3, c.Len())

	all := c.All()
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, "first", c.ByID("a").Name)
}

func TestByID_AbsentIsNil(t *testing.T) {
	c := New(Seed())
	assert.Nil(t, c.ByID("no-such-id"))

	loc := c.ByID("loc-004")
	require.NotNil(t, loc)
	assert.Equal(t, "Soma Float Spa", loc.Name)
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := New(Seed())
	all := c.All()
	all[0].Name = "mutated"
	assert.NotEqual(t, "mutated", c.All()[0].Name)
}

func TestCategories_DistinctFirstSeenOrder(t *testing.T) {
	c := New([]Location{
		{ID: "1", Category: "Yoga"},
		{ID: "2", Category: "Spa"},
		{ID: "3", Category: "Yoga"},
		{ID: "4", Category: "Fitness"},
		{ID: "5", Category: "Spa"},
	})
	assert.Equal(t, []string{"Yoga", "Spa", "Fitness"}, c.Categories())
}

func TestSeed_IsValid(t *testing.T) {
	c := New(Seed())
	require.Equal(t, len(Seed()), c.Len(), "seed must not contain duplicate ids")

	for _, l := range c.All() {
		assert.NotEmpty(t, l.ID)
		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.Category)
		assert.InDelta(t, 37.8, l.Latitude, 0.2, "seed data is expected to stay near SF")
	}
}
