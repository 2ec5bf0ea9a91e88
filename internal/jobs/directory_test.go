package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afrilink/platform_be/internal/seeds"
)

func TestSort(t *testing.T) {
	list := seeds.Jobs()

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(Sort(list, SortNewest)))
	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, ids(Sort(list, SortOldest)))
	assert.Equal(t, []string{"1", "3", "4", "2", "5"}, ids(Sort(list, SortBudgetHigh)))
	assert.Equal(t, []string{"5", "2", "4", "3", "1"}, ids(Sort(list, SortBudgetLow)))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(Sort(list, SortOrder("popular"))))

	// input is untouched
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(list))
}

func TestDirectory_SearchFiltersThenSorts(t *testing.T) {
	d := NewDirectory(seeds.Jobs())
	got := d.Search(Criteria{Budget: BracketUnder1000}, SortBudgetHigh)
	assert.Equal(t, []string{"4", "2", "5"}, ids(got))
}

func TestDirectory_Get(t *testing.T) {
	d := NewDirectory(seeds.Jobs())

	j, err := d.Get("3")
	require.NoError(t, err)
	assert.Equal(t, "WordPress Website for NGO", j.Title)

	_, err = d.Get("99")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestDirectory_SkillsAreUniqueInFirstSeenOrder(t *testing.T) {
	d := NewDirectory(seeds.Jobs())
	skills := d.Skills()

	assert.Equal(t, []string{"React", "Node.js", "MongoDB", "TypeScript", "Stripe API", "Figma"}, skills[:6])

	seen := map[string]bool{}
	for _, s := range skills {
		assert.False(t, seen[s], "duplicate %s", s)
		seen[s] = true
	}
	assert.Len(t, skills, 21)
}

func TestDirectory_Similar(t *testing.T) {
	d := NewDirectory(seeds.Jobs())
	assert.Equal(t, []string{"2"}, ids(d.Similar("1", 2)))
	assert.Equal(t, []string{"1"}, ids(d.Similar("2", 2)))
	assert.Equal(t, []string{"1", "2"}, ids(d.Similar("99", 2)))
	assert.Equal(t, []string{"1", "2", "3"}, ids(d.Similar("4", 3)))
	assert.Len(t, d.Similar("1", 100), len(d.List())-1)
}
