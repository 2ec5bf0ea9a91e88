package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/afrilink/platform_be/internal/models"
	"github.com/afrilink/platform_be/internal/seeds"
)

func ids(list []models.Job) []string {
	out := make([]string, 0, len(list))
	for _, j := range list {
		out = append(out, j.ID)
	}
	return out
}

func TestFilter_BudgetBracketInclusiveRange(t *testing.T) {
	// seed budgets are [5000, 45, 1200, 75, 25]
	got := Filter(seeds.Jobs(), Criteria{Budget: Bracket1000To5000})
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestFilter_Brackets(t *testing.T) {
	cases := []struct {
		bracket Bracket
		budget  int64
		want    bool
	}{
		{BracketUnder1000, 999, true},
		{BracketUnder1000, 1000, false},
		{Bracket1000To5000, 999, false},
		{Bracket1000To5000, 1000, true},
		{Bracket1000To5000, 5000, true},
		{Bracket1000To5000, 5001, false},
		{BracketOver5000, 5000, false},
		{BracketOver5000, 5001, true},
		{BracketAny, 0, true},
		{Bracket("custom"), 42, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.bracket.Contains(c.budget), "%q contains %d", c.bracket, c.budget)
	}
}

func TestFilter_HourlyAndFixedShareTheScale(t *testing.T) {
	got := Filter(seeds.Jobs(), Criteria{Budget: BracketUnder1000})
	assert.Equal(t, []string{"2", "4", "5"}, ids(got))
	for _, j := range got {
		assert.Equal(t, models.BudgetHourly, j.BudgetType)
	}
}

func TestFilter_TextMatchesTitleOrDescriptionIgnoringCase(t *testing.T) {
	assert.Equal(t, []string{"3"}, ids(Filter(seeds.Jobs(), Criteria{Text: "wordpress"})))
	// "crop yield" only appears in a description
	assert.Equal(t, []string{"4"}, ids(Filter(seeds.Jobs(), Criteria{Text: "CROP YIELD"})))
	assert.Empty(t, Filter(seeds.Jobs(), Criteria{Text: "blockchain"}))
	assert.Len(t, Filter(seeds.Jobs(), Criteria{Text: ""}), 5)
}

func TestFilter_SkillIsExact(t *testing.T) {
	assert.Equal(t, []string{"1"}, ids(Filter(seeds.Jobs(), Criteria{Skill: "React"})))
	assert.Empty(t, Filter(seeds.Jobs(), Criteria{Skill: "react"}))
}

func TestFilter_AllCriteriaAreANDed(t *testing.T) {
	got := Filter(seeds.Jobs(), Criteria{
		Text:       "data",
		Skill:      "Python",
		Budget:     BracketUnder1000,
		Experience: models.ExperienceExpert,
	})
	assert.Equal(t, []string{"4"}, ids(got))

	got = Filter(seeds.Jobs(), Criteria{Skill: "Python", Experience: models.ExperienceEntry})
	assert.Empty(t, got)
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(seeds.Jobs(), Criteria{Experience: models.ExperienceIntermediate})
	assert.Equal(t, []string{"2", "5"}, ids(got))
}

func TestFilter_Idempotent(t *testing.T) {
	criteria := []Criteria{
		{},
		{Text: "design"},
		{Skill: "TypeScript"},
		{Budget: BracketUnder1000},
		{Budget: Bracket1000To5000},
		{Budget: BracketOver5000},
		{Experience: models.ExperienceExpert},
		{Text: "e", Budget: BracketUnder1000, Experience: models.ExperienceIntermediate},
	}
	for _, c := range criteria {
		once := Filter(seeds.Jobs(), c)
		twice := Filter(once, c)
		assert.Equal(t, ids(once), ids(twice), "criteria %+v", c)
	}
}
