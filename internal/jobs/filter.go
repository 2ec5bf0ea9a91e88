// Package jobs serves the static job board: filtering, sorting and the
// proposals freelancers send against a job.
package jobs

import (
	"strings"

	"github.com/afrilink/platform_be/internal/models"
)

// Bracket is a named budget range. The raw budget number is compared, so an
// hourly rate of 45 falls in the same bracket as a fixed price of 45.
type Bracket string

const (
	BracketAny        Bracket = ""
	BracketUnder1000  Bracket = "under-1000"
	Bracket1000To5000 Bracket = "1000-5000"
	BracketOver5000   Bracket = "over-5000"
)

// Contains reports whether budget falls in the bracket. Unknown brackets
// place no constraint.
func (b Bracket) Contains(budget int64) bool {
	switch b {
	case BracketUnder1000:
		return budget < 1000
	case Bracket1000To5000:
		return budget >= 1000 && budget <= 5000
	case BracketOver5000:
		return budget > 5000
	}
	return true
}

// Criteria left at their zero value do not constrain the result.
type Criteria struct {
	Text       string
	Skill      string
	Budget     Bracket
	Experience models.ExperienceLevel
}

func (c Criteria) Match(j models.Job) bool {
	if c.Text != "" {
		needle := strings.ToLower(c.Text)
		if !strings.Contains(strings.ToLower(j.Title), needle) &&
			!strings.Contains(strings.ToLower(j.Description), needle) {
			return false
		}
	}
	if c.Skill != "" && !j.HasSkill(c.Skill) {
		return false
	}
	if !c.Budget.Contains(j.Budget) {
		return false
	}
	if c.Experience != "" && j.ExperienceLevel != c.Experience {
		return false
	}
	return true
}

// Filter keeps the jobs matching every criterion, in input order.
func Filter(list []models.Job, c Criteria) []models.Job {
	out := make([]models.Job, 0, len(list))
	for _, j := range list {
		if c.Match(j) {
			out = append(out, j)
		}
	}
	return out
}
