// internal/models/job.go
package models

type BudgetType string

const (
	BudgetFixed  BudgetType = "fixed"
	BudgetHourly BudgetType = "hourly"
)

type ExperienceLevel string

const (
	ExperienceEntry        ExperienceLevel = "entry"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExpert       ExperienceLevel = "expert"
)

// JobClient is the client summary embedded in every job card.
type JobClient struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Location    string  `json:"location"`
}

type Job struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Budget      int64      `json:"budget"`
	BudgetType  BudgetType `json:"budgetType"`

	// order is kept as posted, duplicates are not removed
	Skills []string `json:"skills"`

	Client          JobClient       `json:"client"`
	PostedAt        string          `json:"postedAt"` // display label, e.g. "2 hours ago"
	Proposals       int             `json:"proposals"`
	Duration        string          `json:"duration"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
}

// HasSkill reports whether the job lists exactly this skill string.
func (j Job) HasSkill(skill string) bool {
	for _, s := range j.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
