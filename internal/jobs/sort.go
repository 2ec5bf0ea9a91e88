package jobs

import (
	"slices"

	"github.com/afrilink/platform_be/internal/models"
)

type SortOrder string

const (
	SortNewest     SortOrder = "newest"
	SortOldest     SortOrder = "oldest"
	SortBudgetHigh SortOrder = "budget-high"
	SortBudgetLow  SortOrder = "budget-low"
)

// Sort returns a sorted copy. The job list is stored newest first, so
// SortNewest (and any unknown order) keeps input order.
func Sort(list []models.Job, order SortOrder) []models.Job {
	out := slices.Clone(list)

	switch order {
	case SortOldest:
		slices.Reverse(out)
	case SortBudgetHigh:
		slices.SortStableFunc(out, func(a, b models.Job) int {
			return cmpInt64(b.Budget, a.Budget)
		})
	case SortBudgetLow:
		slices.SortStableFunc(out, func(a, b models.Job) int {
			return cmpInt64(a.Budget, b.Budget)
		})
	}
	return out
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
