package jobs

import (
	"errors"
	"slices"

	"github.com/afrilink/platform_be/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

// Directory is the read-only job board.
type Directory struct {
	jobs []models.Job
}

func NewDirectory(list []models.Job) *Directory {
	return &Directory{jobs: slices.Clone(list)}
}

func (d *Directory) List() []models.Job {
	return slices.Clone(d.jobs)
}

func (d *Directory) Get(id string) (models.Job, error) {
	for _, j := range d.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return models.Job{}, ErrJobNotFound
}

// Search filters and then sorts.
func (d *Directory) Search(c Criteria, order SortOrder) []models.Job {
	return Sort(Filter(d.jobs, c), order)
}

// Skills lists every skill once, in first-seen order.
func (d *Directory) Skills() []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, j := range d.jobs {
		for _, s := range j.Skills {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// Similar takes the first n jobs of the board and drops id from them, so a
// job inside that window gets n-1 results.
func (d *Directory) Similar(id string, n int) []models.Job {
	if n > len(d.jobs) {
		n = len(d.jobs)
	}
	out := make([]models.Job, 0, n)
	for _, j := range d.jobs[:n] {
		if j.ID != id {
			out = append(out, j)
		}
	}
	return out
}
