package jobs

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/afrilink/platform_be/internal/logger"
	"github.com/afrilink/platform_be/internal/models"
)

var (
	ErrNotFreelancer      = errors.New("only freelancers can submit proposals")
	ErrIncompleteProposal = errors.New("cover letter, budget, and duration are required")
)

type ProposalInput struct {
	CoverLetter string
	Budget      string
	Duration    string
}

// ProposalBook stores submitted proposals in memory.
type ProposalBook struct {
	jobs *Directory
	now  func() time.Time

	mu    sync.RWMutex
	byJob map[string][]models.Proposal
}

func NewProposalBook(jobs *Directory) *ProposalBook {
	return &ProposalBook{
		jobs:  jobs,
		now:   time.Now,
		byJob: make(map[string][]models.Proposal),
	}
}

func (b *ProposalBook) Submit(_ context.Context, freelancer *models.User, jobID string, in ProposalInput) (models.Proposal, error) {
	if freelancer == nil || freelancer.Role != models.RoleFreelancer {
		return models.Proposal{}, ErrNotFreelancer
	}
	if _, err := b.jobs.Get(jobID); err != nil {
		return models.Proposal{}, err
	}

	cover := strings.TrimSpace(in.CoverLetter)
	budget := strings.TrimSpace(in.Budget)
	duration := strings.TrimSpace(in.Duration)
	if cover == "" || budget == "" || duration == "" {
		return models.Proposal{}, ErrIncompleteProposal
	}

	p := models.Proposal{
		ID:           uuid.NewString(),
		JobID:        jobID,
		FreelancerID: freelancer.ID,
		CoverLetter:  cover,
		Budget:       budget,
		Duration:     duration,
		SubmittedAt:  b.now(),
	}

	b.mu.Lock()
	b.byJob[jobID] = append(b.byJob[jobID], p)
	b.mu.Unlock()

	logger.Info().
		Str("job_id", jobID).
		Str("freelancer_id", freelancer.ID).
		Str("proposal_id", p.ID).
		Msg("proposal submitted")

	return p, nil
}

func (b *ProposalBook) ForJob(jobID string) []models.Proposal {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.Proposal(nil), b.byJob[jobID]...)
}
