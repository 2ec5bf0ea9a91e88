package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/afrilink/platform_be/internal/apperr"
	"github.com/afrilink/platform_be/internal/jobs"
	"github.com/afrilink/platform_be/internal/models"
	"github.com/afrilink/platform_be/internal/session"
)

const similarJobs = 3

type JobsHandler struct {
	Jobs      *jobs.Directory
	Proposals *jobs.ProposalBook
	Sessions  *session.Registry
}

type ProposalReq struct {
	CoverLetter string `json:"coverLetter"`
	Budget      string `json:"budget"`
	Duration    string `json:"duration"`
}

// List handles GET /jobs?q=&skill=&budget=&experience=&sort=.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	criteria := jobs.Criteria{
		Text:       strings.TrimSpace(c.Query("q")),
		Skill:      c.Query("skill"),
		Budget:     jobs.Bracket(c.Query("budget")),
		Experience: models.ExperienceLevel(c.Query("experience")),
	}
	order := jobs.SortOrder(c.Query("sort", string(jobs.SortNewest)))

	list := h.Jobs.Search(criteria, order)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"jobs":  list,
			"total": len(list),
		},
	})
}

func (h *JobsHandler) Skills(c *fiber.Ctx) error {
	return ok(c, h.Jobs.Skills())
}

func (h *JobsHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	job, err := h.Jobs.Get(id)
	if err != nil {
		return apperr.NotFound("Job not found")
	}

	return ok(c, fiber.Map{
		"job":     job,
		"similar": h.Jobs.Similar(id, similarJobs),
	})
}

func (h *JobsHandler) SubmitProposal(c *fiber.Ctx) error {
	_, u, err := currentSession(c, h.Sessions)
	if err != nil {
		return err
	}

	var req ProposalReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.ErrInvalidRequest
	}

	errs := FieldErrors{}
	if strings.TrimSpace(req.CoverLetter) == "" {
		errs.Add("coverLetter", "Cover letter is required")
	}
	if strings.TrimSpace(req.Budget) == "" {
		errs.Add("budget", "Budget is required")
	}
	if strings.TrimSpace(req.Duration) == "" {
		errs.Add("duration", "Duration is required")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	p, err := h.Proposals.Submit(c.UserContext(), u, c.Params("id"), jobs.ProposalInput{
		CoverLetter: req.CoverLetter,
		Budget:      req.Budget,
		Duration:    req.Duration,
	})
	switch {
	case errors.Is(err, jobs.ErrJobNotFound):
		return apperr.NotFound("Job not found")
	case errors.Is(err, jobs.ErrNotFreelancer):
		return apperr.Forbidden(err.Error())
	case errors.Is(err, jobs.ErrIncompleteProposal):
		return apperr.BadRequest(err.Error())
	case err != nil:
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Proposal submitted",
		"data":    p,
	})
}

func (h *JobsHandler) ListProposals(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.Jobs.Get(id); err != nil {
		return apperr.NotFound("Job not found")
	}
	return ok(c, h.Proposals.ForJob(id))
}
