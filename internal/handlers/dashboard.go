package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/afrilink/platform_be/internal/jobs"
	"github.com/afrilink/platform_be/internal/ledger"
	"github.com/afrilink/platform_be/internal/session"
)

const dashboardRecent = 3

type DashboardHandler struct {
	Jobs     *jobs.Directory
	Ledger   *ledger.Ledger
	Sessions *session.Registry
}

func NewDashboardHandler(j *jobs.Directory, l *ledger.Ledger, s *session.Registry) *DashboardHandler {
	return &DashboardHandler{Jobs: j, Ledger: l, Sessions: s}
}

// GetDashboard returns the signed-in user's stats with the most recent jobs
// and transactions.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	_, u, err := currentSession(c, h.Sessions)
	if err != nil {
		return err
	}

	recentJobs := h.Jobs.List()
	if len(recentJobs) > dashboardRecent {
		recentJobs = recentJobs[:dashboardRecent]
	}
	summary := h.Ledger.Summary()

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user": u,
			"stats": fiber.Map{
				"rating":           u.Rating,
				"completedJobs":    u.CompletedJobs,
				"totalEarnings":    summary.TotalEarnings,
				"availableBalance": summary.AvailableBalance,
			},
			"recentJobs":         recentJobs,
			"recentTransactions": h.Ledger.Recent(dashboardRecent),
		},
	})
}
