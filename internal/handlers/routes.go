package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/afrilink/platform_be/internal/middleware"
	"github.com/afrilink/platform_be/internal/models"
)

type Router struct {
	JWTSecret string

	Auth      *AuthHandler
	Jobs      *JobsHandler
	Payments  *PaymentHandler
	Chat      *ChatHandler
	Dashboard *DashboardHandler
}

// Mount registers every route on app.
func (r *Router) Mount(app *fiber.App) {
	api := app.Group("/api")

	// public
	api.Post("/auth/register", r.Auth.Register)
	api.Post("/auth/login", r.Auth.Login)
	api.Post("/auth/logout", r.Auth.Logout)
	api.Get("/jobs", r.Jobs.List)
	api.Get("/jobs/skills", r.Jobs.Skills)
	api.Get("/jobs/:id", r.Jobs.Get)

	// protected (JWT)
	auth := []fiber.Handler{
		middleware.JWTFromCookie(r.JWTSecret),
		middleware.AttachJWTLocals(),
	}
	protected := api.Group("/", auth...)

	protected.Get("/me", r.Auth.Me)
	protected.Patch("/me/profile", r.Auth.UpdateProfile)
	protected.Get("/dashboard", r.Dashboard.GetDashboard)

	protected.Post("/jobs/:id/proposals",
		middleware.RequireRoles(string(models.RoleFreelancer)),
		r.Jobs.SubmitProposal,
	)
	protected.Get("/jobs/:id/proposals", r.Jobs.ListProposals)

	protected.Get("/payments/transactions", r.Payments.Transactions)
	protected.Get("/payments/summary", r.Payments.Summary)

	chat := protected.Group("/chat")
	chat.Get("/conversations", r.Chat.GetConversations)
	chat.Patch("/conversations/:id/active", r.Chat.Activate)
	chat.Get("/conversations/:id/messages", r.Chat.GetMessages)
	chat.Post("/messages", r.Chat.SendMessage)

	app.Get("/ws/chat", append(auth, UpgradeOnly, websocket.New(r.Chat.WebSocketHandler))...)
}
