package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/afrilink/platform_be/internal/chat"
	"github.com/afrilink/platform_be/internal/config"
	"github.com/afrilink/platform_be/internal/directory"
	"github.com/afrilink/platform_be/internal/handlers"
	"github.com/afrilink/platform_be/internal/jobs"
	"github.com/afrilink/platform_be/internal/ledger"
	"github.com/afrilink/platform_be/internal/logger"
	"github.com/afrilink/platform_be/internal/middleware"
	"github.com/afrilink/platform_be/internal/realtime"
	"github.com/afrilink/platform_be/internal/seeds"
	"github.com/afrilink/platform_be/internal/session"
	"github.com/afrilink/platform_be/internal/sweeper"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.AppEnv)

	repo := openDirectory(cfg)
	sessions := session.NewRegistry(repo)

	hub := realtime.NewHub()
	go hub.Run()

	var pub realtime.Publisher = realtime.NopPublisher{}
	if cfg.RedisAddr != "" {
		rdb := realtime.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Msg("redis unreachable, chat notifications disabled")
		} else {
			pub = realtime.NewRedisPublisher(rdb)
			logger.Info().Msg("redis notifications enabled")
		}
		cancel()
	}

	rooms := chat.NewRooms(seeds.Conversations(), seeds.ChatHistory(), chat.Config{
		ReplyDelay: cfg.ChatReplyDelay,
		Listener:   handlers.ChatListener(hub, pub),
	})

	sw := sweeper.New(sessions, rooms, cfg.SessionIdle, cfg.SweepSpec)
	if err := sw.Start(); err != nil {
		logger.Fatal().Err(err).Msg("start session sweeper")
	}
	defer sw.Stop()

	board := jobs.NewDirectory(seeds.Jobs())
	payments := ledger.New(seeds.Transactions())

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendBaseURL,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	router := &handlers.Router{
		JWTSecret: cfg.JWTSecret,
		Auth: &handlers.AuthHandler{
			Sessions:  sessions,
			Rooms:     rooms,
			JWTSecret: cfg.JWTSecret,
			Expires:   cfg.JWTExpiresMin,
		},
		Jobs: &handlers.JobsHandler{
			Jobs:      board,
			Proposals: jobs.NewProposalBook(board),
			Sessions:  sessions,
		},
		Payments:  handlers.NewPaymentHandler(payments),
		Chat:      handlers.NewChatHandler(rooms, sessions, hub),
		Dashboard: handlers.NewDashboardHandler(board, payments, sessions),
	}
	router.Mount(app)

	logger.Info().Str("port", cfg.AppPort).Str("env", cfg.AppEnv).Msg("listening")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// openDirectory uses Postgres when DB_DSN is set and the seeded in-memory
// directory otherwise.
func openDirectory(cfg config.Config) directory.Repository {
	if cfg.DBDSN == "" {
		logger.Info().Msg("using in-memory user directory")
		return directory.NewMemoryRepository(seeds.Users())
	}

	gdb, err := directory.Connect(cfg.DBDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}
	repo := directory.NewGormRepository(gdb)
	if err := repo.Migrate(context.Background(), seeds.Users()); err != nil {
		logger.Fatal().Err(err).Msg("migrate user directory")
	}
	return repo
}
