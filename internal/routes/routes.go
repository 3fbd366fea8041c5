package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/moodtrack/moodtrack-backend/internal/config"
	"github.com/moodtrack/moodtrack-backend/internal/handlers"
	"github.com/moodtrack/moodtrack-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	moodHandler *handlers.MoodHandler,
	profileHandler *handlers.ProfileHandler,
	sessionHandler *handlers.SessionHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Browser-facing tracker surface. Login is public; the tracker and
	// statistics views bounce unauthenticated requests back to /login/.
	app.Get("/login/", authHandler.LoginForm)
	app.Post("/login/", authHandler.LoginSubmit)

	webAuth := middleware.JWTProtectedWeb(cfg)
	app.Get("/track-mood/", webAuth, moodHandler.TrackMoodForm)
	app.Post("/track-mood/", webAuth, moodHandler.TrackMood)
	app.Get("/mood-statistics/", webAuth, moodHandler.Statistics)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected API routes answer 401 JSON rather than redirecting.
	apiAuth := middleware.JWTProtected(cfg)
	api.Post("/auth/logout", apiAuth, authHandler.Logout)

	api.Get("/profile", apiAuth, profileHandler.Get)
	api.Put("/profile", apiAuth, profileHandler.Update)

	api.Post("/sessions", apiAuth, sessionHandler.Create)
	api.Get("/sessions", apiAuth, sessionHandler.List)
}
