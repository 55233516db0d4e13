package routes

import (
	"time"

	"github.com/Dexter3110/bole-to-connect/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	scheduleHandler *handlers.ScheduleHandler,
	motivationHandler *handlers.MotivationHandler,
) {
	app.Get("/health", healthHandler.Check)

	// Auth endpoints live at the root, as the frontend expects.
	// Stricter rate limit: 10 req/min per IP.
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	app.Post("/signup", authLimiter, authHandler.Signup)
	app.Post("/login", authLimiter, authHandler.Login)
	app.Get("/getUser/:email", authHandler.LookupUser)

	// General API rate limiter: 60 req/min per IP.
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	schedules := api.Group("/schedules")
	schedules.Get("/user-role/:user_id", scheduleHandler.GetUserRole)
	schedules.Post("/submit", scheduleHandler.Submit)
	schedules.Get("/user/:user_id", scheduleHandler.GetForUser)
	schedules.Get("/all-employees", scheduleHandler.AllEmployees)
	schedules.Put("/edit/:schedule_id", scheduleHandler.Edit)

	api.Get("/motivation", motivationHandler.Get)
	api.Post("/motivation", motivationHandler.Post)
	api.Delete("/motivation", motivationHandler.Clear)
}
