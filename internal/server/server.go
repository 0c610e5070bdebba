// Package server assembles the Fiber app: middleware, views, routes and static files.
// cmd/server calls New once at startup; tests call it with fake sources and use app.Test.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/trentd187/pingpong-league/internal/config"
	"github.com/trentd187/pingpong-league/internal/handlers"
	"github.com/trentd187/pingpong-league/internal/middleware"
	"github.com/trentd187/pingpong-league/internal/views"
)

// Deps are the data sources the routes read from.
type Deps struct {
	Tournaments handlers.TournamentSource
	Challenges  handlers.ChallengeSource
	Gallery     handlers.GallerySource
}

// New builds the app. The template engine is created here, once per process, and
// shared by every request.
func New(cfg *config.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Ping Pong Masters",
		Views:        views.New(),
		ViewsLayout:  views.Layout,
		ErrorHandler: handlers.ErrorHandler,
	})

	// --- Global middleware ---
	// recover turns a panicking handler into a 500 via ErrorHandler instead of killing the process.
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(middleware.DetectLocal())

	// Stylesheet compiled into the binary.
	app.Use("/static", filesystem.New(filesystem.Config{Root: views.Static()}))

	app.Get("/health", handlers.HealthCheck)

	// --- Pages ---
	app.Get("/", handlers.Home(deps.Challenges))
	app.Get("/rules", handlers.Rules)
	app.Get("/challenges", handlers.Challenges(deps.Challenges))
	app.Get("/gallery", handlers.Gallery(deps.Gallery))
	app.Get("/tournaments", handlers.Tournaments(deps.Tournaments))
	app.Get("/tournaments/:id", handlers.Tournament(deps.Tournaments))
	app.Get("/trophies", handlers.Trophies)

	// --- JSON API ---
	api := app.Group("/api")
	api.Get("/tournaments", handlers.ListTournaments(deps.Tournaments))
	api.Get("/tournaments/:id", handlers.GetTournament(deps.Tournaments))
	api.Get("/tournaments/:id/bracket", handlers.GetBracket(deps.Tournaments))
	api.Get("/challenges", handlers.ListChallenges(deps.Challenges))
	api.Get("/gallery", handlers.ListGallery(deps.Gallery))

	// Everything else comes from the public directory (images, grain.png, trophy models).
	// Static falls through to the next handler when no file matches.
	app.Static("/", cfg.PublicDir)
	app.Use(handlers.NotFound)

	return app
}
