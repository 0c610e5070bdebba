// cmd/server/main.go
// This is the entry point for the Ping Pong Masters league site.
// The "cmd/server" directory follows a common Go convention: the cmd/ folder holds executable
// binaries, and internal/ holds packages that are not meant to be imported by other projects.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/trentd187/pingpong-league/internal/cache"
	"github.com/trentd187/pingpong-league/internal/config"
	"github.com/trentd187/pingpong-league/internal/gallery"
	"github.com/trentd187/pingpong-league/internal/logging"
	"github.com/trentd187/pingpong-league/internal/server"
	"github.com/trentd187/pingpong-league/internal/store"
)

// shutdownTimeout bounds how long in-flight requests get to finish after SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration from environment variables (and optionally a .env file).
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.Env)

	// The data directory is the site's only source of tournaments and challenges.
	// Fail fast if it is missing instead of serving empty pages.
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open data directory")
	}

	// Blur placeholders are cheap to recompute, so the on-disk cache is optional.
	var placeholders cache.Store = cache.Nop{}
	if cfg.PlaceholderCache != "" {
		bolt, err := cache.NewBoltStore(cfg.PlaceholderCache)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open placeholder cache")
		}
		placeholders = bolt
	}
	defer placeholders.Close()

	app := server.New(cfg, server.Deps{
		Tournaments: st,
		Challenges:  st,
		Gallery:     gallery.New(cfg.PublicDir, placeholders),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("data", cfg.DataDir).Msg("starting server")
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		// Either a signal arrived or Listen failed; both mean stop serving.
		<-ctx.Done()
		log.Info().Msg("shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}
