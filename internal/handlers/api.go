// Package handlers contains the HTTP route handler functions for the league site.
// This file handles the JSON API under /api. The page handlers in pages.go read the
// same sources, so anything visible on the site can also be fetched as JSON.
//
// Each exported function follows the "handler factory" pattern: it takes the data
// source it needs and returns a fiber.Handler. Sources are small interfaces so tests can
// pass fakes instead of a real data directory.
package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/trentd187/pingpong-league/internal/bracket"
	"github.com/trentd187/pingpong-league/internal/models"
	"github.com/trentd187/pingpong-league/internal/store"
)

// TournamentSource reads tournament files. *store.Store implements it.
type TournamentSource interface {
	ListTournaments() ([]models.TournamentSummary, error)
	GetTournament(id string) (*models.Tournament, error)
}

// ChallengeSource reads the challenge list. *store.Store implements it.
type ChallengeSource interface {
	Challenges() []models.Challenge
}

// GallerySource lists gallery images with their placeholders. *gallery.Gallery implements it.
type GallerySource interface {
	Images(ctx context.Context) []models.GalleryImage
}

// BracketResponse is the body of GET /api/tournaments/:id/bracket.
// Tree is nil when no tree could be built; Anomaly is set whenever the data was not a
// clean single-root bracket (orphans come with a partial Tree).
type BracketResponse struct {
	Tree    *bracket.Tree    `json:"tree"`
	Anomaly *AnomalyResponse `json:"anomaly,omitempty"`
}

// AnomalyResponse describes a data problem in a form the front end can display.
type AnomalyResponse struct {
	Kind     bracket.AnomalyKind `json:"kind"`
	Message  string              `json:"message"`
	MatchIDs []string            `json:"matchIds,omitempty"`
}

// tournamentStatus maps a store error to the HTTP status and public message for it.
// Anything unrecognised is a 500 with a generic message; the detail only goes to the log.
func tournamentStatus(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return fiber.StatusBadRequest, "Invalid tournament ID"
	case errors.Is(err, store.ErrNotFound):
		return fiber.StatusNotFound, "Tournament not found"
	case errors.Is(err, store.ErrMalformed):
		return fiber.StatusInternalServerError, "Error parsing tournament data"
	default:
		return fiber.StatusInternalServerError, "Error reading tournament data"
	}
}

// ListTournaments handles GET /api/tournaments.
// Returns a summary (id, name, date, status) of every readable tournament file.
func ListTournaments(src TournamentSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summaries, err := src.ListTournaments()
		if err != nil {
			log.Error().Err(err).Msg("listing tournaments")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list tournaments"})
		}
		return c.JSON(summaries)
	}
}

// GetTournament handles GET /api/tournaments/:id.
// Returns the tournament exactly as stored (with the id normalized to a string).
//
//	400: the id contains characters that are not allowed in a file name
//	404: no such tournament file
//	500: the file exists but is not valid JSON
func GetTournament(src TournamentSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := src.GetTournament(c.Params("id"))
		if err != nil {
			status, msg := tournamentStatus(err)
			if status >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("tournament", c.Params("id")).Msg("reading tournament")
			}
			return c.Status(status).JSON(fiber.Map{"error": msg})
		}
		return c.JSON(t)
	}
}

// GetBracket handles GET /api/tournaments/:id/bracket.
// Returns the laid-out bracket tree. A bracket whose data has no clear root is still a
// 200: the body carries the anomaly instead of a tree, so clients can explain the
// problem rather than show a generic error.
func GetBracket(src TournamentSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := src.GetTournament(c.Params("id"))
		if err != nil {
			status, msg := tournamentStatus(err)
			return c.Status(status).JSON(fiber.Map{"error": msg})
		}

		tree, err := bracket.BuildTree(t.Rounds)
		resp := BracketResponse{Tree: tree}
		if a, ok := bracket.AsAnomaly(err); ok {
			resp.Anomaly = &AnomalyResponse{Kind: a.Kind, Message: a.Message(), MatchIDs: a.MatchIDs}
			log.Warn().Str("tournament", string(t.ID)).Str("anomaly", string(a.Kind)).
				Strs("matches", a.MatchIDs).Msg("bracket data anomaly")
		} else if err != nil {
			log.Error().Err(err).Str("tournament", string(t.ID)).Msg("building bracket")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build bracket"})
		}
		return c.JSON(resp)
	}
}

// ListChallenges handles GET /api/challenges.
func ListChallenges(src ChallengeSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(src.Challenges())
	}
}

// ListGallery handles GET /api/gallery.
// Placeholders are computed (or read from the placeholder cache) on every call.
func ListGallery(src GallerySource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(src.Images(c.UserContext()))
	}
}
