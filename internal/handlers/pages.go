package handlers

// pages.go: server-rendered HTML pages. Every page is rendered inside the
// "layouts/main" template (nav bar + footer), which the server sets as the default
// layout, so handlers only pass the page template name and its data.

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/trentd187/pingpong-league/internal/middleware"
	"github.com/trentd187/pingpong-league/internal/models"
	"github.com/trentd187/pingpong-league/internal/store"
)

// TrophyModelPath is the STL file shown on the trophies page, relative to the public dir.
const TrophyModelPath = "/trophies/Ping Pong Man.stl"

// DefaultRotation stands the scanned trophy upright facing the camera.
var DefaultRotation = Rotation{X: -math.Pi / 2, Y: 0, Z: -math.Pi / 2}

// Rotation is the trophy model's orientation in radians, one angle per axis.
type Rotation struct {
	X, Y, Z float64
}

// TrophyView is the data for the trophies page.
type TrophyView struct {
	ModelPath    string
	Rotation     Rotation
	ShowControls bool // Rotation sliders; only offered when browsing on localhost
}

// TournamentListItem is one row of the tournaments page.
type TournamentListItem struct {
	ID          string
	Name        string
	Date        string
	StatusLabel string
	StatusClass string
}

// page adds the values the layout needs (title, footer year) to a page's data.
func page(title string, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["Year"] = time.Now().Year()
	return data
}

// Home handles GET /.
// Shows the hero section and the first FeaturedChallengeCount challenges.
func Home(src ChallengeSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		featured, _ := store.SplitFeatured(src.Challenges(), store.FeaturedChallengeCount)
		return c.Render("home", page("", fiber.Map{"Featured": featured}))
	}
}

// Rules handles GET /rules. The content is static.
func Rules(c *fiber.Ctx) error {
	return c.Render("rules", page("Rules", nil))
}

// Challenges handles GET /challenges: the featured challenges on top, then every
// challenge (featured ones included) as a clickable list that opens a detail dialog.
func Challenges(src ChallengeSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all := src.Challenges()
		featured, _ := store.SplitFeatured(all, store.FeaturedChallengeCount)
		return c.Render("challenges", page("Challenges", fiber.Map{
			"Featured":   featured,
			"Challenges": all,
		}))
	}
}

// Gallery handles GET /gallery.
func Gallery(src GallerySource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("gallery", page("Gallery", fiber.Map{"Images": src.Images(c.UserContext())}))
	}
}

// Tournaments handles GET /tournaments.
func Tournaments(src TournamentSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summaries, err := src.ListTournaments()
		if err != nil {
			log.Error().Err(err).Msg("listing tournaments")
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to list tournaments")
		}
		return c.Render("tournaments", page("Tournaments", fiber.Map{"Tournaments": listItems(summaries)}))
	}
}

func listItems(summaries []models.TournamentSummary) []TournamentListItem {
	items := make([]TournamentListItem, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, TournamentListItem{
			ID:          string(s.ID),
			Name:        s.Name,
			Date:        FormatDate(s.Date),
			StatusLabel: s.Status.Label(),
			StatusClass: StatusClass(s.Status),
		})
	}
	return items
}

// Tournament handles GET /tournaments/:id.
// ?view=visual shows the tree diagram instead of the per-round list.
// Store errors become the same status codes as the JSON API, rendered by ErrorHandler.
func Tournament(src TournamentSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := src.GetTournament(c.Params("id"))
		if err != nil {
			status, msg := tournamentStatus(err)
			if status >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("tournament", c.Params("id")).Msg("reading tournament")
			}
			return fiber.NewError(status, msg)
		}

		view := NewTournamentView(t, c.Query("view"))
		return c.Render("tournament", page(t.Name, fiber.Map{"Tournament": view}))
	}
}

// Trophies handles GET /trophies.
// The starting orientation can be set with ?rx=&ry=&rz= (radians); the sliders submit
// the same parameters, so a chosen angle can be bookmarked.
func Trophies(c *fiber.Ctx) error {
	view := TrophyView{
		ModelPath: TrophyModelPath,
		Rotation: Rotation{
			X: angleParam(c, "rx", DefaultRotation.X),
			Y: angleParam(c, "ry", DefaultRotation.Y),
			Z: angleParam(c, "rz", DefaultRotation.Z),
		},
		ShowControls: middleware.IsLocal(c),
	}
	return c.Render("trophies", page("Trophies", fiber.Map{"Trophy": view}))
}

// angleParam reads a radian query parameter, clamped to the sliders' [-π, π] range.
func angleParam(c *fiber.Ctx, key string, fallback float64) float64 {
	v := c.QueryFloat(key, fallback)
	if math.IsNaN(v) {
		return fallback
	}
	return math.Max(-math.Pi, math.Min(math.Pi, v))
}
