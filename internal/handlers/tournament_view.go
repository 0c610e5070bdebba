package handlers

// tournament_view.go turns a loaded Tournament into what the tournament page template needs.
// All decisions about display text live here (not in the template) so they can be tested
// without rendering HTML.

import (
	"fmt"
	"time"

	"github.com/trentd187/pingpong-league/internal/bracket"
	"github.com/trentd187/pingpong-league/internal/models"
)

// Bracket tabs on the tournament page, selected with ?view=.
const (
	TabSimple = "simple"
	TabVisual = "visual"
)

// SlotView is one side of a match as displayed.
type SlotView struct {
	Label  string // Player name, or "Winner of M1" while the source match is undecided
	Source string // "Winner of M1" when Label was substituted with the real winner; empty otherwise
	Winner bool   // Highlight this side; never true for an undecided match
}

// MatchView is one match box in the per-round list.
type MatchView struct {
	ID         string
	Score      string
	Decided    bool
	WinnerName string
	Slots      []SlotView
}

// RoundView is one column of the per-round list.
type RoundView struct {
	Name    string
	Matches []MatchView
}

// PlayerView is one entry of the players grid.
type PlayerView struct {
	Name string
	Seed int // 0 when unseeded
}

// DiagramNode is one match box in the SVG tree.
type DiagramNode struct {
	ID      string
	Label   string // "Alice vs Bob"
	Score   string
	Decided bool
	X, Y    float64 // Top-left corner of the box
	TextX   float64 // Centre of the box
	TextY   float64
}

// Diagram is the SVG bracket tree. Notice is set when the tree could not be built
// completely; Available is false when nothing at all can be drawn.
type Diagram struct {
	Available  bool
	Notice     string
	Width      float64
	Height     float64
	NodeWidth  float64
	NodeHeight float64
	Nodes      []DiagramNode
	Links      []string // SVG path data, one per parent/child edge
}

// TournamentView is everything the tournament page template renders.
type TournamentView struct {
	ID          string
	Name        string
	Description string
	Date        string
	Status      string
	StatusLabel string
	StatusClass string
	Structure   string
	Players     []PlayerView
	Rounds      []RoundView
	Diagram     Diagram
	WinnerName  string
	ShowPlanned bool
	Tab         string
}

// NewTournamentView builds the page model. tab is TabSimple or TabVisual; anything else
// falls back to TabSimple.
func NewTournamentView(t *models.Tournament, tab string) TournamentView {
	if tab != TabVisual {
		tab = TabSimple
	}

	dir := bracket.NewDirectory(t.Players)
	matches := bracket.IndexMatches(t.Rounds)

	v := TournamentView{
		ID:          string(t.ID),
		Name:        t.Name,
		Description: t.Description,
		Date:        FormatDate(t.Date),
		Status:      string(t.Status),
		StatusLabel: t.Status.Label(),
		StatusClass: StatusClass(t.Status),
		Structure:   t.Structure,
		Tab:         tab,
		ShowPlanned: t.Status == models.TournamentStatusPlanned && len(t.Rounds) == 0 && len(t.Players) == 0,
	}

	for _, p := range t.Players {
		pv := PlayerView{Name: p.Name}
		if p.Seed != nil {
			pv.Seed = *p.Seed
		}
		v.Players = append(v.Players, pv)
	}

	if t.TournamentWinnerID != nil && *t.TournamentWinnerID != "" {
		v.WinnerName = dir.ResolvePlayerName(*t.TournamentWinnerID)
	}

	for _, r := range t.Rounds {
		rv := RoundView{Name: r.Name}
		for _, m := range r.Matches {
			rv.Matches = append(rv.Matches, newMatchView(dir, m, matches))
		}
		v.Rounds = append(v.Rounds, rv)
	}

	v.Diagram = newDiagram(dir, t.Rounds, matches)
	return v
}

func newMatchView(dir *bracket.Directory, m models.Match, matches map[string]models.Match) MatchView {
	mv := MatchView{ID: m.ID, Decided: m.Decided()}
	if m.Score != nil {
		mv.Score = *m.Score
	}
	if mv.Decided {
		mv.WinnerName = dir.ResolvePlayerName(*m.WinnerID)
	}
	for _, s := range m.Slots {
		sv := SlotView{
			Label:  dir.ResolveSlot(s, matches),
			Winner: bracket.IsWinner(m, s, matches),
		}
		if raw := dir.RenderSlot(s); raw != sv.Label {
			sv.Source = raw
		}
		mv.Slots = append(mv.Slots, sv)
	}
	return mv
}

func newDiagram(dir *bracket.Directory, rounds []models.Round, matches map[string]models.Match) Diagram {
	geo := bracket.DefaultGeometry
	d := Diagram{NodeWidth: geo.NodeWidth, NodeHeight: geo.NodeHeight}

	tree, err := bracket.BuildTree(rounds)
	if a, ok := bracket.AsAnomaly(err); ok {
		d.Notice = a.Message()
	} else if err != nil {
		d.Notice = "The bracket could not be drawn."
	}
	if tree == nil {
		return d
	}

	d.Available = true
	d.Width, d.Height = tree.Width, tree.Height
	for _, n := range tree.Nodes {
		dn := DiagramNode{
			ID:      n.ID,
			Label:   matchLabel(dir, n.Match, matches),
			Decided: n.Match.Decided(),
			X:       n.X - geo.NodeWidth/2,
			Y:       n.Y - geo.NodeHeight/2,
			TextX:   n.X,
			TextY:   n.Y,
		}
		if n.Match.Score != nil {
			dn.Score = *n.Match.Score
		}
		d.Nodes = append(d.Nodes, dn)
	}
	for _, l := range tree.Links {
		mid := (l.X1 + l.X2) / 2
		d.Links = append(d.Links, fmt.Sprintf("M%.1f,%.1f C%.1f,%.1f %.1f,%.1f %.1f,%.1f",
			l.X2, l.Y2, mid, l.Y2, mid, l.Y1, l.X1, l.Y1))
	}
	return d
}

// matchLabel is "A vs B" for two-slot matches, or "Match <id>" otherwise.
func matchLabel(dir *bracket.Directory, m models.Match, matches map[string]models.Match) string {
	if len(m.Slots) != 2 {
		return "Match " + m.ID
	}
	return dir.ResolveSlot(m.Slots[0], matches) + " vs " + dir.ResolveSlot(m.Slots[1], matches)
}

// FormatDate renders "2025-04-12" (or an RFC 3339 timestamp) as "April 12, 2025".
// Anything unparseable is shown unchanged.
func FormatDate(s string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return s
}

// StatusClass picks the badge colour for a tournament status.
func StatusClass(s models.TournamentStatus) string {
	switch s {
	case models.TournamentStatusPlanned:
		return "badge-planned"
	case models.TournamentStatusCompleted:
		return "badge-completed"
	default:
		return "badge-active"
	}
}
