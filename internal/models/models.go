// Package models defines the data structures read from the league's JSON data files.
// There is no database: every struct here is decoded straight from a file under the
// data directory (tournaments, challenges) and the struct tags mirror the JSON keys
// used by those files.
//
// The data model represents a ping-pong league where:
//   - A Tournament has Players and a list of Rounds
//   - Each Round holds Matches
//   - Each Match has two Slots, each either a known player or "winner of match X"
//   - Matches point forward to the match their winner advances to (NextMatchID)
//
// Values are loaded whole for a single request and never mutated afterwards.
package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// --- Enums ---
// Named string types plus constants, the same way the rest of the codebase simulates enums.

// TournamentStatus tracks the lifecycle of a tournament.
// It is an open string in practice: unknown values are displayed as-is.
type TournamentStatus string

const (
	TournamentStatusPlanned    TournamentStatus = "planned"     // Announced, bracket may be empty
	TournamentStatusInProgress TournamentStatus = "in_progress" // Matches are being played
	TournamentStatusCompleted  TournamentStatus = "completed"   // Final decided
)

// Label returns the status with its first letter upper-cased ("in_progress" -> "In_progress").
func (s TournamentStatus) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// SlotType is the tag of the MatchSlot union.
type SlotType string

const (
	SlotTypePlayer      SlotType = "player"      // A concrete competitor
	SlotTypeProgression SlotType = "progression" // Placeholder: whoever wins SourceMatchID
)

// Difficulty grades a challenge.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// --- Models ---

// ID is an identifier that may be written as a JSON number or a JSON string.
// Older tournament files use numeric ids, newer ones use strings; both decode to the same text.
type ID string

// UnmarshalJSON accepts 7, "7" and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// Player is a competitor registered for one tournament.
type Player struct {
	ID   string `json:"id"`             // Unique within the tournament, referenced by slots and winners
	Name string `json:"name"`           // Display name
	Seed *int   `json:"seed,omitempty"` // Optional seeding; nil when unseeded
}

// MatchSlot is one side of a match.
// Type decides which of the remaining fields are meaningful:
//   - SlotTypePlayer:      PlayerID (and optionally Seed)
//   - SlotTypeProgression: SourceMatchID
//
// A progression slot never stores who actually won the source match; that is looked up
// when rendering.
type MatchSlot struct {
	Type          SlotType `json:"type"`
	PlayerID      string   `json:"playerId,omitempty"`
	Seed          *int     `json:"seed,omitempty"`
	SourceMatchID string   `json:"sourceMatchId,omitempty"`
}

// Match is a single best-of contest between two slots.
type Match struct {
	ID          string      `json:"id"`          // Unique within the tournament (e.g. "M3")
	Slots       []MatchSlot `json:"slots"`       // Two in practice; the count is not enforced
	WinnerID    *string     `json:"winnerId"`    // Player id of the winner; nil while undecided
	Score       *string     `json:"score"`       // Free-form score, e.g. "11-7, 11-9"
	NextMatchID *string     `json:"nextMatchId"` // Match the winner advances to; nil for the final
}

// Decided reports whether the match has a winner.
func (m Match) Decided() bool {
	return m.WinnerID != nil && *m.WinnerID != ""
}

// Round is the set of matches played at the same elimination depth.
type Round struct {
	RoundNumber int     `json:"roundNumber"` // Ordering key: 1 is the first round
	Name        string  `json:"name"`        // e.g. "Quarterfinals"
	Matches     []Match `json:"matches"`
}

// Tournament is one tournament file, read whole per request.
type Tournament struct {
	ID                 ID               `json:"id"`
	Name               string           `json:"name"`
	Date               string           `json:"date"` // "YYYY-MM-DD" or RFC 3339
	Status             TournamentStatus `json:"status"`
	Description        string           `json:"description"`
	Structure          string           `json:"structure"` // e.g. "single_elimination"; informational only
	Players            []Player         `json:"players"`
	Rounds             []Round          `json:"rounds"`
	TournamentWinnerID *string          `json:"tournamentWinnerId"`
}

// Matches flattens the rounds into one slice, keeping round order then match order.
func (t *Tournament) Matches() []Match {
	var out []Match
	for _, r := range t.Rounds {
		out = append(out, r.Matches...)
	}
	return out
}

// TournamentSummary is the subset of a tournament shown on the listing page.
type TournamentSummary struct {
	ID     ID               `json:"id"`
	Name   string           `json:"name"`
	Date   string           `json:"date"`
	Status TournamentStatus `json:"status"`
}

// Summary returns the listing view of the tournament.
func (t *Tournament) Summary() TournamentSummary {
	return TournamentSummary{ID: t.ID, Name: t.Name, Date: t.Date, Status: t.Status}
}

// Challenge is one entry of challenges.json.
type Challenge struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
}

// GalleryImage is one file in the gallery directory.
type GalleryImage struct {
	Src         string `json:"src"`         // Public path, e.g. "/gallery-images/table.jpg"
	BlurDataURL string `json:"blurDataURL"` // Tiny inline PNG shown while the full image loads
}
