package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/trentd187/pingpong-league/internal/models"
)

const springCup = `{
  "id": 1,
  "name": "Spring Cup",
  "date": "2025-04-12",
  "status": "completed",
  "description": "First cup of the season",
  "structure": "single_elimination",
  "players": [{"id": "p1", "name": "Alice", "seed": 1}, {"id": "p2", "name": "Bob"}],
  "rounds": [{"roundNumber": 1, "name": "Final", "matches": [
    {"id": "M1", "slots": [{"type": "player", "playerId": "p1", "seed": 1}, {"type": "player", "playerId": "p2"}],
     "winnerId": "p1", "score": "11-4, 11-9", "nextMatchId": null}
  ]}],
  "tournamentWinnerId": "p1"
}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s, dir
}

func TestOpenRequiresDirectory(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Open should fail for a missing directory")
	}
	file := filepath.Join(t.TempDir(), "file")
	writeFile(t, file, "x")
	if _, err := Open(file); err == nil {
		t.Error("Open should fail for a regular file")
	}
}

func TestGetTournament(t *testing.T) {
	s, dir := newStore(t)
	writeFile(t, filepath.Join(dir, "tournaments", "spring-cup.json"), springCup)

	got, err := s.GetTournament("spring-cup")
	if err != nil {
		t.Fatalf("GetTournament: %v", err)
	}
	if got.ID != "1" || got.Name != "Spring Cup" || got.Status != models.TournamentStatusCompleted {
		t.Errorf("unexpected tournament header: %+v", got.Summary())
	}
	if len(got.Players) != 2 || got.Players[0].Seed == nil || *got.Players[0].Seed != 1 {
		t.Errorf("players = %+v", got.Players)
	}
	m := got.Rounds[0].Matches[0]
	if m.NextMatchID != nil || !m.Decided() || *m.WinnerID != "p1" {
		t.Errorf("match = %+v", m)
	}
	if got.TournamentWinnerID == nil || *got.TournamentWinnerID != "p1" {
		t.Errorf("winner = %v", got.TournamentWinnerID)
	}
}

func TestGetTournamentErrors(t *testing.T) {
	s, dir := newStore(t)
	writeFile(t, filepath.Join(dir, "tournaments", "broken.json"), `{"id": "broken", "rounds": [`)
	writeFile(t, filepath.Join(dir, "secret.json"), springCup)

	tests := []struct {
		id   string
		want error
	}{
		{"missing", ErrNotFound},
		{"broken", ErrMalformed},
		{"", ErrInvalidID},
		{"../secret", ErrInvalidID},
		{"a/b", ErrInvalidID},
	}
	for _, tt := range tests {
		_, err := s.GetTournament(tt.id)
		if !errors.Is(err, tt.want) {
			t.Errorf("GetTournament(%q) err = %v, want %v", tt.id, err, tt.want)
		}
	}
}

func TestListTournamentsSkipsBadFiles(t *testing.T) {
	s, dir := newStore(t)
	tdir := filepath.Join(dir, "tournaments")
	writeFile(t, filepath.Join(tdir, "b-spring.json"), springCup)
	writeFile(t, filepath.Join(tdir, "a-summer.json"), `{"id": "summer", "name": "Summer Slam", "date": "2025-07-01", "status": "planned"}`)
	writeFile(t, filepath.Join(tdir, "c-broken.json"), `not json`)
	writeFile(t, filepath.Join(tdir, "notes.txt"), `ignored`)

	got, err := s.ListTournaments()
	if err != nil {
		t.Fatalf("ListTournaments: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d summaries, want 2: %+v", len(got), got)
	}
	if got[0].Name != "Summer Slam" || got[1].Name != "Spring Cup" {
		t.Errorf("order = %s, %s; want file name order", got[0].Name, got[1].Name)
	}
}

func TestListTournamentsMissingDirectory(t *testing.T) {
	s, _ := newStore(t)
	got, err := s.ListTournaments()
	if err != nil {
		t.Fatalf("ListTournaments: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil list", got)
	}
}

func TestChallenges(t *testing.T) {
	s, dir := newStore(t)
	if got := s.Challenges(); len(got) != 0 {
		t.Errorf("missing file: got %d challenges", len(got))
	}

	writeFile(t, filepath.Join(dir, "challenges.json"), `[
	  {"id": "c1", "title": "Serve Ace", "description": "Win a point on serve", "difficulty": "Easy"},
	  {"id": "c2", "title": "Backhand Only", "description": "Win a game using only backhands", "difficulty": "Hard"},
	  {"id": "c3", "title": "Comeback", "description": "Win after trailing 3-9", "difficulty": "Medium"}
	]`)
	all := s.Challenges()
	if len(all) != 3 || all[1].Difficulty != models.DifficultyHard {
		t.Fatalf("challenges = %+v", all)
	}

	featured, rest := SplitFeatured(all, FeaturedChallengeCount)
	if len(featured) != 2 || len(rest) != 1 || rest[0].ID != "c3" {
		t.Errorf("featured=%v rest=%v", featured, rest)
	}
	featured, rest = SplitFeatured(all[:1], FeaturedChallengeCount)
	if len(featured) != 1 || len(rest) != 0 {
		t.Errorf("short list: featured=%v rest=%v", featured, rest)
	}

	writeFile(t, filepath.Join(dir, "challenges.json"), `{"not": "an array"}`)
	if got := s.Challenges(); len(got) != 0 {
		t.Errorf("malformed file: got %d challenges", len(got))
	}
}
