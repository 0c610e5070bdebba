// Package store reads the league's data files.
// The "database" of this site is a directory of JSON files:
//
//	<data dir>/tournaments/<id>.json   one tournament per file
//	<data dir>/challenges.json         an array of challenges
//
// Every call reads from disk. Nothing is cached between requests, so editing a file is
// visible on the next page load without restarting the server.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/trentd187/pingpong-league/internal/models"
)

// Sentinel errors. Handlers map these to HTTP status codes with errors.Is.
var (
	ErrNotFound  = errors.New("not found")
	ErrInvalidID = errors.New("invalid id")
	ErrMalformed = errors.New("malformed data file")
)

// FeaturedChallengeCount is how many challenges are highlighted at the top of the list.
const FeaturedChallengeCount = 2

// validID limits tournament ids to characters that cannot escape the tournaments directory.
var validID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Store reads tournaments and challenges from a data directory.
type Store struct {
	dataDir string
}

// Open returns a Store for dataDir. It fails if the directory does not exist, so a
// misconfigured DATA_DIR stops the server at startup instead of showing empty pages.
func Open(dataDir string) (*Store, error) {
	info, err := os.Stat(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open data dir %s: %w", dataDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open data dir %s: not a directory", dataDir)
	}
	return &Store{dataDir: dataDir}, nil
}

func (s *Store) tournamentsDir() string {
	return filepath.Join(s.dataDir, "tournaments")
}

// ListTournaments returns a summary of every *.json file in the tournaments directory,
// in file name order. Files that cannot be read or parsed are skipped with a warning.
// A missing tournaments directory is an empty list, not an error.
func (s *Store) ListTournaments() ([]models.TournamentSummary, error) {
	entries, err := os.ReadDir(s.tournamentsDir())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn().Str("dir", s.tournamentsDir()).Msg("tournaments directory does not exist")
			return []models.TournamentSummary{}, nil
		}
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	summaries := make([]models.TournamentSummary, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		t, err := s.readTournament(filepath.Join(s.tournamentsDir(), e.Name()))
		if err != nil {
			log.Warn().Err(err).Str("file", e.Name()).Msg("skipping tournament file")
			continue
		}
		summaries = append(summaries, t.Summary())
	}
	return summaries, nil
}

// GetTournament reads <id>.json. It returns ErrInvalidID for ids that are empty or could
// escape the directory, ErrNotFound if the file is missing, and ErrMalformed (wrapped)
// if the JSON does not parse.
func (s *Store) GetTournament(id string) (*models.Tournament, error) {
	if !validID.MatchString(id) {
		return nil, fmt.Errorf("tournament %q: %w", id, ErrInvalidID)
	}
	return s.readTournament(filepath.Join(s.tournamentsDir(), id+".json"))
}

func (s *Store) readTournament(path string) (*models.Tournament, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("tournament %s: %w", filepath.Base(path), ErrNotFound)
		}
		return nil, fmt.Errorf("read tournament %s: %w", filepath.Base(path), err)
	}

	var t models.Tournament
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tournament %s: %w: %v", filepath.Base(path), ErrMalformed, err)
	}
	return &t, nil
}

// Challenges returns every challenge in file order. A missing or unreadable file is
// logged and treated as an empty list so the pages around it still render.
func (s *Store) Challenges() []models.Challenge {
	path := filepath.Join(s.dataDir, "challenges.json")
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("reading challenges")
		return []models.Challenge{}
	}

	var challenges []models.Challenge
	if err := json.Unmarshal(data, &challenges); err != nil {
		log.Error().Err(err).Str("file", path).Msg("parsing challenges")
		return []models.Challenge{}
	}
	if challenges == nil {
		challenges = []models.Challenge{}
	}
	return challenges
}

// SplitFeatured returns the first n challenges and the rest.
func SplitFeatured(all []models.Challenge, n int) (featured, rest []models.Challenge) {
	if n > len(all) {
		n = len(all)
	}
	if n < 0 {
		n = 0
	}
	return all[:n], all[n:]
}
