// Package bracket turns a tournament's flat list of matches into a laid-out tree.
//
// Matches only point forward: each one names the match its winner advances to
// (NextMatchID). Reading those pointers as "parent" edges gives a tree whose root is the
// final. The package is split in three small steps:
//
//  1. Normalize: pick the root from the edge list, inferring it when the data omits it.
//  2. Layout:    walk down from the root assigning depth and breadth to every match.
//  3. Directory: map slots and player ids to display text.
//
// Nothing here reads files, logs, or mutates its input. Bad bracket data never panics;
// it comes back as an *Anomaly so the page around the bracket still renders.
package bracket

import (
	"errors"
	"fmt"
	"strings"
)

// AnomalyKind names why a bracket tree could not be (fully) built.
type AnomalyKind string

const (
	KindNoMatches        AnomalyKind = "no_matches"         // The tournament has no matches at all
	KindNoRoot           AnomalyKind = "no_root"            // Every match feeds into another one
	KindMultipleRoots    AnomalyKind = "multiple_roots"     // More than one match could be the final
	KindOrphanedNodes    AnomalyKind = "orphaned_nodes"     // Some matches have no path to the final
	KindDuplicateMatchID AnomalyKind = "duplicate_match_id" // Two matches share an id
)

// Anomaly is a structured, non-fatal result describing a data-quality problem in a bracket.
// It implements error so callers can use errors.As, but it is never a reason to fail a page.
type Anomaly struct {
	Kind     AnomalyKind `json:"kind"`
	MatchIDs []string    `json:"matchIds,omitempty"` // The matches involved, in input order
}

func (a *Anomaly) Error() string {
	if len(a.MatchIDs) == 0 {
		return fmt.Sprintf("bracket anomaly: %s", a.Kind)
	}
	return fmt.Sprintf("bracket anomaly: %s (%s)", a.Kind, strings.Join(a.MatchIDs, ", "))
}

// Message is the text shown to visitors in place of (or next to) the diagram.
func (a *Anomaly) Message() string {
	switch a.Kind {
	case KindNoMatches:
		return "No match data to display."
	case KindNoRoot:
		return "Could not determine bracket root."
	case KindMultipleRoots:
		return fmt.Sprintf("Could not determine bracket root: %s could each be the final.", strings.Join(a.MatchIDs, ", "))
	case KindOrphanedNodes:
		return fmt.Sprintf("Some matches are not connected to the final and were left out: %s.", strings.Join(a.MatchIDs, ", "))
	case KindDuplicateMatchID:
		return fmt.Sprintf("Match ids are used more than once: %s.", strings.Join(a.MatchIDs, ", "))
	default:
		return "The bracket could not be drawn."
	}
}

// AsAnomaly unwraps err into an *Anomaly if it is one.
func AsAnomaly(err error) (*Anomaly, bool) {
	var a *Anomaly
	if errors.As(err, &a) {
		return a, true
	}
	return nil, false
}
