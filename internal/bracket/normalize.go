package bracket

import "github.com/trentd187/pingpong-league/internal/models"

// Edge is one match reduced to what root resolution needs.
// ParentID is the id of the match this one's winner feeds into; "" means none.
type Edge struct {
	ID       string
	ParentID string
}

// Graph is the normalized parent relation over a set of matches.
type Graph struct {
	RootID string
	// RootInferred is true when no match had an empty ParentID and the root was picked
	// as the single match nobody feeds into. Its parent is cleared in Parent only.
	RootInferred bool
	// Parent maps every match id to its parent id ("" for the root).
	Parent map[string]string
	// Order lists match ids in input order; used as the sibling tie-break.
	Order []string
}

// EdgesFromRounds flattens rounds into edges, round order first, then match order.
// A nil or empty NextMatchID both count as "no parent".
func EdgesFromRounds(rounds []models.Round) []Edge {
	var edges []Edge
	for _, r := range rounds {
		for _, m := range r.Matches {
			e := Edge{ID: m.ID}
			if m.NextMatchID != nil {
				e.ParentID = *m.NextMatchID
			}
			edges = append(edges, e)
		}
	}
	return edges
}

// Normalize resolves the unique root of the match graph.
//
// Exactly one edge without a parent is the root. With none, the root is inferred as the
// single match that is never anyone's parent. Any other situation (no matches, duplicate
// ids, several parentless matches, zero or several inferred candidates) is returned as an
// *Anomaly; Normalize never guesses between candidates.
//
// The input slice is not modified.
func Normalize(edges []Edge) (*Graph, error) {
	if len(edges) == 0 {
		return nil, &Anomaly{Kind: KindNoMatches}
	}

	g := &Graph{
		Parent: make(map[string]string, len(edges)),
		Order:  make([]string, 0, len(edges)),
	}

	var dupes []string
	for _, e := range edges {
		if _, seen := g.Parent[e.ID]; seen {
			dupes = appendUnique(dupes, e.ID)
			continue
		}
		g.Parent[e.ID] = e.ParentID
		g.Order = append(g.Order, e.ID)
	}
	if len(dupes) > 0 {
		return nil, &Anomaly{Kind: KindDuplicateMatchID, MatchIDs: dupes}
	}

	var parentless []string
	for _, id := range g.Order {
		if g.Parent[id] == "" {
			parentless = append(parentless, id)
		}
	}

	switch len(parentless) {
	case 1:
		g.RootID = parentless[0]
		return g, nil
	case 0:
		// Fall through to inference below.
	default:
		return nil, &Anomaly{Kind: KindMultipleRoots, MatchIDs: parentless}
	}

	targets := make(map[string]bool, len(g.Order))
	for _, id := range g.Order {
		targets[g.Parent[id]] = true
	}
	var candidates []string
	for _, id := range g.Order {
		if !targets[id] {
			candidates = append(candidates, id)
		}
	}

	switch len(candidates) {
	case 1:
		g.RootID = candidates[0]
		g.RootInferred = true
		g.Parent[g.RootID] = ""
		return g, nil
	case 0:
		return nil, &Anomaly{Kind: KindNoRoot}
	default:
		return nil, &Anomaly{Kind: KindMultipleRoots, MatchIDs: candidates}
	}
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
