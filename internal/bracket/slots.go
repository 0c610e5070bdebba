package bracket

import "github.com/trentd187/pingpong-league/internal/models"

// Placeholder texts. "Unknown" (an id we cannot find) and "TBD" (nobody decided yet)
// must never be confused with each other.
const (
	UnknownPlayer = "Unknown Player"
	Undecided     = "TBD"
	EmptySlot     = "Empty Slot"
)

// Directory resolves player ids against one tournament's player list.
type Directory struct {
	names map[string]string
}

// NewDirectory indexes players by id. When an id repeats, the first entry wins.
func NewDirectory(players []models.Player) *Directory {
	d := &Directory{names: make(map[string]string, len(players))}
	for _, p := range players {
		if _, dup := d.names[p.ID]; !dup {
			d.names[p.ID] = p.Name
		}
	}
	return d
}

// ResolvePlayerName never fails: an empty id is undecided, an id not in the list is unknown.
func (d *Directory) ResolvePlayerName(playerID string) string {
	if playerID == "" {
		return Undecided
	}
	if d != nil {
		if name, ok := d.names[playerID]; ok {
			return name
		}
	}
	return UnknownPlayer
}

// RenderSlot maps a slot to display text. Progression slots always render as
// "Winner of <id>", whether or not that match has been decided; see ResolveSlot.
func (d *Directory) RenderSlot(slot models.MatchSlot) string {
	switch slot.Type {
	case models.SlotTypePlayer:
		return d.ResolvePlayerName(slot.PlayerID)
	case models.SlotTypeProgression:
		if slot.SourceMatchID == "" {
			return Undecided
		}
		return "Winner of " + slot.SourceMatchID
	default:
		return EmptySlot
	}
}

// ResolveSlot is RenderSlot plus the explicit substitution step: a progression slot whose
// source match has a winner shows that winner's name instead of "Winner of ...".
func (d *Directory) ResolveSlot(slot models.MatchSlot, matches map[string]models.Match) string {
	if slot.Type == models.SlotTypeProgression {
		if src, ok := matches[slot.SourceMatchID]; ok && src.Decided() {
			return d.ResolvePlayerName(*src.WinnerID)
		}
	}
	return d.RenderSlot(slot)
}

// IsWinner reports whether slot is the winning side of m. An undecided match has no
// winning side. Progression slots win when their source match's winner won m.
func IsWinner(m models.Match, slot models.MatchSlot, matches map[string]models.Match) bool {
	if !m.Decided() {
		return false
	}
	switch slot.Type {
	case models.SlotTypePlayer:
		return slot.PlayerID != "" && slot.PlayerID == *m.WinnerID
	case models.SlotTypeProgression:
		src, ok := matches[slot.SourceMatchID]
		return ok && src.Decided() && *src.WinnerID == *m.WinnerID
	default:
		return false
	}
}

// IndexMatches maps match ids to matches across all rounds.
func IndexMatches(rounds []models.Round) map[string]models.Match {
	idx := make(map[string]models.Match)
	for _, r := range rounds {
		for _, m := range r.Matches {
			if _, dup := idx[m.ID]; !dup {
				idx[m.ID] = m
			}
		}
	}
	return idx
}
