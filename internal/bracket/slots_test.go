package bracket

import (
	"testing"

	"github.com/trentd187/pingpong-league/internal/models"
)

func testDirectory() *Directory {
	return NewDirectory([]models.Player{
		{ID: "A", Name: "Alice"},
		{ID: "B", Name: "Bob"},
		{ID: "A", Name: "Alice Again"},
	})
}

func TestResolvePlayerName(t *testing.T) {
	d := testDirectory()
	tests := []struct {
		id   string
		want string
	}{
		{"A", "Alice"},
		{"B", "Bob"},
		{"nonexistent-id", UnknownPlayer},
		{"", Undecided},
	}
	for _, tt := range tests {
		if got := d.ResolvePlayerName(tt.id); got != tt.want {
			t.Errorf("ResolvePlayerName(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}

	var empty *Directory
	if got := empty.ResolvePlayerName("A"); got != UnknownPlayer {
		t.Errorf("nil directory resolved %q", got)
	}
}

func TestRenderSlot(t *testing.T) {
	d := testDirectory()
	tests := []struct {
		name string
		slot models.MatchSlot
		want string
	}{
		{"known player", playerSlot("B"), "Bob"},
		{"unknown player", playerSlot("Z"), UnknownPlayer},
		{"player without id", models.MatchSlot{Type: models.SlotTypePlayer}, Undecided},
		{"progression", fromSlot("M3"), "Winner of M3"},
		{"progression without source", models.MatchSlot{Type: models.SlotTypeProgression}, Undecided},
		{"unknown type", models.MatchSlot{Type: "bye"}, EmptySlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.RenderSlot(tt.slot); got != tt.want {
				t.Errorf("RenderSlot = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSlotIgnoresDecidedSource(t *testing.T) {
	d := testDirectory()
	rounds := threeMatchRounds()
	rounds[0].Matches[0].WinnerID = str("A")

	final := IndexMatches(rounds)["M3"]
	if got := d.RenderSlot(final.Slots[0]); got != "Winner of M1" {
		t.Errorf("RenderSlot = %q, want %q", got, "Winner of M1")
	}
	if got := d.ResolveSlot(final.Slots[0], IndexMatches(rounds)); got != "Alice" {
		t.Errorf("ResolveSlot = %q, want Alice", got)
	}
	if got := d.ResolveSlot(final.Slots[1], IndexMatches(rounds)); got != "Winner of M2" {
		t.Errorf("ResolveSlot for undecided source = %q, want %q", got, "Winner of M2")
	}
}

func TestIsWinner(t *testing.T) {
	rounds := threeMatchRounds()
	idx := IndexMatches(rounds)
	m1 := idx["M1"]

	for _, s := range m1.Slots {
		if IsWinner(m1, s, idx) {
			t.Errorf("undecided match marked %s as winner", s.PlayerID)
		}
	}

	rounds[0].Matches[0].WinnerID = str("B")
	rounds[1].Matches[0].WinnerID = str("B")
	idx = IndexMatches(rounds)
	m1, m3 := idx["M1"], idx["M3"]

	if IsWinner(m1, m1.Slots[0], idx) || !IsWinner(m1, m1.Slots[1], idx) {
		t.Error("M1: only B's slot should be marked as winner")
	}
	if !IsWinner(m3, m3.Slots[0], idx) {
		t.Error("M3: slot fed by M1 (won by B) should be the winner")
	}
	if IsWinner(m3, m3.Slots[1], idx) {
		t.Error("M3: slot fed by undecided M2 should not be the winner")
	}

	empty := ""
	m1.WinnerID = &empty
	if IsWinner(m1, m1.Slots[1], idx) {
		t.Error("empty winner id should count as undecided")
	}
}
