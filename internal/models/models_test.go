package models

import (
	"encoding/json"
	"testing"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want ID
	}{
		{`{"id": 7}`, "7"},
		{`{"id": "spring-cup"}`, "spring-cup"},
		{`{"id": null}`, ""},
		{`{}`, ""},
	}
	for _, tt := range tests {
		var v struct {
			ID ID `json:"id"`
		}
		if err := json.Unmarshal([]byte(tt.in), &v); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.in, err)
			continue
		}
		if v.ID != tt.want {
			t.Errorf("Unmarshal(%s) = %q, want %q", tt.in, v.ID, tt.want)
		}
	}

	var v struct {
		ID ID `json:"id"`
	}
	if err := json.Unmarshal([]byte(`{"id": [1]}`), &v); err == nil {
		t.Error("an array id should be rejected")
	}
}

func TestStatusLabel(t *testing.T) {
	for in, want := range map[TournamentStatus]string{
		TournamentStatusPlanned:    "Planned",
		TournamentStatusInProgress: "In_progress",
		TournamentStatusCompleted:  "Completed",
		"postponed":                "Postponed",
		"":                         "",
	} {
		if got := in.Label(); got != want {
			t.Errorf("%q.Label() = %q, want %q", in, got, want)
		}
	}
}

func TestMatchesAndDecided(t *testing.T) {
	winner := "p1"
	empty := ""
	tour := Tournament{Rounds: []Round{
		{Matches: []Match{{ID: "A", WinnerID: &winner}, {ID: "B", WinnerID: &empty}}},
		{Matches: []Match{{ID: "C"}}},
	}}

	ms := tour.Matches()
	if len(ms) != 3 || ms[0].ID != "A" || ms[2].ID != "C" {
		t.Fatalf("Matches() = %+v", ms)
	}
	if !ms[0].Decided() || ms[1].Decided() || ms[2].Decided() {
		t.Error("only A has a winner")
	}
}
