package normalize

import "testing"

func TestMatches(t *testing.T) {
	raw := []any{
		map[string]any{"id": "101", "round": "3", "datetime": "2024-08-17 15:00:00"},
		map[string]any{"id": 102.0, "round_number": 4.0, "date": "2024-08-18"},
		map[string]any{"id": "103", "week": "5"},
		map[string]any{"id": "abc", "round": "1"},    // bad id: dropped
		map[string]any{"id": "104", "round": "n/a"},  // bad round: kept, unknown
		map[string]any{"id": "105", "round": nil},    // null round: unknown
	}

	out := Matches(raw)
	if len(out) != 5 {
		t.Fatalf("expected 5 matches, got %d", len(out))
	}

	if out[0].ID != 101 || !out[0].HasRound || out[0].Round != 3 || out[0].Date != "2024-08-17 15:00:00" {
		t.Errorf("first match = %+v", out[0])
	}
	if out[1].ID != 102 || out[1].Round != 4 || out[1].Date != "2024-08-18" {
		t.Errorf("second match = %+v", out[1])
	}
	if out[2].Round != 5 {
		t.Errorf("week fallback not applied: %+v", out[2])
	}
	if out[3].HasRound {
		t.Errorf("uncoercible round must stay unknown: %+v", out[3])
	}
	if out[4].HasRound {
		t.Errorf("null round must stay unknown: %+v", out[4])
	}

	// Order follows input order.
	for i, want := range []int{101, 102, 103, 104, 105} {
		if out[i].ID != want {
			t.Errorf("position %d: id = %d, want %d", i, out[i].ID, want)
		}
	}
}

func TestMatchesDatetimePreferred(t *testing.T) {
	out := Matches([]any{map[string]any{"id": "1", "round": "1", "datetime": "A", "date": "B"}})
	if len(out) != 1 || out[0].Date != "A" {
		t.Fatalf("datetime must win over date: %+v", out)
	}
}
