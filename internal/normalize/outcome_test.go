package normalize

import "testing"

func TestOutcome(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Goal", "goal"},
		{"goal", "goal"},
		{"SavedShot", "savedshot"}, // passthrough, not in the table
		{"saved", "saved"},
		{"blocked", "blocked"},
		{"missed", "off_target"},
		{"MissedShots", "missedshots"}, // passthrough
		{"Shot On Post", "off_target"},
		{"shot_on_post", "off_target"},
		{"", "unknown"},
		{"OwnGoal", "owngoal"}, // unmapped labels pass through verbatim
	}
	for _, c := range cases {
		if got := Outcome(c.in); got != c.want {
			t.Errorf("Outcome(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
