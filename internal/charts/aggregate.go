// Package charts renders SVG visualizations from a shot table: per-player
// shot maps on a half pitch, a conversion bar chart and an xG-vs-goals
// scatter. Input is the minimal column contract (player, team, minute,
// x, y, xg, outcome); rendering never mutates the table.
package charts

import (
	"sort"

	"github.com/yiyuanlee/EPL-shot-maps/pkg/models"
)

// PlayerStats aggregates one player's shots.
type PlayerStats struct {
	Player  string
	Shots   int
	Goals   int
	TotalXG float64
}

// Conversion returns goals per shot.
func (p PlayerStats) Conversion() float64 {
	if p.Shots == 0 {
		return 0
	}
	return float64(p.Goals) / float64(p.Shots)
}

// Aggregate groups shots by player. Output is sorted by shot volume
// descending, player name ascending on ties, so callers get a stable
// order out of the map.
func Aggregate(shots []models.Shot) []PlayerStats {
	byPlayer := make(map[string]*PlayerStats)
	for _, s := range shots {
		st, ok := byPlayer[s.Player]
		if !ok {
			st = &PlayerStats{Player: s.Player}
			byPlayer[s.Player] = st
		}
		st.Shots++
		st.TotalXG += s.XG
		if s.Outcome == models.OutcomeGoal {
			st.Goals++
		}
	}

	out := make([]PlayerStats, 0, len(byPlayer))
	for _, st := range byPlayer {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Shots != out[j].Shots {
			return out[i].Shots > out[j].Shots
		}
		return out[i].Player < out[j].Player
	})
	return out
}

// TopShooters returns the n players with the most shots.
func TopShooters(shots []models.Shot, n int) []string {
	stats := Aggregate(shots)
	if n > len(stats) {
		n = len(stats)
	}
	names := make([]string, 0, n)
	for _, st := range stats[:n] {
		names = append(names, st.Player)
	}
	return names
}

// withMinShots filters aggregates below the shot threshold, preserving
// order.
func withMinShots(stats []PlayerStats, minShots int) []PlayerStats {
	out := stats[:0:0]
	for _, st := range stats {
		if st.Shots >= minShots {
			out = append(out, st)
		}
	}
	return out
}

// vmap maps a value from one range into another.
func vmap(value, low1, high1, low2, high2 float64) float64 {
	return low2 + (high2-low2)*(value-low1)/(high1-low1)
}
