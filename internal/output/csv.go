// Package output persists and re-reads the shot table. The CSV layout is
// a fixed contract: header row, canonical column order, one data row per
// shot, no index column.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/yiyuanlee/EPL-shot-maps/pkg/models"
)

// WriteCSV writes the shot table to w with the canonical header.
func WriteCSV(w io.Writer, shots []models.Shot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.Columns); err != nil {
		return err
	}
	for _, s := range shots {
		if err := cw.Write(row(s)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(s models.Shot) []string {
	playerID := ""
	if s.HasPlayer {
		playerID = strconv.Itoa(s.PlayerID)
	}
	return []string{
		strconv.Itoa(s.MatchID),
		s.Date,
		s.Player,
		s.Team,
		strconv.Itoa(s.Minute),
		formatFloat(s.X),
		formatFloat(s.Y),
		formatFloat(s.XG),
		s.Outcome,
		strconv.FormatBool(s.IsPenalty),
		playerID,
		s.HA,
		s.Situation,
		s.ShotType,
		s.AssistedBy,
		s.LastAction,
	}
}

// Coordinates are rounded to 4 decimals at normalization; the shortest
// representation round-trips them exactly.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ReadCSV parses a persisted shot table back into rows, for the charts
// command. The header must carry at least the minimal chart columns
// (player, team, minute, x, y, xg, outcome); unknown columns are
// ignored, rows with uncoercible numerics are skipped.
func ReadCSV(r io.Reader) ([]models.Shot, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV")
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	for _, required := range []string{"player", "team", "minute", "x", "y", "xg", "outcome"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var shots []models.Shot
	for _, rec := range records[1:] {
		minute, err1 := strconv.Atoi(field(rec, "minute"))
		x, err2 := strconv.ParseFloat(field(rec, "x"), 64)
		y, err3 := strconv.ParseFloat(field(rec, "y"), 64)
		xg, err4 := strconv.ParseFloat(field(rec, "xg"), 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		s := models.Shot{
			Date:       field(rec, "date"),
			Player:     field(rec, "player"),
			Team:       field(rec, "team"),
			Minute:     minute,
			X:          x,
			Y:          y,
			XG:         xg,
			Outcome:    field(rec, "outcome"),
			HA:         field(rec, "h_a"),
			Situation:  field(rec, "situation"),
			ShotType:   field(rec, "shotType"),
			AssistedBy: field(rec, "assisted_by"),
			LastAction: field(rec, "lastAction"),
		}
		if id, err := strconv.Atoi(field(rec, "match_id")); err == nil {
			s.MatchID = id
		}
		if pid := field(rec, "player_id"); pid != "" {
			if n, err := strconv.Atoi(pid); err == nil {
				s.PlayerID = n
				s.HasPlayer = true
			}
		}
		if b, err := strconv.ParseBool(field(rec, "is_penalty")); err == nil {
			s.IsPenalty = b
		}
		shots = append(shots, s)
	}
	return shots, nil
}
