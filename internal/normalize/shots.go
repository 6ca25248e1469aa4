package normalize

import (
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/yiyuanlee/EPL-shot-maps/pkg/models"
)

// Pitch dimensions in meters. Raw coordinates are normalized to [0,1]
// with y growing toward the near touchline; the transform flips y so the
// table is attacking left to right on a 105x68 pitch.
const (
	PitchLength = 105.0
	PitchWidth  = 68.0
)

// Shots converts one match's raw shot container ({"h": [...], "a": [...]})
// into canonical shot rows: home side first, away second, input order
// preserved within each. A record failing any required numeric coercion
// is dropped on its own; the match never aborts here.
func Shots(matchID int, container map[string]any) []models.Shot {
	var rows []models.Shot
	for _, side := range []string{"h", "a"} {
		arr, ok := container[side].([]any)
		if !ok {
			continue
		}
		for i, r := range arr {
			rec, ok := r.(map[string]any)
			if !ok {
				continue
			}
			shot, ok := Shot(matchID, rec)
			if !ok {
				log.Debug().
					Int("match_id", matchID).
					Str("side", side).
					Int("index", i).
					Msg("Dropping shot with uncoercible fields")
				continue
			}
			rows = append(rows, shot)
		}
	}
	return rows
}

// Shot coerces a single raw shot record. The boolean is false when a
// required numeric field (x, y, minute, xG) is present but unparseable.
func Shot(matchID int, rec map[string]any) (models.Shot, bool) {
	xRaw, ok := coerceFloat(rec["x"], 0)
	if !ok {
		return models.Shot{}, false
	}
	yRaw, ok := coerceFloat(rec["y"], 0)
	if !ok {
		return models.Shot{}, false
	}
	minute, ok := coerceInt(rec["minute"], 0)
	if !ok {
		return models.Shot{}, false
	}
	xg, ok := coerceFloat(rec["xG"], 0)
	if !ok {
		return models.Shot{}, false
	}

	s := models.Shot{
		MatchID:    matchID,
		Date:       optString(rec["date"]),
		Player:     optString(rec["player"]),
		Team:       optString(rec["team"]),
		Minute:     minute,
		X:          round4(xRaw * PitchLength),
		Y:          round4((1.0 - yRaw) * PitchWidth),
		XG:         xg,
		Outcome:    Outcome(optString(rec["result"])),
		IsPenalty:  penaltyFlag(rec["isPenalty"]),
		HA:         optString(rec["h_a"]),
		Situation:  optString(rec["situation"]),
		ShotType:   optString(rec["shotType"]),
		AssistedBy: optString(rec["player_assisted"]),
		LastAction: optString(rec["lastAction"]),
	}

	if pid := rawString(rec["player_id"]); isDigits(pid) {
		if n, err := strconv.Atoi(pid); err == nil {
			s.PlayerID = n
			s.HasPlayer = true
		}
	}
	return s, true
}

// penaltyFlag is true only when the raw flag renders as a pure digit
// string parsing non-zero; "yes", "true" and absence are all false.
func penaltyFlag(v any) bool {
	s := rawString(v)
	if !isDigits(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n != 0
}
