package normalize

import (
	"github.com/rs/zerolog/log"
	"github.com/yiyuanlee/EPL-shot-maps/pkg/models"
)

// Matches converts raw fixture records into canonical matches. A record
// whose id fails integer coercion is dropped; an uncoercible round only
// leaves the round unknown. Output order follows input order, sorting is
// the orchestrator's job.
func Matches(raw []any) []models.Match {
	out := make([]models.Match, 0, len(raw))
	for _, r := range raw {
		rec, ok := r.(map[string]any)
		if !ok {
			continue
		}
		id, ok := coerceID(rec["id"])
		if !ok {
			log.Debug().Interface("id", rec["id"]).Msg("Dropping fixture with bad id")
			continue
		}

		m := models.Match{ID: id}
		if rnd, ok := resolveRound(rec); ok {
			m.Round = rnd
			m.HasRound = true
		}
		if d := optString(rec["datetime"]); d != "" {
			m.Date = d
		} else {
			m.Date = optString(rec["date"])
		}
		out = append(out, m)
	}
	return out
}

// coerceID requires the field to be present, unlike the defaulting
// numeric coercions used for shots.
func coerceID(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	return coerceInt(v, 0)
}

// resolveRound takes the first round-like key carrying a usable value.
func resolveRound(rec map[string]any) (int, bool) {
	for _, key := range []string{"round", "round_number", "week"} {
		v, present := rec[key]
		if !present || v == nil || v == "" {
			continue
		}
		if n, ok := coerceInt(v, 0); ok {
			return n, true
		}
		return 0, false
	}
	return 0, false
}
