// Package normalize turns raw decoded shot and fixture records into the
// typed row schema. Records that fail a required coercion are dropped
// individually; the drop is a modeled ok-return, never a panic.
package normalize

import (
	"strings"

	"github.com/yiyuanlee/EPL-shot-maps/pkg/models"
)

var outcomeTable = map[string]string{
	"goal":         models.OutcomeGoal,
	"saved":        models.OutcomeSaved,
	"blocked":      models.OutcomeBlocked,
	"missed":       models.OutcomeOffTarget,
	"shot_on_post": models.OutcomeOffTarget,
}

// Outcome maps a raw free-text shot result onto the fixed vocabulary.
// Unmapped non-empty labels pass through verbatim; this keeps new source
// labels visible in the table instead of flattening them to unknown.
func Outcome(raw string) string {
	v := strings.ReplaceAll(strings.ToLower(raw), " ", "_")
	if mapped, ok := outcomeTable[v]; ok {
		return mapped
	}
	if v == "" {
		return models.OutcomeUnknown
	}
	return v
}
