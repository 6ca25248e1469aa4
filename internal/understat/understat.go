// Package understat parses Understat league and match pages into the row
// schema and orchestrates a season fetch run. Each page is tried against
// three extraction strategies in order: the legacy script block, the
// __NUXT__ hydration blob, and a sandboxed script VM.
package understat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yiyuanlee/EPL-shot-maps/internal/extract"
	"github.com/yiyuanlee/EPL-shot-maps/internal/fetch"
	"github.com/yiyuanlee/EPL-shot-maps/internal/normalize"
	"github.com/yiyuanlee/EPL-shot-maps/pkg/models"
)

const (
	leagueURLFmt = "https://understat.com/league/%s/%d"
	matchURLFmt  = "https://understat.com/match/%d"
)

// ErrFormat indicates that no extraction strategy recognized the page.
// Fatal when it happens on the league page; a per-match skip otherwise.
var ErrFormat = errors.New("source format unrecognized")

// LeagueURL returns the league page URL for a season start year.
func LeagueURL(league string, season int) string {
	return fmt.Sprintf(leagueURLFmt, league, season)
}

// MatchURL returns the match page URL for a match id.
func MatchURL(id int) string {
	return fmt.Sprintf(matchURLFmt, id)
}

// FetchMatches fetches the league page and returns canonical matches in
// page order.
func FetchMatches(ctx context.Context, f fetch.Fetcher, league string, season int) ([]models.Match, error) {
	markup, err := f.Fetch(ctx, LeagueURL(league, season))
	if err != nil {
		return nil, err
	}
	matches := parseMatches(markup)
	if len(matches) == 0 {
		return nil, fmt.Errorf("cannot find matches JSON on league page (all strategies failed): %w", ErrFormat)
	}
	return matches, nil
}

// parseMatches runs the extraction strategy chain over league markup.
func parseMatches(markup string) []models.Match {
	// 1. Legacy script blocks, both names the page has used.
	for _, name := range []string{"matchesData", "matches"} {
		if text, ok := extract.Block(markup, name); ok {
			if norm := decodeMatches(text); len(norm) > 0 {
				return norm
			}
		}
	}

	// 2. Hydration blob, shape-matched.
	if doc, ok := extract.Hydration(markup); ok {
		if node, ok := extract.FindFirst(doc, extract.MatchListShape); ok {
			if arr, ok := node.([]any); ok {
				if norm := normalize.Matches(arr); len(norm) > 0 {
					return norm
				}
			}
		}
	}

	// 3. Script VM.
	for _, name := range []string{"matchesData", "matches"} {
		if text, ok := extract.Script(markup, name); ok {
			if norm := decodeMatches(text); len(norm) > 0 {
				return norm
			}
		}
	}
	return nil
}

func decodeMatches(text string) []models.Match {
	var raw []any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil
	}
	return normalize.Matches(raw)
}

// FetchShots fetches one match page and returns its canonical shot rows.
func FetchShots(ctx context.Context, f fetch.Fetcher, matchID int) ([]models.Shot, error) {
	markup, err := f.Fetch(ctx, MatchURL(matchID))
	if err != nil {
		return nil, err
	}
	rows := parseShots(matchID, markup)
	if len(rows) == 0 {
		return nil, fmt.Errorf("cannot find shots JSON for match %d (all strategies failed): %w", matchID, ErrFormat)
	}
	return rows, nil
}

// parseShots runs the extraction strategy chain over match markup.
func parseShots(matchID int, markup string) []models.Shot {
	if text, ok := extract.Block(markup, "shotsData"); ok {
		if rows := decodeShots(matchID, text); len(rows) > 0 {
			return rows
		}
	}

	if doc, ok := extract.Hydration(markup); ok {
		if node, ok := extract.FindFirst(doc, extract.ShotPairShape); ok {
			if container, ok := node.(map[string]any); ok {
				if rows := normalize.Shots(matchID, container); len(rows) > 0 {
					return rows
				}
			}
		}
	}

	if text, ok := extract.Script(markup, "shotsData"); ok {
		if rows := decodeShots(matchID, text); len(rows) > 0 {
			return rows
		}
	}
	return nil
}

func decodeShots(matchID int, text string) []models.Shot {
	var container map[string]any
	if err := json.Unmarshal([]byte(text), &container); err != nil {
		return nil
	}
	return normalize.Shots(matchID, container)
}
