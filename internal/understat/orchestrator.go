package understat

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/yiyuanlee/EPL-shot-maps/internal/fetch"
	"github.com/yiyuanlee/EPL-shot-maps/pkg/models"
)

// Fatal empty-result errors, reported distinctly from fetch and format
// failures.
var (
	ErrNoMatches = errors.New("no matches after filters")
	ErrNoShots   = errors.New("no shots parsed")
)

// Runner drives a season fetch run: league page, round filters, date
// sort, then one match page at a time. The fetcher it is given is
// expected to pace and retry itself.
type Runner struct {
	Fetcher fetch.Fetcher
}

// Run produces the aggregated shot table for a season.
//
// The league page failing to parse is the one unrecoverable error in the
// pipeline. Individual match pages failing only log a warning and skip,
// so a partially blocked run still yields a table.
func (r *Runner) Run(ctx context.Context, opts models.RunOptions) ([]models.Shot, error) {
	league := opts.League
	if league == "" {
		league = "EPL"
	}

	matches, err := FetchMatches(ctx, r.Fetcher, league, opts.Season)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("matches", len(matches)).Str("league", league).Int("season", opts.Season).Msg("League page parsed")

	matches = filterRounds(matches, opts.FromRound, opts.ToRound)

	// Lexical sort on the ISO-ish date string, as persisted by the source.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date < matches[j].Date
	})

	if opts.LimitRecent > 0 && len(matches) > opts.LimitRecent {
		matches = matches[len(matches)-opts.LimitRecent:]
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w (check season or round range)", ErrNoMatches)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(len(matches),
			progressbar.OptionSetDescription(fmt.Sprintf("%s %d fetching shots", league, opts.Season)),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	var table []models.Shot
	var skipped int
	for _, m := range matches {
		rows, err := FetchShots(ctx, r.Fetcher, m.ID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			skipped++
			log.Warn().Err(err).Int("match_id", m.ID).Msg("Match skipped")
		} else {
			table = append(table, rows...)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	log.Debug().
		Int("rows", len(table)).
		Int("skipped", skipped).
		Msg("Fetch run finished")

	if len(table) == 0 {
		return nil, fmt.Errorf("%w (site blocked or format changed)", ErrNoShots)
	}
	return table, nil
}

// filterRounds applies inclusive round bounds. A match with an unknown
// round counts as round 0 against the lower bound and as a very large
// round against the upper bound.
func filterRounds(matches []models.Match, from, to int) []models.Match {
	if from == 0 && to == 0 {
		return matches
	}
	out := matches[:0]
	for _, m := range matches {
		if from > 0 {
			rnd := 0
			if m.HasRound {
				rnd = m.Round
			}
			if rnd < from {
				continue
			}
		}
		if to > 0 {
			rnd := math.MaxInt
			if m.HasRound {
				rnd = m.Round
			}
			if rnd > to {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}
