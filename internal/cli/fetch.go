package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yiyuanlee/EPL-shot-maps/internal/cache"
	"github.com/yiyuanlee/EPL-shot-maps/internal/config"
	"github.com/yiyuanlee/EPL-shot-maps/internal/fetch"
	"github.com/yiyuanlee/EPL-shot-maps/internal/output"
	"github.com/yiyuanlee/EPL-shot-maps/internal/ratelimit"
	"github.com/yiyuanlee/EPL-shot-maps/internal/understat"
	"github.com/yiyuanlee/EPL-shot-maps/pkg/models"
)

var (
	season      int
	league      string
	fromRound   int
	toRound     int
	limitRecent int
	outPath     string
	outFormat   string
	engine      string
	fetchDelay  time.Duration
	debugPages  bool
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Scrape a season's shot-level data into CSV",
	Long: `Fetches the league page for a season, resolves its fixtures, then fetches
and parses every match page one at a time, aggregating all shots into a
single flat table.

Per-match failures are warnings: a partially blocked run still produces a
table. Only an unrecognized league page or an empty final table aborts.`,
	Example: `  # Whole season into the default data/shots_2024.csv
  shotmaps fetch --season 2024

  # Rounds 1-10 into a custom path
  shotmaps fetch --season 2024 --from-round 1 --to-round 10 --out data/shots_r1_10.csv

  # Only the three most recent matches, verbose, keeping page dumps
  shotmaps fetch --season 2024 --limit-matches 3 --debug -v

  # Headless Chrome when plain HTTP keeps getting challenged
  shotmaps fetch --season 2024 --engine browser`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().IntVar(&season, "season", 0, "Season start year (e.g., 2024 for 2024/25)")
	fetchCmd.Flags().StringVar(&league, "league", config.DefaultLeague, "League code on the source site")
	fetchCmd.Flags().IntVar(&fromRound, "from-round", 0, "Only matches with round >= this")
	fetchCmd.Flags().IntVar(&toRound, "to-round", 0, "Only matches with round <= this")
	fetchCmd.Flags().IntVar(&limitRecent, "limit-matches", 0, "Only fetch the most recent N matches")
	fetchCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path (default data/shots_<season>.csv)")
	fetchCmd.Flags().StringVar(&outFormat, "format", "csv", "Output format: csv or json")
	fetchCmd.Flags().StringVar(&engine, "engine", config.DefaultEngine, "Fetch engine: http or browser")
	fetchCmd.Flags().DurationVar(&fetchDelay, "delay", 0, "Politeness delay between match fetches (default 900ms)")
	fetchCmd.Flags().BoolVar(&debugPages, "debug", false, "Save fetched pages for troubleshooting")

	_ = fetchCmd.MarkFlagRequired("season")
}

func runFetch(cmd *cobra.Command, args []string) error {
	if season <= 0 {
		return fmt.Errorf("invalid --season: %d", season)
	}
	if outFormat != "csv" && outFormat != "json" {
		return fmt.Errorf("invalid --format: %s (must be csv or json)", outFormat)
	}

	cfg, err := config.Load(rootCmd)
	if err != nil {
		return err
	}
	cfg.Engine = engine
	if fetchDelay > 0 {
		cfg.FetchDelay = fetchDelay
	}

	fetcher, err := buildFetcher(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner := &understat.Runner{Fetcher: fetcher}
	table, err := runner.Run(ctx, models.RunOptions{
		League:      league,
		Season:      season,
		FromRound:   fromRound,
		ToRound:     toRound,
		LimitRecent: limitRecent,
		Progress:    !quiet,
	})
	if err != nil {
		return err
	}

	path := outPath
	if path == "" {
		path = filepath.Join("data", fmt.Sprintf("shots_%d.%s", season, outFormat))
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if outFormat == "json" {
		err = output.WriteJSON(file, table)
	} else {
		err = output.WriteCSV(file, table)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Info().Int("rows", len(table)).Str("path", path).Msg("Table persisted")
	fmt.Printf("Saved %d rows to %s\n", len(table), path)
	return nil
}

// buildFetcher assembles the transport stack: engine, page cache, and
// politeness pacing on top.
func buildFetcher(cfg *config.Config) (fetch.Fetcher, error) {
	var inner fetch.Fetcher
	switch strings.ToLower(cfg.Engine) {
	case config.EngineBrowser:
		inner = fetch.NewBrowser(cfg)
	default:
		client, err := fetch.NewClient(cfg, cache.NewMemoryCache())
		if err != nil {
			return nil, err
		}
		if debugPages {
			client.SetDebugDir("debug_pages")
		}
		inner = client
	}

	rps := 1.0
	if cfg.FetchDelay > 0 {
		rps = 1.0 / cfg.FetchDelay.Seconds()
	}
	limiter := ratelimit.NewHostLimiter(rps, 1, cfg.FetchJitter)
	return fetch.Paced{Inner: inner, Limiter: limiter}, nil
}
