package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yiyuanlee/EPL-shot-maps/internal/charts"
	"github.com/yiyuanlee/EPL-shot-maps/internal/output"
)

var (
	csvPath     string
	chartPlayer string
	minShots    int
	topN        int
	outDir      string
)

// chartsCmd represents the charts command
var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render SVG charts from a shot CSV",
	Long: `Reads a shot-level CSV produced by fetch and renders a set of SVG charts:
per-player shot maps on a half pitch, a conversion-rate bar chart and an
xG-vs-goals scatter.

Without --player, shot maps are rendered for the three highest-volume
shooters in the table.`,
	Example: `  shotmaps charts --csv data/shots_2024.csv
  shotmaps charts --csv data/shots_2024.csv --player "Erling Haaland"
  shotmaps charts --csv data/shots_2024.csv --min-shots 20 --outdir report`,
	RunE: runCharts,
}

func init() {
	rootCmd.AddCommand(chartsCmd)

	chartsCmd.Flags().StringVar(&csvPath, "csv", "", "Path to shot-level CSV")
	chartsCmd.Flags().StringVar(&chartPlayer, "player", "", "Render the shot map for a specific player")
	chartsCmd.Flags().IntVar(&minShots, "min-shots", 10, "Minimum shots for the efficiency charts")
	chartsCmd.Flags().IntVar(&topN, "top", 15, "Number of players on the conversion bar chart")
	chartsCmd.Flags().StringVar(&outDir, "outdir", "out", "Output directory for SVGs")

	_ = chartsCmd.MarkFlagRequired("csv")
}

func runCharts(cmd *cobra.Command, args []string) error {
	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open CSV: %w", err)
	}
	defer file.Close()

	shots, err := output.ReadCSV(file)
	if err != nil {
		return err
	}
	if len(shots) == 0 {
		return fmt.Errorf("no usable rows in %s", csvPath)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	players := []string{chartPlayer}
	if chartPlayer == "" {
		players = charts.TopShooters(shots, 3)
	}
	for _, p := range players {
		path := filepath.Join(outDir, "shotmap_"+slug(p)+".svg")
		if err := renderTo(path, func(f *os.File) error {
			return charts.ShotMap(f, shots, p)
		}); err != nil {
			return err
		}
	}

	if err := renderTo(filepath.Join(outDir, "efficiency_bar.svg"), func(f *os.File) error {
		return charts.ConversionBar(f, shots, minShots, topN)
	}); err != nil {
		return err
	}
	if err := renderTo(filepath.Join(outDir, "xg_goals_scatter.svg"), func(f *os.File) error {
		return charts.XGScatter(f, shots, minShots)
	}); err != nil {
		return err
	}

	fmt.Printf("Charts written to %s\n", outDir)
	return nil
}

func renderTo(path string, render func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := render(file); err != nil {
		// Remove the empty/partial SVG so the outdir only holds charts
		// that rendered.
		os.Remove(path)
		return err
	}
	log.Debug().Str("path", path).Msg("Chart rendered")
	return nil
}

func slug(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}
