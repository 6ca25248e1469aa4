package charts

import (
	"fmt"
	"io"
	"sort"

	svg "github.com/ajstarks/svgo"
	"github.com/yiyuanlee/EPL-shot-maps/pkg/models"
)

// ConversionBar renders a horizontal bar chart of conversion rate
// (goals/shots) per player, restricted to players with at least minShots
// attempts, top topN by rate.
func ConversionBar(w io.Writer, shots []models.Shot, minShots, topN int) error {
	stats := withMinShots(Aggregate(shots), minShots)
	if len(stats) == 0 {
		return fmt.Errorf("no players meet the minimum shots threshold (%d)", minShots)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Conversion() > stats[j].Conversion()
	})
	if topN > 0 && len(stats) > topN {
		stats = stats[:topN]
	}

	const (
		rowHeight = 26
		labelW    = 180
		barMaxW   = 420
		marginTop = 50
	)
	width := labelW + barMaxW + 110
	height := marginTop + rowHeight*len(stats) + 20

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")
	canvas.Text(20, 28, fmt.Sprintf("Top converters (min shots = %d)", minShots),
		"font-family:sans-serif;font-size:15px;fill:#222")

	maxRate := stats[0].Conversion()
	if maxRate == 0 {
		maxRate = 1
	}

	for i, st := range stats {
		y := marginTop + i*rowHeight
		barW := int(vmap(st.Conversion(), 0, maxRate, 0, barMaxW))
		canvas.Text(labelW-8, y+17, st.Player,
			"font-family:sans-serif;font-size:12px;fill:#333;text-anchor:end")
		canvas.Rect(labelW, y+4, barW, rowHeight-8, "fill:#2a6bd9;fill-opacity:0.8")
		canvas.Text(labelW+barW+6, y+17,
			fmt.Sprintf("%.1f%% (%d/%d)", st.Conversion()*100, st.Goals, st.Shots),
			"font-family:sans-serif;font-size:11px;fill:#555")
	}

	canvas.End()
	return nil
}
