package charts

import (
	"fmt"
	"io"
	"sort"

	svg "github.com/ajstarks/svgo"
	"github.com/yiyuanlee/EPL-shot-maps/pkg/models"
)

// XGScatter renders total xG against goals per player with a y=x
// calibration line. Players above the line outperform their chances.
// The top scorers are labeled.
func XGScatter(w io.Writer, shots []models.Shot, minShots int) error {
	stats := withMinShots(Aggregate(shots), minShots)
	if len(stats) == 0 {
		return fmt.Errorf("no players meet the minimum shots threshold (%d)", minShots)
	}

	maxVal := 1.0
	for _, st := range stats {
		if st.TotalXG > maxVal {
			maxVal = st.TotalXG
		}
		if g := float64(st.Goals); g > maxVal {
			maxVal = g
		}
	}
	maxVal += 1

	const (
		plot   = 440
		marginL = 60
		marginB = 50
		marginT = 50
		marginR = 30
	)
	width := marginL + plot + marginR
	height := marginT + plot + marginB

	toX := func(v float64) int { return marginL + int(vmap(v, 0, maxVal, 0, plot)) }
	toY := func(v float64) int { return marginT + plot - int(vmap(v, 0, maxVal, 0, plot)) }

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")
	canvas.Text(20, 28, "xG vs goals", "font-family:sans-serif;font-size:15px;fill:#222")

	// Axes.
	axisStyle := "stroke:#888;stroke-width:1"
	canvas.Line(marginL, marginT, marginL, marginT+plot, axisStyle)
	canvas.Line(marginL, marginT+plot, marginL+plot, marginT+plot, axisStyle)
	canvas.Text(marginL+plot/2, height-12, "total xG",
		"font-family:sans-serif;font-size:12px;fill:#555;text-anchor:middle")
	canvas.TranslateRotate(16, marginT+plot/2, -90)
	canvas.Text(0, 0, "goals", "font-family:sans-serif;font-size:12px;fill:#555;text-anchor:middle")
	canvas.Gend()

	// Calibration line y = x.
	canvas.Line(toX(0), toY(0), toX(maxVal), toY(maxVal), "stroke:#bbb;stroke-width:1;stroke-dasharray:6,4")

	for _, st := range stats {
		canvas.Circle(toX(st.TotalXG), toY(float64(st.Goals)), 5, "fill:#2a9d2a;fill-opacity:0.7;stroke:#1d6b1d")
	}

	// Label the leading scorers.
	labeled := append([]PlayerStats(nil), stats...)
	sort.SliceStable(labeled, func(i, j int) bool { return labeled[i].Goals > labeled[j].Goals })
	if len(labeled) > 8 {
		labeled = labeled[:8]
	}
	for _, st := range labeled {
		canvas.Text(toX(st.TotalXG)+7, toY(float64(st.Goals))-7, st.Player,
			"font-family:sans-serif;font-size:10px;fill:#333")
	}

	canvas.End()
	return nil
}
