package charts

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/yiyuanlee/EPL-shot-maps/internal/normalize"
	"github.com/yiyuanlee/EPL-shot-maps/pkg/models"
)

// Half-pitch geometry in meters.
const (
	halfLength = normalize.PitchLength / 2 // 52.5, goal line at the right edge
	boxLength  = 16.5
	boxWidth   = 40.32
	sixLength  = 5.5
	sixWidth   = 18.32
	spotDist   = 11.0
)

// Rendering scale: pixels per meter, plus an outer margin.
const (
	pxPerMeter = 12
	margin     = 30
)

const lineStyle = "fill:none;stroke:#555;stroke-width:2"

// ShotMap renders one player's shots on a half pitch, attacking left to
// right. Shots recorded in the far half are mirrored in so both home and
// away attempts land on the same goal. Marker shape encodes outcome and
// marker size scales with xG.
func ShotMap(w io.Writer, shots []models.Shot, player string) error {
	var own []models.Shot
	for _, s := range shots {
		if s.Player == player {
			own = append(own, s)
		}
	}
	if len(own) == 0 {
		return fmt.Errorf("no shots found for player %q", player)
	}

	width := margin*2 + int(halfLength*pxPerMeter)
	height := margin*2 + int(normalize.PitchWidth*pxPerMeter)

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(fmt.Sprintf("Shot Map — %s", player))
	canvas.Rect(0, 0, width, height, "fill:#f8faf7")

	drawHalfPitch(canvas)

	for _, s := range own {
		x := s.X
		if x > halfLength {
			x = normalize.PitchLength - x
		}
		cx := px(x)
		cy := py(s.Y)
		r := 4 + int(vmap(clamp01(s.XG), 0, 1, 0, 14))
		drawMarker(canvas, s.Outcome, cx, cy, r)
	}

	drawLegend(canvas, width, player, len(own))
	canvas.End()
	return nil
}

// px converts pitch meters (length axis) to canvas x.
func px(m float64) int { return margin + int(m*pxPerMeter) }

// py converts pitch meters (width axis) to canvas y.
func py(m float64) int { return margin + int((normalize.PitchWidth-m)*pxPerMeter) }

func drawHalfPitch(canvas *svg.SVG) {
	// Outline.
	canvas.Rect(px(0), py(normalize.PitchWidth), int(halfLength*pxPerMeter), int(normalize.PitchWidth*pxPerMeter), lineStyle)

	// Penalty box against the right goal line.
	boxY1 := (normalize.PitchWidth - boxWidth) / 2
	boxW := float64(boxWidth)
	canvas.Rect(px(halfLength-boxLength), py(boxY1+boxWidth), int(boxLength*pxPerMeter), int(boxW*pxPerMeter), lineStyle)

	// Six-yard box.
	sixY1 := (normalize.PitchWidth - sixWidth) / 2
	sixW := float64(sixWidth)
	canvas.Rect(px(halfLength-sixLength), py(sixY1+sixWidth), int(sixLength*pxPerMeter), int(sixW*pxPerMeter), lineStyle)

	// Penalty spot.
	canvas.Circle(px(halfLength-spotDist), py(normalize.PitchWidth/2), 3, "fill:#555")
}

func drawMarker(canvas *svg.SVG, outcome string, cx, cy, r int) {
	switch outcome {
	case models.OutcomeGoal:
		canvas.Circle(cx, cy, r, "fill:#2a9d2a;fill-opacity:0.8;stroke:#1d6b1d")
	case models.OutcomeSaved:
		canvas.Square(cx-r, cy-r, r*2, "fill:#2a6bd9;fill-opacity:0.6;stroke:#1c4a98")
	case models.OutcomeBlocked:
		style := "stroke:#d98f2a;stroke-width:3"
		canvas.Line(cx-r, cy-r, cx+r, cy+r, style)
		canvas.Line(cx-r, cy+r, cx+r, cy-r, style)
	default: // off_target, unknown, passthrough labels
		canvas.Polygon(
			[]int{cx, cx - r, cx + r},
			[]int{cy - r, cy + r, cy + r},
			"fill:#b03030;fill-opacity:0.5;stroke:#802020",
		)
	}
}

func drawLegend(canvas *svg.SVG, width int, player string, count int) {
	canvas.Text(margin, 20, fmt.Sprintf("%s — %d shots", player, count), "font-family:sans-serif;font-size:14px;fill:#333")
	entries := []struct{ label, style string }{
		{"goal", "fill:#2a9d2a"},
		{"saved", "fill:#2a6bd9"},
		{"blocked", "fill:#d98f2a"},
		{"off target", "fill:#b03030"},
	}
	x := width - margin - 90
	y := 16
	for _, e := range entries {
		canvas.Circle(x, y-4, 4, e.style)
		canvas.Text(x+10, y, e.label, "font-family:sans-serif;font-size:11px;fill:#333")
		y += 14
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
