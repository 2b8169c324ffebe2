package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/butterfly/internal/view"
)

// Stroke colors per series position; the panel carries no color of its
// own, so the exporter acts as the renderer here.
var strokes = []string{"#0000ff", "#ffa500", "#4caf50", "#ff8da1"}

// PanelSVG renders one 2-D panel to an SVG document, mapping every series
// through the panel's bounds so the drawing matches the composed scale
// instead of auto-fitting.
func PanelSVG(p view.Panel, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#f0f5f9"/>
<title>%s</title>
`, width, height, width, height, p.Title))

	rangeX := p.XBounds.Max - p.XBounds.Min
	rangeY := p.YBounds.Max - p.YBounds.Min
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	for si, s := range p.Series {
		if len(s.X) < 2 {
			continue
		}
		stroke := strokes[si%len(strokes)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
		for i := range s.X {
			x := (s.X[i] - p.XBounds.Min) / rangeX * float64(width)
			y := float64(height) - (s.Y[i]-p.YBounds.Min)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	// Tick marks along the bottom edge.
	for _, t := range p.XBounds.Ticks {
		x := (t - p.XBounds.Min) / rangeX * float64(width)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="#888" stroke-width="1"/>
`, x, height-6, x, height))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
