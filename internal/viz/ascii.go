package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/butterfly/internal/view"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	chartStyle  = lipgloss.NewStyle().Padding(0, 1)
)

// Legend names the two paths in series order, matching the colors
// asciigraph assigns.
func Legend(p view.Panel) string {
	parts := make([]string, 0, len(p.Series))
	for _, s := range p.Series {
		parts = append(parts, string(s.Group))
	}
	return legendStyle.Render(strings.Join(parts, " vs "))
}

// RenderTimePanel plots the first prefix samples of every series of one
// time panel as overlaid line charts.
func RenderTimePanel(p view.Panel, width, height, prefix int) string {
	series := make([][]float64, 0, len(p.Series))
	for _, s := range p.Series {
		n := prefix
		if n > len(s.Y) {
			n = len(s.Y)
		}
		series = append(series, s.Y[:n])
	}

	chart := asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(p.YBounds.Min),
		asciigraph.UpperBound(p.YBounds.Max),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Orange),
	)
	return titleStyle.Render(p.Title) + "\n" + chartStyle.Render(chart)
}

// RenderPlanePanel plots the first prefix samples of every series of one
// phase-plane panel onto a Braille canvas mapped through the panel bounds.
func RenderPlanePanel(p view.Panel, width, height, prefix int) string {
	c := NewCanvas(width, height)
	for _, s := range p.Series {
		c.Polyline(s.X, s.Y, p.XBounds, p.YBounds, prefix)
	}
	footer := fmt.Sprintf("%s: [%.0f, %.0f]  %s: [%.0f, %.0f]",
		p.XLabel, p.XBounds.Min, p.XBounds.Max,
		p.YLabel, p.YBounds.Min, p.YBounds.Max)
	return titleStyle.Render(p.Title) + "\n" + c.String() + legendStyle.Render(footer)
}

// RenderPortraitPanel draws the 3-D panel through the given camera.
func RenderPortraitPanel(p view.Panel, cam *Camera, width, height, prefix int) string {
	c := NewCanvas(width, height)
	RenderPortrait(c, p, cam, prefix)
	return titleStyle.Render(p.Title) + "\n" + c.String()
}

// RenderViews renders the fully revealed views stacked vertically, for the
// one-shot plot command.
func RenderViews(v *view.Views, width int) string {
	var sb strings.Builder

	n := 0
	if len(v.Time.Panels) > 0 && len(v.Time.Panels[0].Series) > 0 {
		n = len(v.Time.Panels[0].Series[0].Y)
	}

	for _, p := range v.Time.Panels {
		sb.WriteString(RenderTimePanel(p, width, 10, n))
		sb.WriteString("\n\n")
	}
	for _, p := range v.Plane.Panels {
		sb.WriteString(RenderPlanePanel(p, width/2, 14, n))
		sb.WriteString("\n\n")
	}
	for _, p := range v.Portrait.Panels {
		sb.WriteString(RenderPortraitPanel(p, NewCamera(), width/2, 16, n))
		sb.WriteString("\n")
		sb.WriteString(Legend(p))
		sb.WriteString("\n")
	}
	return sb.String()
}
