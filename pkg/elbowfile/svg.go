package elbowfile

import (
	"fmt"
	"html"
	"strings"

	"github.com/ha1tch/elbow-toolkit/pkg/elbow"
)

// SVGOptions controls native SVG rendering.
type SVGOptions struct {
	Width       int     // canvas width in pixels
	Height      int     // canvas height in pixels
	Padding     int     // padding around the connector
	StrokeWidth float64 // connector line width
	FontSize    int     // font size for labels (title uses FontSize + 4)
	Title       string  // optional title drawn at the top
	ShowBends   bool    // mark interior points
	ShowLabels  bool    // label the start and end points
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:       800,
		Height:      600,
		Padding:     40,
		StrokeWidth: 2,
		FontSize:    12,
		ShowBends:   true,
		ShowLabels:  true,
	}
}

// RenderSVG renders a routed connector to a standalone SVG document.
func RenderSVG(path elbow.Path, opts SVGOptions) string {
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 600
	}
	if opts.Padding == 0 {
		opts.Padding = 40
	}
	if opts.StrokeWidth == 0 {
		opts.StrokeWidth = 2
	}
	if opts.FontSize == 0 {
		opts.FontSize = 12
	}

	top := 0.0
	if opts.Title != "" {
		top = float64(opts.FontSize + 4 + 8)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	sb.WriteString(`  <defs>` + "\n")
	sb.WriteString(`    <marker id="arrow" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="8" markerHeight="8" orient="auto-start-reverse">` + "\n")
	sb.WriteString(`      <path d="M 0 0 L 10 5 L 0 10 z" fill="#333"/>` + "\n")
	sb.WriteString(`    </marker>` + "\n")
	sb.WriteString(`  </defs>` + "\n")
	fmt.Fprintf(&sb, `  <rect width="100%%" height="100%%" fill="white"/>`+"\n")

	if opts.Title != "" {
		fmt.Fprintf(&sb, `  <text x="%d" y="%d" text-anchor="middle" font-family="Helvetica, Arial, sans-serif" font-size="%d" font-weight="bold" fill="#333">%s</text>`+"\n",
			opts.Width/2, opts.FontSize+4+4, opts.FontSize+4, html.EscapeString(opts.Title))
	}

	if len(path) == 0 {
		sb.WriteString("</svg>\n")
		return sb.String()
	}

	vp := fitViewport(path, float64(opts.Width), float64(opts.Height)-top, float64(opts.Padding))
	pts := make([][2]float64, len(path))
	for i, p := range path {
		x, y := vp.apply(p)
		pts[i] = [2]float64{x, y + top}
	}

	if len(pts) > 1 {
		coords := make([]string, len(pts))
		for i, p := range pts {
			coords[i] = fmt.Sprintf("%.2f,%.2f", p[0], p[1])
		}
		fmt.Fprintf(&sb, `  <polyline points="%s" fill="none" stroke="#333" stroke-width="%.2f" stroke-linejoin="miter" marker-end="url(#arrow)"/>`+"\n",
			strings.Join(coords, " "), opts.StrokeWidth)
	}

	if opts.ShowBends {
		for i := 1; i < len(pts)-1; i++ {
			fmt.Fprintf(&sb, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="#1565c0"/>`+"\n",
				pts[i][0], pts[i][1], opts.StrokeWidth*1.5)
		}
	}

	first := pts[0]
	fmt.Fprintf(&sb, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="#e8f5e9" stroke="#2e7d32" stroke-width="%.2f"/>`+"\n",
		first[0], first[1], opts.StrokeWidth*2.5, opts.StrokeWidth)

	if opts.ShowLabels {
		placer := NewLabelPlacer(segmentRects(pts, opts.StrokeWidth*4))
		labelH := float64(opts.FontSize)
		for i, name := range []string{"start", "end"} {
			anchor := pts[0]
			if i == 1 {
				anchor = pts[len(pts)-1]
			}
			labelW := float64(len(name)*opts.FontSize) * 0.6
			pos := placer.PlaceLabel(elbow.Point{X: anchor[0], Y: anchor[1]}, labelW, labelH, 6)
			fmt.Fprintf(&sb, `  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="Helvetica, Arial, sans-serif" font-size="%d" fill="#666">%s</text>`+"\n",
				pos.X, pos.Y, opts.FontSize, name)
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
