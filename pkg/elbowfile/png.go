// Native PNG rendering for routed connectors.
// Mirrors the SVG renderer output using Go's image packages.

package elbowfile

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/elbow-toolkit/pkg/elbow"
)

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width       int
	Height      int
	Padding     int
	StrokeWidth float64
	FontSize    int
	Title       string
	ShowBends   bool
	ShowLabels  bool
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:       800,
		Height:      600,
		Padding:     40,
		StrokeWidth: 2,
		FontSize:    14,
		ShowBends:   true,
		ShowLabels:  true,
	}
}

// Colors used in rendering
var (
	colorWhite    = color.RGBA{255, 255, 255, 255}
	colorBlack    = color.RGBA{51, 51, 51, 255}   // #333
	colorGray     = color.RGBA{102, 102, 102, 255} // #666
	colorStart    = color.RGBA{232, 245, 233, 255} // #e8f5e9
	colorStartBdr = color.RGBA{46, 125, 50, 255}   // #2e7d32
	colorBend     = color.RGBA{21, 101, 192, 255}  // #1565c0
)

// renderContext holds rendering parameters including scale
type renderContext struct {
	img       *image.RGBA
	scale     float64   // multiplier for line thickness, arrow size, etc.
	lineWidth float64   // base line width (scaled)
	fontSize  float64   // font size in points
	face      font.Face // font face for text rendering
}

func newRenderContext(img *image.RGBA, scale int, strokeWidth float64, fontSize int) (*renderContext, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	// No hinting; the image is supersampled instead.
	size := float64(fontSize * scale)
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	return &renderContext{
		img:       img,
		scale:     float64(scale),
		lineWidth: float64(scale) * strokeWidth,
		fontSize:  size,
		face:      face,
	}, nil
}

// RenderPNG renders a routed connector to PNG format.
// Uses 4x supersampling for smoother output.
func RenderPNG(path elbow.Path, w io.Writer, opts PNGOptions) error {
	def := DefaultPNGOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Padding <= 0 {
		opts.Padding = def.Padding
	}
	if opts.StrokeWidth <= 0 {
		opts.StrokeWidth = def.StrokeWidth
	}
	if opts.FontSize <= 0 {
		opts.FontSize = def.FontSize
	}

	scale := 4
	largeImg, err := renderPNGInternal(path, opts, scale)
	if err != nil {
		return err
	}

	// Downsample to target size using high-quality interpolation
	finalImg := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(finalImg, finalImg.Bounds(), largeImg, largeImg.Bounds(), draw.Over, nil)

	return png.Encode(w, finalImg)
}

// renderPNGInternal draws the connector at scale times the target size.
func renderPNGInternal(path elbow.Path, opts PNGOptions, scale int) (*image.RGBA, error) {
	width := opts.Width * scale
	height := opts.Height * scale
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorWhite), image.Point{}, draw.Src)

	ctx, err := newRenderContext(img, scale, opts.StrokeWidth, opts.FontSize)
	if err != nil {
		return nil, err
	}

	top := 0.0
	if opts.Title != "" {
		top = float64((opts.FontSize + 16) * scale)
		drawTextCentered(ctx, width/2, int(top/2), opts.Title, colorBlack)
	}

	if len(path) == 0 {
		return img, nil
	}

	vp := fitViewport(path, float64(width), float64(height)-top, float64(opts.Padding*scale))
	pts := make([][2]float64, len(path))
	for i, p := range path {
		x, y := vp.apply(p)
		pts[i] = [2]float64{x, y + top}
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if i == len(pts)-1 {
			drawArrowLine(ctx, a[0], a[1], b[0], b[1], colorBlack)
		} else {
			drawLine(ctx, a[0], a[1], b[0], b[1], colorBlack)
		}
	}

	if opts.ShowBends {
		for i := 1; i < len(pts)-1; i++ {
			drawDisc(ctx, pts[i][0], pts[i][1], ctx.lineWidth*1.5, colorBend)
		}
	}

	r := ctx.lineWidth * 2.5
	drawDisc(ctx, pts[0][0], pts[0][1], r+ctx.lineWidth/2, colorStartBdr)
	drawDisc(ctx, pts[0][0], pts[0][1], r-ctx.lineWidth/2, colorStart)

	if opts.ShowLabels {
		placer := NewLabelPlacer(segmentRects(pts, ctx.lineWidth*4))
		for i, name := range []string{"start", "end"} {
			anchor := pts[0]
			if i == 1 {
				anchor = pts[len(pts)-1]
			}
			labelW := float64(font.MeasureString(ctx.face, name).Ceil())
			pos := placer.PlaceLabel(elbow.Point{X: anchor[0], Y: anchor[1]}, labelW, ctx.fontSize, 6*ctx.scale)
			drawTextCentered(ctx, int(pos.X), int(pos.Y), name, colorGray)
		}
	}

	return img, nil
}

// drawLine draws a line between two points with thickness from context.
func drawLine(ctx *renderContext, x1, y1, x2, y2 float64, c color.Color) {
	img := ctx.img
	halfThick := ctx.lineWidth / 2

	dx := x2 - x1
	dy := y2 - y1
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		for ty := -halfThick; ty <= halfThick; ty++ {
			for tx := -halfThick; tx <= halfThick; tx++ {
				img.Set(int(x1+tx), int(y1+ty), c)
			}
		}
		return
	}

	steps := math.Max(math.Abs(dx), math.Abs(dy))
	perpX := -dy / dist
	perpY := dx / dist

	// Extend by half the thickness so orthogonal joints meet squarely.
	ex := dx / dist * halfThick
	ey := dy / dist * halfThick
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		cx := x1 - ex + (dx+2*ex)*t
		cy := y1 - ey + (dy+2*ey)*t

		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			img.Set(int(cx+perpX*offset), int(cy+perpY*offset), c)
		}
	}
}

// drawArrowLine draws a line with an arrowhead at the end.
func drawArrowLine(ctx *renderContext, x1, y1, x2, y2 float64, c color.Color) {
	dx := x2 - x1
	dy := y2 - y1
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		drawLine(ctx, x1, y1, x2, y2, c)
		return
	}

	nx := dx / dist
	ny := dy / dist

	arrowLen := 8.0 * ctx.scale
	arrowWidth := 4.0 * ctx.scale

	// Stop the shaft at the arrowhead base so the tip stays sharp.
	baseX := x2 - nx*math.Min(arrowLen, dist)
	baseY := y2 - ny*math.Min(arrowLen, dist)
	drawLine(ctx, x1, y1, baseX, baseY, c)

	ax1 := x2 - nx*arrowLen + ny*arrowWidth
	ay1 := y2 - ny*arrowLen - nx*arrowWidth
	ax2 := x2 - nx*arrowLen - ny*arrowWidth
	ay2 := y2 - ny*arrowLen + nx*arrowWidth

	// Fill arrowhead
	for t := 0.0; t <= 1.0; t += 0.02 {
		mx := ax1 + (ax2-ax1)*t
		my := ay1 + (ay2-ay1)*t
		drawLine(ctx, x2, y2, mx, my, c)
	}
}

// drawDisc fills a circle.
func drawDisc(ctx *renderContext, cx, cy, r float64, c color.Color) {
	for dy := -r; dy <= r; dy++ {
		xExtent := math.Sqrt(math.Max(r*r-dy*dy, 0))
		for dx := -xExtent; dx <= xExtent; dx++ {
			ctx.img.Set(int(cx+dx), int(cy+dy), c)
		}
	}
}

// drawTextCentered draws text centered at the given position using Go Regular font.
func drawTextCentered(ctx *renderContext, x, y int, text string, c color.Color) {
	width := font.MeasureString(ctx.face, text).Ceil()

	// Cap height is roughly 0.7 of the ascent; shift the baseline down by
	// half of it so capitals sit on y.
	ascent := ctx.face.Metrics().Ascent.Ceil()
	baselineY := y + int(float64(ascent)*0.35)

	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot: fixed.Point26_6{
			X: fixed.I(x - width/2),
			Y: fixed.I(baselineY),
		},
	}
	d.DrawString(text)
}
