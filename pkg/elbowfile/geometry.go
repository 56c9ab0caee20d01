// Geometric utilities shared by the SVG and PNG renderers.
// Provides the world-to-canvas viewport and label placement.

package elbowfile

import (
	"math"

	"github.com/ha1tch/elbow-toolkit/pkg/elbow"
)

// viewport maps world coordinates onto a canvas with a uniform scale.
type viewport struct {
	scale float64
	offX  float64
	offY  float64
	minX  float64
	minY  float64
}

// fitViewport centres the bounds of path inside a w x h canvas leaving pad
// on every side. Degenerate (zero-extent) axes do not constrain the scale.
func fitViewport(path elbow.Path, w, h, pad float64) viewport {
	min, max := path.Bounds()
	spanX := max.X - min.X
	spanY := max.Y - min.Y
	availW := math.Max(w-2*pad, 1)
	availH := math.Max(h-2*pad, 1)

	scale := math.Inf(1)
	if spanX > 0 {
		scale = availW / spanX
	}
	if spanY > 0 {
		scale = math.Min(scale, availH/spanY)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	return viewport{
		scale: scale,
		offX:  pad + (availW-spanX*scale)/2,
		offY:  pad + (availH-spanY*scale)/2,
		minX:  min.X,
		minY:  min.Y,
	}
}

func (v viewport) apply(p elbow.Point) (float64, float64) {
	return v.offX + (p.X-v.minX)*v.scale, v.offY + (p.Y-v.minY)*v.scale
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X, Y float64 // Center
	W, H float64 // Full width and height
}

// RectOverlap returns the overlap area between two rectangles.
// Returns 0 if they don't overlap.
func RectOverlap(a, b Rect) float64 {
	overlapX := (a.W+b.W)/2 - math.Abs(a.X-b.X)
	overlapY := (a.H+b.H)/2 - math.Abs(a.Y-b.Y)

	if overlapX <= 0 || overlapY <= 0 {
		return 0
	}
	return overlapX * overlapY
}

// segmentRects returns thin rectangles covering each canvas-space segment.
func segmentRects(pts [][2]float64, thickness float64) []Rect {
	rects := make([]Rect, 0, len(pts))
	for i := 1; i < len(pts); i++ {
		x1, y1 := pts[i-1][0], pts[i-1][1]
		x2, y2 := pts[i][0], pts[i][1]
		rects = append(rects, Rect{
			X: (x1 + x2) / 2,
			Y: (y1 + y2) / 2,
			W: math.Abs(x2-x1) + thickness,
			H: math.Abs(y2-y1) + thickness,
		})
	}
	return rects
}

// LabelPlacer manages label placement with collision avoidance.
type LabelPlacer struct {
	obstacles []Rect
}

// NewLabelPlacer creates a LabelPlacer with initial obstacles.
func NewLabelPlacer(obstacles []Rect) *LabelPlacer {
	own := make([]Rect, len(obstacles))
	copy(own, obstacles)
	return &LabelPlacer{obstacles: own}
}

// PlaceLabel finds the best position for a label near an anchor point.
// Returns the center position for the label.
func (lp *LabelPlacer) PlaceLabel(anchor elbow.Point, labelW, labelH, gap float64) elbow.Point {
	// Above, below, right, left, then the four diagonals.
	candidates := []elbow.Point{
		{X: anchor.X, Y: anchor.Y - labelH/2 - gap},
		{X: anchor.X, Y: anchor.Y + labelH/2 + gap},
		{X: anchor.X + labelW/2 + gap, Y: anchor.Y},
		{X: anchor.X - labelW/2 - gap, Y: anchor.Y},
		{X: anchor.X + labelW/2 + gap, Y: anchor.Y - labelH/2 - gap},
		{X: anchor.X - labelW/2 - gap, Y: anchor.Y - labelH/2 - gap},
		{X: anchor.X + labelW/2 + gap, Y: anchor.Y + labelH/2 + gap},
		{X: anchor.X - labelW/2 - gap, Y: anchor.Y + labelH/2 + gap},
	}

	bestPos := candidates[0]
	bestOverlap := math.MaxFloat64

	for _, pos := range candidates {
		labelRect := Rect{pos.X, pos.Y, labelW, labelH}

		totalOverlap := 0.0
		for _, obs := range lp.obstacles {
			totalOverlap += RectOverlap(labelRect, obs)
		}

		if totalOverlap == 0 {
			lp.obstacles = append(lp.obstacles, labelRect)
			return pos
		}
		if totalOverlap < bestOverlap {
			bestOverlap = totalOverlap
			bestPos = pos
		}
	}

	// Use best available position (may have overlap)
	lp.obstacles = append(lp.obstacles, Rect{bestPos.X, bestPos.Y, labelW, labelH})
	return bestPos
}
