package main

import (
	"image"
	"math"

	"github.com/ha1tch/elbow-toolkit/pkg/elbow"
)

// Side bits record which neighbours a cell's line connects to.
const (
	sideLeft = 1 << iota
	sideRight
	sideUp
	sideDown
)

const (
	glyphStart = '●'
	glyphPoint = '·'
)

var boxGlyphs = map[uint8]rune{
	sideLeft:                                 '─',
	sideRight:                                '─',
	sideLeft | sideRight:                     '─',
	sideUp:                                   '│',
	sideDown:                                 '│',
	sideUp | sideDown:                        '│',
	sideRight | sideDown:                     '┌',
	sideLeft | sideDown:                      '┐',
	sideRight | sideUp:                       '└',
	sideLeft | sideUp:                        '┘',
	sideUp | sideDown | sideRight:            '├',
	sideUp | sideDown | sideLeft:             '┤',
	sideLeft | sideRight | sideDown:          '┬',
	sideLeft | sideRight | sideUp:            '┴',
	sideLeft | sideRight | sideUp | sideDown: '┼',
}

// arrowGlyphs maps the direction of travel into the end cell. Rows grow
// downward, so +y travel points down.
var arrowGlyphs = map[elbow.Direction]rune{
	elbow.PosX: '▶',
	elbow.NegX: '◀',
	elbow.PosY: '▼',
	elbow.NegY: '▲',
}

// cellOf rounds a world point to the terminal cell that contains it.
func cellOf(p elbow.Point) image.Point {
	return image.Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// rasterize draws path onto a grid of terminal cells, one world unit per
// cell. The start cell gets a marker and the end cell an arrowhead in the
// direction of the last segment that is longer than a cell.
func rasterize(path elbow.Path) map[image.Point]rune {
	out := make(map[image.Point]rune)
	if len(path) == 0 {
		return out
	}

	sides := make(map[image.Point]uint8)
	cells := make([]image.Point, len(path))
	for i, p := range path {
		cells[i] = cellOf(p)
	}

	arrow := elbow.None
	for i := 1; i < len(cells); i++ {
		a, b := cells[i-1], cells[i]
		if a == b {
			continue
		}
		if a.X != b.X && a.Y != b.Y {
			// Sub-cell offsets can change both axes after rounding; turn
			// the corner at (b.X, a.Y).
			corner := image.Point{X: b.X, Y: a.Y}
			mark(sides, a, corner)
			a = corner
		}
		mark(sides, a, b)
		arrow = travel(a, b)
	}

	for c, s := range sides {
		out[c] = boxGlyphs[s]
	}

	last := cells[len(cells)-1]
	if g, ok := arrowGlyphs[arrow]; ok {
		out[last] = g
	} else {
		out[last] = glyphPoint
	}
	out[cells[0]] = glyphStart
	return out
}

// mark adds the side bits for a straight run of cells from a to b.
func mark(sides map[image.Point]uint8, a, b image.Point) {
	if a == b {
		return
	}
	if a.Y == b.Y {
		lo, hi := min(a.X, b.X), max(a.X, b.X)
		for x := lo; x <= hi; x++ {
			c := image.Point{X: x, Y: a.Y}
			if x > lo {
				sides[c] |= sideLeft
			}
			if x < hi {
				sides[c] |= sideRight
			}
		}
		return
	}
	lo, hi := min(a.Y, b.Y), max(a.Y, b.Y)
	for y := lo; y <= hi; y++ {
		c := image.Point{X: a.X, Y: y}
		if y > lo {
			sides[c] |= sideUp
		}
		if y < hi {
			sides[c] |= sideDown
		}
	}
}

// travel returns the direction of the straight run from a to b.
func travel(a, b image.Point) elbow.Direction {
	switch {
	case b.X > a.X:
		return elbow.PosX
	case b.X < a.X:
		return elbow.NegX
	case b.Y > a.Y:
		return elbow.PosY
	}
	return elbow.NegY
}
