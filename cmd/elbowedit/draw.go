package main

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ha1tch/elbow-toolkit/pkg/elbow"
)

// Styles
var (
	styleDefault    = tcell.StyleDefault
	stylePath       = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleEndpoint   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleActive     = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	styleOvershoot  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSidebarH   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleMsgInfo    = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleMsgError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
	styleMsgSuccess = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleHelp       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBorder     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

var helpLines = []string{
	"Arrows     move the active endpoint",
	"Tab        switch between start and end",
	"f          cycle facing (none, x+, y+, x-, y-)",
	"+ / -      change overshoot",
	"h j k l    pan (shift for larger steps)",
	"n          next scene in file",
	"u / r      undo / redo",
	"s          save",
	"q / Esc    quit",
}

func (ed *Editor) draw() {
	ed.screen.Clear()
	w, h := ed.screen.Size()

	ed.drawCanvas(w, h-2)
	if ed.mode == ModeHelp {
		ed.drawHelpOverlay(w, h)
	}
	ed.drawStatusBar(w, h)
}

func (ed *Editor) drawCanvas(w, h int) {
	s := ed.scene()
	inside := func(c image.Point) (int, int, bool) {
		x, y := c.X+ed.offsetX, c.Y+ed.offsetY
		return x, y, x >= 0 && x < w && y >= 0 && y < h
	}

	// Overshoot targets of faced endpoints, under the path
	for _, e := range []elbow.Endpoint{s.Start, s.End} {
		if e.Facing == elbow.None {
			continue
		}
		if x, y, ok := inside(cellOf(elbow.Advance(e.Point, e.Facing, s.Overshoot))); ok {
			ed.screen.SetContent(x, y, '+', nil, styleOvershoot)
		}
	}

	for c, r := range rasterize(ed.path) {
		if x, y, ok := inside(c); ok {
			ed.screen.SetContent(x, y, r, nil, stylePath)
		}
	}

	for i, e := range []elbow.Endpoint{s.Start, s.End} {
		x, y, ok := inside(cellOf(e.Point))
		if !ok {
			continue
		}
		mainc, _, _, _ := ed.screen.GetContent(x, y)
		style := styleEndpoint
		if i == ed.active {
			style = styleActive
		}
		ed.screen.SetContent(x, y, mainc, nil, style)
	}

	if ed.pathErr != nil {
		msg := fmt.Sprintf("cannot route: %v", ed.pathErr)
		ed.drawString(max((w-len(msg))/2, 0), h/2, msg, styleMsgError)
	}
}

func (ed *Editor) drawHelpOverlay(w, h int) {
	boxW := 50
	boxH := len(helpLines) + 4
	x := max((w-boxW)/2, 0)
	y := max((h-boxH)/2, 0)

	ed.drawTitledBox(x, y, boxW, boxH, "elbowedit")
	for i, line := range helpLines {
		ed.drawString(x+2, y+2+i, line, styleDefault)
	}
}

// drawTitledBox draws a bordered box with optional title
func (ed *Editor) drawTitledBox(x, y, w, h int, title string) {
	ed.screen.SetContent(x, y, '┌', nil, styleBorder)
	for i := 1; i < w-1; i++ {
		ed.screen.SetContent(x+i, y, '─', nil, styleBorder)
	}
	ed.screen.SetContent(x+w-1, y, '┐', nil, styleBorder)

	if title != "" {
		titleX := x + (w-len(title)-2)/2
		ed.screen.SetContent(titleX, y, ' ', nil, styleBorder)
		ed.drawString(titleX+1, y, title, styleSidebarH)
		ed.screen.SetContent(titleX+1+len(title), y, ' ', nil, styleBorder)
	}

	for row := 1; row < h-1; row++ {
		ed.screen.SetContent(x, y+row, '│', nil, styleBorder)
		for col := 1; col < w-1; col++ {
			ed.screen.SetContent(x+col, y+row, ' ', nil, styleDefault)
		}
		ed.screen.SetContent(x+w-1, y+row, '│', nil, styleBorder)
	}

	ed.screen.SetContent(x, y+h-1, '└', nil, styleBorder)
	for i := 1; i < w-1; i++ {
		ed.screen.SetContent(x+i, y+h-1, '─', nil, styleBorder)
	}
	ed.screen.SetContent(x+w-1, y+h-1, '┘', nil, styleBorder)
}

func (ed *Editor) drawStatusBar(w, h int) {
	y := h - 1

	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	fileInfo := "[New]"
	if ed.filename != "" {
		if len(ed.filename) > 30 {
			fileInfo = filepath.Base(ed.filename)
		} else {
			fileInfo = ed.filename
		}
	}
	if ed.modified {
		fileInfo += " *"
	}
	ed.drawString(1, y, fileInfo, styleStatus)

	info := ed.routeSummary()
	ed.drawString(w/2-len(info)/2, y, info, styleStatus)

	if ed.message != "" {
		style := styleMsgInfo
		switch ed.messageType {
		case MsgError:
			style = styleMsgError
		case MsgSuccess:
			style = styleMsgSuccess
		}
		if ed.messageType != MsgInfo && flashInverted(time.Now().UnixMilli()-ed.messageFlashStart) {
			style = style.Reverse(true)
		}
		ed.drawString(w-len(ed.message)-2, y, ed.message, style)
	}

	// Help bar
	y = h - 2
	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, y, ' ', nil, styleDefault)
	}
	ed.drawString(1, y, "Arrows:Move  Tab:Switch  F:Facing  +/-:Overshoot  S:Save  U:Undo  ?:Help  Q:Quit", styleHelp)
}

// routeSummary describes the current scene for the status bar.
func (ed *Editor) routeSummary() string {
	s := ed.scene()
	if ed.pathErr != nil {
		return fmt.Sprintf("%s  o=%g  error", ed.activeName(), s.Overshoot)
	}
	return fmt.Sprintf("%s %v %s  o=%g  case %s  %d bends",
		ed.activeName(), ed.activeEndpoint().Point, ed.activeEndpoint().Facing,
		s.Overshoot, ed.pathCase, ed.path.Bends())
}

// flashInverted reports whether a flashing message is drawn inverted
// elapsed milliseconds after it was shown: two inversions of 125ms each
// within the first 500ms.
func flashInverted(elapsed int64) bool {
	if elapsed < 0 || elapsed >= 500 {
		return false
	}
	phase := elapsed / 125
	return phase == 1 || phase == 3
}

func (ed *Editor) drawString(x, y int, s string, style tcell.Style) {
	col := 0
	for _, r := range s {
		ed.screen.SetContent(x+col, y, r, nil, style)
		col++
	}
}
