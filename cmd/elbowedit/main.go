// Command elbowedit is a TUI editor for connector scenes.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ha1tch/elbow-toolkit/pkg/elbow"
	"github.com/ha1tch/elbow-toolkit/pkg/elbowfile"
)

// defaultFile is used when saving a scene that was not loaded from disk.
const defaultFile = "scene.yaml"

// Editor holds all editor state
type Editor struct {
	screen      tcell.Screen
	file        *elbowfile.SceneFile
	sceneIdx    int
	filename    string
	modified    bool
	mode        Mode
	message     string
	messageType MessageType

	messageFlashStart int64 // Unix milliseconds when message was shown

	// Active endpoint: 0 = start, 1 = end
	active int

	// Viewport offset in cells
	offsetX int
	offsetY int

	// Last routing result
	path     elbow.Path
	pathCase elbow.Case
	pathErr  error

	quitArmed bool // q pressed once with unsaved changes

	// Undo/Redo
	undoStack []elbowfile.Scene
	redoStack []elbowfile.Scene
}

// Mode represents editor mode
type Mode int

const (
	ModeCanvas Mode = iota
	ModeHelp        // help overlay
)

// MessageType for status messages
type MessageType int

const (
	MsgInfo    MessageType = iota // Informative, no flash
	MsgError                      // Errors, flash
	MsgSuccess                    // State changes, flash
)

const maxUndoLevels = 50

// flashRedraws are the delays after a flashing message at which the
// screen is redrawn; they match the phases of flashInverted.
var flashRedraws = []time.Duration{
	125 * time.Millisecond,
	250 * time.Millisecond,
	375 * time.Millisecond,
	500 * time.Millisecond,
}

// facingCycle is the order in which f steps through facings.
var facingCycle = []elbow.Direction{elbow.None, elbow.PosX, elbow.PosY, elbow.NegX, elbow.NegY}

func newEditor() *Editor {
	ed := &Editor{
		file: &elbowfile.SceneFile{
			Version: elbowfile.CurrentVersion,
			Scenes: []elbowfile.Scene{{
				Name:      "untitled",
				Start:     elbow.Endpoint{Point: elbow.Point{X: 6, Y: 4}, Facing: elbow.PosX},
				End:       elbow.Endpoint{Point: elbow.Point{X: 30, Y: 14}, Facing: elbow.NegY},
				Overshoot: 2,
			}},
		},
		offsetX: 2,
		offsetY: 1,
	}
	ed.reroute()
	return ed
}

func main() {
	ed := newEditor()

	if len(os.Args) > 1 {
		ed.filename = os.Args[1]
		if err := ed.loadFile(ed.filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", ed.filename, err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.Clear()

	ed.screen = screen
	ed.run()

	screen.Fini()
}

func (ed *Editor) run() {
	for {
		ed.draw()
		ed.screen.Show()

		ev := ed.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			ed.screen.Sync()
		case *tcell.EventKey:
			if ed.handleKey(ev) {
				return
			}
		case *tcell.EventInterrupt:
			// Refresh for flash animation
		}
	}
}

// scene returns the scene being edited.
func (ed *Editor) scene() *elbowfile.Scene {
	return &ed.file.Scenes[ed.sceneIdx]
}

// activeEndpoint returns the endpoint the arrow keys move.
func (ed *Editor) activeEndpoint() *elbow.Endpoint {
	if ed.active == 0 {
		return &ed.scene().Start
	}
	return &ed.scene().End
}

// handleKey processes a key event and reports whether the editor should exit.
func (ed *Editor) handleKey(ev *tcell.EventKey) bool {
	if ed.mode == ModeHelp {
		ed.mode = ModeCanvas
		return false
	}

	if ev.Key() != tcell.KeyRune || (ev.Rune() != 'q' && ev.Rune() != 'Q') {
		ed.quitArmed = false
	}

	switch ev.Key() {
	case tcell.KeyUp:
		ed.moveActive(0, -1)
	case tcell.KeyDown:
		ed.moveActive(0, 1)
	case tcell.KeyLeft:
		ed.moveActive(-1, 0)
	case tcell.KeyRight:
		ed.moveActive(1, 0)
	case tcell.KeyTab:
		ed.active = 1 - ed.active
	case tcell.KeyCtrlZ:
		ed.undo()
	case tcell.KeyCtrlY:
		ed.redo()
	case tcell.KeyCtrlS:
		ed.save()
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ed.requestQuit()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'f', 'F':
			ed.cycleFacing()
		case '+', '=':
			ed.adjustOvershoot(1)
		case '-', '_':
			ed.adjustOvershoot(-1)
		case 's', 'S':
			ed.save()
		case 'u':
			ed.undo()
		case 'r':
			ed.redo()
		case 'n':
			ed.nextScene()
		case 'h', 'H', 'j', 'J', 'k', 'K', 'l', 'L':
			ed.panKey(ev.Rune())
		case '?':
			ed.mode = ModeHelp
		case 'q', 'Q':
			return ed.requestQuit()
		}
	}
	return false
}

// requestQuit exits unless there are unsaved changes, in which case a second
// request is needed.
func (ed *Editor) requestQuit() bool {
	if !ed.modified || ed.quitArmed {
		return true
	}
	ed.quitArmed = true
	ed.showMessage("Unsaved changes - press q again to quit", MsgError)
	return false
}

func (ed *Editor) moveActive(dx, dy float64) {
	ed.saveSnapshot()
	e := ed.activeEndpoint()
	e.X += dx
	e.Y += dy
	ed.changed()
}

func (ed *Editor) cycleFacing() {
	ed.saveSnapshot()
	e := ed.activeEndpoint()
	next := 0
	for i, d := range facingCycle {
		if d == e.Facing {
			next = (i + 1) % len(facingCycle)
			break
		}
	}
	e.Facing = facingCycle[next]
	ed.changed()
	ed.showMessage(fmt.Sprintf("%s facing: %s", ed.activeName(), e.Facing), MsgInfo)
}

func (ed *Editor) adjustOvershoot(delta float64) {
	s := ed.scene()
	if s.Overshoot+delta < 0 {
		ed.showMessage("Overshoot cannot be negative", MsgError)
		return
	}
	ed.saveSnapshot()
	s.Overshoot += delta
	ed.changed()
}

func (ed *Editor) nextScene() {
	if len(ed.file.Scenes) < 2 {
		return
	}
	ed.sceneIdx = (ed.sceneIdx + 1) % len(ed.file.Scenes)
	ed.undoStack = nil
	ed.redoStack = nil
	ed.reroute()
	ed.showMessage(fmt.Sprintf("Scene %d/%d: %s", ed.sceneIdx+1, len(ed.file.Scenes), ed.scene().Name), MsgInfo)
}

func (ed *Editor) panKey(r rune) {
	step := 1
	if r >= 'A' && r <= 'Z' {
		step = 8
		r += 'a' - 'A'
	}
	switch r {
	case 'h':
		ed.offsetX += step
	case 'l':
		ed.offsetX -= step
	case 'k':
		ed.offsetY += step
	case 'j':
		ed.offsetY -= step
	}
}

func (ed *Editor) activeName() string {
	if ed.active == 0 {
		return "Start"
	}
	return "End"
}

// changed marks the scene modified and reroutes it.
func (ed *Editor) changed() {
	ed.modified = true
	ed.reroute()
}

// reroute recomputes the connector for the current scene.
func (ed *Editor) reroute() {
	ed.path, ed.pathCase, ed.pathErr = ed.scene().Route()
}

// Undo/Redo

func (ed *Editor) saveSnapshot() {
	ed.undoStack = append(ed.undoStack, *ed.scene())
	if len(ed.undoStack) > maxUndoLevels {
		ed.undoStack = ed.undoStack[1:]
	}
	ed.redoStack = nil
}

func (ed *Editor) undo() {
	if len(ed.undoStack) == 0 {
		ed.showMessage("Nothing to undo", MsgInfo)
		return
	}
	ed.redoStack = append(ed.redoStack, *ed.scene())
	*ed.scene() = ed.undoStack[len(ed.undoStack)-1]
	ed.undoStack = ed.undoStack[:len(ed.undoStack)-1]
	ed.changed()
}

func (ed *Editor) redo() {
	if len(ed.redoStack) == 0 {
		ed.showMessage("Nothing to redo", MsgInfo)
		return
	}
	ed.undoStack = append(ed.undoStack, *ed.scene())
	*ed.scene() = ed.redoStack[len(ed.redoStack)-1]
	ed.redoStack = ed.redoStack[:len(ed.redoStack)-1]
	ed.changed()
}

func (ed *Editor) showMessage(msg string, msgType MessageType) {
	ed.message = msg
	ed.messageType = msgType
	ed.messageFlashStart = time.Now().UnixMilli()
	if ed.screen == nil {
		return
	}

	// Redraw at each flash phase change; the timers only post events.
	screen := ed.screen
	screen.PostEvent(tcell.NewEventInterrupt(nil))
	if msgType == MsgInfo {
		return
	}
	for _, d := range flashRedraws {
		time.AfterFunc(d, func() {
			screen.PostEvent(tcell.NewEventInterrupt(nil))
		})
	}
}

// File operations

func (ed *Editor) loadFile(path string) error {
	f, err := elbowfile.LoadScenes(path)
	if err != nil {
		return err
	}
	if len(f.Scenes) == 0 {
		return fmt.Errorf("%s has no scenes", path)
	}

	ed.file = f
	ed.sceneIdx = 0
	ed.modified = false
	ed.undoStack = nil
	ed.redoStack = nil
	ed.reroute()
	return nil
}

func (ed *Editor) save() {
	if ed.filename == "" {
		ed.filename = defaultFile
	}
	// The edited geometry is the new expectation only when it routes.
	if ed.pathErr == nil && ed.scene().Expect != nil {
		ed.scene().Expect = ed.path
	}
	if err := elbowfile.WriteScenes(ed.filename, ed.file); err != nil {
		ed.showMessage(fmt.Sprintf("Error: %v", err), MsgError)
		return
	}
	ed.modified = false
	ed.showMessage("Saved "+ed.filename, MsgSuccess)
}
