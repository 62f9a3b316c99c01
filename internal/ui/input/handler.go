package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/codescroll/internal/playback"
)

// InputHandler converts tcell events to playback actions.
type InputHandler struct {
	actionChan chan<- playback.Action
}

// NewInputHandler creates a new input handler.
func NewInputHandler(actionChan chan<- playback.Action) *InputHandler {
	return &InputHandler{actionChan: actionChan}
}

// ProcessEvent converts a tcell event into an action. It returns false when
// the session should end.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- playback.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		ih.actionChan <- playback.QuitAction{}
		return false

	case tcell.KeyRight:
		ih.actionChan <- playback.NextFileAction{}
		return true

	case tcell.KeyLeft:
		ih.actionChan <- playback.PrevFileAction{}
		return true

	case tcell.KeyHome:
		ih.actionChan <- playback.JumpToStartAction{}
		return true

	case tcell.KeyEnd:
		ih.actionChan <- playback.JumpToEndAction{}
		return true

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			ih.actionChan <- playback.QuitAction{}
			return false

		case ' ':
			ih.actionChan <- playback.TogglePauseAction{}

		case 'n':
			ih.actionChan <- playback.NextFileAction{}

		case 'p':
			ih.actionChan <- playback.PrevFileAction{}

		case 'r', 'R':
			ih.actionChan <- playback.ReloadAction{}

		case 'g':
			ih.actionChan <- playback.JumpToStartAction{}

		case 'G':
			ih.actionChan <- playback.JumpToEndAction{}
		}
		return true

	default:
		return true
	}
}
