package playback

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/kk-code-lab/codescroll/internal/highlight"
)

// ErrNoLoadableFiles means every file in the queue failed to load. It is the
// only fatal outcome a transition can produce.
var ErrNoLoadableFiles = errors.New("no loadable files in queue")

// Loader reads a file's content. The reducer calls it only from load paths;
// every other transition is a pure in-memory update.
type Loader interface {
	Load(path string) (string, error)
}

// Highlighter converts raw text into display lines plus a syntax name.
type Highlighter interface {
	Highlight(path, raw string) ([]highlight.Line, string)
}

// Reducer applies actions to the session state.
type Reducer struct {
	cfg         Config
	loader      Loader
	highlighter Highlighter
}

func NewReducer(cfg Config, loader Loader, highlighter Highlighter) *Reducer {
	return &Reducer{cfg: cfg, loader: loader, highlighter: highlighter}
}

// Reduce applies one action and reports whether the state changed. A non-nil
// error ends the session.
func (r *Reducer) Reduce(state *State, action Action) (bool, error) {
	switch a := action.(type) {
	case TickAction:
		if state.Paused {
			return false, nil
		}
		state.Scroll += r.cfg.Step
		if state.Scroll >= state.LineCount()-1 {
			return true, r.advance(state)
		}
		return true, nil

	case TogglePauseAction:
		state.Paused = !state.Paused
		return true, nil

	case NextFileAction:
		return true, r.advance(state)

	case PrevFileAction:
		return true, r.retreat(state)

	case ReloadAction:
		return true, r.Load(state)

	case JumpToStartAction:
		state.Scroll = 0
		return true, nil

	case JumpToEndAction:
		state.Scroll = state.LineCount() - 1
		if state.Scroll < 0 {
			state.Scroll = 0
		}
		return true, nil

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		return true, nil

	case FileChangedAction:
		if !samePath(a.Path, state.CurrentPath) {
			return false, nil
		}
		return true, r.Load(state)
	}

	return false, nil
}

// samePath compares paths after resolving both against the working
// directory. Watchers report absolute paths while the queue keeps whatever
// form the user typed, so a byte comparison alone would miss relative roots.
func samePath(a, b string) bool {
	if a == b {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// Load loads the file at the current index, skipping unreadable files. Each
// attempt resets the scroll offset and clears the status before reading; a
// failed read leaves a skip notice behind and moves to the next index,
// wrapping regardless of the loop policy so recovery never stalls. Attempts
// are capped at the queue length, after which ErrNoLoadableFiles surfaces.
func (r *Reducer) Load(state *State) error {
	if len(state.Files) == 0 {
		return ErrNoLoadableFiles
	}

	for attempts := 0; attempts < len(state.Files); attempts++ {
		state.Scroll = 0
		state.Status = ""

		path := state.Files[state.FileIndex]
		raw, err := r.loader.Load(path)
		if err != nil {
			state.Status = fmt.Sprintf("Skipping unreadable file: %s (%v)", path, err)
			state.FileIndex = (state.FileIndex + 1) % len(state.Files)
			continue
		}

		lines, syntaxName := r.highlighter.Highlight(path, raw)
		state.CurrentPath = path
		state.Raw = raw
		state.Lines = lines
		state.SyntaxName = syntaxName
		return nil
	}

	return ErrNoLoadableFiles
}

// advance moves to the next file, wrapping when looping is enabled. At the
// end without looping it caps the scroll offset on the last line instead of
// letting ticks push it further.
func (r *Reducer) advance(state *State) error {
	if len(state.Files) == 0 {
		return nil
	}

	switch {
	case state.FileIndex+1 < len(state.Files):
		state.FileIndex++
	case r.cfg.Loop:
		state.FileIndex = 0
	default:
		if max := state.LineCount() - 1; state.Scroll > max && max >= 0 {
			state.Scroll = max
		}
		return nil
	}
	return r.Load(state)
}

// retreat mirrors advance toward the front of the queue.
func (r *Reducer) retreat(state *State) error {
	if len(state.Files) == 0 {
		return nil
	}

	switch {
	case state.FileIndex > 0:
		state.FileIndex--
	case r.cfg.Loop:
		state.FileIndex = len(state.Files) - 1
	default:
		return nil
	}
	return r.Load(state)
}
