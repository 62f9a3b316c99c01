// Package playback owns the session state machine: the file queue, the
// loaded document, the tick-driven scroll position, and every transition
// between them. Nothing in this package touches the terminal.
package playback

import (
	"time"

	"github.com/kk-code-lab/codescroll/internal/highlight"
)

// Config is the immutable per-session playback configuration.
type Config struct {
	TickInterval time.Duration
	Step         int  // display lines advanced per elapsed tick
	Loop         bool // wrap around at queue ends
	RandomStart  bool
}

// State is the single owned mutable state of a session. The control loop
// holds the only writable reference; the renderer reads it between actions.
type State struct {
	// File queue. Files is immutable after construction and
	// 0 <= FileIndex < len(Files) whenever Files is non-empty.
	Files     []string
	FileIndex int

	// Loaded document, replaced wholesale by every load.
	CurrentPath string
	Raw         string
	Lines       []highlight.Line
	SyntaxName  string

	Scroll int // display lines; clamp with ClampedScroll before rendering
	Paused bool
	Status string // transient, cleared by every load attempt

	ScreenWidth  int
	ScreenHeight int
}

// LineCount reports the number of display lines in the loaded document.
func (s *State) LineCount() int {
	return len(s.Lines)
}

// ClampedScroll returns Scroll bounded to [0, max(0, LineCount-1)]. The
// stored value may transiently exceed the document between a tick and the
// advance it triggers; rendering always goes through this.
func (s *State) ClampedScroll() int {
	max := s.LineCount() - 1
	if max < 0 {
		max = 0
	}
	if s.Scroll > max {
		return max
	}
	if s.Scroll < 0 {
		return 0
	}
	return s.Scroll
}
