package playback

// Action is a discrete input applied to the session state.
type Action interface{}

// Playback control
type TickAction struct{}
type TogglePauseAction struct{}

// Queue navigation
type NextFileAction struct{}
type PrevFileAction struct{}
type ReloadAction struct{}

// Scroll jumps
type JumpToStartAction struct{}
type JumpToEndAction struct{}

// Environment
type ResizeAction struct {
	Width  int
	Height int
}

// FileChangedAction reports a write to a file on disk; only a change to the
// currently displayed file has any effect.
type FileChangedAction struct {
	Path string
}

type QuitAction struct{}
