package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/codescroll/internal/fs"
	"github.com/kk-code-lab/codescroll/internal/highlight"
	"github.com/kk-code-lab/codescroll/internal/log"
	"github.com/kk-code-lab/codescroll/internal/playback"
	"github.com/kk-code-lab/codescroll/internal/ui/input"
	"github.com/kk-code-lab/codescroll/internal/ui/render"
	"github.com/kk-code-lab/codescroll/internal/watch"
)

// Options carries everything the CLI resolved before the screen takes over.
type Options struct {
	Files    []string
	Config   playback.Config
	MaxBytes int64
	Theme    string
	Watch    bool
}

// Application owns the terminal session: the screen, the playback state, and
// the channels the control loop selects over. All state mutation happens on
// the loop goroutine.
type Application struct {
	screen   tcell.Screen
	state    *playback.State
	reducer  *playback.Reducer
	renderer *render.Renderer
	input    *input.InputHandler
	watcher  *watch.Watcher

	actionCh chan playback.Action
	tick     time.Duration

	shouldQuit bool
	fatalErr   error
}

// fileLoader reads documents from disk with a size cap.
type fileLoader struct {
	limit int64
}

func (l fileLoader) Load(path string) (string, error) {
	return fs.ReadDocument(path, l.limit)
}

// NewApplication initializes the screen and loads the first readable file.
// On error the screen is restored before returning.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	state := &playback.State{
		Files: opts.Files,
	}
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h
	if opts.Config.RandomStart && len(opts.Files) > 0 {
		state.FileIndex = playback.RandomStartIndex(len(opts.Files))
	}

	highlighter := highlight.New(opts.Theme)
	reducer := playback.NewReducer(opts.Config, fileLoader{limit: opts.MaxBytes}, highlighter)

	if err := reducer.Load(state); err != nil {
		screen.Fini()
		return nil, err
	}

	var watcher *watch.Watcher
	if opts.Watch {
		watcher, err = watch.New()
		if err != nil {
			screen.Fini()
			return nil, err
		}
		if err := watcher.SetCurrent(state.CurrentPath); err != nil {
			log.Warnf("cannot watch %s: %v", state.CurrentPath, err)
		}
		watcher.Start()
	}

	actionCh := make(chan playback.Action, 10)

	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: render.NewRenderer(screen),
		input:    input.NewInputHandler(actionCh),
		watcher:  watcher,
		actionCh: actionCh,
		tick:     opts.Config.TickInterval,
	}
	return app, nil
}
