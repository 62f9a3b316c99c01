package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/codescroll/internal/log"
	"github.com/kk-code-lab/codescroll/internal/playback"
)

// Run drives the session until quit or a fatal error. The screen is always
// restored on return.
func (app *Application) Run() error {
	defer app.screen.Fini()
	if app.watcher != nil {
		defer func() {
			_ = app.watcher.Stop()
		}()
	}

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	var watchCh <-chan string
	if app.watcher != nil {
		watchCh = app.watcher.Changes()
	}

	ticker := time.NewTicker(app.tick)
	defer ticker.Stop()

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-ticker.C:
			if app.applyAction(playback.TickAction{}) {
				renderPending = true
			}
		case path := <-watchCh:
			if app.applyAction(playback.FileChangedAction{Path: path}) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.applyAction(action) {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}

	return app.fatalErr
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return true
	default:
		return false
	}
}

// processActions drains any actions queued during handling so a burst of
// keystrokes collapses into one render.
func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.applyAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) applyAction(action playback.Action) bool {
	if action == nil {
		return false
	}

	if _, ok := action.(playback.QuitAction); ok {
		app.shouldQuit = true
		return false
	}

	before := app.state.CurrentPath
	changed, err := app.reducer.Reduce(app.state, action)
	if err != nil {
		log.Errorf("stopping: %v", err)
		app.fatalErr = err
		app.shouldQuit = true
		return false
	}

	if app.watcher != nil && app.state.CurrentPath != before {
		if werr := app.watcher.SetCurrent(app.state.CurrentPath); werr != nil {
			log.Warnf("cannot watch %s: %v", app.state.CurrentPath, werr)
		}
	}
	return changed
}
