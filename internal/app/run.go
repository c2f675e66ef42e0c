package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keychord/internal/backend"
	"github.com/dshills/keychord/internal/config/watcher"
	"github.com/dshills/keychord/internal/input/key"
)

// Screen is the terminal surface Run drives. *backend.Terminal
// implements it.
type Screen interface {
	Init() error
	Shutdown()
	PollEvent() backend.Event
	Interrupt(data any) error
	Draw(lines []string, status string)
}

// QuitKey ends the interactive loop.
var QuitKey = key.MustParse("C-q")

const historyLimit = 200

type reloadRequest struct{ path string }

type quitRequest struct{}

// Run reads keys from screen until QuitKey or Stop, dispatching each one
// and showing its outcome. With Options.Watch it reloads configuration
// when a config file changes.
func (app *Application) Run(screen Screen) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := screen.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer screen.Shutdown()

	app.mu.Lock()
	app.screen = screen
	app.mu.Unlock()
	defer func() {
		app.mu.Lock()
		app.screen = nil
		app.mu.Unlock()
	}()

	if app.opts.Watch {
		if err := app.startWatcher(screen); err != nil {
			app.logger.Warn("config watching disabled: %v", err)
		}
	}

	ctx := context.Background()
	var history []string
	add := func(line string) {
		history = append(history, line)
		if len(history) > historyLimit {
			history = history[len(history)-historyLimit:]
		}
	}

	add(fmt.Sprintf("keychord %s: press keys, %s quits", app.Mode(), QuitKey))
	screen.Draw(history, app.status())

	for {
		ev := screen.PollEvent()
		switch ev.Type {
		case backend.EventKey:
			if ev.Key == QuitKey {
				return nil
			}
			mode := app.Mode()
			out := app.Feed(ev.Key)
			add(fmt.Sprintf("%-8s %-7s %s", ev.Key, mode, out))

		case backend.EventInterrupt:
			switch req := ev.Data.(type) {
			case quitRequest:
				return nil
			case reloadRequest:
				if err := app.Reload(ctx); err != nil {
					add(fmt.Sprintf("reload failed (%s): %v", req.path, err))
				} else {
					add(fmt.Sprintf("reloaded %s", req.path))
				}
			}

		case backend.EventNone:
			continue
		}

		screen.Draw(history, app.status())
	}
}

// Stop ends a running Run loop from another goroutine.
func (app *Application) Stop() error {
	app.mu.Lock()
	screen := app.screen
	app.mu.Unlock()

	if screen == nil || !app.running.Load() {
		return ErrNotRunning
	}
	return screen.Interrupt(quitRequest{})
}

// status renders the status line: mode plus any transient dispatcher
// state.
func (app *Application) status() string {
	d := app.dispatcher
	parts := []string{" " + strings.ToUpper(app.Mode().String())}

	switch {
	case d.IsAwaitingChar():
		parts = append(parts, fmt.Sprintf("awaiting char (%s)", d.AwaitState()))
	case d.IsSticky():
		parts = append(parts, fmt.Sprintf("[%s]", d.StickyName()))
	case len(d.PendingKeys()) > 0:
		parts = append(parts, d.PendingKeys().String())
	}
	return strings.Join(parts, " | ")
}

// startWatcher watches the config directories and posts a reload request
// to screen for each settled change.
func (app *Application) startWatcher(screen Screen) error {
	w, err := watcher.New(
		watcher.WithFilter(app.config.Affects),
		watcher.WithErrorHandler(func(err error) {
			app.logger.Warn("config watcher: %v", err)
		}),
	)
	if err != nil {
		return err
	}

	for _, dir := range app.config.WatchPaths() {
		if err := w.Watch(dir); err != nil {
			if errors.Is(err, watcher.ErrPathNotExist) {
				app.logger.Debug("not watching %s: does not exist", dir)
				continue
			}
			_ = w.Close()
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	w.OnChange(func(e watcher.Event) {
		app.logger.Debug("config file %s: %s", e.Path, e.Op)
		if err := screen.Interrupt(reloadRequest{path: e.Path}); err != nil {
			app.logger.Warn("queueing reload: %v", err)
		}
	})

	app.mu.Lock()
	app.watcher = w
	app.mu.Unlock()
	return nil
}
