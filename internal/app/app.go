// Package app wires configuration, logging and the key dispatcher into a
// session, and runs the interactive loop.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/config/loader"
	"github.com/dshills/keychord/internal/config/notify"
	"github.com/dshills/keychord/internal/config/watcher"
	"github.com/dshills/keychord/internal/input"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
)

// Options configures the application.
type Options struct {
	// ConfigPath replaces the global config file search.
	ConfigPath string

	// WorkspacePath enables the workspace config layer.
	WorkspacePath string

	// Mode is the starting editor mode. Empty means normal.
	Mode string

	// LogLevel overrides logging.level when set.
	LogLevel string

	// Watch reloads configuration when its files change while Run is
	// active.
	Watch bool

	// IgnoreEnv skips the KEYCHORD_* environment layer.
	IgnoreEnv bool

	// LogOutput receives log lines when no log file is configured.
	// Defaults to os.Stderr.
	LogOutput io.Writer

	// FileSystem is where config files are read from. Defaults to the OS.
	FileSystem loader.FileSystem
}

// Application holds one keychord session.
type Application struct {
	mu sync.Mutex

	opts      Options
	config    *config.Config
	logger    *Logger
	logFile   *os.File
	sessionID string

	dispatcher *input.Dispatcher
	metrics    *input.Metrics
	mode       keymap.Mode

	subs    []*notify.Subscription
	watcher *watcher.Watcher
	screen  Screen

	running      atomic.Bool
	shutdownOnce sync.Once
}

// New creates an Application and loads its configuration.
func New(opts Options) (*Application, error) {
	modeName := opts.Mode
	if modeName == "" {
		modeName = keymap.ModeNormal.String()
	}
	mode, err := keymap.ParseMode(modeName)
	if err != nil {
		return nil, &InitError{Component: "mode", Err: err}
	}

	app := &Application{
		opts:      opts,
		mode:      mode,
		sessionID: uuid.NewString(),
		metrics:   input.NewMetrics(),
	}

	app.config = config.New(app.configOptions()...)
	if err := app.config.Load(context.Background()); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	if err := app.setupLogger(app.config.Logging()); err != nil {
		return nil, &InitError{Component: "logger", Err: err}
	}

	app.dispatcher = input.NewDispatcher(
		app.config.Keymaps(),
		input.WithLogger(app.logger.WithComponent("input")),
		input.WithMetrics(app.metrics),
	)

	app.subs = append(app.subs,
		app.config.OnChange("keys", func(notify.Change) {
			app.dispatcher.SetKeymaps(app.config.Keymaps())
			app.logger.Info("key bindings reloaded")
		}),
		app.config.OnChange("logging", func(notify.Change) {
			if err := app.applyLogging(app.config.Logging()); err != nil {
				app.logger.Error("applying logging config: %v", err)
			}
		}),
	)

	app.logger.Debug("session started mode=%s files=%v", app.mode, app.config.Files())
	return app, nil
}

func (app *Application) configOptions() []config.Option {
	opts := []config.Option{config.WithEnv(!app.opts.IgnoreEnv)}
	if app.opts.FileSystem != nil {
		opts = append(opts, config.WithFileSystem(app.opts.FileSystem))
	}
	if app.opts.ConfigPath != "" {
		opts = append(opts, config.WithGlobalPath(app.opts.ConfigPath))
	}
	if app.opts.WorkspacePath != "" {
		opts = append(opts, config.WithWorkspaceDir(app.opts.WorkspacePath))
	}
	if app.opts.LogLevel != "" {
		opts = append(opts, config.WithOverride("logging.level", app.opts.LogLevel))
	}
	return opts
}

// setupLogger creates the session logger.
func (app *Application) setupLogger(lc config.LoggingConfig) error {
	cfg := DefaultLoggerConfig()
	if app.opts.LogOutput != nil {
		cfg.Output = app.opts.LogOutput
	}
	if lc.Level != "" {
		cfg.Level = ParseLogLevel(lc.Level)
	}
	cfg.Suppressed = lc.Suppressed

	if lc.File != "" {
		f, err := OpenLogFile(lc.File)
		if err != nil {
			return err
		}
		app.logFile = f
		cfg.Output = f
	}

	app.logger = NewLogger(cfg).WithField("session", app.sessionID)
	return nil
}

// applyLogging updates the live logger after a reload.
func (app *Application) applyLogging(lc config.LoggingConfig) error {
	level := LogLevelInfo
	if lc.Level != "" {
		level = ParseLogLevel(lc.Level)
	}
	app.logger.SetLevel(level)
	app.logger.SetSuppressed(lc.Suppressed)

	app.mu.Lock()
	defer app.mu.Unlock()

	current := ""
	if app.logFile != nil {
		current = app.logFile.Name()
	}
	if lc.File == current {
		return nil
	}

	var out io.Writer = os.Stderr
	if app.opts.LogOutput != nil {
		out = app.opts.LogOutput
	}
	var next *os.File
	if lc.File != "" {
		f, err := OpenLogFile(lc.File)
		if err != nil {
			return err
		}
		next = f
		out = f
	}

	app.logger.SetOutput(out)
	if app.logFile != nil {
		_ = app.logFile.Close()
	}
	app.logFile = next
	return nil
}

// Feed dispatches one key in the current mode. Matched commands that
// change the editor mode are applied before returning.
func (app *Application) Feed(ev key.Event) input.Outcome {
	app.mu.Lock()
	defer app.mu.Unlock()

	out := app.dispatcher.Dispatch(app.mode, ev)
	if out.Kind != input.Matched {
		return out
	}
	for _, cmd := range out.Commands {
		name, ok := cmd.IsModeChange()
		if !ok {
			continue
		}
		if m, err := keymap.ParseMode(name); err == nil && m != app.mode {
			app.logger.Debug("mode %s -> %s", app.mode, m)
			app.mode = m
		}
	}
	return out
}

// KeyResult is one step of DispatchKeys.
type KeyResult struct {
	Key     key.Event
	Mode    keymap.Mode
	Outcome input.Outcome
}

// DispatchKeys parses a space-separated key sequence such as "g g" and
// feeds each key in turn. Mode records the mode each key was dispatched
// in.
func (app *Application) DispatchKeys(spec string) ([]KeyResult, error) {
	seq, err := key.ParseSequence(spec)
	if err != nil {
		return nil, err
	}

	results := make([]KeyResult, 0, len(seq))
	for _, ev := range seq {
		mode := app.Mode()
		results = append(results, KeyResult{Key: ev, Mode: mode, Outcome: app.Feed(ev)})
	}
	return results, nil
}

// Reload re-reads configuration. Subscribed components pick up changed
// sections; on error the previous configuration stays in effect.
func (app *Application) Reload(ctx context.Context) error {
	changed, err := app.config.Reload(ctx)
	if err != nil {
		app.logger.Error("config reload failed, keeping previous configuration: %v", err)
		return err
	}
	app.logger.Info("config reloaded, changed sections: %v", changed)
	return nil
}

// Mode returns the current editor mode.
func (app *Application) Mode() keymap.Mode {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.mode
}

// SetMode switches the editor mode and drops any pending keys.
func (app *Application) SetMode(m keymap.Mode) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.mode = m
	app.dispatcher.Reset()
}

// Dispatcher returns the session's dispatcher.
func (app *Application) Dispatcher() *input.Dispatcher {
	return app.dispatcher
}

// Config returns the session's configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the session logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// SessionID returns the identifier attached to every log line.
func (app *Application) SessionID() string {
	return app.sessionID
}

// Metrics returns dispatch metrics for the session.
func (app *Application) Metrics() *input.Metrics {
	return app.metrics
}

// Shutdown logs session metrics and releases resources. It is safe to
// call more than once.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		snap := app.metrics.Snapshot()
		app.logger.Debug("session metrics keys=%d %s avg=%v p99=%v peak=%v",
			snap.KeyEventsTotal, outcomeCounts(snap),
			snap.AvgLatency, snap.P99Latency, snap.PeakLatency)

		for _, sub := range app.subs {
			sub.Unsubscribe()
		}

		app.mu.Lock()
		w := app.watcher
		app.watcher = nil
		f := app.logFile
		app.logFile = nil
		app.mu.Unlock()

		if w != nil {
			if err := w.Close(); err != nil {
				app.logger.Warn("closing watcher: %v", err)
			}
		}
		if f != nil {
			app.logger.SetOutput(io.Discard)
			_ = f.Close()
		}
	})
}

// outcomeCounts renders every outcome kind's count as "name=n", in kind
// order.
func outcomeCounts(snap input.MetricsSnapshot) string {
	kinds := []input.OutcomeKind{input.NotFound, input.Matched, input.Pending, input.AwaitingChar, input.Cancelled}
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%s=%d", k, snap.Outcomes[k])
	}
	return strings.Join(parts, " ")
}

// String describes the session for logs.
func (app *Application) String() string {
	return fmt.Sprintf("session %s (%s)", app.sessionID, app.Mode())
}
