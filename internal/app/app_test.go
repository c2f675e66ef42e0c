package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/config/loader"
	"github.com/dshills/keychord/internal/input"
	"github.com/dshills/keychord/internal/input/command"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
)

// newTestApp creates an application over an in-memory file system holding
// files, with XDG_CONFIG_HOME pointed at /xdg.
func newTestApp(t *testing.T, files map[string]string, opts Options) (*Application, *loader.MemFS, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	fsys := loader.NewMemFS()
	for name, content := range files {
		fsys.AddFile(name, content)
	}

	var buf bytes.Buffer
	opts.FileSystem = fsys
	opts.IgnoreEnv = true
	opts.LogOutput = &buf

	app, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(app.Shutdown)
	return app, fsys, &buf
}

func feed(t *testing.T, app *Application, spec string) input.Outcome {
	t.Helper()
	return app.Feed(key.MustParse(spec))
}

func TestNewDefaults(t *testing.T) {
	app, _, _ := newTestApp(t, nil, Options{})

	if app.Mode() != keymap.ModeNormal {
		t.Errorf("Mode() = %v, want normal", app.Mode())
	}
	if _, err := uuid.Parse(app.SessionID()); err != nil {
		t.Errorf("SessionID() = %q is not a UUID: %v", app.SessionID(), err)
	}
	if app.Logger().Level() != LogLevelInfo {
		t.Errorf("Level() = %v, want INFO", app.Logger().Level())
	}
	if !strings.Contains(app.String(), app.SessionID()) {
		t.Errorf("String() = %q, want session id", app.String())
	}
}

func TestNewErrors(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	_, err := New(Options{Mode: "visualblock", IgnoreEnv: true, FileSystem: loader.NewMemFS()})
	var ie *InitError
	if !errors.As(err, &ie) || ie.Component != "mode" || !errors.Is(err, keymap.ErrUnknownMode) {
		t.Errorf("New(bad mode) error = %v", err)
	}

	fsys := loader.NewMemFS()
	fsys.AddFile("/xdg/keychord/config.toml", "[keys.normal]\nx = \"not_a_command\"\n")
	_, err = New(Options{IgnoreEnv: true, FileSystem: fsys})
	if !errors.As(err, &ie) || ie.Component != "config" || !errors.Is(err, config.ErrInvalidKeys) {
		t.Errorf("New(bad config) error = %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "failed to initialize config") {
		t.Errorf("error = %q", err)
	}
}

func TestFeedModeChanges(t *testing.T) {
	app, _, _ := newTestApp(t, nil, Options{})

	steps := []struct {
		key  string
		want keymap.Mode
	}{
		{"i", keymap.ModeInsert},
		{"esc", keymap.ModeNormal},
		{"v", keymap.ModeSelect},
		{"esc", keymap.ModeNormal},
	}
	for _, s := range steps {
		out := feed(t, app, s.key)
		if out.Kind != input.Matched {
			t.Fatalf("Feed(%s) = %v, want matched", s.key, out)
		}
		if app.Mode() != s.want {
			t.Errorf("after %s Mode() = %v, want %v", s.key, app.Mode(), s.want)
		}
	}

	app.SetMode(keymap.ModeSelect)
	if app.Mode() != keymap.ModeSelect {
		t.Errorf("SetMode() did not switch mode")
	}
}

func TestStartMode(t *testing.T) {
	app, _, _ := newTestApp(t, nil, Options{Mode: "insert"})

	if app.Mode() != keymap.ModeInsert {
		t.Fatalf("Mode() = %v, want insert", app.Mode())
	}
	if out := feed(t, app, "esc"); out.Kind != input.Matched || app.Mode() != keymap.ModeNormal {
		t.Errorf("esc in insert = %v, mode %v", out, app.Mode())
	}
}

func TestDispatchKeys(t *testing.T) {
	app, _, _ := newTestApp(t, nil, Options{})

	results, err := app.DispatchKeys("g g f x")
	if err != nil {
		t.Fatalf("DispatchKeys() error = %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("len(results) = %d, want 4", len(results))
	}

	if r := results[0]; r.Outcome.Kind != input.Pending || r.Outcome.Name != "goto" {
		t.Errorf("g = %v, want pending (goto)", r.Outcome)
	}
	if r := results[1]; r.Outcome.Kind != input.Matched || r.Outcome.Commands[0].Name != command.NameGotoFirstLine {
		t.Errorf("g g = %v, want goto first line", r.Outcome)
	}
	if r := results[2]; r.Outcome.Kind != input.AwaitingChar {
		t.Errorf("f = %v, want awaiting char", r.Outcome)
	}
	if r := results[3]; r.Outcome.Kind != input.Matched || r.Outcome.Commands[0] != command.FindCharForward('x') {
		t.Errorf("f x = %v, want find x", r.Outcome)
	}
	for _, r := range results {
		if r.Mode != keymap.ModeNormal {
			t.Errorf("%s dispatched in %v, want normal", r.Key, r.Mode)
		}
	}

	results, err = app.DispatchKeys("i esc")
	if err != nil {
		t.Fatalf("DispatchKeys() error = %v", err)
	}
	if results[1].Mode != keymap.ModeInsert {
		t.Errorf("esc dispatched in %v, want insert", results[1].Mode)
	}

	if _, err := app.DispatchKeys("<C-"); err == nil {
		t.Error("DispatchKeys(<C-) error = nil, want parse error")
	}
}

func TestConfiguredBindings(t *testing.T) {
	app, _, _ := newTestApp(t, map[string]string{
		"/xdg/keychord/config.toml": "[keys.normal]\nC-s = \":write\"\n",
		"/ws/.keychord/config.yaml": "keys:\n  normal:\n    g:\n      a: code_action\n",
	}, Options{WorkspacePath: "/ws"})

	if out := feed(t, app, "C-s"); out.Kind != input.Matched || out.Commands[0] != command.Typable("write") {
		t.Errorf("C-s = %v, want typable write", out)
	}

	results, err := app.DispatchKeys("g a")
	if err != nil {
		t.Fatal(err)
	}
	if out := results[1].Outcome; out.Kind != input.Matched || out.Commands[0].Name != command.NameShowCodeActions {
		t.Errorf("g a = %v, want code actions", out)
	}
}

func TestLogging(t *testing.T) {
	app, _, buf := newTestApp(t, map[string]string{
		"/xdg/keychord/config.toml": "[logging]\nsuppressed = [\"mode normal\"]\n",
	}, Options{LogLevel: "debug"})

	if app.Logger().Level() != LogLevelDebug {
		t.Fatalf("Level() = %v, want DEBUG from options", app.Logger().Level())
	}

	for _, spec := range []string{"g", "esc", "f", "x", "i", "z", "esc"} {
		feed(t, app, spec)
	}
	app.Shutdown()

	out := buf.String()
	for _, want := range []string{
		"dispatch mode=normal key=g -> pending (goto)",
		"component=input",
		"session=" + app.SessionID(),
		"mode insert -> normal",
		"session metrics keys=7 not_found=1 matched=3 pending=1 awaiting_char=1 cancelled=1 avg=",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "mode normal -> insert") {
		t.Errorf("suppressed line logged:\n%s", out)
	}
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kc.log")
	app, _, buf := newTestApp(t, map[string]string{
		"/xdg/keychord/config.toml": "[logging]\nlevel = \"debug\"\nfile = \"" + filepath.ToSlash(path) + "\"\n",
	}, Options{})

	feed(t, app, "h")
	app.Shutdown()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "dispatch mode=normal key=h") {
		t.Errorf("log file = %q", data)
	}
	if buf.Len() != 0 {
		t.Errorf("stderr output = %q, want none", buf.String())
	}
}

func TestReload(t *testing.T) {
	const path = "/xdg/keychord/config.toml"
	app, fsys, _ := newTestApp(t, map[string]string{
		path: "[keys.normal]\nC-s = \":write\"\n",
	}, Options{})
	ctx := context.Background()

	feed(t, app, "g")
	fsys.AddFile(path, "[logging]\nlevel = \"warn\"\n[keys.normal]\nC-s = \":w\"\n")
	if err := app.Reload(ctx); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if app.Dispatcher().IsPending() {
		t.Error("pending keys survived a key table reload")
	}
	if out := feed(t, app, "C-s"); out.Commands[0] != command.Typable("w") {
		t.Errorf("C-s = %v, want reloaded binding", out)
	}
	if app.Logger().Level() != LogLevelWarn {
		t.Errorf("Level() = %v, want WARN after reload", app.Logger().Level())
	}

	fsys.AddFile(path, "[keys.normal]\nC-s = \"???\"\n")
	if err := app.Reload(ctx); err == nil {
		t.Fatal("Reload() error = nil, want error")
	}
	if out := feed(t, app, "C-s"); out.Commands[0] != command.Typable("w") {
		t.Errorf("C-s after failed reload = %v, want previous binding", out)
	}
}

func TestBindings(t *testing.T) {
	app, _, _ := newTestApp(t, nil, Options{})

	entries := app.Bindings(keymap.ModeNormal)
	found := false
	for _, e := range entries {
		if e.Keys.String() == "g g" {
			found = true
			if e.Group != "goto" {
				t.Errorf("g g group = %q, want goto", e.Group)
			}
			if got := FormatBinding(e); !strings.HasPrefix(got, "g g -> ") || !strings.HasSuffix(got, "(goto)") {
				t.Errorf("FormatBinding() = %q", got)
			}
		}
	}
	if !found {
		t.Error("Bindings() missing g g")
	}

	matches := app.FindBindings(keymap.ModeNormal, "goto", 5)
	if len(matches) == 0 || len(matches) > 5 {
		t.Errorf("FindBindings() returned %d entries", len(matches))
	}
	if got := app.FindBindings(keymap.ModeNormal, "", 0); len(got) != len(entries) {
		t.Errorf("FindBindings(empty) = %d entries, want %d", len(got), len(entries))
	}
}
