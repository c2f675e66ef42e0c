package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dshills/keychord/internal/backend"
	"github.com/dshills/keychord/internal/input/command"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
)

type fakeScreen struct {
	events chan backend.Event

	mu       sync.Mutex
	lines    [][]string
	statuses []string
	shutdown bool
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{events: make(chan backend.Event, 32)}
}

func (f *fakeScreen) Init() error { return nil }

func (f *fakeScreen) Shutdown() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shutdown = true
}

func (f *fakeScreen) PollEvent() backend.Event { return <-f.events }

func (f *fakeScreen) Interrupt(data any) error {
	f.events <- backend.Event{Type: backend.EventInterrupt, Data: data}
	return nil
}

func (f *fakeScreen) Draw(lines []string, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = append(f.lines, append([]string(nil), lines...))
	f.statuses = append(f.statuses, status)
}

func (f *fakeScreen) press(specs ...string) {
	for _, s := range specs {
		f.events <- backend.Event{Type: backend.EventKey, Key: key.MustParse(s)}
	}
}

func (f *fakeScreen) lastLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.lines) == 0 {
		return nil
	}
	return f.lines[len(f.lines)-1]
}

func TestRun(t *testing.T) {
	app, _, _ := newTestApp(t, nil, Options{})
	screen := newFakeScreen()
	screen.press("g", "g", "i", "C-q")

	if err := app.Run(screen); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{" NORMAL", " NORMAL | g", " NORMAL", " INSERT"}
	if len(screen.statuses) != len(want) {
		t.Fatalf("statuses = %q, want %q", screen.statuses, want)
	}
	for i := range want {
		if screen.statuses[i] != want[i] {
			t.Errorf("statuses[%d] = %q, want %q", i, screen.statuses[i], want[i])
		}
	}

	lines := screen.lastLines()
	if len(lines) != 4 {
		t.Fatalf("history = %q, want banner plus 3 lines", lines)
	}
	if !strings.Contains(lines[2], command.NameGotoFirstLine) {
		t.Errorf("history[2] = %q, want goto first line", lines[2])
	}
	if !screen.shutdown {
		t.Error("screen not shut down")
	}
	if app.Mode() != keymap.ModeInsert {
		t.Errorf("Mode() = %v, want insert", app.Mode())
	}
}

func TestRunStatusStates(t *testing.T) {
	app, _, _ := newTestApp(t, nil, Options{})
	screen := newFakeScreen()
	screen.press("f", "x", "Z", "z", "esc", "C-q")

	if err := app.Run(screen); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{
		" NORMAL",
		" NORMAL | awaiting char (find_forward)",
		" NORMAL",
		" NORMAL | [view]",
		" NORMAL | [view]",
		" NORMAL",
	}
	if len(screen.statuses) != len(want) {
		t.Fatalf("statuses = %q, want %q", screen.statuses, want)
	}
	for i := range want {
		if screen.statuses[i] != want[i] {
			t.Errorf("statuses[%d] = %q, want %q", i, screen.statuses[i], want[i])
		}
	}
}

func TestRunReloadRequest(t *testing.T) {
	const path = "/xdg/keychord/config.toml"
	app, fsys, _ := newTestApp(t, map[string]string{
		path: "[keys.normal]\nC-s = \":write\"\n",
	}, Options{})

	screen := newFakeScreen()
	fsys.AddFile(path, "[keys.normal]\nC-s = \":w\"\n")
	if err := screen.Interrupt(reloadRequest{path: path}); err != nil {
		t.Fatal(err)
	}
	screen.press("C-s", "C-q")

	if err := app.Run(screen); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	lines := screen.lastLines()
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "reloaded "+path) {
		t.Errorf("history missing reload line:\n%s", joined)
	}
	if !strings.Contains(lines[len(lines)-1], command.Typable("w").String()) {
		t.Errorf("last line = %q, want reloaded binding", lines[len(lines)-1])
	}
}

func TestRunStop(t *testing.T) {
	app, _, _ := newTestApp(t, nil, Options{})

	if err := app.Stop(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Stop() before Run error = %v, want ErrNotRunning", err)
	}

	screen := newFakeScreen()
	done := make(chan error, 1)
	go func() { done <- app.Run(screen) }()

	deadline := time.Now().Add(2 * time.Second)
	for app.Stop() != nil {
		if time.Now().After(deadline) {
			t.Fatal("Run never became stoppable")
		}
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestRunWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.toml")
	if err := os.WriteFile(path, []byte("[keys.normal]\nC-s = \":write\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)

	var logs strings.Builder
	app, err := New(Options{ConfigPath: path, Watch: true, IgnoreEnv: true, LogOutput: &logs})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer app.Shutdown()

	screen := newFakeScreen()
	done := make(chan error, 1)
	go func() { done <- app.Run(screen) }()

	waitFor(t, "watcher", func() bool {
		app.mu.Lock()
		defer app.mu.Unlock()
		return app.watcher != nil
	})

	if err := os.WriteFile(path, []byte("[keys.normal]\nC-s = \":w\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	waitFor(t, "reload", func() bool {
		table, _ := app.Config().Keymaps().Get(keymap.ModeNormal)
		res := keymap.Search(table, key.MustParseSequence("C-s"))
		return res.Status == keymap.Found && res.Slot.Emit()[0] == command.Typable("w")
	})

	screen.press("C-q")
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
