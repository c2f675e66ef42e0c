package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func newTestWatcher(t *testing.T, opts ...Option) *Watcher {
	t.Helper()
	w, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestConvertOp(t *testing.T) {
	tests := []struct {
		in     fsnotify.Op
		want   Operation
		wantOK bool
	}{
		{fsnotify.Write, OpWrite, true},
		{fsnotify.Create, OpCreate, true},
		{fsnotify.Create | fsnotify.Write, OpCreate, true},
		{fsnotify.Remove, OpRemove, true},
		{fsnotify.Rename, OpRename, true},
		{fsnotify.Chmod, 0, false},
	}
	for _, tt := range tests {
		got, ok := convertOp(tt.in)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("convertOp(%v) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestWatcher_Errors(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t)

	if err := w.Watch(filepath.Join(dir, "missing")); !errors.Is(err, ErrPathNotExist) {
		t.Errorf("Watch(missing) error = %v, want ErrPathNotExist", err)
	}
	if err := w.Watch(dir); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := w.Watch(dir); !errors.Is(err, ErrAlreadyWatching) {
		t.Errorf("Watch() twice error = %v, want ErrAlreadyWatching", err)
	}
	if !w.IsWatching(dir) {
		t.Error("IsWatching() = false, want true")
	}
	if got := w.WatchedPaths(); len(got) != 1 || got[0] != dir {
		t.Errorf("WatchedPaths() = %v, want [%s]", got, dir)
	}

	if err := w.Unwatch(dir); err != nil {
		t.Errorf("Unwatch() error = %v", err)
	}
	if err := w.Unwatch(dir); !errors.Is(err, ErrNotWatching) {
		t.Errorf("Unwatch() twice error = %v, want ErrNotWatching", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := w.Watch(dir); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Watch() after Close error = %v, want ErrWatcherClosed", err)
	}
	if err := w.Unwatch(dir); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Unwatch() after Close error = %v, want ErrWatcherClosed", err)
	}
}

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("a = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := newTestWatcher(t, WithDebounce(100*time.Millisecond))
	events := make(chan Event, 10)
	w.OnChange(func(e Event) { events <- e })

	if err := w.Watch(dir); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte(strings.Repeat("a = 1\n", i+1)), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case e := <-events:
		if e.Path != path {
			t.Errorf("Event.Path = %q, want %q", e.Path, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no event received")
	}

	select {
	case e := <-events:
		t.Errorf("unexpected second event %+v", e)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_Filter(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t,
		WithDebounce(0),
		WithFilter(func(p string) bool { return filepath.Base(p) == "config.toml" }),
	)
	events := make(chan Event, 10)
	w.OnChange(func(e Event) { events <- e })

	if err := w.Watch(dir); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("x = 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case e := <-events:
			if filepath.Base(e.Path) != "config.toml" {
				t.Fatalf("filtered path delivered: %s", e.Path)
			}
			return
		case <-deadline:
			t.Fatal("no event received for config.toml")
		}
	}
}

func TestWatcher_HandlerPanic(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, WithDebounce(0))

	events := make(chan Event, 10)
	w.OnChange(func(Event) { panic("boom") })
	w.OnChange(func(e Event) { events <- e })

	if err := w.Watch(dir); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-events:
	case <-time.After(3 * time.Second):
		t.Fatal("handler after a panicking one was not called")
	}
}
