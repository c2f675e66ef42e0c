package config

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dshills/keychord/internal/config/loader"
	"github.com/dshills/keychord/internal/config/notify"
	"github.com/dshills/keychord/internal/input/command"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/keymap"
)

const globalTOML = `
[logging]
level = "info"
file = "/tmp/keychord.log"
suppressed = ["noisy"]

[keys.normal]
C-s = ":write"
`

const workspaceYAML = `
logging:
  level: debug
keys:
  normal:
    g:
      a: code_action
`

// testFS returns a file system with a global and a workspace config, and
// points XDG_CONFIG_HOME at it.
func testFS(t *testing.T) *loader.MemFS {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	fsys := loader.NewMemFS()
	fsys.AddFile("/xdg/keychord/config.toml", globalTOML)
	fsys.AddFile("/ws/.keychord/config.yaml", workspaceYAML)
	return fsys
}

func lookup(t *testing.T, km keymap.Keymaps, mode keymap.Mode, keys string) keymap.SearchResult {
	t.Helper()
	table, ok := km.Get(mode)
	if !ok {
		t.Fatalf("no table for %s", mode)
	}
	return keymap.Search(table, key.MustParseSequence(keys))
}

func TestLoadLayers(t *testing.T) {
	fsys := testFS(t)
	cfg := New(WithFileSystem(fsys), WithWorkspaceDir("/ws"))

	if err := cfg.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	logging := cfg.Logging()
	if logging.Level != "debug" {
		t.Errorf("Level = %q, want debug (workspace wins)", logging.Level)
	}
	if logging.File != "/tmp/keychord.log" {
		t.Errorf("File = %q, want global value", logging.File)
	}
	if len(logging.Suppressed) != 1 || logging.Suppressed[0] != "noisy" {
		t.Errorf("Suppressed = %v, want [noisy]", logging.Suppressed)
	}

	if got := cfg.Source("logging.level"); got != "/ws/.keychord/config.yaml" {
		t.Errorf("Source(logging.level) = %q", got)
	}
	if got := cfg.Files(); len(got) != 2 || got[0] != "/xdg/keychord/config.toml" {
		t.Errorf("Files() = %v", got)
	}

	km := cfg.Keymaps()

	res := lookup(t, km, keymap.ModeNormal, "C-s")
	if res.Status != keymap.Found || res.Slot.Emit()[0] != command.Typable("write") {
		t.Errorf("C-s = %v %v, want typable write", res.Status, res.Slot)
	}

	res = lookup(t, km, keymap.ModeNormal, "g a")
	if res.Status != keymap.Found || res.Slot.Emit()[0].Name != command.NameShowCodeActions {
		t.Errorf("g a = %v %v, want code action", res.Status, res.Slot)
	}

	// Defaults around the override survive.
	res = lookup(t, km, keymap.ModeNormal, "g g")
	if res.Status != keymap.Found || res.Slot.Emit()[0].Name != command.NameGotoFirstLine {
		t.Errorf("g g = %v %v, want goto first line", res.Status, res.Slot)
	}

	if _, ok := cfg.KeyOverrides()[keymap.ModeNormal]; !ok {
		t.Error("KeyOverrides() missing normal mode")
	}
}

func TestDefaultsBeforeLoad(t *testing.T) {
	cfg := New(WithFileSystem(loader.NewMemFS()))

	res := lookup(t, cfg.Keymaps(), keymap.ModeNormal, "h")
	if res.Status != keymap.Found {
		t.Errorf("h = %v, want Found in default tables", res.Status)
	}
	if cfg.Logging().Level != "" {
		t.Errorf("Level = %q, want empty", cfg.Logging().Level)
	}
}

func TestLoadNoFiles(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	cfg := New(WithFileSystem(loader.NewMemFS()), WithWorkspaceDir("/ws"))

	if err := cfg.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Files()) != 0 {
		t.Errorf("Files() = %v, want none", cfg.Files())
	}
	if res := lookup(t, cfg.Keymaps(), keymap.ModeInsert, "esc"); res.Status != keymap.Found {
		t.Errorf("insert esc = %v, want Found", res.Status)
	}
}

func TestExplicitGlobalPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	fsys := loader.NewMemFS()
	fsys.AddFile("/etc/kc.lua", `return { logging = { level = "warn" } }`)

	cfg := New(WithFileSystem(fsys), WithGlobalPath("/etc/kc.lua"))
	if err := cfg.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging().Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging().Level)
	}

	missing := New(WithFileSystem(fsys), WithGlobalPath("/etc/none.toml"))
	if err := missing.Load(context.Background()); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Load() error = %v, want ErrFileNotFound", err)
	}
}

func TestOverridesAndEnv(t *testing.T) {
	fsys := testFS(t)
	t.Setenv("KEYCHORD_LOG_FILE", "/var/log/kc.log")

	cfg := New(
		WithFileSystem(fsys),
		WithWorkspaceDir("/ws"),
		WithEnv(true),
		WithOverride("logging.level", "error"),
	)
	if err := cfg.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.Logging().Level; got != "error" {
		t.Errorf("Level = %q, want error from arguments", got)
	}
	if got := cfg.Source("logging.level"); got != "arguments" {
		t.Errorf("Source(logging.level) = %q, want arguments", got)
	}
	if got := cfg.Logging().File; got != "/var/log/kc.log" {
		t.Errorf("File = %q, want environment value", got)
	}
	if v, ok := cfg.Get("logging.file"); !ok || v != "/var/log/kc.log" {
		t.Errorf("Get(logging.file) = %v, %v", v, ok)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(error) bool
		wantMsg string
	}{
		{
			name:    "bad toml",
			content: "[logging\nlevel = 1",
			check: func(err error) bool {
				var pe *ParseError
				return errors.As(err, &pe)
			},
		},
		{
			name:    "unknown command",
			content: "[keys.normal.g]\nx = \"no_such_command\"\n",
			check:   func(err error) bool { return errors.Is(err, ErrInvalidKeys) && errors.Is(err, keymap.ErrUnknownCommand) },
			wantMsg: "keys.normal.g.x",
		},
		{
			name:    "unknown mode",
			content: "[keys.visualblock]\nx = \"move_char_left\"\n",
			check:   func(err error) bool { return errors.Is(err, keymap.ErrUnknownMode) },
			wantMsg: "keys.visualblock",
		},
		{
			name:    "keys not a table",
			content: "keys = 3\n",
			check:   func(err error) bool { return errors.Is(err, ErrInvalidKeys) },
		},
		{
			name:    "bad level",
			content: "[logging]\nlevel = \"loud\"\n",
			check: func(err error) bool {
				var te *TypeError
				return errors.As(err, &te) && te.Path == "logging.level"
			},
		},
		{
			name:    "suppressed not strings",
			content: "[logging]\nsuppressed = [1]\n",
			check: func(err error) bool {
				var te *TypeError
				return errors.As(err, &te) && te.Path == "logging.suppressed[0]"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := loader.NewMemFS()
			fsys.AddFile("/c/config.toml", tt.content)
			cfg := New(WithFileSystem(fsys), WithGlobalPath("/c/config.toml"))

			err := cfg.Load(context.Background())
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !tt.check(err) {
				t.Errorf("Load() error = %v, wrong kind", err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestReloadKeepsStateOnError(t *testing.T) {
	fsys := loader.NewMemFS()
	fsys.AddFile("/c/config.toml", "[keys.normal]\nC-s = \":write\"\n")
	cfg := New(WithFileSystem(fsys), WithGlobalPath("/c/config.toml"))
	ctx := context.Background()

	if err := cfg.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	fsys.AddFile("/c/config.toml", "[keys.normal]\nC-s = \"bogus\"\n")
	if _, err := cfg.Reload(ctx); !errors.Is(err, ErrInvalidKeys) {
		t.Fatalf("Reload() error = %v, want ErrInvalidKeys", err)
	}

	res := lookup(t, cfg.Keymaps(), keymap.ModeNormal, "C-s")
	if res.Status != keymap.Found || res.Slot.Emit()[0] != command.Typable("write") {
		t.Errorf("C-s after failed reload = %v %v, want previous binding", res.Status, res.Slot)
	}
}

func TestReloadNotifies(t *testing.T) {
	fsys := loader.NewMemFS()
	fsys.AddFile("/c/config.toml", "[logging]\nlevel = \"info\"\n[keys.normal]\nC-s = \":write\"\n")
	cfg := New(WithFileSystem(fsys), WithGlobalPath("/c/config.toml"))
	ctx := context.Background()

	if err := cfg.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var keyChanges []notify.Change
	var all int
	cfg.OnChange("keys", func(c notify.Change) { keyChanges = append(keyChanges, c) })
	cfg.OnChange("", func(notify.Change) { all++ })

	fsys.AddFile("/c/config.toml", "[logging]\nlevel = \"info\"\n[keys.normal]\nC-s = \":w\"\n")
	changed, err := cfg.Reload(ctx)
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if len(changed) != 1 || changed[0] != "keys" {
		t.Errorf("Reload() changed = %v, want [keys]", changed)
	}
	if len(keyChanges) != 1 || keyChanges[0].Source != "/c/config.toml" {
		t.Errorf("keys observer got %v", keyChanges)
	}
	if all != 1 {
		t.Errorf("global observer calls = %d, want 1", all)
	}

	res := lookup(t, cfg.Keymaps(), keymap.ModeNormal, "C-s")
	if res.Slot.Emit()[0] != command.Typable("w") {
		t.Errorf("C-s = %v, want reloaded binding", res.Slot)
	}

	changed, err = cfg.Reload(ctx)
	if err != nil || len(changed) != 0 {
		t.Errorf("Reload() unchanged = %v, %v, want none", changed, err)
	}
}

func TestLoadCancelled(t *testing.T) {
	fsys := testFS(t)
	cfg := New(WithFileSystem(fsys))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := cfg.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestWatchPaths(t *testing.T) {
	fsys := testFS(t)
	cfg := New(WithFileSystem(fsys), WithWorkspaceDir("/ws"))
	if err := cfg.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := cfg.WatchPaths()
	want := []string{"/xdg/keychord", "/ws/.keychord"}
	if len(got) != len(want) {
		t.Fatalf("WatchPaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("WatchPaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAffects(t *testing.T) {
	cfg := New(WithGlobalPath("/etc/kc.toml"))

	tests := []struct {
		path string
		want bool
	}{
		{"/etc/kc.toml", true},
		{"/ws/.keychord/config.yaml", true},
		{"/ws/.keychord/config.lua", true},
		{"/ws/.keychord/notes.txt", false},
		{"/ws/.keychord/config.toml~", false},
	}
	for _, tt := range tests {
		if got := cfg.Affects(tt.path); got != tt.want {
			t.Errorf("Affects(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestTypeErrorString(t *testing.T) {
	err := &TypeError{Path: "logging.file", Expected: "string", Value: int64(3)}
	want := "logging.file: expected string, got int64 (3)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
