package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/keychord/internal/config/layer"
	"github.com/dshills/keychord/internal/config/loader"
	"github.com/dshills/keychord/internal/config/notify"
	"github.com/dshills/keychord/internal/input/keymap"
)

// AppName names the configuration directories.
const AppName = "keychord"

// configNames are the file names tried in a config directory, in order.
var configNames = []string{"config.toml", "config.yaml", "config.yml", "config.lua"}

// Config provides access to the merged configuration and the key tables
// derived from it. Load and Reload are all-or-nothing: a failed load leaves
// the previous state in effect.
type Config struct {
	mu sync.RWMutex

	fsys         loader.FileSystem
	globalPath   string
	workspaceDir string
	useEnv       bool
	overrides    map[string]any
	registry     *keymap.Registry

	notifier *notify.Notifier

	state *state
}

// state is everything one successful load produces.
type state struct {
	layers    *layer.Manager
	data      map[string]any
	files     []string
	logging   LoggingConfig
	overrides map[keymap.Mode]keymap.Trie
	keymaps   keymap.Keymaps
}

// Option configures a Config instance.
type Option func(*Config)

// WithFileSystem sets the file system files are read from.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(c *Config) {
		if fsys != nil {
			c.fsys = fsys
		}
	}
}

// WithGlobalPath uses path instead of searching the user config directory.
// The file must exist.
func WithGlobalPath(path string) Option {
	return func(c *Config) {
		c.globalPath = path
	}
}

// WithWorkspaceDir enables the workspace layer read from
// dir/.keychord/config.*.
func WithWorkspaceDir(dir string) Option {
	return func(c *Config) {
		c.workspaceDir = dir
	}
}

// WithEnv enables the KEYCHORD_* environment layer.
func WithEnv(enable bool) Option {
	return func(c *Config) {
		c.useEnv = enable
	}
}

// WithOverride sets a dotted path in the command-line layer.
func WithOverride(path string, value any) Option {
	return func(c *Config) {
		if c.overrides == nil {
			c.overrides = make(map[string]any)
		}
		c.overrides[path] = value
	}
}

// WithRegistry sets the registry used to resolve command names.
func WithRegistry(r *keymap.Registry) Option {
	return func(c *Config) {
		if r != nil {
			c.registry = r
		}
	}
}

// New creates a Config. Call Load before querying it; until then it
// reports built-in defaults.
func New(opts ...Option) *Config {
	c := &Config{
		fsys:     loader.DefaultFS(),
		registry: keymap.DefaultRegistry(),
		notifier: notify.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = &state{
		layers:  layer.NewManager(),
		data:    make(map[string]any),
		keymaps: keymap.Defaults(),
	}
	return c
}

// Load reads every layer and rebuilds the key tables.
func (c *Config) Load(ctx context.Context) error {
	s, err := c.build(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
	return nil
}

// Reload loads the configuration again and notifies subscribers of each
// top-level section whose effective value changed. It returns the changed
// sections. On error the previous configuration stays in effect.
func (c *Config) Reload(ctx context.Context) ([]string, error) {
	s, err := c.build(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	old := c.state
	c.state = s
	c.mu.Unlock()

	changed := layer.ChangedSections(old.data, s.data)
	source := strings.Join(s.files, ", ")
	for _, section := range changed {
		c.notifier.Notify(notify.Change{Section: section, Source: source})
	}
	return changed, nil
}

func (c *Config) build(ctx context.Context) (*state, error) {
	layers := layer.NewManager()
	var files []string

	globalFile, err := c.globalFile()
	if err != nil {
		return nil, err
	}
	if globalFile != "" {
		if err := c.loadFile(ctx, layers, layer.SourceGlobal, globalFile); err != nil {
			return nil, err
		}
		files = append(files, globalFile)
	}

	if c.workspaceDir != "" {
		if path := c.find(WorkspaceConfigDir(c.workspaceDir)); path != "" {
			if err := c.loadFile(ctx, layers, layer.SourceWorkspace, path); err != nil {
				return nil, err
			}
			files = append(files, path)
		}
	}

	if c.useEnv {
		data, err := loader.NewEnvLoader(loader.EnvPrefix).Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		if len(data) > 0 {
			layers.Set(layer.New(layer.SourceEnv, "", data))
		}
	}

	if len(c.overrides) > 0 {
		data := make(map[string]any)
		paths := make([]string, 0, len(c.overrides))
		for p := range c.overrides {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		for _, p := range paths {
			layer.SetByPath(data, p, c.overrides[p])
		}
		layers.Set(layer.New(layer.SourceArgs, "", data))
	}

	data := layers.Merge()

	logging, err := parseLogging(data)
	if err != nil {
		return nil, err
	}
	overrides, err := parseKeys(c.registry, data)
	if err != nil {
		return nil, err
	}

	return &state{
		layers:    layers,
		data:      data,
		files:     files,
		logging:   logging,
		overrides: overrides,
		keymaps:   keymap.Defaults().WithOverrides(overrides),
	}, nil
}

func (c *Config) loadFile(ctx context.Context, layers *layer.Manager, source layer.Source, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l, err := loader.ForPath(c.fsys, path)
	if err != nil {
		return err
	}
	data, err := l.Load()
	if err != nil {
		return err
	}
	layers.Set(layer.New(source, path, data))
	return nil
}

// globalFile returns the global config file to load, or "" when there is
// none.
func (c *Config) globalFile() (string, error) {
	if c.globalPath != "" {
		if _, err := c.fsys.Stat(c.globalPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", ErrFileNotFound, c.globalPath)
			}
			return "", fmt.Errorf("checking config file %s: %w", c.globalPath, err)
		}
		return c.globalPath, nil
	}

	dir := GlobalConfigDir()
	if dir == "" {
		return "", nil
	}
	return c.find(dir), nil
}

// find returns the first config file present in dir.
func (c *Config) find(dir string) string {
	for _, name := range configNames {
		path := filepath.Join(dir, name)
		if _, err := c.fsys.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// GlobalConfigDir returns $XDG_CONFIG_HOME/keychord, falling back to
// ~/.config/keychord. Returns "" if neither can be determined.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// WorkspaceConfigDir returns the config directory inside a workspace.
func WorkspaceConfigDir(workspace string) string {
	return filepath.Join(workspace, "."+AppName)
}

func (c *Config) current() *state {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Keymaps returns the default tables with the configured overrides merged
// in.
func (c *Config) Keymaps() keymap.Keymaps {
	return c.current().keymaps
}

// KeyOverrides returns the parsed [keys] tables by mode.
func (c *Config) KeyOverrides() map[keymap.Mode]keymap.Trie {
	return c.current().overrides
}

// Logging returns the [logging] section.
func (c *Config) Logging() LoggingConfig {
	return c.current().logging
}

// Files returns the configuration files read by the last load, lowest
// precedence first.
func (c *Config) Files() []string {
	files := c.current().files
	out := make([]string, len(files))
	copy(out, files)
	return out
}

// WatchPaths returns the directories whose changes should trigger a
// reload: the directory of every loaded file plus the global and workspace
// config directories, which may gain a file later.
func (c *Config) WatchPaths() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(dir string) {
		if dir == "" || seen[dir] {
			return
		}
		seen[dir] = true
		out = append(out, dir)
	}

	for _, f := range c.Files() {
		add(filepath.Dir(f))
	}
	if c.globalPath == "" {
		add(GlobalConfigDir())
	}
	if c.workspaceDir != "" {
		add(WorkspaceConfigDir(c.workspaceDir))
	}
	return out
}

// IsConfigFile reports whether path names a file the loader would read.
func IsConfigFile(path string) bool {
	base := filepath.Base(path)
	for _, name := range configNames {
		if base == name {
			return true
		}
	}
	return false
}

// Affects reports whether a change to path can alter the configuration.
func (c *Config) Affects(path string) bool {
	if c.globalPath != "" && filepath.Clean(path) == filepath.Clean(c.globalPath) {
		return true
	}
	return IsConfigFile(path)
}

// Get returns the effective value at a dotted path.
func (c *Config) Get(path string) (any, bool) {
	return layer.GetByPath(c.current().data, path)
}

// Source names the layer that provides path, or "" when unset.
func (c *Config) Source(path string) string {
	return c.current().layers.WhichLayer(path)
}

// OnChange calls fn after a reload changes section. An empty section
// subscribes to every change.
func (c *Config) OnChange(section string, fn notify.Observer) *notify.Subscription {
	if section == "" {
		return c.notifier.Subscribe(fn)
	}
	return c.notifier.SubscribeSection(section, fn)
}

// Registry returns the command registry used to parse [keys].
func (c *Config) Registry() *keymap.Registry {
	return c.registry
}
