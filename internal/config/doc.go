// Package config loads keychord's configuration.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Arguments  │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← KEYCHORD_*
//	├─────────────────────────────┤
//	│  2. Workspace               │  ← <workspace>/.keychord/config.toml
//	├─────────────────────────────┤
//	│  1. Global                  │  ← ~/.config/keychord/config.toml
//	└─────────────────────────────┘
//
// Files may be TOML, YAML or Lua; the extension picks the loader. Built-in
// key tables are not a layer: the merged [keys] section is parsed into
// override tables which are merged onto keymap.Defaults().
//
// # Sub-packages
//
//   - loader: file and environment loaders, deep merge
//   - layer: layer stacking and dotted-path access
//   - notify: change notification after reload
//   - watcher: fsnotify-based file watching for live reload
//
// # Usage
//
//	cfg := config.New(config.WithWorkspaceDir("."))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	d := input.NewDispatcher(cfg.Keymaps())
package config
