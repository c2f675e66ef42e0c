// Package layer stacks configuration sources by precedence.
//
// Each source (global file, workspace file, environment, command line)
// contributes one layer. Merging applies layers from lowest to highest
// priority, so a workspace file overrides the global file and a
// command-line flag overrides both.
package layer

import (
	"time"

	"github.com/dshills/keychord/internal/config/loader"
)

// Layer represents a single configuration layer.
type Layer struct {
	Source Source

	// Path is the file path (if loaded from file).
	Path string

	// Data holds the configuration values as a nested map.
	Data map[string]any

	// LoadedAt is when the layer was read.
	LoadedAt time.Time
}

// New creates a layer holding data.
func New(source Source, path string, data map[string]any) *Layer {
	if data == nil {
		data = make(map[string]any)
	}
	return &Layer{
		Source:   source,
		Path:     path,
		Data:     data,
		LoadedAt: time.Now(),
	}
}

// Clone creates a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	return &Layer{
		Source:   l.Source,
		Path:     l.Path,
		Data:     loader.Clone(l.Data),
		LoadedAt: l.LoadedAt,
	}
}

// Name describes the layer for messages: its file path when it has one,
// otherwise the source name.
func (l *Layer) Name() string {
	if l.Path != "" {
		return l.Path
	}
	return l.Source.String()
}

// Source indicates where a configuration layer came from. Sources are
// ordered by precedence, lowest first.
type Source uint8

const (
	// SourceGlobal is the user's global config file.
	SourceGlobal Source = iota
	// SourceWorkspace is <workspace>/.keychord/config.*.
	SourceWorkspace
	// SourceEnv is KEYCHORD_* environment variables.
	SourceEnv
	// SourceArgs is command-line flag overrides.
	SourceArgs
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceGlobal:
		return "global"
	case SourceWorkspace:
		return "workspace"
	case SourceEnv:
		return "environment"
	case SourceArgs:
		return "arguments"
	default:
		return "unknown"
	}
}
