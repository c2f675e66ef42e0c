package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keychord/internal/input/keymap"
)

// LoggingConfig is the [logging] section.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error. Empty means info.
	Level string

	// File is the log file path. Empty logs to stderr.
	File string

	// Suppressed drops log lines containing any of these substrings.
	Suppressed []string
}

var logLevels = []string{"debug", "info", "warn", "error"}

func parseLogging(data map[string]any) (LoggingConfig, error) {
	var cfg LoggingConfig

	raw, ok := data["logging"]
	if !ok {
		return cfg, nil
	}
	section, ok := raw.(map[string]any)
	if !ok {
		return cfg, &TypeError{Path: "logging", Expected: "table", Value: raw}
	}

	if v, ok := section["level"]; ok {
		s, isString := v.(string)
		level := strings.ToLower(strings.TrimSpace(s))
		if !isString || !validLevel(level) {
			return cfg, &TypeError{Path: "logging.level", Expected: strings.Join(logLevels, "|"), Value: v}
		}
		cfg.Level = level
	}

	if v, ok := section["file"]; ok {
		s, isString := v.(string)
		if !isString {
			return cfg, &TypeError{Path: "logging.file", Expected: "string", Value: v}
		}
		cfg.File = s
	}

	if v, ok := section["suppressed"]; ok {
		list, isList := v.([]any)
		if !isList {
			return cfg, &TypeError{Path: "logging.suppressed", Expected: "list of strings", Value: v}
		}
		for i, item := range list {
			s, isString := item.(string)
			if !isString {
				return cfg, &TypeError{Path: fmt.Sprintf("logging.suppressed[%d]", i), Expected: "string", Value: item}
			}
			cfg.Suppressed = append(cfg.Suppressed, s)
		}
	}

	return cfg, nil
}

func validLevel(s string) bool {
	for _, l := range logLevels {
		if s == l {
			return true
		}
	}
	return false
}

// parseKeys turns the [keys] section into per-mode override tables.
func parseKeys(reg *keymap.Registry, data map[string]any) (map[keymap.Mode]keymap.Trie, error) {
	raw, ok := data["keys"]
	if !ok {
		return nil, nil
	}
	section, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeys, &TypeError{Path: "keys", Expected: "table of modes", Value: raw})
	}

	overrides, err := reg.ParseModeTables(section)
	if err != nil {
		var pe *keymap.ParseError
		if errors.As(err, &pe) {
			err = &keymap.ParseError{Path: append([]string{"keys"}, pe.Path...), Err: pe.Err}
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeys, err)
	}
	return overrides, nil
}
