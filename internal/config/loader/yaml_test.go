package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.yaml", `
logging:
  level: info
keys:
  normal:
    C-s: ":write"
    0: goto_line_start
    ret: [open_below, normal_mode]
    g:
      a: code_action
`)

	cfg, err := NewYAMLLoaderWithFS(memfs, "/config.yaml").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	normal := cfg["keys"].(map[string]any)["normal"].(map[string]any)
	if normal["C-s"] != ":write" {
		t.Errorf("C-s = %v, want :write", normal["C-s"])
	}
	if normal["0"] != "goto_line_start" {
		t.Errorf("0 = %#v, want goto_line_start (numeric key as string)", normal["0"])
	}
	if list, ok := normal["ret"].([]any); !ok || len(list) != 2 || list[1] != "normal_mode" {
		t.Errorf("ret = %#v", normal["ret"])
	}
	if g, ok := normal["g"].(map[string]any); !ok || g["a"] != "code_action" {
		t.Errorf("g = %#v", normal["g"])
	}
}

func TestYAMLLoader_Errors(t *testing.T) {
	l := NewYAMLLoader("")

	_, err := l.LoadFromReader(strings.NewReader("keys: [unclosed\n"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("syntax error = %v, want *ParseError", err)
	}

	_, err = l.LoadFromReader(strings.NewReader("- a\n- b\n"))
	if !errors.As(err, &perr) {
		t.Errorf("top-level list error = %v, want *ParseError", err)
	}

	cfg, err := l.LoadFromReader(strings.NewReader(""))
	if err != nil || len(cfg) != 0 {
		t.Errorf("empty document = %v, %v, want empty map", cfg, err)
	}
}
