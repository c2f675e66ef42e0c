package keymap

import (
	"errors"
	"sort"
	"testing"

	"github.com/dshills/keychord/internal/input/command"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	if r.Len() == 0 {
		t.Fatal("default registry is empty")
	}
	if r != DefaultRegistry() {
		t.Error("DefaultRegistry() should return the shared instance")
	}

	names := r.Names()
	if !sort.StringsAreSorted(names) {
		t.Error("Names() is not sorted")
	}
	if len(names) != r.Len() {
		t.Errorf("len(Names()) = %d, Len() = %d", len(names), r.Len())
	}
}

func TestRegistryResolve(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		input   string
		want    Slot
		wantErr error
	}{
		{"move_char_left", Cmd(command.New(command.NameMoveLeft)), nil},
		{"yank", Cmd(command.New(command.NameYank)), nil},
		{"find_next_char", AwaitChar(AwaitFindForward), nil},
		{":write", Cmd(command.Typable("write")), nil},
		{":w --force", Cmd(command.Typable("w --force")), nil},
		{":", Slot{}, ErrInvalidValue},
		{"no_such_command", Slot{}, ErrUnknownCommand},
		{"", Slot{}, ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := r.Resolve(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRegistrySuggest(t *testing.T) {
	r := DefaultRegistry()

	got := r.Suggest("goto_defintion", 1)
	if len(got) != 1 || got[0] != "goto_definition" {
		t.Errorf("Suggest() = %v, want [goto_definition]", got)
	}
	if got := r.Suggest("", 3); got != nil {
		t.Errorf("Suggest(\"\") = %v, want nil", got)
	}

	_, err := r.Resolve("goto_defintion")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("Resolve() error = %v, want ErrUnknownCommand", err)
	}
	want := `unknown command "goto_defintion" (did you mean "goto_definition"?)`
	if err.Error() != want {
		t.Errorf("Resolve() error = %q, want %q", err.Error(), want)
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("save", Cmd(command.Typable("write"))); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register("save", Cmd(command.New("other"))); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate Register() error = %v, want ErrDuplicateName", err)
	}
	if err := r.Register("", Cmd(command.New("x"))); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("empty name error = %v, want ErrInvalidValue", err)
	}
	if err := r.Register(":bad", Cmd(command.New("x"))); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("typable name error = %v, want ErrInvalidValue", err)
	}
	if err := r.Register("empty", Seq()); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("empty sequence error = %v, want ErrEmptySequence", err)
	}
	if err := r.Register("bad_await", AwaitChar(AwaitSurroundReplaceTo)); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("dispatch-only await error = %v, want ErrInvalidValue", err)
	}

	slot, ok := r.Lookup("save")
	if !ok {
		t.Fatal("Lookup(save) not found")
	}
	if slot.Command.Text != "write" {
		t.Errorf("Lookup(save).Command.Text = %q, want write", slot.Command.Text)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}
