package keymap

import (
	"testing"

	"github.com/dshills/keychord/internal/input/command"
)

func TestDefaultsValidate(t *testing.T) {
	km := Defaults()
	for _, m := range Modes() {
		if _, ok := km.Get(m); !ok {
			t.Errorf("Defaults() missing %s table", m)
		}
	}
	if err := km.Validate(); err != nil {
		t.Errorf("Defaults().Validate() = %v", err)
	}
}

func TestDefaultNormal(t *testing.T) {
	normal := DefaultNormal()

	tests := []struct {
		keys string
		want string
	}{
		{"h", command.NameMoveLeft},
		{"g g", command.NameGotoFirstLine},
		{"g l", command.NameMoveLineEnd},
		{"esc", command.NameCollapseSelection},
		{"y", command.NameYank},
	}

	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			res := Search(normal, keys(tt.keys))
			if res.Status != Found {
				t.Fatalf("Search(%q) status = %v, want found", tt.keys, res.Status)
			}
			if got := res.Slot.Command.Name; got != tt.want {
				t.Errorf("Search(%q) = %q, want %q", tt.keys, got, tt.want)
			}
		})
	}
}

func TestDefaultNormalPrefixes(t *testing.T) {
	normal := DefaultNormal()

	for prefix, name := range map[string]string{
		"g": "goto", "]": "next", "[": "prev", "space": "space", "m": "match", "z": "view", "Z": "view",
	} {
		res := Search(normal, keys(prefix))
		if res.Status != Partial {
			t.Errorf("Search(%q) status = %v, want partial", prefix, res.Status)
			continue
		}
		if res.Node.Name() != name {
			t.Errorf("Search(%q) name = %q, want %q", prefix, res.Node.Name(), name)
		}
	}

	if res := Search(normal, keys("Z")); !res.Node.IsSticky() {
		t.Error("Z should be sticky")
	}
	if res := Search(normal, keys("z")); res.Node.IsSticky() {
		t.Error("z should not be sticky")
	}
}

func TestDefaultNormalAwaits(t *testing.T) {
	normal := DefaultNormal()

	tests := []struct {
		keys string
		want AwaitKind
	}{
		{"f", AwaitFindForward},
		{"t", AwaitTillForward},
		{"r", AwaitReplaceChar},
		{"m r", AwaitSurroundReplaceFrom},
		{"m i", AwaitSelectInsidePair},
	}

	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			res := Search(normal, keys(tt.keys))
			if res.Status != Found || !res.Slot.IsAwait() {
				t.Fatalf("Search(%q) = %v, want an await slot", tt.keys, res.Status)
			}
			if res.Slot.Await != tt.want {
				t.Errorf("Search(%q) await = %v, want %v", tt.keys, res.Slot.Await, tt.want)
			}
		})
	}
}

func TestDefaultClipboardSequence(t *testing.T) {
	res := Search(DefaultNormal(), keys("space y"))
	if res.Status != Found {
		t.Fatalf("space y status = %v, want found", res.Status)
	}
	got := res.Slot.Emit()
	if len(got) != 2 {
		t.Fatalf("space y emits %v, want 2 commands", got)
	}
	if got[0] != command.SetSelectedRegister('+') {
		t.Errorf("space y [0] = %v, want register '+'", got[0])
	}
	if got[1].Name != command.NameYank {
		t.Errorf("space y [1] = %v, want yank", got[1])
	}
}

func TestDefaultSelect(t *testing.T) {
	sel := DefaultSelect()

	res := Search(sel, keys("g g"))
	if res.Status != Found || res.Slot.Command.Name != command.NameExtendToFirstLine {
		t.Errorf("select g g = %v, want %s", res.Slot, command.NameExtendToFirstLine)
	}

	res = Search(sel, keys("y"))
	if res.Status != Found {
		t.Fatalf("select y status = %v, want found", res.Status)
	}
	got := res.Slot.Emit()
	if len(got) != 2 || got[0].Name != command.NameYank || got[1].Name != command.NameExitSelectMode {
		t.Errorf("select y = %v, want yank then exit select mode", got)
	}

	res = Search(sel, keys("f"))
	if res.Status != Found || res.Slot.Await != AwaitFindForward {
		t.Errorf("select f = %v, want find_forward await", res.Slot)
	}
}

func TestDefaultInsert(t *testing.T) {
	ins := DefaultInsert()

	if res := Search(ins, keys("C-r")); res.Status != Found || res.Slot.Await != AwaitInsertRegister {
		t.Errorf("insert C-r = %v, want insert_register await", res.Slot)
	}
	for _, spec := range []string{"S-tab", "C-M-space", "esc"} {
		if res := Search(ins, keys(spec)); res.Status != Found {
			t.Errorf("insert %s status = %v, want found", spec, res.Status)
		}
	}
	if res := Search(ins, keys("esc")); res.Slot.Command.Name != command.NameExitInsertMode {
		t.Errorf("insert esc = %v, want exit insert mode", res.Slot)
	}
	if res := Search(ins, keys("x")); res.Status != NotFound {
		t.Errorf("insert x status = %v, want not found", res.Status)
	}
}

func TestDefaultsAreIndependent(t *testing.T) {
	a := DefaultNormal()
	a.Insert(ev("h"), cmdLeaf("changed"))

	res := Search(DefaultNormal(), keys("h"))
	if res.Slot.Command.Name != command.NameMoveLeft {
		t.Errorf("fresh defaults h = %q, want %q", res.Slot.Command.Name, command.NameMoveLeft)
	}
}
