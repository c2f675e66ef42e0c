package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		// Single characters
		{"a", NewRuneEvent('a', ModNone)},
		{"G", NewRuneEvent('G', ModNone)},
		{"1", NewRuneEvent('1', ModNone)},
		{"-", NewRuneEvent('-', ModNone)},
		{"<", NewRuneEvent('<', ModNone)},
		{"+", NewRuneEvent('+', ModNone)},
		{" ", NewRuneEvent(' ', ModNone)},

		// Named keys
		{"ret", NewSpecialEvent(KeyEnter, ModNone)},
		{"esc", NewSpecialEvent(KeyEscape, ModNone)},
		{"tab", NewSpecialEvent(KeyTab, ModNone)},
		{"backspace", NewSpecialEvent(KeyBackspace, ModNone)},
		{"del", NewSpecialEvent(KeyDelete, ModNone)},
		{"pageup", NewSpecialEvent(KeyPageUp, ModNone)},
		{"F5", NewSpecialEvent(KeyF5, ModNone)},

		// Named characters
		{"space", NewRuneEvent(' ', ModNone)},
		{"minus", NewRuneEvent('-', ModNone)},
		{"lt", NewRuneEvent('<', ModNone)},
		{"gt", NewRuneEvent('>', ModNone)},

		// Compact modifiers
		{"C-b", NewRuneEvent('b', ModCtrl)},
		{"A-o", NewRuneEvent('o', ModAlt)},
		{"S-tab", NewSpecialEvent(KeyTab, ModShift)},
		{"A-ret", NewSpecialEvent(KeyEnter, ModAlt)},
		{"A-backspace", NewSpecialEvent(KeyBackspace, ModAlt)},
		{"C-M-space", NewRuneEvent(' ', ModCtrl|ModSuper)},
		{"C--", NewRuneEvent('-', ModCtrl)},
		{"C-minus", NewRuneEvent('-', ModCtrl)},
		{"C-S-a", NewRuneEvent('A', ModCtrl)},
		{"S-g", NewRuneEvent('G', ModNone)},

		// Plus-separated
		{"Ctrl+s", NewRuneEvent('s', ModCtrl)},
		{"Alt+F4", NewSpecialEvent(KeyF4, ModAlt)},
		{"Ctrl+Shift+p", NewRuneEvent('P', ModCtrl)},

		// Vim-style
		{"<C-s>", NewRuneEvent('s', ModCtrl)},
		{"<CR>", NewSpecialEvent(KeyEnter, ModNone)},
		{"<Esc>", NewSpecialEvent(KeyEscape, ModNone)},
		{"<S-Tab>", NewSpecialEvent(KeyTab, ModShift)},
		{"<Space>", NewRuneEvent(' ', ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseUppercaseEqualsShifted(t *testing.T) {
	upper := MustParse("G")
	shifted := MustParse("S-g")
	if upper != shifted {
		t.Errorf("Parse(\"G\") = %#v, Parse(\"S-g\") = %#v, want equal", upper, shifted)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"<C-s", ErrUnmatchedBracket},
		{"<>", ErrInvalidSpec},
		{"C-", ErrInvalidSpec},
		{"C-X-a", ErrInvalidSpec},
		{"C-nope", ErrInvalidSpec},
		{"Hyper+a", ErrInvalidSpec},
		{"foo", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := Parse(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid spec")
		}
	}()
	MustParse("C-nope")
}

func TestNormalizeSpec(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"<C-s>", "C-s"},
		{"Ctrl+Shift+p", "C-P"},
		{"S-g", "G"},
		{"enter", "ret"},
		{" ", "space"},
		{"C--", "C-minus"},
	}

	for _, tt := range tests {
		got, err := NormalizeSpec(tt.spec)
		if err != nil {
			t.Errorf("NormalizeSpec(%q) error: %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeSpec(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}
