package key

import (
	"errors"
	"testing"
)

func TestParseSequence(t *testing.T) {
	tests := []struct {
		spec string
		want Sequence
	}{
		{"", Sequence{}},
		{"g g", Sequence{NewRuneEvent('g', ModNone), NewRuneEvent('g', ModNone)}},
		{"space f", Sequence{NewRuneEvent(' ', ModNone), NewRuneEvent('f', ModNone)}},
		{"C-w v", Sequence{NewRuneEvent('w', ModCtrl), NewRuneEvent('v', ModNone)}},
		{"gg", Sequence{NewRuneEvent('g', ModNone), NewRuneEvent('g', ModNone)}},
		{"<C-x><C-s>", Sequence{NewRuneEvent('x', ModCtrl), NewRuneEvent('s', ModCtrl)}},
		{"m<Esc>", Sequence{NewRuneEvent('m', ModNone), NewSpecialEvent(KeyEscape, ModNone)}},
		{"<", Sequence{NewRuneEvent('<', ModNone)}},
		{"C-b", Sequence{NewRuneEvent('b', ModCtrl)}},
		{"A-.", Sequence{NewRuneEvent('.', ModAlt)}},
		{"esc", Sequence{NewSpecialEvent(KeyEscape, ModNone)}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseSequence(tt.spec)
			if err != nil {
				t.Fatalf("ParseSequence(%q) error: %v", tt.spec, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("ParseSequence(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseSequenceError(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{"g C-nope", nil},
		{"<C-", ErrUnmatchedBracket},
		{"<C-x", ErrUnmatchedBracket},
		{"ab<", ErrUnmatchedBracket},
		{"<C-x><C-s", ErrUnmatchedBracket},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			seq, err := ParseSequence(tt.spec)
			if err == nil {
				t.Fatalf("ParseSequence(%q) = %v, want error", tt.spec, seq)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseSequence(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
			}
		})
	}
}

func TestSequenceString(t *testing.T) {
	seq := MustParseSequence("g g C-w space")
	if got, want := seq.String(), "g g C-w space"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := seq.VimString(), "gg<C-w><Space>"; got != want {
		t.Errorf("VimString() = %q, want %q", got, want)
	}
	if got := (Sequence{}).String(); got != "" {
		t.Errorf("empty String() = %q, want \"\"", got)
	}
}

func TestSequenceHasPrefix(t *testing.T) {
	seq := MustParseSequence("m r ( [")
	tests := []struct {
		prefix string
		want   bool
	}{
		{"", true},
		{"m", true},
		{"m r", true},
		{"m r ( [", true},
		{"m s", false},
		{"m r ( [ x", false},
	}

	for _, tt := range tests {
		if got := seq.HasPrefix(MustParseSequence(tt.prefix)); got != tt.want {
			t.Errorf("HasPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestSequenceCloneAppend(t *testing.T) {
	seq := MustParseSequence("g")
	clone := seq.Clone()
	clone[0] = NewRuneEvent('x', ModNone)
	if seq[0].Rune != 'g' {
		t.Error("Clone should not share storage")
	}

	longer := seq.Append(NewRuneEvent('e', ModNone))
	if longer.Len() != 2 || seq.Len() != 1 {
		t.Errorf("Append lengths = %d, %d, want 2, 1", longer.Len(), seq.Len())
	}
	if (Sequence)(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
