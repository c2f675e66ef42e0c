package key

import (
	"fmt"
	"strings"
)

// Sequence represents a series of key events typed in order.
// Examples: "g g" (go to top), "m r ( [" (replace surround), "space f"
type Sequence []Event

// Len returns the number of events in the sequence.
func (s Sequence) Len() int {
	return len(s)
}

// IsEmpty returns true if the sequence has no events.
func (s Sequence) IsEmpty() bool {
	return len(s) == 0
}

// String returns the space-separated compact form, which ParseSequence accepts.
// Examples: "g g", "space f", "C-w v"
func (s Sequence) String() string {
	if len(s) == 0 {
		return ""
	}

	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// VimString returns a Vim-style representation.
// Examples: "gg", "<Space>f", "<C-w>v"
func (s Sequence) VimString() string {
	var sb strings.Builder
	for _, e := range s {
		sb.WriteString(e.VimString())
	}
	return sb.String()
}

// Equals returns true if two sequences are identical.
func (s Sequence) Equals(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i, e := range s {
		if e != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix returns true if this sequence starts with the given prefix.
func (s Sequence) HasPrefix(prefix Sequence) bool {
	if len(prefix) > len(s) {
		return false
	}
	return s[:len(prefix)].Equals(prefix)
}

// Clone returns a copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Append returns a new sequence with the events of other appended.
func (s Sequence) Append(other ...Event) Sequence {
	out := make(Sequence, len(s), len(s)+len(other))
	copy(out, s)
	return append(out, other...)
}

// ParseSequence parses a key sequence string into a Sequence.
// The string can contain space-separated keys, a single key, or a continuous
// Vim-style sequence. A string without spaces that parses as one key is one
// key, so "gt" is '>' and "g t" is two keys.
// Examples: "g g", "space f", "C-w v", "C-b", "<C-x><C-s>", "gg"
func ParseSequence(s string) (Sequence, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Sequence{}, nil
	}

	if strings.ContainsAny(s, " \t") {
		parts := strings.Fields(s)
		seq := make(Sequence, 0, len(parts))
		for _, part := range parts {
			event, err := Parse(part)
			if err != nil {
				return nil, err
			}
			seq = append(seq, event)
		}
		return seq, nil
	}

	// A lone token such as "C-b" or "esc" is one key.
	if event, err := Parse(s); err == nil {
		return Sequence{event}, nil
	}

	// Continuous form: runes, with <...> groups for anything else.
	var seq Sequence
	runes := []rune(s)
	for i := 0; i < len(runes); {
		if runes[i] == '<' {
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == '>' {
					end = j
					break
				}
			}
			if end == -1 {
				return nil, fmt.Errorf("%w: %q", ErrUnmatchedBracket, s)
			}
			if end > i+1 {
				event, err := Parse(string(runes[i : end+1]))
				if err != nil {
					return nil, err
				}
				seq = append(seq, event)
				i = end + 1
				continue
			}
		}
		seq = append(seq, NewRuneEvent(runes[i], ModNone))
		i++
	}
	return seq, nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(s string) Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}
