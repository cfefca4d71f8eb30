package ulight

import "testing"

func TestMatcher_MatchDirectiveName(t *testing.T) {
	m := newMatcher(DefaultPredicates())

	tests := []struct {
		name string
		str  string
		want int
	}{
		{"simple name", "b[x]", 1},
		{"multi-char name", "comment{", 7},
		{"hyphenated name", "my-thing ", 8},
		{"empty", "", 0},
		{"starts with digit", "9abc", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.matchDirectiveName([]byte(tt.str)); got != tt.want {
				t.Errorf("matchDirectiveName(%q) = %d, want %d", tt.str, got, tt.want)
			}
		})
	}
}

func TestMatcher_MatchWhitespace(t *testing.T) {
	m := newMatcher(DefaultPredicates())

	if got := m.matchWhitespace([]byte("   x")); got != 3 {
		t.Errorf("matchWhitespace = %d, want 3", got)
	}
	if got := m.matchWhitespace([]byte("x")); got != 0 {
		t.Errorf("matchWhitespace = %d, want 0", got)
	}
}

func TestMatcher_StartsWithEscapeOrDirective(t *testing.T) {
	m := newMatcher(DefaultPredicates())

	tests := []struct {
		name string
		str  string
		want bool
	}{
		{"escape", `\{`, true},
		{"directive", `\name`, true},
		{"non-escapable non-name", `\9`, false},
		{"too short", `\`, false},
		{"no backslash", `abc`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.startsWithEscapeOrDirective([]byte(tt.str)); got != tt.want {
				t.Errorf("startsWithEscapeOrDirective(%q) = %v, want %v", tt.str, got, tt.want)
			}
		})
	}
}

func TestMatcher_MatchNamedArgumentPrefix(t *testing.T) {
	m := newMatcher(DefaultPredicates())

	tests := []struct {
		name    string
		str     string
		present bool
		length  int
	}{
		{"simple named", "x=1", true, 2},
		{"whitespace around", " x = 1", true, 4},
		{"no equals", "x1", false, 0},
		{"positional value", "1, 2", false, 0},
		{"empty", "", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.matchNamedArgumentPrefix([]byte(tt.str))
			if got.present() != tt.present {
				t.Errorf("present() = %v, want %v", got.present(), tt.present)
			}
			if tt.present && got.length != tt.length {
				t.Errorf("length = %d, want %d", got.length, tt.length)
			}
		})
	}
}

func TestIsTerminatedBy(t *testing.T) {
	tests := []struct {
		context contentContext
		c       byte
		want    bool
	}{
		{contextDocument, '}', false},
		{contextDocument, ']', false},
		{contextArgumentValue, ',', true},
		{contextArgumentValue, ']', true},
		{contextArgumentValue, '}', true},
		{contextArgumentValue, 'x', false},
		{contextBlock, '}', true},
		{contextBlock, ']', false},
	}
	for _, tt := range tests {
		if got := isTerminatedBy(tt.context, tt.c); got != tt.want {
			t.Errorf("isTerminatedBy(%v, %q) = %v, want %v", tt.context, tt.c, got, tt.want)
		}
	}
}
