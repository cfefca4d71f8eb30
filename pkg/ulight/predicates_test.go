package ulight

import "testing"

func TestDefaultPredicates_DirectiveNameStart(t *testing.T) {
	p := DefaultPredicates()

	tests := []struct {
		cp   rune
		want bool
	}{
		{'a', true},
		{'Z', true},
		{'_', true},
		{'0', false},
		{'-', false},
		{'é', true},
	}
	for _, tt := range tests {
		if got := p.IsDirectiveNameStart(tt.cp); got != tt.want {
			t.Errorf("IsDirectiveNameStart(%q) = %v, want %v", tt.cp, got, tt.want)
		}
	}
}

func TestDefaultPredicates_DirectiveNameContinue(t *testing.T) {
	p := DefaultPredicates()

	tests := []struct {
		cp   rune
		want bool
	}{
		{'a', true},
		{'0', true},
		{'-', true},
		{'_', true},
		{' ', false},
		{'[', false},
	}
	for _, tt := range tests {
		if got := p.IsDirectiveName(tt.cp); got != tt.want {
			t.Errorf("IsDirectiveName(%q) = %v, want %v", tt.cp, got, tt.want)
		}
	}
}

func TestDefaultPredicates_Escapable(t *testing.T) {
	p := DefaultPredicates()

	for _, b := range []byte{'\\', '{', '}', '[', ']', ',', '='} {
		if !p.IsEscapable(b) {
			t.Errorf("IsEscapable(%q) = false, want true", b)
		}
	}
	if p.IsEscapable('9') {
		t.Errorf("IsEscapable('9') = true, want false")
	}
}

func TestDefaultPredicates_HTMLWhitespace(t *testing.T) {
	p := DefaultPredicates()

	for _, b := range []byte{' ', '\t', '\n', '\r', '\f'} {
		if !p.IsHTMLWhitespace(b) {
			t.Errorf("IsHTMLWhitespace(%q) = false, want true", b)
		}
	}
	if p.IsHTMLWhitespace('x') {
		t.Errorf("IsHTMLWhitespace('x') = true, want false")
	}
}

func TestIsASCIIDigit(t *testing.T) {
	for b := byte('0'); b <= '9'; b++ {
		if !isASCIIDigit(b) {
			t.Errorf("isASCIIDigit(%q) = false, want true", b)
		}
	}
	if isASCIIDigit('a') {
		t.Errorf("isASCIIDigit('a') = true, want false")
	}
}
