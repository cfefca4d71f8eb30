package ulight

import "testing"

func TestLengthIfCodePoints(t *testing.T) {
	isLetter := func(cp rune) bool { return cp >= 'a' && cp <= 'z' }

	tests := []struct {
		name string
		str  string
		want int
	}{
		{"all match", "abc", 3},
		{"partial match", "abc123", 3},
		{"no match", "123", 0},
		{"empty", "", 0},
		{"multibyte stops scan", "abé", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lengthIfCodePoints([]byte(tt.str), isLetter); got != tt.want {
				t.Errorf("lengthIfCodePoints(%q) = %d, want %d", tt.str, got, tt.want)
			}
		})
	}
}

func TestLengthIfCodeUnits(t *testing.T) {
	isSpace := func(b byte) bool { return b == ' ' }

	tests := []struct {
		name string
		str  string
		want int
	}{
		{"all spaces", "   ", 3},
		{"leading spaces", "  x", 2},
		{"no spaces", "x", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lengthIfCodeUnits([]byte(tt.str), isSpace); got != tt.want {
				t.Errorf("lengthIfCodeUnits(%q) = %d, want %d", tt.str, got, tt.want)
			}
		})
	}
}

func TestDecodeRuneSafe(t *testing.T) {
	cp, size := decodeRuneSafe([]byte("a"))
	if cp != 'a' || size != 1 {
		t.Errorf("decodeRuneSafe(\"a\") = (%q, %d), want ('a', 1)", cp, size)
	}

	cp, size = decodeRuneSafe([]byte("é"))
	if cp != 'é' || size != 2 {
		t.Errorf("decodeRuneSafe(\"é\") = (%q, %d), want ('é', 2)", cp, size)
	}

	cp, size = decodeRuneSafe(nil)
	if cp != 0 || size != 0 {
		t.Errorf("decodeRuneSafe(nil) = (%q, %d), want (0, 0)", cp, size)
	}

	cp, size = decodeRuneSafe([]byte{0xff})
	if cp != 0 || size != 0 {
		t.Errorf("decodeRuneSafe(invalid) = (%q, %d), want (0, 0)", cp, size)
	}
}
