package ulight

import "unicode/utf8"

// lengthIfCodePoints returns the byte length of the longest prefix of str
// whose decoded code points all satisfy predicate. Malformed UTF-8 stops
// the scan at the invalid byte; callers are expected to pre-validate UTF-8.
func lengthIfCodePoints(str []byte, predicate func(rune) bool) int {
	length := 0
	for length < len(str) {
		cp, size := utf8.DecodeRune(str[length:])
		if cp == utf8.RuneError && size <= 1 {
			break
		}
		if !predicate(cp) {
			break
		}
		length += size
	}
	return length
}

// lengthIfCodeUnits returns the byte length of the longest prefix of str
// whose bytes all satisfy predicate.
func lengthIfCodeUnits(str []byte, predicate func(byte) bool) int {
	length := 0
	for length < len(str) && predicate(str[length]) {
		length++
	}
	return length
}

// decodeRuneSafe decodes the first code point of str, returning a zero
// size if str is empty or begins with invalid UTF-8.
func decodeRuneSafe(str []byte) (rune, int) {
	if len(str) == 0 {
		return 0, 0
	}
	cp, size := utf8.DecodeRune(str)
	if cp == utf8.RuneError && size <= 1 {
		return 0, 0
	}
	return cp, size
}
