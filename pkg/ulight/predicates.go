package ulight

import "unicode"

// Predicates bundles the character classification functions the matchers
// rely on. It is the seam a caller uses to plug in its own Unicode or
// locale-specific tables; DefaultPredicates provides a Unicode-aware
// default implementation.
type Predicates struct {
	// IsDirectiveNameStart reports whether cp may begin a directive name.
	IsDirectiveNameStart func(cp rune) bool
	// IsDirectiveName reports whether cp may continue a directive name.
	IsDirectiveName func(cp rune) bool
	// IsArgumentName reports whether cp is an argument-name character.
	IsArgumentName func(cp rune) bool
	// IsEscapable reports whether b may follow '\' to form an escape
	// sequence. Must include '\\', '{', '}', '[', ']', ','.
	IsEscapable func(b byte) bool
	// IsHTMLWhitespace reports whether b is structural whitespace within
	// an argument list.
	IsHTMLWhitespace func(b byte) bool
}

// DefaultPredicates returns the built-in ASCII/Unicode-aware predicate set.
// Directive names and argument names use the same rune classification:
// a Unicode letter or underscore to start, plus digits and hyphens to
// continue.
func DefaultPredicates() Predicates {
	return Predicates{
		IsDirectiveNameStart: isNameStart,
		IsDirectiveName:      isNameContinue,
		IsArgumentName:       isNameContinue,
		IsEscapable:          isEscapable,
		IsHTMLWhitespace:     isHTMLWhitespace,
	}
}

func isNameStart(cp rune) bool {
	return cp == '_' || unicode.IsLetter(cp)
}

func isNameContinue(cp rune) bool {
	return cp == '_' || cp == '-' || unicode.IsLetter(cp) || unicode.IsDigit(cp)
}

// isEscapable covers the structural characters an escape sequence must
// support plus the common punctuation an author would want to escape
// literally.
func isEscapable(b byte) bool {
	switch b {
	case '\\', '{', '}', '[', ']', ',', '=', '\'', '"', '`', '#', '*', '/', '<', '>':
		return true
	default:
		return false
	}
}

func isHTMLWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}

// isASCIIDigit reports whether b is an ASCII decimal digit. Directive names
// and argument names must not begin with one.
func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
