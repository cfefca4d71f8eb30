// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	FieldError     = "error"
	FieldOffset    = "offset"
	FieldDirective = "directive"
	FieldCategory  = "category"
	FieldLength    = "length"
	FieldLanguage  = "language"
)
