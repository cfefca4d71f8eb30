// Package dump renders a token stream produced by pkg/ulight back over its
// source, coloring each span by category, for interactive debugging of the
// tokenizer's output.
package dump

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/Eisenwave/ulight/pkg/ulight"
)

// Styles maps each Category to the lipgloss style used to render it.
type Styles struct {
	SymSquare    lipgloss.Style
	SymBrace     lipgloss.Style
	SymPunc      lipgloss.Style
	MarkupTag    lipgloss.Style
	MarkupAttr   lipgloss.Style
	Escape       lipgloss.Style
	Comment      lipgloss.Style
	CommentDelim lipgloss.Style

	// Gap styles the untokenized bytes ValidateNonDecreasing allows between
	// spans.
	Gap lipgloss.Style
}

// NewStyles returns a Styles set with ANSI colors, or an unstyled set if
// colorEnabled is false.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newPlainStyles()
	}
	return &Styles{
		SymSquare:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		SymBrace:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		SymPunc:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		MarkupTag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		MarkupAttr:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Escape:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Comment:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),
		CommentDelim: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Gap:          lipgloss.NewStyle(),
	}
}

func newPlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		SymSquare:    plain,
		SymBrace:     plain,
		SymPunc:      plain,
		MarkupTag:    plain,
		MarkupAttr:   plain,
		Escape:       plain,
		Comment:      plain,
		CommentDelim: plain,
		Gap:          plain,
	}
}

func (s *Styles) forCategory(c ulight.Category) lipgloss.Style {
	switch c {
	case ulight.CategorySymSquare:
		return s.SymSquare
	case ulight.CategorySymBrace:
		return s.SymBrace
	case ulight.CategorySymPunc:
		return s.SymPunc
	case ulight.CategoryMarkupTag:
		return s.MarkupTag
	case ulight.CategoryMarkupAttr:
		return s.MarkupAttr
	case ulight.CategoryEscape:
		return s.Escape
	case ulight.CategoryComment:
		return s.Comment
	case ulight.CategoryCommentDelim:
		return s.CommentDelim
	default:
		return lipgloss.NewStyle()
	}
}

// IsColorEnabled decides whether output should be colored, honoring the
// NO_COLOR convention (https://no-color.org/) and falling back to a TTY
// check on w.
func IsColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := w.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// Write renders tokens over source to w, coloring each span with styles and
// annotating it with its category tag. Bytes not covered by any token
// (permitted gaps between spans) pass through using styles.Gap.
func Write(w io.Writer, source []byte, tokens []ulight.Token, styles *Styles) error {
	tagStyle := lipgloss.NewStyle().Faint(true)
	cursor := 0
	for _, tok := range tokens {
		if tok.Begin > cursor {
			if _, err := io.WriteString(w, styles.Gap.Render(string(source[cursor:tok.Begin]))); err != nil {
				return err
			}
		}
		text := string(tok.Text(source))
		rendered := styles.forCategory(tok.Category).Render(text)
		tag := tagStyle.Render(fmt.Sprintf("[%s]", tok.Category))
		if _, err := io.WriteString(w, rendered+tag); err != nil {
			return err
		}
		cursor = tok.End()
	}
	if cursor < len(source) {
		if _, err := io.WriteString(w, styles.Gap.Render(string(source[cursor:]))); err != nil {
			return err
		}
	}
	return nil
}
