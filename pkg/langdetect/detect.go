// Package langdetect guesses the language of a staged code-block body so a
// caller-supplied NestedHighlighter has something to dispatch on when a
// directive's argument list didn't name a language explicitly. It wraps
// go-enry's shebang and classifier heuristics with a handful of fast
// fingerprint checks, since staged bodies tend to be too short for the
// statistical classifier alone to be reliable.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Names returned by Detect. These are go-enry's language names in lowercase
// (with go-enry's "Shell" reported as "bash"), so callers can compare
// against them directly.
const (
	Go         = "go"
	Python     = "python"
	JavaScript = "javascript"
	JSON       = "json"
	YAML       = "yaml"
	HTML       = "html"
	SQL        = "sql"
	Rust       = "rust"
	Dockerfile = "dockerfile"
	Bash       = "bash"
	Unknown    = "text"
)

var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect returns the best-guess language name for a code-block body, or
// Unknown when nothing matches with reasonable confidence. body is the
// concatenated plain-text bytes staged by the Code-Block Consumer,
// with all directive/argument/brace punctuation already stripped out.
func Detect(body []byte) string {
	if len(body) == 0 {
		return Unknown
	}

	if lang, ok := enry.GetLanguageByShebang(body); ok {
		return normalize(lang)
	}

	if lang := detectByFingerprint(body); lang != "" {
		return lang
	}

	if lang, ok := enry.GetLanguageByClassifier(body, classifierCandidates); ok && lang != "" {
		return normalize(lang)
	}

	return Unknown
}

func detectByFingerprint(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	text := string(body)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return Go
	case bytes.HasPrefix(trimmed, []byte("FROM ")):
		return Dockerfile
	case looksLikeJSON(trimmed):
		return JSON
	case looksLikeHTML(trimmed):
		return HTML
	case looksLikeSQL(text):
		return SQL
	case looksLikeRust(text):
		return Rust
	case looksLikePython(text):
		return Python
	case looksLikeJavaScript(text):
		return JavaScript
	case looksLikeYAML(body):
		return YAML
	}
	return ""
}

func looksLikeJSON(trimmed []byte) bool {
	opensObjectOrArray := bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))
	return opensObjectOrArray && bytes.Contains(trimmed, []byte(`"`))
}

func looksLikeHTML(trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	for _, marker := range [][]byte{[]byte("<!doctype html"), []byte("<html"), []byte("<head>"), []byte("<body>")} {
		if bytes.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func looksLikeSQL(text string) bool {
	head := strings.ToUpper(strings.TrimSpace(text))
	for _, keyword := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(head, keyword) {
			return true
		}
	}
	return false
}

func looksLikeRust(text string) bool {
	return strings.Contains(text, "fn main()") || strings.Contains(text, "println!") || strings.Contains(text, "let mut ")
}

func looksLikePython(text string) bool {
	if strings.Contains(text, "def ") && strings.Contains(text, "):") {
		return true
	}
	if strings.Contains(text, "__name__") && strings.Contains(text, "__main__") {
		return true
	}
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "from ")
}

func looksLikeJavaScript(text string) bool {
	return strings.Contains(text, "=>") || strings.Contains(text, "console.log") ||
		strings.Contains(text, "const ") || strings.Contains(text, "let ")
}

// looksLikeYAML requires at least two "key: value" or "- item" lines,
// since a lone colon shows up in prose too easily to be a signal on its
// own.
func looksLikeYAML(body []byte) bool {
	hits := 0
	for _, line := range bytes.Split(body, []byte("\n")) {
		line = bytes.TrimSpace(line)
		switch {
		case len(line) == 0 || bytes.HasPrefix(line, []byte("#")):
			continue
		case bytes.HasPrefix(line, []byte("- ")):
			hits++
		case bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") &&
			!bytes.HasPrefix(line, []byte(`"`)):
			hits++
		}
	}
	return hits >= 2
}

func normalize(lang string) string {
	if lang == "Shell" {
		return Bash
	}
	return strings.ToLower(lang)
}
