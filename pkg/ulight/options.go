package ulight

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CommentDirectiveName and CommentDirectiveNameShort are the two directive
// spellings recognized as comments by construction.
const (
	CommentDirectiveName      = "\\comment"
	CommentDirectiveNameShort = "\\-comment"
)

// Options is passed through to any nested highlighter without the core
// reading it for its own control flow, except for the two directive-name
// sets, which the dispatch consumer needs to decide routing.
type Options struct {
	// CommentDirectives lists the exact directive names (including the
	// leading backslash) routed to the Comment Consumer. Defaults to
	// \comment and \-comment.
	CommentDirectives []string `yaml:"comment_directives"`

	// CodeBlockDirectives lists the exact directive names routed to the
	// Code-Block Consumer.
	CodeBlockDirectives []string `yaml:"code_block_directives"`

	// ForwardToNestedHighlighter enables staging code-block bodies for a
	// NestedHighlighter. When false, code-block directives are tokenized
	// exactly like ordinary directives.
	ForwardToNestedHighlighter bool `yaml:"forward_to_nested_highlighter"`
}

// NewOptions returns Options with sensible defaults: only the two comment
// directive spellings are recognized, no code-block directives, and
// nested-highlighter forwarding disabled.
func NewOptions() *Options {
	return &Options{
		CommentDirectives:          []string{CommentDirectiveName, CommentDirectiveNameShort},
		CodeBlockDirectives:        nil,
		ForwardToNestedHighlighter: false,
	}
}

func (o *Options) isCommentDirective(name []byte) bool {
	return containsName(o.CommentDirectives, name)
}

func (o *Options) isCodeBlockDirective(name []byte) bool {
	return containsName(o.CodeBlockDirectives, name)
}

func containsName(names []string, name []byte) bool {
	for _, candidate := range names {
		if string(name) == candidate {
			return true
		}
	}
	return false
}

// ToYAML serializes the options to YAML.
func (o *Options) ToYAML() ([]byte, error) {
	if o == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(o); err != nil {
		return nil, fmt.Errorf("encode options: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// OptionsFromYAML parses Options from YAML bytes, filling in defaults for
// any field the document does not set.
func OptionsFromYAML(data []byte) (*Options, error) {
	opts := NewOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return opts, nil
}
