package ulight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eisenwave/ulight/pkg/ulight"
)

func TestNewOptions_Defaults(t *testing.T) {
	opts := ulight.NewOptions()

	assert.Equal(t, []string{ulight.CommentDirectiveName, ulight.CommentDirectiveNameShort}, opts.CommentDirectives)
	assert.Empty(t, opts.CodeBlockDirectives)
	assert.False(t, opts.ForwardToNestedHighlighter)
}

func TestOptions_YAMLRoundTrip(t *testing.T) {
	opts := ulight.NewOptions()
	opts.CodeBlockDirectives = []string{`\code`, `\c`}
	opts.ForwardToNestedHighlighter = true

	data, err := opts.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "code_block_directives")

	restored, err := ulight.OptionsFromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, opts, restored)
}

func TestOptionsFromYAML_FillsDefaultsForMissingFields(t *testing.T) {
	restored, err := ulight.OptionsFromYAML([]byte(`forward_to_nested_highlighter: true`))
	require.NoError(t, err)

	assert.True(t, restored.ForwardToNestedHighlighter)
	assert.Equal(t, []string{ulight.CommentDirectiveName, ulight.CommentDirectiveNameShort}, restored.CommentDirectives)
}

func TestOptionsFromYAML_InvalidYAMLReturnsError(t *testing.T) {
	_, err := ulight.OptionsFromYAML([]byte("not: valid: yaml: at: all:"))
	assert.Error(t, err)
}

func TestOptions_ToYAML_NilReceiver(t *testing.T) {
	var opts *ulight.Options
	data, err := opts.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}
