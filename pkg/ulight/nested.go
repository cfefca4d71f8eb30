package ulight

// NestedHighlighter is the seam through which a code-block body would be
// forwarded to a language-specific highlighter. Implementing an actual
// multi-language highlight dispatcher is explicitly out of scope for this
// tokenizer; this interface exists only so a caller can plug one in.
//
// Highlight receives the staged body exactly as accumulated by the
// Code-Block Consumer — nestedSource is the concatenated body
// bytes, and remap[i] is the absolute source offset that nestedSource[i]
// came from. Implementations emit tokens through sink using offsets local
// to nestedSource; the sink translates each begin offset back to its
// absolute source offset through remap and drops tokens whose begin lies
// outside nestedSource.
type NestedHighlighter interface {
	Highlight(sink Sink, nestedSource []byte, remap []int, lang string, options *Options) error
}

// RemapOffset translates a local offset into the staged nested source back
// into an absolute source offset using the same remap slice the Code-Block
// Consumer built while staging.
func RemapOffset(remap []int, localOffset int) (int, bool) {
	if localOffset < 0 || localOffset >= len(remap) {
		return 0, false
	}
	return remap[localOffset], true
}
