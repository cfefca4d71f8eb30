package ulight

import "github.com/Eisenwave/ulight/pkg/langdetect"

// codeBlockState tracks progress through a single directive's envelope.
type codeBlockState uint8

const (
	codeBlockBeforeBlock codeBlockState = iota
	codeBlockInBlock
	codeBlockDone
)

// codeBlockConsumer behaves like normalConsumer for envelope punctuation
// (the directive name, argument list, opening/closing brace) but stages
// the body's plain text into a side buffer with an offset remap, for
// forwarding to a nested highlighter.
type codeBlockConsumer struct {
	normal *normalConsumer
	state  *highlightState

	nestedSource []byte
	nestedRemap  []int

	argumentsLevel int
	braceLevel     int
	blockState     codeBlockState

	nested NestedHighlighter
}

func newCodeBlockConsumer(state *highlightState, nested NestedHighlighter) *codeBlockConsumer {
	return &codeBlockConsumer{
		normal: newNormalConsumer(state),
		state:  state,
		nested: nested,
	}
}

// reset clears the staged buffer so the consumer can be reused for the
// next code-block directive, mirroring commentConsumer.reset.
func (c *codeBlockConsumer) reset() {
	c.nestedSource = c.nestedSource[:0]
	c.nestedRemap = c.nestedRemap[:0]
	c.argumentsLevel = 0
	c.braceLevel = 0
	c.blockState = codeBlockBeforeBlock
}

func (c *codeBlockConsumer) done() bool {
	return c.blockState == codeBlockDone
}

// text stages the body's plain-text bytes once inside the outermost block,
// otherwise forwards to normal behavior.
func (c *codeBlockConsumer) text(n int) {
	if c.argumentsLevel != 0 || c.braceLevel > 1 {
		c.normal.text(n)
		return
	}
	assert(c.braceLevel == 1, "codeBlockConsumer: text outside argument list or block body")

	cursor := c.state.cursor
	snippet := c.state.source[cursor : cursor+n]
	c.nestedSource = append(c.nestedSource, snippet...)
	for i := 0; i < n; i++ {
		c.nestedRemap = append(c.nestedRemap, cursor+i)
	}
	c.state.advance(n)
}

func (c *codeBlockConsumer) whitespaceInArguments(n int) { c.normal.whitespaceInArguments(n) }
func (c *codeBlockConsumer) openingSquare()              { c.normal.openingSquare() }

// closingSquare always emits sym_square; a closing square bracket inside a
// code-block body is not reclassified as a brace.
func (c *codeBlockConsumer) closingSquare()      { c.normal.closingSquare() }
func (c *codeBlockConsumer) comma()              { c.normal.comma() }
func (c *codeBlockConsumer) argumentName(n int)  { c.normal.argumentName(n) }
func (c *codeBlockConsumer) equals()             { c.normal.equals() }
func (c *codeBlockConsumer) directiveName(n int) { c.normal.directiveName(n) }
func (c *codeBlockConsumer) escape()             { c.normal.escape() }

func (c *codeBlockConsumer) openingBrace() {
	c.normal.openingBrace()
	if c.argumentsLevel == 0 && c.braceLevel == 0 {
		assert(c.blockState == codeBlockBeforeBlock, "codeBlockConsumer: opening brace before before_block state")
		c.blockState = codeBlockInBlock
	}
	c.braceLevel++
}

func (c *codeBlockConsumer) closingBrace() {
	c.normal.closingBrace()
	c.braceLevel--
	if c.argumentsLevel == 0 && c.braceLevel == 0 {
		c.blockState = codeBlockDone
	}
}

func (c *codeBlockConsumer) pushDirective() {}
func (c *codeBlockConsumer) popDirective()  {}

func (c *codeBlockConsumer) pushArguments() { c.argumentsLevel++ }
func (c *codeBlockConsumer) popArguments()  { c.argumentsLevel-- }

func (c *codeBlockConsumer) unexpectedEOF() {
	c.blockState = codeBlockDone
}

// detectedLanguage guesses the language of the staged body via go-enry, so
// a caller-supplied NestedHighlighter has something to dispatch on even
// when the directive's argument list didn't name a language explicitly.
func (c *codeBlockConsumer) detectedLanguage() string {
	return langdetect.Detect(c.nestedSource)
}

// flush hands the staged buffer to the configured NestedHighlighter, if
// any, translating its token offsets back into source coordinates.
func (c *codeBlockConsumer) flush(options *Options) error {
	if c.nested == nil || len(c.nestedSource) == 0 {
		return nil
	}
	remap := make([]int, len(c.nestedRemap))
	copy(remap, c.nestedRemap)
	remapped := &remapSink{sink: c.state.sink, remap: remap}
	return c.nested.Highlight(remapped, c.nestedSource, remap, c.detectedLanguage(), options)
}

// remapSink adapts a Sink so tokens emitted with offsets local to a staged
// nested buffer land at their absolute source offsets.
type remapSink struct {
	sink  Sink
	remap []int
}

func (r *remapSink) Emit(begin, length int, category Category) {
	absBegin, ok := RemapOffset(r.remap, begin)
	if !ok {
		return
	}
	r.sink.Emit(absBegin, length, category)
}
