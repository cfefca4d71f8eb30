package ulight

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/Eisenwave/ulight/internal/logging"
)

// dispatchConsumer is a façade over the Normal, Comment, and Code-Block
// consumers; it switches the active consumer based on the directive name
// observed at directive_name event time and flushes on directive pop.
type dispatchConsumer struct {
	state  *highlightState
	opts   *Options
	logger *log.Logger

	normal    *normalConsumer
	comment   *commentConsumer
	codeBlock *codeBlockConsumer

	current consumer
	// currentName is the name of the directive that switched current away
	// from normal, kept around only for the Debug logs below.
	currentName string
}

func newDispatchConsumer(ctx context.Context, state *highlightState, opts *Options, nested NestedHighlighter) *dispatchConsumer {
	normal := newNormalConsumer(state)
	d := &dispatchConsumer{
		state:     state,
		opts:      opts,
		logger:    logging.FromContext(ctx),
		normal:    normal,
		comment:   newCommentConsumer(),
		codeBlock: newCodeBlockConsumer(state, nested),
	}
	d.current = d.normal
	return d
}

func (d *dispatchConsumer) whitespaceInArguments(w int) {
	assert(w != 0, "dispatchConsumer: whitespace_in_arguments with zero length")
	d.current.whitespaceInArguments(w)
}

func (d *dispatchConsumer) text(t int) {
	assert(t != 0, "dispatchConsumer: text with zero length")
	d.current.text(t)
}

func (d *dispatchConsumer) openingSquare() { d.current.openingSquare() }
func (d *dispatchConsumer) closingSquare() { d.current.closingSquare() }
func (d *dispatchConsumer) comma()         { d.current.comma() }

func (d *dispatchConsumer) argumentName(a int) {
	assert(a != 0, "dispatchConsumer: argument_name with zero length")
	d.current.argumentName(a)
}

func (d *dispatchConsumer) equals() { d.current.equals() }

// directiveName inspects the just-announced directive name and routes to
// the Comment or Code-Block consumer before forwarding the event. This
// decision happens after the matcher announces the name, not at
// push_directive, so the outer matcher keeps driving all bracket counting
// generically.
//
// Switching current is a plain assignment, a no-op when current is already
// the target consumer. It must never call reset here: a directive nested
// inside a same-category directive (e.g. \comment{\comment{x}}) announces
// its name while current is already that consumer, and resetting mid-parse
// would wipe the accumulated prefix/braceLevel/blockState out from under
// it. reset happens exclusively after a flush, in flushComment/
// flushCodeBlock.
//
// While the Comment Consumer is active the shared cursor does not advance
// (the consumer only counts bytes until its flush), so nested names are
// not inspected there and every event goes to the Comment Consumer.
func (d *dispatchConsumer) directiveName(n int) {
	assert(n != 0, "dispatchConsumer: directive_name with zero length")
	if d.current == d.comment {
		d.current.directiveName(n)
		return
	}
	name := d.state.source[d.state.cursor : d.state.cursor+n]

	switch {
	case d.opts.isCommentDirective(name):
		if d.current != d.comment {
			d.currentName = string(name)
		}
		d.current = d.comment
	case d.opts.isCodeBlockDirective(name):
		if d.current != d.codeBlock {
			d.currentName = string(name)
		}
		d.current = d.codeBlock
	}

	d.current.directiveName(n)
}

func (d *dispatchConsumer) openingBrace() { d.current.openingBrace() }
func (d *dispatchConsumer) closingBrace() { d.current.closingBrace() }
func (d *dispatchConsumer) escape()       { d.current.escape() }

// pushDirective is intentionally a no-op; directive-name inspection drives
// routing instead.
func (d *dispatchConsumer) pushDirective() {}

func (d *dispatchConsumer) popDirective() {
	d.tryFlush()
}

func (d *dispatchConsumer) pushArguments() { d.current.pushArguments() }
func (d *dispatchConsumer) popArguments()  { d.current.popArguments() }

func (d *dispatchConsumer) unexpectedEOF() {
	d.logger.Debug("unexpected end of input",
		logging.FieldOffset, d.state.cursor,
		logging.FieldCategory, d.currentKind(),
		logging.FieldDirective, d.currentName)
	d.current.unexpectedEOF()
	d.tryFlush()
}

// currentKind names which consumer variant is active, for logging only.
func (d *dispatchConsumer) currentKind() string {
	switch d.current {
	case d.comment:
		return "comment"
	case d.codeBlock:
		return "code_block"
	default:
		return "normal"
	}
}

// tryFlush emits the accumulated spans from a specialized consumer and
// reverts the dispatcher to Normal.
func (d *dispatchConsumer) tryFlush() {
	switch {
	case d.current == d.comment && d.comment.done():
		d.flushComment()
	case d.current == d.codeBlock && d.codeBlock.done():
		d.flushCodeBlock()
	}
}

func (d *dispatchConsumer) flushComment() {
	c := d.comment
	assert(c.prefix != 0, "dispatchConsumer: comment flush with empty prefix")
	d.logger.Debug("flushing comment consumer",
		logging.FieldDirective, d.currentName,
		logging.FieldCategory, CategoryComment,
		logging.FieldLength, c.prefix+c.content+c.suffix)

	d.state.emitAndAdvance(c.prefix, CategoryCommentDelim)
	if c.content != 0 {
		d.state.emitAndAdvance(c.content, CategoryComment)
	}
	if c.suffix != 0 {
		assert(c.suffix == 1, "dispatchConsumer: comment suffix longer than one byte")
		d.state.emitAndAdvance(c.suffix, CategoryCommentDelim)
	}
	c.reset()
	d.current = d.normal
	d.currentName = ""
}

func (d *dispatchConsumer) flushCodeBlock() {
	d.logger.Debug("flushing code-block consumer",
		logging.FieldDirective, d.currentName,
		logging.FieldLanguage, d.codeBlock.detectedLanguage())

	if d.opts.ForwardToNestedHighlighter {
		if err := d.codeBlock.flush(d.opts); err != nil {
			d.logger.Debug("nested highlighter failed",
				logging.FieldDirective, d.currentName,
				logging.FieldError, err)
		}
	}
	d.codeBlock.reset()
	d.current = d.normal
	d.currentName = ""
}
