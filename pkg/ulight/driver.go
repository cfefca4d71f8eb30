package ulight

import "context"

// Tokenize is the top-level driver: it seeds a Dispatch Consumer
// with the whole input in document context, tokenizes it, and returns the
// resulting spans. This is the convenience entry point most callers want;
// it uses the default character predicates, a fresh SliceSink, no nested
// highlighter, and the package's default logger (see TokenizeTo to plug in
// a request-scoped logger via context.Context).
func Tokenize(source []byte, opts *Options) []Token {
	sink := NewSliceSink(len(source))
	TokenizeTo(context.Background(), sink, source, opts, DefaultPredicates(), nil)
	return sink.Tokens
}

// TokenizeTo drives tokenization of source, emitting spans to sink. opts
// controls which directive names route to the Comment and Code-Block
// consumers and whether staged code-block bodies are forwarded to nested.
// predicates supplies the character classification functions the matchers
// rely on; pass DefaultPredicates() unless the caller has its own Unicode
// tables to plug in. The Dispatch Consumer logs unexpected_eof and flush
// events at Debug level through logging.FromContext(ctx), so a caller
// running many tokenization calls (e.g. one per document in a batch) can
// attach a logger scoped to that batch via logging.WithLogger.
//
// No source bytes remain after matching: nothing terminates a content run
// in document context, and the forward-progress invariant guarantees the
// top-level content sequence consumes the whole input.
func TokenizeTo(ctx context.Context, sink Sink, source []byte, opts *Options, predicates Predicates, nested NestedHighlighter) {
	if opts == nil {
		opts = NewOptions()
	}

	state := &highlightState{sink: sink, source: source}
	consumer := newDispatchConsumer(ctx, state, opts, nested)
	m := newMatcher(predicates)

	consumed := m.matchContentSequence(consumer, source, contextDocument)
	assert(consumed == len(source), "TokenizeTo: top-level content sequence did not consume all input")
}
