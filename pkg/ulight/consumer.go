package ulight

// consumer is the polymorphic sink the matchers drive with semantic events.
// It receives events in source order; every byte-count argument is positive
// by construction (the matchers never emit a zero-length event).
//
// The variant set (normalConsumer, commentConsumer, codeBlockConsumer,
// dispatchConsumer) is closed and known ahead of time, so this is a plain
// interface implemented by a handful of concrete structs rather than a
// heap-indirected plugin mechanism.
type consumer interface {
	text(length int)
	whitespaceInArguments(length int)
	openingSquare()
	closingSquare()
	comma()
	argumentName(length int)
	equals()
	directiveName(length int)
	openingBrace()
	closingBrace()
	escape()

	pushDirective()
	popDirective()
	pushArguments()
	popArguments()
	unexpectedEOF()
}

// baseConsumer implements the optional, default-no-op events of the
// Consumer protocol (push_directive/pop_directive/push_arguments/
// pop_arguments/unexpected_eof are all no-ops unless overridden).
// normalConsumer embeds it; commentConsumer and codeBlockConsumer define
// these events themselves.
type baseConsumer struct{}

func (baseConsumer) pushDirective() {}
func (baseConsumer) popDirective()  {}
func (baseConsumer) pushArguments() {}
func (baseConsumer) popArguments()  {}
func (baseConsumer) unexpectedEOF() {}
