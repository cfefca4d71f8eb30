package ulight

// normalConsumer maps matcher events to concrete highlight span emissions.
// It carries no state of its own beyond a reference to the shared
// cursor/sink.
type normalConsumer struct {
	baseConsumer
	state *highlightState
}

func newNormalConsumer(state *highlightState) *normalConsumer {
	return &normalConsumer{state: state}
}

func (c *normalConsumer) text(length int)                  { c.state.advance(length) }
func (c *normalConsumer) whitespaceInArguments(length int) { c.state.advance(length) }
func (c *normalConsumer) openingSquare()                   { c.state.emitAndAdvance(1, CategorySymSquare) }
func (c *normalConsumer) closingSquare()                   { c.state.emitAndAdvance(1, CategorySymSquare) }
func (c *normalConsumer) comma()                           { c.state.emitAndAdvance(1, CategorySymPunc) }
func (c *normalConsumer) argumentName(length int) {
	c.state.emitAndAdvance(length, CategoryMarkupAttr)
}
func (c *normalConsumer) equals() { c.state.emitAndAdvance(1, CategorySymPunc) }
func (c *normalConsumer) directiveName(length int) {
	c.state.emitAndAdvance(length, CategoryMarkupTag)
}
func (c *normalConsumer) openingBrace() { c.state.emitAndAdvance(1, CategorySymBrace) }
func (c *normalConsumer) closingBrace() { c.state.emitAndAdvance(1, CategorySymBrace) }
func (c *normalConsumer) escape()       { c.state.emitAndAdvance(2, CategoryEscape) }
