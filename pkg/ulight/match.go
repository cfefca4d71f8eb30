package ulight

// contentContext determines which characters terminate a content run.
type contentContext uint8

const (
	contextDocument contentContext = iota
	contextArgumentValue
	contextBlock
)

// isTerminatedBy reports whether c terminates a content run in context.
func isTerminatedBy(context contentContext, c byte) bool {
	switch context {
	case contextArgumentValue:
		return c == ',' || c == ']' || c == '}'
	case contextBlock:
		return c == '}'
	default:
		return false
	}
}

// bracketLevels is the per-content-run (square, brace) pair. It is
// scoped to a single matchContent call and must never underflow.
type bracketLevels struct {
	square int
	brace  int
}

// namedArgumentResult is the tuple returned by matchNamedArgumentPrefix.
// The argument is "present" iff NameLength > 0.
type namedArgumentResult struct {
	length             int
	leadingWhitespace  int
	nameLength         int
	trailingWhitespace int
}

func (n namedArgumentResult) present() bool {
	return n.nameLength > 0
}

// matcher bundles the character predicates the recognizer methods use.
type matcher struct {
	predicates Predicates
}

func newMatcher(p Predicates) matcher {
	return matcher{predicates: p}
}

// matchDirectiveName recognizes the longest prefix of str that forms a
// valid directive name. Zero if str is empty or starts with an ASCII digit.
func (m matcher) matchDirectiveName(str []byte) int {
	if len(str) == 0 || isASCIIDigit(str[0]) {
		return 0
	}
	return lengthIfCodePoints(str, m.predicates.IsDirectiveName)
}

// matchArgumentName is the argument-name analogue of matchDirectiveName.
func (m matcher) matchArgumentName(str []byte) int {
	if len(str) == 0 || isASCIIDigit(str[0]) {
		return 0
	}
	return lengthIfCodePoints(str, m.predicates.IsArgumentName)
}

// matchWhitespace recognizes the longest prefix of structural whitespace.
func (m matcher) matchWhitespace(str []byte) int {
	return lengthIfCodeUnits(str, m.predicates.IsHTMLWhitespace)
}

// startsWithEscapeOrDirective reports whether str begins with '\' followed
// by either an escapable byte or a directive-name start code point.
func (m matcher) startsWithEscapeOrDirective(str []byte) bool {
	if len(str) < 2 || str[0] != '\\' {
		return false
	}
	if m.predicates.IsEscapable(str[1]) {
		return true
	}
	cp, size := decodeRuneSafe(str[1:])
	if size == 0 {
		return false
	}
	return m.predicates.IsDirectiveNameStart(cp)
}

// matchNamedArgumentPrefix looks for "[ws?] name [ws?] =" at the start of
// str. It never emits; it is pure lookahead used by matchArgument.
func (m matcher) matchNamedArgumentPrefix(str []byte) namedArgumentResult {
	length := 0

	leadingWhitespace := m.matchWhitespace(str)
	length += leadingWhitespace
	if length >= len(str) {
		return namedArgumentResult{}
	}

	nameLength := m.matchArgumentName(str[length:])
	if nameLength == 0 {
		return namedArgumentResult{}
	}
	length += nameLength
	if length >= len(str) {
		return namedArgumentResult{}
	}

	trailingWhitespace := m.matchWhitespace(str[length:])
	length += trailingWhitespace
	if length >= len(str) {
		return namedArgumentResult{}
	}
	if str[length] != '=' {
		return namedArgumentResult{}
	}
	length++

	return namedArgumentResult{
		length:             length,
		leadingWhitespace:  leadingWhitespace,
		nameLength:         nameLength,
		trailingWhitespace: trailingWhitespace,
	}
}

// matchEscape recognizes a two-byte escape sequence "\x".
func (m matcher) matchEscape(out consumer, str []byte) int {
	const sequenceLength = 2
	if len(str) < sequenceLength || str[0] != '\\' || !m.predicates.IsEscapable(str[1]) {
		return 0
	}
	out.escape()
	return sequenceLength
}

// matchDirective recognizes a whole directive: name, optional argument
// list, optional block.
func (m matcher) matchDirective(out consumer, str []byte) int {
	if len(str) == 0 || str[0] != '\\' {
		return 0
	}
	nameLength := m.matchDirectiveName(str[1:])
	if nameLength == 0 {
		return 0
	}
	out.pushDirective()
	out.directiveName(1 + nameLength)

	argsLength := m.matchArgumentList(out, str[1+nameLength:])
	blockLength := m.matchBlock(out, str[1+nameLength+argsLength:])
	out.popDirective()
	return 1 + nameLength + argsLength + blockLength
}

// matchArgumentList recognizes a "[...]" argument list.
func (m matcher) matchArgumentList(out consumer, str []byte) int {
	if len(str) == 0 || str[0] != '[' {
		return 0
	}
	out.pushArguments()
	out.openingSquare()
	str = str[1:]
	length := 1

	for len(str) > 0 {
		argLength := m.matchArgument(out, str)
		length += argLength
		str = str[argLength:]

		if len(str) == 0 {
			break
		}
		switch str[0] {
		case '}':
			// The closing brace belongs to the enclosing block; do not
			// consume it here.
			out.popArguments()
			return length
		case ']':
			out.closingSquare()
			out.popArguments()
			length++
			return length
		case ',':
			out.comma()
			str = str[1:]
			length++
			continue
		default:
			assertUnreachable("argument terminated for seemingly no reason")
		}
	}

	out.unexpectedEOF()
	return length
}

// matchArgument recognizes a single argument: an optional "name =" prefix
// followed by a content sequence in argument-value context.
func (m matcher) matchArgument(out consumer, str []byte) int {
	name := m.matchNamedArgumentPrefix(str)
	if name.present() {
		if name.leadingWhitespace != 0 {
			out.whitespaceInArguments(name.leadingWhitespace)
		}
		out.argumentName(name.nameLength)
		if name.trailingWhitespace != 0 {
			out.whitespaceInArguments(name.trailingWhitespace)
		}
		out.equals()
	}
	contentLength := m.matchContentSequence(out, str[name.length:], contextArgumentValue)
	return name.length + contentLength
}

// matchBlock recognizes a "{...}" body.
func (m matcher) matchBlock(out consumer, str []byte) int {
	if len(str) == 0 || str[0] != '{' {
		return 0
	}
	out.openingBrace()
	str = str[1:]

	contentLength := m.matchContentSequence(out, str, contextBlock)
	str = str[contentLength:]

	if len(str) > 0 && str[0] == '}' {
		out.closingBrace()
		return contentLength + 2
	}
	assert(len(str) == 0, "matchBlock: expected end of input after unterminated content")
	out.unexpectedEOF()
	return contentLength + 1
}

// matchContent recognizes one unit of content: an escape, a directive, or
// a run of plain text bounded by bracket balancing and the context's
// terminator set.
func (m matcher) matchContent(out consumer, str []byte, context contentContext, levels *bracketLevels) int {
	if e := m.matchEscape(out, str); e != 0 {
		return e
	}
	if d := m.matchDirective(out, str); d != 0 {
		return d
	}

	plainLength := 0
	for plainLength < len(str) {
		c := str[plainLength]

		if c == '\\' {
			if m.startsWithEscapeOrDirective(str[plainLength:]) {
				break
			}
			plainLength++
			continue
		}
		if context == contextDocument {
			plainLength++
			continue
		}
		if context == contextArgumentValue && levels.brace == 0 {
			if levels.square == 0 && c == ',' {
				break
			}
			if c == '[' {
				levels.square++
			} else if c == ']' {
				if levels.square == 0 {
					break
				}
				levels.square--
			}
		}
		if c == '{' {
			levels.brace++
		} else if c == '}' {
			if levels.brace == 0 {
				break
			}
			levels.brace--
		}
		plainLength++
	}

	out.text(plainLength)
	return plainLength
}

// matchContentSequence repeatedly applies matchContent until str is
// exhausted or the next byte terminates context.
func (m matcher) matchContentSequence(out consumer, str []byte, context contentContext) int {
	levels := bracketLevels{}
	length := 0

	for len(str) > 0 && !isTerminatedBy(context, str[0]) {
		contentLength := m.matchContent(out, str, context, &levels)
		assert(contentLength != 0, "matchContentSequence: matcher made no forward progress")
		str = str[contentLength:]
		length += contentLength
	}
	return length
}
