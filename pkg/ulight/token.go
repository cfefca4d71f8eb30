package ulight

// Token is an emitted highlight span (begin, length, category). Begin is an
// absolute byte offset into the source; length is always at least 1.
type Token struct {
	Begin    int
	Length   int
	Category Category
}

// End returns the exclusive end offset of the token.
func (t Token) End() int {
	return t.Begin + t.Length
}

// Text returns the source bytes this token covers.
func (t Token) Text(source []byte) []byte {
	if t.Begin < 0 || t.End() > len(source) || t.Begin > t.End() {
		return nil
	}
	return source[t.Begin:t.End()]
}

// Sink is the token stream consumer supplied by the caller. Implementations
// must not fail under normal operation and must accept tokens in
// non-decreasing Begin order.
type Sink interface {
	Emit(begin, length int, category Category)
}

// SliceSink is a Sink that appends every emitted token to an in-memory
// slice, the convenience path most callers want.
type SliceSink struct {
	Tokens []Token
}

// NewSliceSink returns a SliceSink with capacity pre-sized as a fraction of
// source length, since directive markup rarely emits a token per byte.
func NewSliceSink(sourceLen int) *SliceSink {
	const initialCapacityDivisor = 4
	return &SliceSink{Tokens: make([]Token, 0, sourceLen/initialCapacityDivisor)}
}

// Emit implements Sink.
func (s *SliceSink) Emit(begin, length int, category Category) {
	s.Tokens = append(s.Tokens, Token{Begin: begin, Length: length, Category: category})
}

// ValidateNonDecreasing reports whether every token has a positive length,
// starts at or after the end of the previous token (gaps are allowed,
// overlaps are not), and lies within [0, sourceLen).
func ValidateNonDecreasing(tokens []Token, sourceLen int) bool {
	prevEnd := 0
	for _, tok := range tokens {
		if tok.Length <= 0 {
			return false
		}
		if tok.Begin < prevEnd || tok.End() > sourceLen {
			return false
		}
		prevEnd = tok.End()
	}
	return true
}

// ValidateContiguous checks that tokens are contiguous with no gaps, i.e.
// token[i].Begin+token[i].Length == token[i+1].Begin, and the first token
// starts at 0 while the last ends at sourceLen. This is a stricter check
// than ValidateNonDecreasing and only holds for callers that choose to fill
// every byte with a token instead of leaving untokenized gaps.
func ValidateContiguous(tokens []Token, sourceLen int) bool {
	if len(tokens) == 0 {
		return sourceLen == 0
	}
	if tokens[0].Begin != 0 || tokens[len(tokens)-1].End() != sourceLen {
		return false
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Begin != tokens[i-1].End() {
			return false
		}
	}
	return true
}
