package lexer

// Lexer tokenizes a math expression in a single left-to-right pass.
//
// The scanner works on raw bytes with an explicit cursor. Sub-scanners
// consume greedily; when the numeric sub-scanner meets a byte that is not
// part of the literal it leaves the cursor on that byte so the dispatch
// loop re-examines it (one-byte pushback).
type Lexer struct {
	source []byte
	pos    int
	tokens []Token
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source []byte) *Lexer {
	// Empirically ~1 token per 2 bytes for short math expressions
	return &Lexer{
		source: source,
		tokens: make([]Token, 0, len(source)/2+4),
	}
}

// Tokenize scans expression and returns the tokens in scan order. It fails
// with a *Error only for malformed numeric literals; any other unrecognized
// input becomes an Invalid token and scanning continues.
func Tokenize(expression string) ([]Token, error) {
	return NewLexer([]byte(expression)).ScanAll()
}

// ScanAll lexes the entire source and returns all tokens. Whitespace emits
// nothing; every other byte ends up in exactly one token.
func (l *Lexer) ScanAll() ([]Token, error) {
	for l.pos < len(l.source) {
		ch := l.source[l.pos]

		switch {
		case isSpace(ch):
			l.pos++

		// Numbers, including a leading dot as in ".5"
		case isDigit(ch) || ch == '.' && isDigit(l.peekAt(1)):
			tok, err := l.scanNumber()
			if err != nil {
				return nil, err
			}
			l.tokens = append(l.tokens, tok)

		case isAlpha(ch):
			l.tokens = append(l.tokens, l.scanIdentifier())

		case ch == '(':
			l.emit(LeftParen)
		case ch == ')':
			l.emit(RightParen)

		case isOperator(ch):
			l.emit(Operator)

		// Stray punctuation and non-ASCII bytes
		default:
			l.emit(Invalid)
		}
	}

	return l.tokens, nil
}

// scanNumber scans a numeric literal: digits with at most one decimal point
// and at most one scientific exponent (e.g. "3.2e-5", "12.", "0.5E+10").
// The exponent run terminates the literal; any other byte that is not part
// of the number is handed back to the dispatch loop.
func (l *Lexer) scanNumber() (Token, error) {
	start := l.pos
	seenDot := l.source[l.pos] == '.'
	seenExp := false
	l.pos++

	for l.pos < len(l.source) {
		switch ch := l.source[l.pos]; {
		case isDigit(ch):
			l.pos++

		case ch == '.':
			if seenDot || seenExp {
				return Token{}, newError(MultipleDecimalPoints, l.pos, "malformed number: multiple decimal points")
			}
			seenDot = true
			l.pos++

		case ch == 'e' || ch == 'E':
			if seenExp {
				return Token{}, newError(MultipleExponents, l.pos, "malformed number: multiple exponents")
			}
			seenExp = true
			l.pos++
			if err := l.scanExponent(); err != nil {
				return Token{}, err
			}
			// The exponent digits end the literal; an adjacent dot or
			// digit run starts a fresh token.
			return l.numberToken(start), nil

		default:
			// Not part of the number; left for the dispatch loop.
			return l.numberToken(start), nil
		}
	}

	return l.numberToken(start), nil
}

// scanExponent consumes the optional sign and the run of exponent digits.
// The cursor is just past the 'e'/'E' marker on entry.
func (l *Lexer) scanExponent() error {
	if l.pos >= len(l.source) {
		return newError(IncompleteExponent, l.pos, "incomplete exponent")
	}

	if ch := l.source[l.pos]; ch == '+' || ch == '-' {
		l.pos++
		if l.pos >= len(l.source) || !isDigit(l.source[l.pos]) {
			return newError(ExponentNotFollowedByDigit, l.pos, "exponent must be followed by a digit")
		}
	} else if !isDigit(ch) {
		return newError(ExponentNotFollowedByDigit, l.pos, "exponent must be followed by a digit")
	}

	for l.pos < len(l.source) && isDigit(l.source[l.pos]) {
		l.pos++
	}

	return nil
}

// scanIdentifier accumulates a maximal run of letters and classifies it
// against the vocabulary tables. Functions win over constants, constants
// over variables, and only single-letter runs qualify as variables; an
// unrecognized run becomes an Invalid token, never an error.
func (l *Lexer) scanIdentifier() Token {
	start := l.pos
	for l.pos < len(l.source) && isAlpha(l.source[l.pos]) {
		l.pos++
	}

	text := string(l.source[start:l.pos])

	kind := Invalid
	switch {
	case IsFunction(text):
		kind = Function
	case IsConstant(text):
		kind = Constant
	case len(text) == 1 && IsVariable(text):
		kind = Variable
	}

	return Token{Kind: kind, Text: text, Offset: start}
}

// emit appends a single-byte token at the cursor and advances past it.
func (l *Lexer) emit(kind Kind) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Text:   string(l.source[l.pos : l.pos+1]),
		Offset: l.pos,
	})
	l.pos++
}

func (l *Lexer) numberToken(start int) Token {
	return Token{Kind: Number, Text: string(l.source[start:l.pos]), Offset: start}
}

// peekAt returns the byte n positions ahead of the cursor, or 0 at the end.
func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.source) {
		return 0
	}
	return l.source[l.pos+n]
}

// Byte classification helpers. The scanner is deliberately ASCII-only:
// non-ASCII bytes fall through to single-byte Invalid tokens.

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isOperator(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '^', '%', '=':
		return true
	}
	return false
}
