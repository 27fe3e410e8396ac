package lexer

// Kind classifies a token scanned from the input.
type Kind uint8

const (
	Number Kind = iota
	Operator
	LeftParen
	RightParen
	Function
	Constant
	Variable
	Invalid
)

var kindNames = map[Kind]string{
	Number:     "NUMBER",
	Operator:   "OPERATOR",
	LeftParen:  "LPAREN",
	RightParen: "RPAREN",
	Function:   "FUNCTION",
	Constant:   "CONSTANT",
	Variable:   "VARIABLE",
	Invalid:    "INVALID",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a single lexical token. Text is the exact substring matched,
// exponent markers and signs included verbatim (e.g. "3.2e-5"). Offset is
// the byte offset of the first character in the input.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}
