package lexer

import "fmt"

// ErrorKind identifies the category of a fatal lexical error.
type ErrorKind uint8

const (
	MultipleDecimalPoints ErrorKind = iota
	MultipleExponents
	IncompleteExponent
	ExponentNotFollowedByDigit
)

var errorKindNames = map[ErrorKind]string{
	MultipleDecimalPoints:      "MultipleDecimalPoints",
	MultipleExponents:          "MultipleExponents",
	IncompleteExponent:         "IncompleteExponent",
	ExponentNotFollowedByDigit: "ExponentNotFollowedByDigit",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Error is a fatal lexical error. Only malformed numeric literals are fatal;
// unrecognized identifiers and stray symbols degrade to Invalid tokens
// instead. When Tokenize returns an Error, no tokens are returned.
type Error struct {
	Kind    ErrorKind
	Offset  int // byte offset of the offending character
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Message)
}

func newError(kind ErrorKind, offset int, message string) *Error {
	return &Error{
		Kind:    kind,
		Offset:  offset,
		Message: message,
	}
}
