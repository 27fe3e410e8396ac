package lexer

import (
	"errors"
	"testing"
)

func FuzzTokenize(f *testing.F) {
	// Seed corpus with every token category and the known edge cases
	seeds := []string{
		// Numbers
		"42", "3.14", "12.", ".5", "0.5E+10", "3.2e-5", "1e9",

		// Malformed numbers (must error, never panic)
		"1.2.3", "2e", "2e+", "2e-x", "..", ".",

		// Functions, constants, variables
		"sin", "acot", "log", "ln", "sqrt", "nroot",
		"pi", "e", "x", "y", "z",

		// Unknown identifiers
		"foo", "xy", "X", "base", "sinh",

		// Operators and parens
		"+", "-", "*", "/", "^", "%", "=", "(", ")",

		// Stray symbols
		"_", ",", "@", "#", "!", "\xc3\xa9",

		// Whitespace
		"", " ", "\t", "\n", "   ",

		// Full expressions
		"sin(x)+cos(y)*2",
		"3.2e-5/pi",
		"log_base(2)(8)",
		"nroot(2, 8)",
		"x = 3 % 2",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tokens, err := Tokenize(input)

		if err != nil {
			// The only failure mode is a malformed numeric literal, and it
			// aborts the call without tokens.
			var lexErr *Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("Tokenize returned %T, want *lexer.Error", err)
			}
			if tokens != nil {
				t.Error("Tokenize returned tokens alongside an error")
			}
			return
		}

		// Every token text must be the exact substring at its offset, and
		// tokens must appear in scan order.
		prevEnd := 0
		var rebuilt []byte
		for i, tok := range tokens {
			if tok.Offset < prevEnd || tok.Offset+len(tok.Text) > len(input) {
				t.Fatalf("token %d out of order or out of bounds: offset=%d len=%d", i, tok.Offset, len(tok.Text))
			}
			if got := input[tok.Offset : tok.Offset+len(tok.Text)]; got != tok.Text {
				t.Errorf("token %d text %q does not match source %q", i, tok.Text, got)
			}
			if len(tok.Text) == 0 {
				t.Errorf("token %d is empty", i)
			}
			prevEnd = tok.Offset + len(tok.Text)
			rebuilt = append(rebuilt, tok.Text...)
		}

		// Concatenated texts reconstruct the input minus whitespace.
		var stripped []byte
		for i := 0; i < len(input); i++ {
			if !isSpace(input[i]) {
				stripped = append(stripped, input[i])
			}
		}
		if string(rebuilt) != string(stripped) {
			t.Errorf("round trip mismatch: got %q, want %q", rebuilt, stripped)
		}
	})
}
