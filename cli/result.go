package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/svergara/mathlex/lexer"
)

var kindStyles = map[lexer.Kind]lipgloss.Style{
	lexer.Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	lexer.Function: lipgloss.NewStyle().Bold(true),
	lexer.Constant: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	lexer.Variable: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	lexer.Invalid:  errorStyle,
}

// kindColumn is the width of the widest kind name ("FUNCTION").
const kindColumn = 8

// printTokens writes an aligned KIND TEXT OFFSET table and returns the
// number of Invalid tokens.
func printTokens(w io.Writer, tokens []lexer.Token) int {
	textColumn := 0
	for _, tok := range tokens {
		if width := runewidth.StringWidth(tok.Text); width > textColumn {
			textColumn = width
		}
	}

	invalid := 0
	for _, tok := range tokens {
		if tok.Kind == lexer.Invalid {
			invalid++
		}

		kind := tok.Kind.String()
		styled := kind
		if style, ok := kindStyles[tok.Kind]; ok {
			styled = style.Render(kind)
		}

		// Pad from the unstyled widths; escape sequences would skew them.
		kindPad := strings.Repeat(" ", kindColumn-len(kind))
		textPad := strings.Repeat(" ", textColumn-runewidth.StringWidth(tok.Text))

		_, _ = fmt.Fprintf(w, "%s%s  %s%s  %d\n", styled, kindPad, tok.Text, textPad, tok.Offset)
	}

	return invalid
}

// printSummary reports the token count, flagging invalid entries without
// failing: deciding whether they are an error belongs to the parser.
func printSummary(w io.Writer, tokens []lexer.Token, invalid int) {
	if invalid > 0 {
		printInfof(w, "%d token(s), %d invalid", len(tokens), invalid)
		return
	}
	printSuccess(w, fmt.Sprintf("%d token(s)", len(tokens)))
}
