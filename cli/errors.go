package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/svergara/mathlex/lexer"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders lexical errors with terminal styling and a caret
// pointing into the offending source.
type ErrorRenderer struct {
	source []byte
}

// NewErrorRenderer creates a renderer with source content for context.
func NewErrorRenderer(source []byte) *ErrorRenderer {
	return &ErrorRenderer{source: source}
}

// Render formats a single error with styling and source context.
func (r *ErrorRenderer) Render(err error) string {
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		return err.Error()
	}

	line, column := locate(r.source, lexErr.Offset)

	var buf strings.Builder

	buf.WriteString(errorStyle.Render(lexErr.Message))
	buf.WriteString("\n\n")

	buf.WriteString("   ")
	buf.WriteString(errContextStyle.Render(line))
	buf.WriteByte('\n')

	buf.WriteString("   ")
	buf.WriteString(strings.Repeat(" ", column))
	buf.WriteString(errCaretStyle.Render("^"))

	return buf.String()
}

// locate returns the source line containing offset and the column of the
// offset within that line.
func locate(source []byte, offset int) (string, int) {
	if offset > len(source) {
		offset = len(source)
	}

	start := offset
	for start > 0 && source[start-1] != '\n' {
		start--
	}

	end := offset
	for end < len(source) && source[end] != '\n' {
		end++
	}

	return string(source[start:end]), offset - start
}
