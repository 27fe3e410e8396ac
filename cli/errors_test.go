package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/svergara/mathlex/lexer"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name   string
		source string
		offset int
		line   string
		column int
	}{
		{
			name:   "single line",
			source: "1.2.3",
			offset: 3,
			line:   "1.2.3",
			column: 3,
		},
		{
			name:   "offset at end of input",
			source: "2e",
			offset: 2,
			line:   "2e",
			column: 2,
		},
		{
			name:   "second line",
			source: "1+2\n3.4.5",
			offset: 7,
			line:   "3.4.5",
			column: 3,
		},
		{
			name:   "offset past the end is clamped",
			source: "x",
			offset: 99,
			line:   "x",
			column: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, column := locate([]byte(tt.source), tt.offset)
			assert.Equal(t, tt.line, line)
			assert.Equal(t, tt.column, column)
		})
	}
}

func TestErrorRendererLexError(t *testing.T) {
	source := "1.2.3"
	_, err := lexer.Tokenize(source)
	assert.Error(t, err)

	out := NewErrorRenderer([]byte(source)).Render(err)

	assert.Contains(t, out, "malformed number: multiple decimal points")
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "^")
}

func TestErrorRendererOtherError(t *testing.T) {
	err := errors.New("something else")
	out := NewErrorRenderer(nil).Render(err)
	assert.Equal(t, "something else", out)
}

func TestErrorRendererCaretColumn(t *testing.T) {
	source := "1.2.3"
	_, err := lexer.Tokenize(source)
	assert.Error(t, err)

	out := NewErrorRenderer([]byte(source)).Render(err)

	// The caret line is the last one; it must indent three bytes for the
	// gutter plus the error column.
	lines := strings.Split(out, "\n")
	caretLine := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(caretLine, "   "+strings.Repeat(" ", 3)), "caret line %q", caretLine)
}
