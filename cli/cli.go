// Package cli provides the command-line interface around the tokenizer.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	keywordStyle = lipgloss.NewStyle().Bold(true)
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptExpression asks for an expression interactively. ok is false when
// stdin is not a terminal.
func promptExpression() (expr string, ok bool, err error) {
	if !isTerminal() {
		return "", false, nil
	}

	input := huh.NewInput().
		Title("Expression").
		Placeholder("sin(x) + 3.2e-5").
		Value(&expr)

	if err := input.Run(); err != nil {
		return "", false, fmt.Errorf("failed to read expression: %w", err)
	}

	return expr, true, nil
}
