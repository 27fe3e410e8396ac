package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/svergara/mathlex/lexer"
)

type VocabCmd struct{}

func (cmd *VocabCmd) Run(ctx *kong.Context) error {
	w := ctx.Stdout

	names := lexer.Functions()

	column := 0
	for _, name := range names {
		if width := runewidth.StringWidth(name); width > column {
			column = width
		}
	}

	_, _ = fmt.Fprintln(w, keywordStyle.Render("Functions"))
	for _, name := range names {
		arity, _ := lexer.Arity(name)
		pad := strings.Repeat(" ", column-runewidth.StringWidth(name))
		_, _ = fmt.Fprintf(w, "  %s%s  arity %d\n", name, pad, arity)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, keywordStyle.Render("Constants"))
	for _, name := range lexer.Constants() {
		value, _ := lexer.ConstantValue(name)
		_, _ = fmt.Fprintf(w, "  %-2s  %s\n", name, value.String())
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, keywordStyle.Render("Variables"))
	_, _ = fmt.Fprintf(w, "  %s\n", strings.Join(lexer.Variables(), " "))

	return nil
}
