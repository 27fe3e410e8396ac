package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/svergara/mathlex/lexer"
	"github.com/svergara/mathlex/telemetry"
)

type TokenizeCmd struct {
	Expression string `help:"Expression to tokenize. Prompts when omitted on a terminal, reads stdin otherwise." arg:"" optional:""`
	File       string `help:"Read the expression from a file instead." short:"f" type:"existingfile"`
	Repr       bool   `help:"Dump the raw token slice."`
}

func (cmd *TokenizeCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()
	if globals.Telemetry {
		runCtx = telemetry.WithCollector(runCtx, telemetry.NewTimingCollector())
	}
	collector := telemetry.FromContext(runCtx)

	reportTelemetry := func() {
		if globals.Telemetry {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}
	}

	rootTimer := collector.Start("tokenize")

	readTimer := rootTimer.Child("read")
	source, err := cmd.source()
	readTimer.End()
	if err != nil {
		rootTimer.End()
		return err
	}

	scanTimer := rootTimer.Child("scan")
	tokens, err := lexer.Tokenize(source)
	scanTimer.End()
	rootTimer.End()

	if err != nil {
		renderer := NewErrorRenderer([]byte(source))
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "lexical error")

		reportTelemetry()
		os.Exit(1)
	}

	if cmd.Repr {
		repr.Println(tokens)
		reportTelemetry()
		return nil
	}

	invalid := printTokens(ctx.Stdout, tokens)
	_, _ = fmt.Fprintln(ctx.Stdout)
	printSummary(ctx.Stdout, tokens, invalid)

	reportTelemetry()
	return nil
}

// source resolves the expression from the file flag, the argument, an
// interactive prompt, or stdin, in that order.
func (cmd *TokenizeCmd) source() (string, error) {
	if cmd.File != "" {
		contents, err := os.ReadFile(cmd.File)
		if err != nil {
			return "", err
		}
		return string(contents), nil
	}

	if cmd.Expression != "" {
		return cmd.Expression, nil
	}

	if expr, ok, err := promptExpression(); err != nil || ok {
		return expr, err
	}

	contents, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return string(contents), nil
}
