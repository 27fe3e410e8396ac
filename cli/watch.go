package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/svergara/mathlex/lexer"
)

type WatchCmd struct {
	File string `help:"File whose contents are re-tokenized on every change." arg:"" type:"existingfile"`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory; editors often replace the file on save, which
	// silently drops a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(cmd.File)); err != nil {
		return err
	}

	cmd.tokenizeFile(ctx)
	printInfof(ctx.Stdout, "watching %s", cmd.File)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(cmd.File) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			_, _ = fmt.Fprintln(ctx.Stdout)
			cmd.tokenizeFile(ctx)

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, werr.Error())
		}
	}
}

func (cmd *WatchCmd) tokenizeFile(ctx *kong.Context) {
	contents, err := os.ReadFile(cmd.File)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}

	tokens, err := lexer.Tokenize(string(contents))
	if err != nil {
		renderer := NewErrorRenderer(contents)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		printError(ctx.Stderr, "lexical error")
		return
	}

	invalid := printTokens(ctx.Stdout, tokens)
	printSummary(ctx.Stdout, tokens, invalid)
}
