package cli

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Tokenize TokenizeCmd `cmd:"" default:"withargs" help:"Tokenize a math expression into classified tokens."`
	Vocab    VocabCmd    `cmd:"" help:"List the recognized functions, constants and variables."`
	Watch    WatchCmd    `cmd:"" help:"Re-tokenize a file whenever it changes."`
}
