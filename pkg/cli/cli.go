package cli

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/triekit/wordset/pkg/wordset"
)

// CLI is the top-level command tree for the wordset binary.
var CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Build  BuildCmd  `cmd:"" help:"Build a word tree from word files and write the sorted words out"`
	Search SearchCmd `cmd:"" help:"Look up words or prefixes in word files"`
}

// Context carries the shared state into command Run methods.
type Context struct {
	set *wordset.WordSet
	log zerolog.Logger
}

func NewContext(log zerolog.Logger) *Context {
	return &Context{
		set: wordset.New(),
		log: log,
	}
}

// NewLogger builds the console logger used by every command.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Stats accumulates per-run counters for reporting at the end of a command.
type Stats struct {
	Parsed int // words read from input files
	Added  int // words newly stored in the tree
	Output int // words emitted by a writer
}
