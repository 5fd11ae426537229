package cli

import "fmt"

// BuildCmd loads word files into a tree and writes the sorted result out.
type BuildCmd struct {
	Files   []string `arg:"" type:"existingfile" help:"Input files containing words (text, CSV/TSV, or JSON)"`
	WordKey string   `help:"Column or field holding the word in CSV/JSON files" default:"word"`
	Output  string   `help:"Output file for the sorted word list" default:"words_sorted.txt"`
	Format  string   `help:"Output format" enum:"text,json,csv,tsv" default:"text"`
}

// Run executes the build command.
func (cmd *BuildCmd) Run(ctx *Context) error {
	stats := &Stats{}

	for _, file := range cmd.Files {
		ctx.log.Debug().Str("file", file).Msg("parsing word file")
		if err := parseFile(file, cmd.WordKey, func(word string) error {
			stats.Parsed++
			if ctx.set.Contains(word) {
				return nil
			}
			if err := ctx.set.Add(word); err != nil {
				return fmt.Errorf("file %s: %w", file, err)
			}
			stats.Added++
			return nil
		}); err != nil {
			return err
		}
	}

	writer, err := newWriter(cmd.Format, stats)
	if err != nil {
		return err
	}
	if err := writer.Write(ctx.set, cmd.Output); err != nil {
		return err
	}

	ctx.log.Info().
		Int("parsed", stats.Parsed).
		Int("added", stats.Added).
		Int("written", stats.Output).
		Int("max_word_length", ctx.set.MaxWordLength()).
		Str("output", cmd.Output).
		Msg("word tree built")
	return nil
}

func newWriter(format string, stats *Stats) (Writer, error) {
	switch format {
	case "text":
		return TextWriter{Stats: stats}, nil
	case "json":
		return JsonWriter{Stats: stats}, nil
	case "csv":
		return CsvWriter{Stats: stats}, nil
	case "tsv":
		return CsvWriter{IsTSV: true, Stats: stats}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
