package cli

import "fmt"

// SearchCmd loads word files and looks up the given words or prefixes.
type SearchCmd struct {
	File    string   `arg:"" type:"existingfile" help:"Word file to load (text, CSV/TSV, or JSON)"`
	Words   []string `arg:"" help:"Words to look up"`
	WordKey string   `help:"Column or field holding the word in CSV/JSON files" default:"word"`
	Prefix  bool     `help:"Treat the words as prefixes and list every completion"`
}

// Run executes the search command.
func (cmd *SearchCmd) Run(ctx *Context) error {
	loaded := 0
	if err := parseFile(cmd.File, cmd.WordKey, func(word string) error {
		loaded++
		return ctx.set.Add(word)
	}); err != nil {
		return err
	}
	ctx.log.Debug().Int("loaded", loaded).Str("file", cmd.File).Msg("word file loaded")

	for _, word := range cmd.Words {
		if cmd.Prefix {
			found := 0
			ctx.set.EachWithPrefix(word, func(completion string) {
				fmt.Println(completion)
				found++
			})
			ctx.log.Info().Str("prefix", word).Int("completions", found).Msg("prefix searched")
			continue
		}
		fmt.Printf("%s: %v\n", word, ctx.set.Contains(word))
	}
	return nil
}
