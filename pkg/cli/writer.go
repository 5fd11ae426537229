package cli

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/triekit/wordset/pkg/wordset"
)

// Writer emits the sorted content of a word set to a file.
type Writer interface {
	Write(set *wordset.WordSet, path string) error
}

// TextWriter writes one word per line, in sorted order.
type TextWriter struct {
	Stats *Stats
}

func (w TextWriter) Write(set *wordset.WordSet, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var writeErr error
	set.Each(func(word string) {
		if writeErr != nil {
			return
		}
		if _, err := file.WriteString(word + "\n"); err != nil {
			writeErr = err
			return
		}
		w.Stats.Output++
	})
	return writeErr
}

// JsonWriter writes the words as a JSON array. The whole set is streamed
// element by element, so only the encoder buffers.
type JsonWriter struct {
	Stats *Stats
}

func (w JsonWriter) Write(set *wordset.WordSet, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)

	if _, err = file.Write([]byte("[")); err != nil {
		return err
	}
	var writeErr error
	set.Each(func(word string) {
		if writeErr != nil {
			return
		}
		if w.Stats.Output > 0 {
			if _, err := file.Write([]byte(",")); err != nil {
				writeErr = err
				return
			}
		}
		if err := encoder.Encode(word); err != nil {
			writeErr = err
			return
		}
		w.Stats.Output++
	})
	if writeErr != nil {
		return writeErr
	}
	_, err = file.Write([]byte("]"))
	return err
}

// CsvWriter writes a word,length table. With IsTSV set it switches the
// separator and is expected to be pointed at a .tsv path.
type CsvWriter struct {
	IsTSV bool
	Stats *Stats
}

func (w CsvWriter) Write(set *wordset.WordSet, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if w.IsTSV {
		writer.Comma = '\t'
	}
	defer writer.Flush()

	if err := writer.Write([]string{"word", "length"}); err != nil {
		return err
	}

	var writeErr error
	set.Each(func(word string) {
		if writeErr != nil {
			return
		}
		if err := writer.Write([]string{word, lengthInSymbols(word)}); err != nil {
			writeErr = err
			return
		}
		w.Stats.Output++
	})
	if writeErr != nil {
		return writeErr
	}
	return writer.Error()
}

func lengthInSymbols(word string) string {
	return strconv.Itoa(utf8.RuneCountInString(word))
}
