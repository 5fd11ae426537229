package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Record is one row/object from a structured word file.
type Record map[string]string

// parseFile dispatches on the file extension: CSV/TSV and JSON files carry
// the word in a named column or field, anything else is read as one word
// per line.
func parseFile(path string, wordKey string, onEachWord func(word string) error) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCsv(path, wordKey, ',', onEachWord)
	case ".tsv":
		return parseCsv(path, wordKey, '\t', onEachWord)
	case ".json":
		return parseJson(path, wordKey, onEachWord)
	default:
		return parseText(path, onEachWord)
	}
}

func parseText(path string, onEachWord func(word string) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}
	return nil
}

func parseJson(path string, wordKey string, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	if _, err = decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for decoder.More() {
		record := Record{}
		if err := decoder.Decode(&record); err != nil {
			return err
		}
		word, err := wordFromRecord(record, wordKey)
		if err != nil {
			return err
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err = decoder.Token()
	return err
}

func parseCsv(path string, wordKey string, separator rune, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = separator

	// Read the header to build the key mapping (assuming first line is the header)
	headers, err := reader.Read()
	if err != nil {
		return err
	}

	for {
		recordData, err := reader.Read()
		if err != nil {
			break // End of file or an error
		}

		record := make(Record)
		for i, value := range recordData {
			record[headers[i]] = value
		}

		word, err := wordFromRecord(record, wordKey)
		if err != nil {
			return err
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}

	return nil
}

func wordFromRecord(record Record, wordKey string) (string, error) {
	word, found := record[wordKey]
	if !found || strings.TrimSpace(word) == "" {
		return "", fmt.Errorf("record has no %q field: %v", wordKey, record)
	}
	return strings.TrimSpace(word), nil
}
