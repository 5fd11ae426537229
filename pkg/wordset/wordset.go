package wordset

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/triekit/wordset/pkg/tst"
)

// WordSet is a set of words stored in a ternary search tree, with the
// locking the bare tree leaves to its embedding: inserts take the write
// lock, while lookups and enumeration share the read lock and may run
// concurrently with each other.
type WordSet struct {
	mu   sync.RWMutex
	tree *tst.Tree
}

// New initializes an empty word set.
func New() *WordSet {
	return &WordSet{
		tree: tst.New(),
	}
}

// Add stores a single word. Adding a word twice is harmless.
func (s *WordSet) Add(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Insert(word)
}

// AddAll stores every given word, stopping at the first invalid one.
func (s *WordSet) AddAll(words ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, word := range words {
		if err := s.tree.Insert(word); err != nil {
			return err
		}
	}
	return nil
}

// Contains reports whether word was added to the set.
func (s *WordSet) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Search(word)
}

// Each visits every stored word in sorted order.
func (s *WordSet) Each(visit func(word string)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.tree.EachWord(visit)
}

// Words returns every stored word in sorted order. Like tst.Tree.Words it
// materializes the whole set; prefer Each on large sets.
func (s *WordSet) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Words()
}

// Count returns the number of distinct stored words.
func (s *WordSet) Count() int {
	count := 0
	s.Each(func(string) {
		count++
	})
	return count
}

// MaxWordLength returns the symbol count of the longest stored word,
// or 0 for an empty set.
func (s *WordSet) MaxWordLength() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.MaxWordLength()
}

// EachWithPrefix visits, in sorted order, every stored word starting with
// prefix, the prefix itself included when it is a stored word. The empty
// prefix visits everything.
func (s *WordSet) EachWithPrefix(prefix string, visit func(word string)) {
	if prefix == "" {
		s.Each(visit)
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	node := descend(s.tree, prefix)
	if node == nil {
		return
	}
	if node.IsWordEnd() {
		visit(prefix)
	}
	node.Equal().EachWord(func(suffix string) {
		visit(prefix + suffix)
	})
}

// descend follows prefix through the tree and returns the node holding its
// last symbol, or nil when the tree stores nothing under it.
func descend(node *tst.Tree, prefix string) *tst.Tree {
	at := 0
	for node != nil {
		value, ok := node.Symbol()
		if !ok {
			return nil
		}

		head, size := utf8.DecodeRuneInString(prefix[at:])
		switch {
		case head < value:
			node = node.Left()
		case head > value:
			node = node.Right()
		default:
			at += size
			if at == len(prefix) {
				return node
			}
			node = node.Equal()
		}
	}
	return nil
}

// Load reads newline-delimited words from r, skipping blank lines, and
// returns how many lines were inserted.
func (s *WordSet) Load(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	loaded := 0
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if err := s.Add(word); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, scanner.Err()
}
