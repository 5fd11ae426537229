package tst

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewTree verifies that a fresh tree is empty and usable as-is.
func TestNewTree(t *testing.T) {
	tree := New()
	assert.NotNil(t, tree, "Tree should not be nil upon creation")

	_, ok := tree.Symbol()
	assert.False(t, ok, "A fresh node should have no symbol set")
	assert.False(t, tree.IsWordEnd(), "A fresh node should not be marked as a word end")
	assert.Nil(t, tree.Left(), "Children should be created lazily")
	assert.Nil(t, tree.Equal(), "Children should be created lazily")
	assert.Nil(t, tree.Right(), "Children should be created lazily")
}

// TestInsertAndSearch covers the membership scenarios around shared prefixes.
func TestInsertAndSearch(t *testing.T) {
	tree := New()
	assert.NoError(t, tree.Insert("pr"))
	assert.NoError(t, tree.Insert("cr"))

	assert.True(t, tree.Search("pr"), "An inserted word should be found")
	assert.True(t, tree.Search("cr"), "An inserted word should be found")
	assert.False(t, tree.Search("prs"), "An extension of a stored word should not be found")
	assert.False(t, tree.Search("p"), "A strict prefix of a stored word should not be found")
}

// TestInsertShorterWordFirst makes sure a stored word survives becoming the
// prefix of later insertions.
func TestInsertShorterWordFirst(t *testing.T) {
	tree := New()
	assert.NoError(t, tree.Insert("p"))
	assert.True(t, tree.Search("p"))

	assert.NoError(t, tree.Insert("pr"))
	assert.NoError(t, tree.Insert("cr"))

	assert.True(t, tree.Search("p"), "A one-symbol word should survive longer insertions through it")
	assert.True(t, tree.Search("pr"))
	assert.True(t, tree.Search("cr"))
	assert.False(t, tree.Search("prs"))
}

// TestInsertIdempotent verifies that re-inserting a word changes nothing.
func TestInsertIdempotent(t *testing.T) {
	tree := New()
	assert.NoError(t, tree.Insert("proto"))
	assert.NoError(t, tree.Insert("proto"))

	assert.True(t, tree.Search("proto"))
	assert.Equal(t, []string{"proto"}, tree.Words(), "Re-inserting should not duplicate the word")
}

// TestEmptyTreeAndEmptyWord checks the degenerate inputs.
func TestEmptyTreeAndEmptyWord(t *testing.T) {
	tree := New()

	assert.False(t, tree.Search(""), "The empty word is never a member")
	assert.False(t, tree.Search("p"), "An empty tree holds nothing")

	assert.NoError(t, tree.Insert(""), "Inserting the empty word is a no-op")
	_, ok := tree.Symbol()
	assert.False(t, ok, "Inserting the empty word should not touch the root")

	tree.Insert("p")
	assert.False(t, tree.Search(""), "The empty word stays a non-member after insertions")
}

// TestInsertInvalidSymbol verifies that the reserved code point is rejected.
func TestInsertInvalidSymbol(t *testing.T) {
	tree := New()

	err := tree.Insert("\x00")
	assert.ErrorIs(t, err, ErrInvalidSymbol, "Code point 0 is the unset sentinel and must be rejected")

	err = tree.Insert("a\x00b")
	assert.ErrorIs(t, err, ErrInvalidSymbol, "The sentinel is rejected at any position")
	assert.False(t, tree.Search("a"), "The failed word's prefix should not become a member")
}

// TestSymbolAndWordEndIndependence checks that marking a word end does not
// disturb the stored symbol, and vice versa.
func TestSymbolAndWordEndIndependence(t *testing.T) {
	tree := New()
	tree.Insert("ab")

	symbol, ok := tree.Symbol()
	assert.True(t, ok)
	assert.Equal(t, 'a', symbol)
	assert.False(t, tree.IsWordEnd(), "The root is only a prefix so far")

	tree.Insert("a")
	assert.True(t, tree.IsWordEnd(), "Marking the root should work after the symbol is set")
	symbol, _ = tree.Symbol()
	assert.Equal(t, 'a', symbol, "Marking the word end must not disturb the symbol bits")
}

// TestUnicodeWords exercises multi-byte symbols through insert and search.
func TestUnicodeWords(t *testing.T) {
	tree := New()
	words := []string{"später", "spät", "日本語", "日本"}
	for _, word := range words {
		assert.NoError(t, tree.Insert(word))
	}

	for _, word := range words {
		assert.True(t, tree.Search(word), "Word %q should be found", word)
	}
	assert.False(t, tree.Search("spä"), "A strict prefix in runes should not be found")
	assert.False(t, tree.Search("日"), "A strict prefix in runes should not be found")
}

// TestChildLinksExposeStructure verifies the read access a serializer needs.
func TestChildLinksExposeStructure(t *testing.T) {
	tree := New()
	tree.Insert("b")
	tree.Insert("a")
	tree.Insert("c")
	tree.Insert("bd")

	symbol, _ := tree.Symbol()
	assert.Equal(t, 'b', symbol, "The root adopts the first inserted symbol")

	left := tree.Left()
	assert.NotNil(t, left, "A smaller symbol must branch left")
	symbol, _ = left.Symbol()
	assert.Equal(t, 'a', symbol)

	right := tree.Right()
	assert.NotNil(t, right, "A greater symbol must branch right")
	symbol, _ = right.Symbol()
	assert.Equal(t, 'c', symbol)

	equal := tree.Equal()
	assert.NotNil(t, equal, "A continuation must go through the equal child")
	symbol, _ = equal.Symbol()
	assert.Equal(t, 'd', symbol)
	assert.True(t, equal.IsWordEnd())
}

func BenchmarkInsert(b *testing.B) {
	words := generateRandomWords(b.N, 3, 12)
	tree := New()
	b.ResetTimer()

	for _, word := range words {
		tree.Insert(word)
	}
}

func BenchmarkSearch(b *testing.B) {
	words := generateRandomWords(100_000, 3, 12)
	tree := New()
	for _, word := range words {
		tree.Insert(word)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Search(words[rand.Intn(len(words))])
	}
}

// generateRandomWords builds lowercase words with lengths in [minLen, maxLen].
func generateRandomWords(total int, minLen int, maxLen int) []string {
	words := make([]string, 0, total)
	for i := 0; i < total; i++ {
		length := rand.Intn(maxLen-minLen+1) + minLen
		word := make([]byte, length)
		for j := range word {
			word[j] = byte('a' + rand.Intn(26))
		}
		words = append(words, string(word))
	}
	return words
}
