package tst

import "unicode/utf8"

// Tree is a node in a ternary search tree. Every node is itself a whole
// tree: the zero value is an empty tree ready for use, and each of the
// three children is again a *Tree owned exclusively by its parent.
//
// A node fixes its symbol on the first insertion that passes through it
// and never changes it afterwards; later words either follow the equal
// child (same symbol, next position) or branch into the left/right child
// (smaller/greater symbol, same position). Children are created lazily,
// at most once each.
type Tree struct {
	code  uint32 // packed symbol and end-of-word flag, see symbol.go
	left  *Tree
	equal *Tree
	right *Tree
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Left returns the subtree of words with a smaller symbol at this position.
func (t *Tree) Left() *Tree { return t.left }

// Equal returns the subtree of words sharing this node's symbol, continued
// at the next position.
func (t *Tree) Equal() *Tree { return t.equal }

// Right returns the subtree of words with a greater symbol at this position.
func (t *Tree) Right() *Tree { return t.right }

// Insert adds a word to the tree. Inserting the empty word is a no-op, and
// inserting a word that is already present leaves the tree unchanged.
// The only failure mode is ErrInvalidSymbol for words carrying a code
// point outside the storable domain.
func (t *Tree) Insert(word string) error {
	if word == "" {
		return nil
	}
	return t.insert(word, 0)
}

// insert walks the tree with a cursor into word instead of re-slicing
// suffixes, so no copy is made per recursion step.
func (t *Tree) insert(word string, at int) error {
	head, size := utf8.DecodeRuneInString(word[at:])

	value, ok := t.Symbol()
	if !ok {
		if err := t.setSymbol(head); err != nil {
			return err
		}
		value = head
	}

	switch {
	case head < value:
		if t.left == nil {
			t.left = &Tree{}
		}
		return t.left.insert(word, at)
	case head > value:
		if t.right == nil {
			t.right = &Tree{}
		}
		return t.right.insert(word, at)
	default:
		at += size
		if at == len(word) {
			t.setWordEnd(true)
			return nil
		}
		if t.equal == nil {
			t.equal = &Tree{}
		}
		return t.equal.insert(word, at)
	}
}

// Search reports whether word was stored in the tree. A word that is only
// a strict prefix of a stored word is not itself a member: membership is
// defined by the end-of-word flag, not by node presence. Searching an
// empty tree or for the empty word returns false.
func (t *Tree) Search(word string) bool {
	if t == nil || word == "" {
		return false
	}
	return t.search(word, 0)
}

func (t *Tree) search(word string, at int) bool {
	value, ok := t.Symbol()
	if !ok {
		return false
	}

	head, size := utf8.DecodeRuneInString(word[at:])

	switch {
	case head < value:
		return t.left != nil && t.left.search(word, at)
	case head > value:
		return t.right != nil && t.right.search(word, at)
	default:
		at += size
		if at == len(word) {
			return t.IsWordEnd()
		}
		return t.equal != nil && t.equal.search(word, at)
	}
}

// MaxWordLength returns the symbol count of the longest stored word,
// or 0 for an empty tree.
func (t *Tree) MaxWordLength() int {
	if t == nil {
		return 0
	}
	if _, ok := t.Symbol(); !ok {
		return 0
	}

	longest := 0
	if t.IsWordEnd() {
		longest = 1
	}
	if t.equal != nil {
		longest = max(longest, 1+t.equal.MaxWordLength())
	}
	if longest == 0 {
		// the node stands for at least its own symbol
		longest = 1
	}

	// left and right are alternatives at the same position, so their
	// lengths compose without counting this node's symbol
	return max(longest, t.left.MaxWordLength(), t.right.MaxWordLength())
}
