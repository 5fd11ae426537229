// ## Overview
// Package tst implements a ternary search tree: an ordered trie in which
// each node stores one symbol and up to three children. Words sharing a
// symbol at a position continue through the equal child, while smaller and
// greater alternatives at the same position branch into the left and right
// children. The tree's shape follows insertion order, like an unbalanced
// binary search tree; there is no rebalancing and no deletion.
//
// Each node packs its symbol and the end-of-word flag into a single 32-bit
// field, which halves the per-node bookkeeping on trees with many short
// words. Code point 0 is reserved as the unset sentinel and is rejected on
// insert.
//
// ## Example usage:
//
//	tree := tst.New()
//	if err := tree.Insert("prototype"); err != nil {
//	    // only ErrInvalidSymbol can happen here
//	}
//	tree.Insert("proto")
//
//	tree.Search("proto")     // true
//	tree.Search("prot")      // false, only a prefix of stored words
//
//	tree.EachWord(func(word string) {
//	    fmt.Println(word)    // sorted: proto, prototype
//	})
//
// The tree has no internal locking. Callers mixing inserts with reads must
// serialize them externally, for example the way pkg/wordset does.
package tst
