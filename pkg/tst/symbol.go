package tst

import (
	"errors"
	"fmt"
)

// The packed field layout: bit 31 is the end-of-word flag, bits [0,30]
// hold the symbol's code point. Code point 0 is reserved as the "unset"
// sentinel, so a zero field means a fresh node with nothing stored.
const (
	wordEndBit uint32 = 1 << 31
	symbolMask uint32 = wordEndBit - 1
)

// ErrInvalidSymbol is returned when a word carries a symbol outside the
// storable domain: the reserved code point 0, or a value that does not fit
// next to the end-of-word flag.
var ErrInvalidSymbol = errors.New("symbol outside the storable code point range")

// Symbol decodes the node's symbol from the packed field.
// The second return value is false while the node is still unset.
func (t *Tree) Symbol() (rune, bool) {
	code := t.code & symbolMask
	if code == 0 {
		return 0, false
	}
	return rune(code), true
}

// setSymbol stores the symbol's code point in the low bits of the packed
// field without disturbing the end-of-word flag.
func (t *Tree) setSymbol(symbol rune) error {
	if symbol == 0 || uint32(symbol) > symbolMask {
		return fmt.Errorf("%w: %U", ErrInvalidSymbol, symbol)
	}
	t.code = (t.code & wordEndBit) | uint32(symbol)
	return nil
}

// IsWordEnd reports whether a stored word ends at this node. Nodes on the
// path of a longer word do not count as stored words themselves.
func (t *Tree) IsWordEnd() bool {
	return t.code&wordEndBit != 0
}

// setWordEnd flips the end-of-word flag without disturbing the symbol bits.
func (t *Tree) setWordEnd(end bool) {
	if end {
		t.code |= wordEndBit
	} else {
		t.code &^= wordEndBit
	}
}
