package tst

// walkState records what is left to do for a node parked on the traversal
// stack: enter its equal subtree (after emitting it), or its right subtree
// (after dropping its symbol from the path accumulator).
type walkState uint8

const (
	equalPending walkState = iota
	rightPending
)

type walkFrame struct {
	node  *Tree
	state walkState
}

// EachWord calls visit for every stored word in ascending order of the
// symbols' code points. Each word passed to visit is an independent copy.
//
// The traversal is iterative with an explicit stack, so it does not grow
// the call stack on large or badly skewed trees. A fresh call always
// restarts from the root; the traversal cannot be resumed midway.
func (t *Tree) EachWord(visit func(word string)) {
	if t == nil {
		return
	}

	var stack []walkFrame
	var path []rune
	curr := t

	for curr != nil || len(stack) > 0 {
		// descend leftward, parking every node for its equal turn
		if curr != nil {
			stack = append(stack, walkFrame{curr, equalPending})
			curr = curr.left
			continue
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch top.state {
		case equalPending:
			symbol, ok := top.node.Symbol()
			if !ok {
				// unset node, stores nothing
				continue
			}
			path = append(path, symbol)
			if top.node.IsWordEnd() {
				visit(string(path))
			}
			stack = append(stack, walkFrame{top.node, rightPending})
			curr = top.node.equal
		case rightPending:
			path = path[:len(path)-1]
			curr = top.node.right
		}
	}
}

// Words collects every stored word into a sorted slice, in EachWord order.
// The whole word set is materialized at once, which gets expensive on
// large trees; callers needing bounded memory should use EachWord instead.
func (t *Tree) Words() []string {
	words := []string{}
	t.EachWord(func(word string) {
		words = append(words, word)
	})
	return words
}
