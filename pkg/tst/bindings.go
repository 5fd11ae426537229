package tst

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// treeDoc is the interchange form shared by the JSON and YAML bindings:
// one document node per tree node, children nested under their link name.
type treeDoc struct {
	Symbol string   `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	End    bool     `json:"end,omitempty" yaml:"end,omitempty"`
	Left   *treeDoc `json:"left,omitempty" yaml:"left,omitempty"`
	Equal  *treeDoc `json:"equal,omitempty" yaml:"equal,omitempty"`
	Right  *treeDoc `json:"right,omitempty" yaml:"right,omitempty"`
}

func (t *Tree) doc() *treeDoc {
	if t == nil {
		return nil
	}
	doc := &treeDoc{End: t.IsWordEnd()}
	if symbol, ok := t.Symbol(); ok {
		doc.Symbol = string(symbol)
	}
	doc.Left = t.left.doc()
	doc.Equal = t.equal.doc()
	doc.Right = t.right.doc()
	return doc
}

// fromDoc resets the node to empty and rebuilds it from the document,
// so a tree can only ever be reconstructed from the fresh state.
func (t *Tree) fromDoc(doc *treeDoc) error {
	*t = Tree{}
	if doc == nil {
		return nil
	}

	if doc.Symbol != "" {
		symbol, size := utf8.DecodeRuneInString(doc.Symbol)
		if size != len(doc.Symbol) {
			return fmt.Errorf("tree document symbol %q is not a single code point", doc.Symbol)
		}
		if err := t.setSymbol(symbol); err != nil {
			return err
		}
	}
	t.setWordEnd(doc.End)

	for _, link := range []struct {
		doc  *treeDoc
		node **Tree
	}{
		{doc.Left, &t.left},
		{doc.Equal, &t.equal},
		{doc.Right, &t.right},
	} {
		if link.doc == nil {
			continue
		}
		*link.node = &Tree{}
		if err := (*link.node).fromDoc(link.doc); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.doc())
}

func (t *Tree) UnmarshalJSON(data []byte) error {
	var doc treeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return t.fromDoc(&doc)
}

func (t *Tree) MarshalYAML() (interface{}, error) {
	return t.doc(), nil
}

func (t *Tree) UnmarshalYAML(value *yaml.Node) error {
	var doc treeDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	return t.fromDoc(&doc)
}
