package nested

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseValue decodes a YAML or JSON document into the sequence variant.
// Sequences become List, scalars become Int/Float/String/Bool.
//
// Errors:
//   - ErrDecode if data is not valid YAML/JSON.
//   - ErrInvalidArgument if the document is empty, contains a mapping, a
//     null, a scalar of an unsupported tag, an alias that refers to its own
//     anchor, or expands to more than MaxDecodedNodes nodes.
func ParseValue(data []byte) (Value, error) {
	root, err := parseRoot(MethodParseValue, data)
	if err != nil {
		return nil, err
	}

	return newDecoder(MethodParseValue).value(root)
}

// ParseTree decodes a YAML or JSON document into the mapping variant.
// Mapping key order is preserved. Sequences become nodes keyed by element
// index ("0", "1", …), so lists can be searched like mappings.
//
// Errors:
//   - ErrDecode if data is not valid YAML/JSON.
//   - ErrInvalidArgument if the document is empty, repeats a key, uses a
//     non-scalar key, contains a null, a scalar of an unsupported tag, an
//     alias that refers to its own anchor, or expands to more than
//     MaxDecodedNodes nodes.
func ParseTree(data []byte) (Tree, error) {
	root, err := parseRoot(MethodParseTree, data)
	if err != nil {
		return nil, err
	}

	return newDecoder(MethodParseTree).tree(root)
}

// ParseScalar decodes a single YAML scalar, e.g. `44`, `4.5`, `true`, `foo`
// or `"44"` (a quoted number is a String).
//
// Errors:
//   - ErrDecode if s is not valid YAML.
//   - ErrInvalidArgument if s is empty, null or not a scalar.
func ParseScalar(s string) (Scalar, error) {
	root, err := parseRoot(MethodParseScalar, []byte(s))
	if err != nil {
		return nil, err
	}
	if root.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("%s: %q is not a scalar: %w", MethodParseScalar, s, ErrInvalidArgument)
	}

	return scalarFromNode(MethodParseScalar, root)
}

// parseRoot unmarshals data and returns the document's single content node.
func parseRoot(method string, data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", method, ErrDecode, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%s: empty document: %w", method, ErrInvalidArgument)
	}

	return doc.Content[0], nil
}

// MaxDecodedNodes bounds the number of nodes a decoded document may expand
// to once aliases are resolved.
const MaxDecodedNodes = 1 << 16

// decoder walks a yaml.Node tree. It tracks the aliases being expanded on
// the current path (a cycle means an anchor contains itself) and charges
// every visited node against a budget, so nested aliases cannot expand
// exponentially.
type decoder struct {
	method    string
	budget    int
	expanding map[*yaml.Node]bool
}

func newDecoder(method string) *decoder {
	return &decoder{method: method, budget: MaxDecodedNodes, expanding: make(map[*yaml.Node]bool)}
}

// visit charges one node against the budget.
func (d *decoder) visit(n *yaml.Node) error {
	d.budget--
	if d.budget < 0 {
		return fmt.Errorf("%s: line %d: document expands beyond %d nodes: %w",
			d.method, n.Line, MaxDecodedNodes, ErrInvalidArgument)
	}

	return nil
}

// alias expands n.Alias with walk, rejecting self-referencing anchors.
func (d *decoder) alias(n *yaml.Node, walk func(*yaml.Node) error) error {
	target := n.Alias
	if target == nil {
		return fmt.Errorf("%s: line %d: unresolved alias %q: %w", d.method, n.Line, n.Value, ErrInvalidArgument)
	}
	if d.expanding[target] {
		return fmt.Errorf("%s: line %d: alias %q refers to itself: %w", d.method, n.Line, n.Value, ErrInvalidArgument)
	}
	d.expanding[target] = true
	defer delete(d.expanding, target)

	return walk(target)
}

func (d *decoder) value(n *yaml.Node) (Value, error) {
	if err := d.visit(n); err != nil {
		return nil, err
	}
	switch n.Kind {
	case yaml.SequenceNode:
		list := make(List, 0, len(n.Content))
		for _, child := range n.Content {
			v, err := d.value(child)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}

		return list, nil
	case yaml.ScalarNode:
		return scalarFromNode(d.method, n)
	case yaml.AliasNode:
		var out Value
		err := d.alias(n, func(target *yaml.Node) error {
			v, err := d.value(target)
			out = v

			return err
		})
		if err != nil {
			return nil, err
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%s: line %d: mappings are not allowed in sequences: %w",
			d.method, n.Line, ErrInvalidArgument)
	}
}

func (d *decoder) tree(n *yaml.Node) (Tree, error) {
	if err := d.visit(n); err != nil {
		return nil, err
	}
	switch n.Kind {
	case yaml.MappingNode:
		node := NewNode()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%s: line %d: non-scalar key: %w", d.method, k.Line, ErrInvalidArgument)
			}
			if _, dup := node.Get(k.Value); dup {
				return nil, fmt.Errorf("%s: line %d: duplicate key %q: %w", d.method, k.Line, k.Value, ErrInvalidArgument)
			}
			child, err := d.tree(v)
			if err != nil {
				return nil, err
			}
			node.Set(k.Value, child)
		}

		return node, nil
	case yaml.SequenceNode:
		node := NewNode()
		for i, c := range n.Content {
			child, err := d.tree(c)
			if err != nil {
				return nil, err
			}
			node.Set(strconv.Itoa(i), child)
		}

		return node, nil
	case yaml.ScalarNode:
		return scalarFromNode(d.method, n)
	case yaml.AliasNode:
		var out Tree
		err := d.alias(n, func(target *yaml.Node) error {
			t, err := d.tree(target)
			out = t

			return err
		})
		if err != nil {
			return nil, err
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%s: line %d: unexpected node kind %d: %w", d.method, n.Line, n.Kind, ErrInvalidArgument)
	}
}

// scalarFromNode maps the resolved YAML tag to a Scalar variant.
func scalarFromNode(method string, n *yaml.Node) (Scalar, error) {
	switch tag := n.ShortTag(); tag {
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, fmt.Errorf("%s: line %d: integer %q: %w", method, n.Line, n.Value, ErrInvalidArgument)
		}

		return Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("%s: line %d: float %q: %w", method, n.Line, n.Value, ErrInvalidArgument)
		}

		return Float(f), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("%s: line %d: bool %q: %w", method, n.Line, n.Value, ErrInvalidArgument)
		}

		return Bool(b), nil
	case "!!str":
		return String(n.Value), nil
	default:
		return nil, fmt.Errorf("%s: line %d: unsupported scalar tag %s: %w", method, n.Line, tag, ErrInvalidArgument)
	}
}
