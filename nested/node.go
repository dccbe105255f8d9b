package nested

// Field is one key/value entry of a Node.
type Field struct {
	Key   string
	Value Tree
}

// Node is a string-keyed mapping that remembers insertion order.
// The zero value is an empty node ready to use.
type Node struct {
	keys    []string
	entries map[string]Tree
}

// NewNode returns a node holding fields in the given order. A repeated key
// overwrites the earlier value but keeps the earlier position.
func NewNode(fields ...Field) *Node {
	n := &Node{entries: make(map[string]Tree, len(fields))}
	for _, f := range fields {
		n.Set(f.Key, f.Value)
	}

	return n
}

// Set stores value under key and returns n for chaining. New keys are
// appended to the iteration order; existing keys keep their position.
func (n *Node) Set(key string, value Tree) *Node {
	if n.entries == nil {
		n.entries = make(map[string]Tree)
	}
	if _, ok := n.entries[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.entries[key] = value

	return n
}

// Get returns the value stored under key.
func (n *Node) Get(key string) (Tree, bool) {
	v, ok := n.entries[key]

	return v, ok
}

// Keys returns a copy of the keys in insertion order.
func (n *Node) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)

	return out
}

// Len returns the number of keys.
func (n *Node) Len() int {
	return len(n.keys)
}
