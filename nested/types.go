package nested

// Value is the sequence variant: a Scalar or a List of further Values.
type Value interface {
	isValue()
}

// Tree is the mapping variant: a Scalar leaf or a *Node of further Trees.
type Tree interface {
	isTree()
}

// Scalar is a leaf of either variant.
type Scalar interface {
	Value
	Tree
	isScalar()
}

// Int is a signed integer leaf.
type Int int64

// Float is a floating-point leaf.
type Float float64

// String is a text leaf.
type String string

// Bool is a boolean leaf.
type Bool bool

// List is an ordered sequence of Values. A nil List is an empty sequence.
type List []Value

func (Int) isValue()     {}
func (Int) isTree()      {}
func (Int) isScalar()    {}
func (Float) isValue()   {}
func (Float) isTree()    {}
func (Float) isScalar()  {}
func (String) isValue()  {}
func (String) isTree()   {}
func (String) isScalar() {}
func (Bool) isValue()    {}
func (Bool) isTree()     {}
func (Bool) isScalar()   {}
func (List) isValue()    {}
func (*Node) isTree()    {}
