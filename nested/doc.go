// Package nested implements recursive traversals over arbitrarily nested
// data: deep membership search in key/value trees (Contains), counting of
// whole-number leaves (TotalIntegers) and sums of squared numeric leaves
// (SumSquares).
//
// 🚀 Data model
//
//	Nested data is modelled as closed tagged variants, so every traversal is
//	a type switch over a fixed set of alternatives instead of runtime probing
//	of untyped values:
//
//	  Scalar = Int | Float | String | Bool
//	  Value  = Scalar | List              (sequence variant, List []Value)
//	  Tree   = Scalar | *Node             (mapping variant, ordered string keys)
//
//	The variant interfaces carry unexported marker methods; only the types
//	declared here can satisfy them.
//
// ✨ Key features:
//   - Contains visits sibling keys in insertion order, depth first
//   - Int and Float compare by numeric value, never against String/Bool
//   - YAML and JSON decoding (gopkg.in/yaml.v3) with preserved key order
//   - traversals never mutate their input
//
// ⚙️ Usage:
//
//	t, _ := nested.ParseTree([]byte(`{a: {b: {c: 44}}}`))
//	ok, _ := nested.Contains(t, nested.Int(44)) // true
//
//	v, _ := nested.ParseValue([]byte(`[[[5],3],0,2,["foo"],[],[4,[5,6]]]`))
//	n, _ := nested.TotalIntegers(v) // 7
//
// Errors:
//   - ErrInvalidArgument: nil variants, non-numeric leaves in SumSquares,
//     duplicate keys or a document of the wrong shape
//   - ErrDecode: the document is not valid YAML/JSON
package nested
