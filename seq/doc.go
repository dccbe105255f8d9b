// Package seq implements recursive reductions and generators over slices:
// a universal quantifier (All), a product reduction (Product) and a
// replicator (Replicate).
//
// What:
//
//   - All(items, pred) reports whether pred holds for every element. Elements
//     are tested from the last one backwards and the first failure stops the
//     recursion.
//   - Product(items) multiplies every element; a single element is returned
//     as is. Integer products report ErrOverflow instead of wrapping.
//   - Replicate(count, v) builds count copies of v, up to MaxReplicate.
//
// Immutability:
//
//	Recursion never mutates the caller's slice. Each step recurses on a
//	sub-slice view (items[:mid], items[mid:]) of the original backing array,
//	so the input is read-only for the whole call.
//
// Empty input:
//
//	All returns true and Product returns 1 on an empty slice (the identities
//	of ∧ and ×). Callers that consider an empty input a bug can pass
//	WithRejectEmpty() and receive ErrEmptyInput instead.
//
// Complexity:
//
//	O(n) time, O(log n) recursion depth for every function.
package seq
