// Package nested_test contains shared fixtures for the nested tests.
package nested_test

import (
	"testing"

	"github.com/katalvlaran/recurse/nested"
	"github.com/stretchr/testify/require"
)

// Documents reused across tests (avoid repeating literals in test bodies).
const (
	DocDeepObject = `{
  "data": {
    "info": {
      "stuff": {
        "thing": {
          "moreStuff": {
            "magicNumber": 44,
            "something": "foo2"
          }
        }
      }
    }
  }
}`
	DocShallowTree  = `{a: {b: {c: 44}}}`
	DocMixedNesting = `[[[5],3],0,2,["foo"],[],[4,[5,6]]]`
	DocTens         = `[10,[[10],10],[10]]`
)

// mustValue decodes doc as a Value or fails the test.
func mustValue(t *testing.T, doc string) nested.Value {
	t.Helper()
	v, err := nested.ParseValue([]byte(doc))
	require.NoError(t, err, "ParseValue(%s)", doc)

	return v
}

// mustTree decodes doc as a Tree or fails the test.
func mustTree(t *testing.T, doc string) nested.Tree {
	t.Helper()
	tr, err := nested.ParseTree([]byte(doc))
	require.NoError(t, err, "ParseTree(%s)", doc)

	return tr
}
