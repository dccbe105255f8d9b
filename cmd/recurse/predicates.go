package main

import (
	"fmt"
	"strings"
)

var namedPredicates = map[string]func(int64) bool{
	"even":     func(x int64) bool { return x%2 == 0 },
	"odd":      func(x int64) bool { return x%2 != 0 },
	"positive": func(x int64) bool { return x > 0 },
	"negative": func(x int64) bool { return x < 0 },
	"nonzero":  func(x int64) bool { return x != 0 },
}

// parsePredicate resolves a named predicate or a "lt:N" / "gt:N" bound.
func parsePredicate(spec string) (func(int64) bool, error) {
	if p, ok := namedPredicates[spec]; ok {
		return p, nil
	}
	op, arg, found := strings.Cut(spec, ":")
	if !found {
		return nil, fmt.Errorf("unknown predicate %q", spec)
	}
	bound, err := parseInt(arg)
	if err != nil {
		return nil, fmt.Errorf("predicate %q: %w", spec, err)
	}
	switch op {
	case "lt":
		return func(x int64) bool { return x < bound }, nil
	case "gt":
		return func(x int64) bool { return x > bound }, nil
	}

	return nil, fmt.Errorf("unknown predicate %q", spec)
}
