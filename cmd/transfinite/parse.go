package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ordmath/transfinite/ordinal"
)

// parseOrdinal reads a small ordinal expression: a non-negative integer, a
// named constant, phi(s, v) with nested parts, or a top-level sum of
// those, e.g. "phi(1, 0)+omega+3".
func parseOrdinal(s string) (*ordinal.Ordinal, error) {
	parts, err := splitTopLevel(s, '+')
	if err != nil {
		return nil, err
	}
	if len(parts) > 1 {
		sum := ordinal.Zero
		for _, p := range parts {
			v, err := parseOrdinal(p)
			if err != nil {
				return nil, err
			}
			sum = sum.Add(v)
		}

		return sum, nil
	}

	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return ordinal.New(n)
	}
	if v, err := ordinal.FromName(s); err == nil {
		return v, nil
	}
	if body, ok := strings.CutPrefix(s, "phi("); ok && strings.HasSuffix(body, ")") {
		args, err := splitTopLevel(strings.TrimSuffix(body, ")"), ',')
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, fmt.Errorf("phi takes two arguments, got %d in %q", len(args), s)
		}
		sub, err := parseOrdinal(args[0])
		if err != nil {
			return nil, err
		}
		arg, err := parseOrdinal(args[1])
		if err != nil {
			return nil, err
		}

		return ordinal.Veblen(sub, arg), nil
	}

	return nil, fmt.Errorf("cannot parse ordinal %q", s)
}

// parseCount reads the integer argument of an fgh expression.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}

	return n, nil
}

// splitTopLevel splits s on sep, ignoring separators nested inside
// parentheses.
func splitTopLevel(s string, sep byte) ([]string, error) {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses in %q", s)
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses in %q", s)
	}

	return append(parts, s[start:]), nil
}
