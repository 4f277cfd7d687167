// Package fgh: expansion state and configuration.
package fgh

import (
	"strconv"
	"strings"

	"github.com/ordmath/transfinite/ordinal"
)

// Term is one function in the composition chain: f_Sub iterated Count
// times.
type Term struct {
	Sub   *ordinal.Ordinal
	Count int
}

// Expansion is a snapshot of the rewrite state: the pending composition
// chain, outermost first, applied to the integer N. An empty chain means
// the expression reduced to a plain number.
type Expansion struct {
	Terms []Term
	N     int
}

// Latex renders the expansion as a LaTeX composition chain, e.g.
// {f_{{\omega}} \circ f_{{2}}^{3}(5)}, or {12} once fully reduced.
func (e Expansion) Latex() string {
	if len(e.Terms) == 0 {
		return "{" + strconv.Itoa(e.N) + "}"
	}

	var sb strings.Builder
	sb.WriteByte('{')
	for i, t := range e.Terms {
		if i > 0 {
			sb.WriteString(` \circ `)
		}
		sb.WriteString("f_{" + t.Sub.String() + "}")
		if t.Count > 1 {
			sb.WriteString("^{" + strconv.Itoa(t.Count) + "}")
		}
	}
	sb.WriteString("(" + strconv.Itoa(e.N) + ")")
	sb.WriteByte('}')

	return sb.String()
}

// Options configures Expand.
//
// Fields:
//   - MaxSteps   — hard cap on rewrite steps; values below 1 mean no cap
//     (the readability ceilings stop the expansion long before overflow).
//   - Complexity — budget factor scaling every readability ceiling.
//     Values at or below 0 select 1.0. Raising it lets limit subscripts
//     unfold deeper before the expander gives up.
//   - Trace      — if non-nil, called with a snapshot after each rewrite
//     step, including the initial state.
type Options struct {
	MaxSteps   int
	Complexity float64
	Trace      func(Expansion)
}

// DefaultOptions returns the standard configuration: unbounded steps and a
// complexity budget of 1.0.
func DefaultOptions() Options {
	return Options{Complexity: 1.0}
}
