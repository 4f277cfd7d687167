// Package fgh: the bounded expander.
package fgh

import (
	"math"
	"math/bits"

	"github.com/ordmath/transfinite/ordinal"
)

// numericCeiling keeps the running integer readable: f_1 doublings stop
// once the result would pass it.
const numericCeiling = 1_000_000

// phi3 marks where limit subscripts become too expensive to unfold for
// anything but the smallest arguments.
var phi3 = ordinal.Veblen(ordinal.MustNew(3), ordinal.Zero)

// Expand rewrites f_sub(value) step by step and returns the state it
// reached. The expansion stops when the expression fully reduces to a
// number, when the stack-depth ceiling is hit, or when a readability
// heuristic refuses the next step; a refused head term is left on the
// chain so no part of the expression is lost. Stopping early is not an
// error: the returned Expansion is always a faithful rewrite of the
// input.
//
// The rewrite rules per head term f_s^c:
//
//	s = 0        n += c
//	s = 1        double n up to c times, capped at the numeric ceiling
//	s = 2        n = 2^n·n, refused once n > 16
//	s successor  push f_{s-1}^n, refused for finite s > 4 and for
//	             infinite s with a natural part above 2
//	s limit      push f_{s[n]}, refused for large s with n above the
//	             complexity budget, or when s[n] is structurally deep
func Expand(sub *ordinal.Ordinal, value int, opts Options) (Expansion, error) {
	if sub == nil {
		return Expansion{}, ErrNilSubscript
	}
	if value < 0 {
		return Expansion{}, ErrNegativeValue
	}

	budget := opts.Complexity
	if budget <= 0 {
		budget = 1.0
	}
	maxSteps := opts.MaxSteps
	if maxSteps < 1 {
		maxSteps = math.MaxInt
	}

	stack := []Term{{Sub: sub, Count: 1}}
	n := value
	push := func(t Term) {
		if t.Count != 0 {
			stack = append(stack, t)
		}
	}
	emit := func() {
		if opts.Trace != nil {
			opts.Trace(snapshot(stack, n))
		}
	}
	emit()

expand:
	for step := 0; step < maxSteps; step++ {
		head := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case head.Sub.CmpInt(2) <= 0:
			small, _ := head.Sub.Int()
			switch small {
			case 0:
				n += head.Count

			case 1:
				room := 0
				if n > 0 {
					room = binLog(numericCeiling / n)
				}
				times := min(head.Count, room)
				if times == 0 {
					stack = append(stack, head)
					break expand
				}
				n <<= times
				push(Term{Sub: head.Sub, Count: head.Count - times})

			default:
				if n > 16 {
					stack = append(stack, head)
					break expand
				}
				n = (1 << n) * n
				push(Term{Sub: head.Sub, Count: head.Count - 1})
			}

		case head.Sub.Kind() == ordinal.KindSuccessor:
			if tooSteepSuccessor(head.Sub) {
				stack = append(stack, head)
				break expand
			}
			pred, err := head.Sub.Predecessor()
			if err != nil {
				return Expansion{}, err
			}
			push(Term{Sub: head.Sub, Count: head.Count - 1})
			push(Term{Sub: pred, Count: n})

		default:
			if head.Sub.Cmp(phi3) >= 0 && float64(n) > 1+budget ||
				head.Sub.Cmp(ordinal.Epsilon0) >= 0 && float64(n) > 2+budget {
				stack = append(stack, head)
				break expand
			}
			next, err := head.Sub.Index(n)
			if err != nil {
				return Expansion{}, err
			}
			if float64(complexity(next)) >= 30*budget {
				stack = append(stack, head)
				break expand
			}
			push(Term{Sub: head.Sub, Count: head.Count - 1})
			push(Term{Sub: next, Count: 1})
		}

		emit()
		if len(stack) == 0 || float64(len(stack)) >= 2+3*budget {
			break
		}
	}

	return snapshot(stack, n), nil
}

// tooSteepSuccessor reports whether iterating down from this successor
// subscript would produce an unreadable predecessor chain.
func tooSteepSuccessor(s *ordinal.Ordinal) bool {
	if s.IsFinite() {
		v, _ := s.Int()

		return v > 4
	}

	return s.Natural() > 2
}

// complexity estimates the structural size of an ordinal, weighing VNF
// terms heavier than CNF terms. Used to refuse limit expansions whose
// fundamental-sequence elements would not render readably.
func complexity(v *ordinal.Ordinal) int {
	if v.IsFinite() {
		return complexityInt(v.Natural())
	}

	total := complexityInt(v.Natural())
	for _, t := range v.VNF() {
		total += 6 + complexity(t.Sub) + complexity(t.Arg) + complexityInt(t.Coeff)
	}
	for _, t := range v.CNF() {
		total += 4 + complexity(t.Exp) + complexityInt(t.Coeff)
	}

	return total
}

func complexityInt(n int) int {
	if n <= 1 {
		return 1
	}

	return 3
}

// binLog is the floor of log2, with binLog(n) = 0 for n < 2.
func binLog(n int) int {
	if n < 2 {
		return 0
	}

	return bits.Len(uint(n)) - 1
}

// snapshot copies the live stack into an immutable Expansion value.
func snapshot(stack []Term, n int) Expansion {
	terms := make([]Term, len(stack))
	copy(terms, stack)

	return Expansion{Terms: terms, N: n}
}
