// Package fgh expands fast-growing-hierarchy expressions symbolically.
//
// What:
//
//	The fast-growing hierarchy is the family of functions
//
//	  f_0(n)   = n + 1
//	  f_α+1(n) = f_α applied n times to n
//	  f_α(n)   = f_α[n](n)        for limit α
//
//	indexed by ordinals. Expand takes a subscript and an argument and
//	rewrites the expression step by step, producing a composition chain
//	f_a ∘ f_b ∘ … (n) plus a running integer.
//
// Why:
//
//	FGH expressions quantify the growth rates of large-number notations.
//	Fully evaluating one is out of the question for any interesting
//	subscript, so the expander unfolds only while the result stays
//	readable: numbers stay around a million, predecessor chains stay
//	short, and limit expansions stop once the fundamental-sequence
//	elements get structurally deep. When a heuristic refuses a step the
//	expander returns the partial expansion instead of an error.
//
// Complexity:
//
//	Each step is dominated by one fundamental-sequence lookup and one
//	structural complexity estimate. The stack-depth ceiling bounds the
//	number of steps independently of MaxSteps.
//
// Errors:
//
//	ErrNilSubscript  - Expand called with a nil subscript
//	ErrNegativeValue - Expand called with a negative argument
//
// See Expand for the exact ceilings and Options for tuning.
package fgh
