// Package ordinal implements exact arithmetic on ordinal numbers below
// the Feferman–Schütte ordinal Γ₀ = φ(1, 0, 0).
//
// What:
//
//   - Ordinal is an immutable normal-form value: a natural part, a list of
//     Cantor-normal-form terms ω^p·c (descending exponents), and a list of
//     Veblen-normal-form terms φ_s(v)·c (descending Veblen order).
//   - Total order with Cmp/Less/Leq/Equal plus a Hash consistent with Equal.
//     A cheap "tier" magnitude class short-circuits comparisons between
//     operands of very different sizes.
//   - Add, Mul, Pow rewrite normal forms directly; ordinal arithmetic is
//     non-commutative and right-erasing, so omega.Add(One) > Omega while
//     One.Add(Omega) equals Omega.
//   - Veblen(s, v) builds φ_s(v), detecting fixed points (φ_0(ε₀) = ε₀).
//   - FundamentalSequence produces, for a limit ordinal A, an increasing
//     sequence A[0] < A[1] < ... converging to A, with a stride-k memo cache.
//   - String renders LaTeX, choosing ω/ε/ζ glyphs, φ_s(v) subscript form, or
//     two-argument φ(s, v) form depending on how high the value sits in the
//     Veblen hierarchy.
//
// Why:
//
//   - Googology: quantify large-number notations via the fast-growing
//     hierarchy (see the fgh package).
//   - Proof theory teaching: concrete normal forms for ordinals up to Γ₀.
//   - A stress test for exact symbolic comparison: nested φ terms require a
//     fixed-point-aware comparator.
//
// Complexity:
//
//   - Cmp: O(min depth) after the O(1) tier check.
//   - Add: O(len of operands). Mul/Pow: O(terms × Add).
//   - FundamentalSequence.Index(n): O(n/k) amortized extra steps with the
//     default stride k=16 when indices arrive out of order.
//
// Errors:
//
//   - ErrNegative: negative integers are not ordinals.
//   - ErrUnknownName: unrecognized named ordinal alias.
//   - ErrNotFinite: Int() on a transfinite ordinal.
//   - ErrNotSuccessor: Predecessor of zero or a limit ordinal.
//   - ErrNotLimit: fundamental sequence of zero or a successor ordinal.
//   - ErrNegativeIndex: sequence index below zero.
//
// The arithmetic rewrite rules follow the documented behavior of the
// reference rules for normal forms below Γ₀; mixing Mul/Pow with Veblen
// values at or above ε₀ stays representable because every result is
// re-expressed through φ_0 terms.
package ordinal
