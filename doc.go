// Package transfinite is an exact arithmetic playground for ordinal
// numbers below the Feferman–Schütte ordinal Γ₀.
//
// 🚀 What is transfinite?
//
//	A pure-Go library for transfinite ordinal arithmetic:
//		• Exact representation: natural part + Cantor normal form + Veblen normal form
//		• Total order: ==, <, ≤ with a tier fast path for very unequal operands
//		• Arithmetic: non-commutative +, ×, ^ as normal-form rewrite rules
//		• Two-argument Veblen function φ_s(v) with fixed-point detection
//		• Fundamental sequences: lazy, memoized convergent sequences for limit ordinals
//		• Fast-growing hierarchy: bounded symbolic expansion of f_α(n)
//
// ✨ Why choose transfinite?
//
//   - Exact – no floating point, no approximation below Γ₀
//   - Immutable – every operation returns a fresh, fully normalized value
//   - Safe – sentinel errors, no panics on user input, caches guarded by locks
//   - Pure Go – the arithmetic core has zero runtime dependencies
//
// Under the hood, everything is organized under two subpackages and a CLI:
//
//	ordinal/ — the arithmetic engine: values, comparison, +, ×, ^, φ, sequences
//	fgh/     — bounded fast-growing-hierarchy expander layered on ordinal
//	cmd/     — the transfinite command: expand FGH expressions, list sequences
//
// Quick taste:
//
//	w := ordinal.Omega
//	fmt.Println(w.Pow(w))                                  // {\omega^{\omega}}
//	fmt.Println(ordinal.Veblen(ordinal.One, ordinal.Zero)) // {\varepsilon_0}
//
// Dive into ordinal/doc.go for the representation and the rewrite rules.
//
//	go get github.com/ordmath/transfinite
package transfinite
