// Package ordinal: value types for the normal-form representation.
package ordinal

import "sync"

// Kind classifies an ordinal. Every ordinal is exactly one of zero, a
// successor (there is a well-defined x with value = x+1), or a limit.
type Kind int

const (
	// KindZero is the ordinal 0.
	KindZero Kind = iota

	// KindSuccessor is any ordinal with a non-zero natural part.
	KindSuccessor

	// KindLimit is any other ordinal: zero natural part plus at least one
	// CNF or VNF term.
	KindLimit
)

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	switch k {
	case KindZero:
		return "zero"
	case KindSuccessor:
		return "successor"
	case KindLimit:
		return "limit"
	default:
		return "unknown"
	}
}

// CnfTerm is one additive piece of the Cantor normal form: ω^Exp · Coeff.
// Invariant: Exp ≥ 1 (anything below ω lives in the natural part) and
// Coeff ≥ 1.
type CnfTerm struct {
	Exp   *Ordinal
	Coeff int
}

// VnfTerm is one additive piece of the Veblen normal form:
// φ_Sub(Arg) · Coeff, where φ is the two-argument Veblen function.
// Every VNF term is at least ε₀, but Sub itself may be zero
// (φ_0(v) = ω^v kept in VNF because v is itself in the Veblen range).
type VnfTerm struct {
	Sub   *Ordinal
	Arg   *Ordinal
	Coeff int
}

// tier is a coarse, lossy magnitude class used purely to accelerate
// comparisons: tier(a) < tier(b) implies a < b, and equal tiers decide
// nothing. Not part of the logical identity of an ordinal; recomputed only
// at construction.
type tier struct {
	level int
	value int
}

// cmp is the three-way lexicographic order on tiers.
func (t tier) cmp(u tier) int {
	if t.level != u.level {
		return cmpInt(t.level, u.level)
	}

	return cmpInt(t.value, u.value)
}

// Ordinal is an immutable ordinal number below Γ₀ in normal form.
//
// The value is nat + Σ cnf + Σ vnf with lexicographic significance
// vnf > cnf > nat. Both term lists are sorted descending and contain no two
// terms with an equal head; construction sites maintain these invariants.
// Hash, kind and tier are precomputed; the fundamental sequence is built
// lazily on first use and cached under fundMu.
type Ordinal struct {
	nat  int
	cnf  []CnfTerm
	vnf  []VnfTerm
	hash uint64
	kind Kind
	tier tier

	fundMu sync.Mutex
	fund   *FundamentalSequence
}

// Kind reports whether the ordinal is zero, a successor, or a limit.
func (o *Ordinal) Kind() Kind { return o.kind }

// Hash is a 64-bit hash consistent with Equal: equal ordinals always share
// a hash. Precomputed at construction.
func (o *Ordinal) Hash() uint64 { return o.hash }

// IsZero reports whether the ordinal is 0.
func (o *Ordinal) IsZero() bool { return o.kind == KindZero }

// IsFinite reports whether the ordinal is below ω.
func (o *Ordinal) IsFinite() bool { return len(o.cnf) == 0 && len(o.vnf) == 0 }

// Natural returns the natural-number part of the normal form.
func (o *Ordinal) Natural() int { return o.nat }

// CNF returns a copy of the Cantor-normal-form terms, descending by exponent.
func (o *Ordinal) CNF() []CnfTerm {
	if len(o.cnf) == 0 {
		return nil
	}

	return append([]CnfTerm(nil), o.cnf...)
}

// VNF returns a copy of the Veblen-normal-form terms, descending by the
// Veblen term order.
func (o *Ordinal) VNF() []VnfTerm {
	if len(o.vnf) == 0 {
		return nil
	}

	return append([]VnfTerm(nil), o.vnf...)
}

// cmpInt is the three-way order on machine integers.
func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
