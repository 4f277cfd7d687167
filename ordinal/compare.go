// Package ordinal: the total order.
//
// Comparison runs in three stages: identical pointers and hashes settle
// equality immediately, unequal tiers settle order immediately, and only
// then does the exact lexicographic walk over vnf, cnf and the natural part
// happen. The subtle piece is the VNF term comparator: a term φ_A(B) is a
// fixed point of every Veblen function with a smaller subscript, so terms
// with different subscripts are compared by rebasing the larger-subscript
// term as the argument of the smaller subscript before comparing.
package ordinal

// Cmp returns -1, 0 or 1 as o is smaller than, equal to, or larger than b.
func (o *Ordinal) Cmp(b *Ordinal) int {
	if o == b {
		return 0
	}
	if c := o.tier.cmp(b.tier); c != 0 {
		return c
	}
	if c := cmpVnfLists(o.vnf, b.vnf); c != 0 {
		return c
	}
	if c := cmpCnfLists(o.cnf, b.cnf); c != 0 {
		return c
	}

	return cmpInt(o.nat, b.nat)
}

// Equal reports whether o and b denote the same ordinal.
// Unequal hashes give a fast negative without any structural walk.
func (o *Ordinal) Equal(b *Ordinal) bool {
	if o == b {
		return true
	}
	if o.hash != b.hash {
		return false
	}

	return o.Cmp(b) == 0
}

// Less reports o < b.
func (o *Ordinal) Less(b *Ordinal) bool { return o.Cmp(b) < 0 }

// Leq reports o ≤ b.
func (o *Ordinal) Leq(b *Ordinal) bool { return o.Cmp(b) <= 0 }

// CmpInt compares a (possibly transfinite) ordinal with a plain integer.
// Any transfinite ordinal exceeds every integer.
func (o *Ordinal) CmpInt(n int) int {
	if !o.IsFinite() {
		return 1
	}

	return cmpInt(o.nat, n)
}

// EqualInt reports whether o equals the integer n.
func (o *Ordinal) EqualInt(n int) bool { return o.CmpInt(n) == 0 }

// cmpVnfLists orders two descending VNF term lists lexicographically;
// a prefix-equal shorter list denotes the smaller ordinal.
func cmpVnfLists(a, b []VnfTerm) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmpVnfTerms(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmpInt(len(a), len(b))
}

// cmpCnfLists orders two descending CNF term lists lexicographically by
// (exponent, coefficient) pairs.
func cmpCnfLists(a, b []CnfTerm) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Exp.Cmp(b[i].Exp); c != 0 {
			return c
		}
		if c := cmpInt(a[i].Coeff, b[i].Coeff); c != 0 {
			return c
		}
	}

	return cmpInt(len(a), len(b))
}

// cmpVnfTerms is the fixed-point-aware order on single VNF terms.
//
// For φ_A(B)·N vs φ_C(D)·M the heads decide unless they coincide, because
// the Veblen function grows so fast that the nearest distinct head is at
// least an ω multiple away, which dwarfs any coefficient. Heads with
// distinct subscripts cannot be compared argument-by-argument directly;
// instead, with A < C, observe φ_A(B) <> φ_C(D) iff φ_A(B) <> φ_A(φ_C(D))
// iff B <> φ_C(D), so the larger-subscript term is rebased as a plain
// argument on the smaller subscript's side. The rule applies recursively
// through nested arguments.
func cmpVnfTerms(a, b VnfTerm) int {
	switch cs := a.Sub.Cmp(b.Sub); {
	case cs < 0:
		rebased := newOrdinal(0, nil, []VnfTerm{{Sub: b.Sub, Arg: b.Arg, Coeff: 1}})
		if c := a.Arg.Cmp(rebased); c != 0 {
			return c
		}
	case cs > 0:
		rebased := newOrdinal(0, nil, []VnfTerm{{Sub: a.Sub, Arg: a.Arg, Coeff: 1}})
		if c := rebased.Cmp(b.Arg); c != 0 {
			return c
		}
	default:
		if c := a.Arg.Cmp(b.Arg); c != 0 {
			return c
		}
	}

	return cmpInt(a.Coeff, b.Coeff)
}

// cmpVnfHeads compares two VNF terms ignoring coefficients, used by
// addition to match absorbing heads.
func cmpVnfHeads(a, b VnfTerm) int {
	a.Coeff = 1
	b.Coeff = 1

	return cmpVnfTerms(a, b)
}
