// Package ordinal: exponentiation.
package ordinal

// Pow returns o ^ b.
//
// Finite^finite uses plain machine-integer exponentiation by squaring (the
// caller owns overflow, as with any int arithmetic). A finite base with a
// transfinite exponent follows n^(ω·B) = ω^B: the exponent's finite CNF
// exponents are left-decremented, the result is wrapped through φ_0, and
// the exponent's own natural part contributes a final integer factor.
//
// For a transfinite base the exponent splits by kind:
//
//	limit B:     keep only the base's leading term, coefficient erased, and
//	             raise it via exp(log(base) · B)
//	B = D + 1:   the same construction with D, then one more multiplication
//	             by the entire original base, which both restores the erased
//	             coefficient and supplies the "+1"
//
// A successor base cannot be telescoped, so its finite exponent remainder
// is finished by exponentiation by squaring over ordinal multiplication.
func (o *Ordinal) Pow(b *Ordinal) *Ordinal {
	// rule: A^0 --> 1, 1^B --> 1
	if b.IsZero() || o.EqualInt(1) {
		return One
	}
	// rule: A^1 --> A
	if b.EqualInt(1) {
		return o
	}
	// rule: 0^B --> 0 (B = 0 already handled)
	if o.IsZero() {
		return Zero
	}

	if o.IsFinite() {
		if b.IsFinite() {
			return fromInt(powInt(o.nat, b.nat))
		}

		return powFiniteBase(o.nat, b)
	}

	return powInfiniteBase(o, b)
}

// PowInt returns o ^ n. Returns ErrNegative for n < 0.
func (o *Ordinal) PowInt(n int) (*Ordinal, error) {
	if n < 0 {
		return nil, ErrNegative
	}

	return o.Pow(fromInt(n)), nil
}

// powFiniteBase computes s^b for 2 ≤ s < ω and b ≥ ω via n^(ω·B) = ω^B.
// Left-decrementing the exponent: a finite CNF exponent of exactly 1
// degrades to the natural part, other finite exponents lose 1, transfinite
// exponents and the whole Veblen range are untouched.
func powFiniteBase(s int, b *Ordinal) *Ordinal {
	var rcnf []CnfTerm
	rnat := 0
	for _, t := range b.cnf {
		switch {
		case t.Exp.EqualInt(1):
			rnat = t.Coeff
		case t.Exp.IsFinite():
			rcnf = append(rcnf, CnfTerm{Exp: fromInt(t.Exp.nat - 1), Coeff: t.Coeff})
		default:
			rcnf = append(rcnf, t)
		}
	}

	result := Veblen(Zero, newOrdinal(rnat, rcnf, b.vnf))
	if b.nat != 0 {
		result = result.Mul(fromInt(powInt(s, b.nat)))
	}

	return result
}

// powInfiniteBase computes a^b for a ≥ ω, b ≥ 2.
func powInfiniteBase(a, b *Ordinal) *Ordinal {
	// Case split: 2 = successor^successor, 1 = successor exponent only,
	// 0 = limit exponent.
	succExp := b.kind == KindSuccessor
	caseID := 0
	switch {
	case succExp && a.kind == KindSuccessor:
		caseID = 2
	case succExp:
		caseID = 1
	}

	// The transfinite part of the exponent, with the predecessor taken for
	// a successor exponent.
	var exp *Ordinal
	switch caseID {
	case 2:
		exp = newOrdinal(0, b.cnf, b.vnf)
	case 1:
		exp = newOrdinal(b.nat-1, b.cnf, b.vnf)
	default:
		exp = b
	}

	// exp(log(·)) on the base's leading term, coefficient extracted.
	var logBase *Ordinal
	var coeff int
	if len(a.vnf) > 0 {
		coeff = a.vnf[0].Coeff
		logBase = a.vnf[0].logarithm()
	} else {
		coeff = a.cnf[0].Coeff
		logBase = a.cnf[0].Exp
	}
	result := Veblen(Zero, logBase.Mul(exp))

	switch caseID {
	case 2:
		// No telescoping shortcut for a successor base; finish the finite
		// exponent remainder by squaring over ordinal multiplication.
		return result.Mul(powOrdinal(a, b.nat))
	case 1:
		return result.Mul(fromInt(coeff)).Mul(a)
	default:
		return result
	}
}

// powInt is integer exponentiation by squaring.
func powInt(x, y int) int {
	r := 1
	for y > 0 {
		if y&1 == 1 {
			r *= x
		}
		x *= x
		y >>= 1
	}

	return r
}

// powOrdinal is exponentiation by squaring over ordinal multiplication.
func powOrdinal(x *Ordinal, y int) *Ordinal {
	r := One
	for y > 0 {
		if y&1 == 1 {
			r = r.Mul(x)
		}
		x = x.Mul(x)
		y >>= 1
	}

	return r
}
