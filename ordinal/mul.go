// Package ordinal: multiplication.
package ordinal

// head tags which hierarchy a leading multiplicative term lands in.
const (
	headNat = iota
	headCnf
	headVnf
)

// mulHead is the leading multiplicative term of an operand together with
// its hierarchy tag. Additively indecomposable terms are either natural
// numbers or limit ordinals, which is what makes the case split below sound.
type mulHead struct {
	h   int
	nat int
	cnf CnfTerm
	vnf VnfTerm
}

// leadingHead extracts the largest multiplicative term of o.
func (o *Ordinal) leadingHead() mulHead {
	switch {
	case len(o.vnf) > 0:
		return mulHead{h: headVnf, vnf: o.vnf[0]}
	case len(o.cnf) > 0:
		return mulHead{h: headCnf, cnf: o.cnf[0]}
	default:
		return mulHead{h: headNat, nat: o.nat}
	}
}

// Mul returns o · b.
//
// Multiplication left-distributes over addition: the right operand is
// distributed term-by-term against the single leading term of the left
// operand. Everything below the left operand's leading term is discarded,
// except when the right operand contributes a natural-number term: that
// multiplies the leading term alone and the left remainder is reattached
// beneath it (so (ω+1)·2 = ω·2+1 while (ω+1)·ω = ω²).
func (o *Ordinal) Mul(b *Ordinal) *Ordinal {
	// rule: A · 0 --> 0, A · 1 --> A
	if b.IsZero() {
		return Zero
	}
	if b.EqualInt(1) {
		return o
	}
	// rule: 0 · A --> 0, 1 · A --> A
	if o.IsZero() {
		return Zero
	}
	if o.EqualInt(1) {
		return b
	}

	top := o.leadingHead()
	pieces := make([]*Ordinal, 0, len(b.vnf)+len(b.cnf)+2)
	for _, t := range b.vnf {
		pieces = append(pieces, termMul(top, mulHead{h: headVnf, vnf: t}))
	}
	for _, t := range b.cnf {
		pieces = append(pieces, termMul(top, mulHead{h: headCnf, cnf: t}))
	}
	if b.nat != 0 {
		pieces = append(pieces, termMul(top, mulHead{h: headNat, nat: b.nat}))
		// Reattach the left remainder beneath the scaled leading term.
		switch top.h {
		case headVnf:
			pieces = append(pieces, newOrdinal(o.nat, o.cnf, o.vnf[1:]))
		case headCnf:
			pieces = append(pieces, newOrdinal(o.nat, o.cnf[1:], nil))
		default:
			pieces = append(pieces, Zero)
		}
	}

	return sumBisected(pieces)
}

// MulInt returns o · n. Returns ErrNegative for n < 0.
func (o *Ordinal) MulInt(n int) (*Ordinal, error) {
	if n < 0 {
		return nil, ErrNegative
	}

	return o.Mul(fromInt(n)), nil
}

// termMul multiplies two multiplicative terms.
func termMul(l, r mulHead) *Ordinal {
	switch r.h {
	case headNat:
		switch l.h {
		case headNat:
			return fromInt(l.nat * r.nat)
		case headCnf:
			return newOrdinal(0, []CnfTerm{{Exp: l.cnf.Exp, Coeff: l.cnf.Coeff * r.nat}}, nil)
		default:
			return newOrdinal(0, nil, []VnfTerm{{Sub: l.vnf.Sub, Arg: l.vnf.Arg, Coeff: l.vnf.Coeff * r.nat}})
		}
	case headCnf:
		switch l.h {
		case headNat:
			// finite · ω^P·C --> ω^P·C
			return newOrdinal(0, []CnfTerm{r.cnf}, nil)
		case headCnf:
			// ω^P · ω^Q·C --> ω^(P+Q)·C
			return newOrdinal(0, []CnfTerm{{Exp: l.cnf.Exp.Add(r.cnf.Exp), Coeff: r.cnf.Coeff}}, nil)
		default:
			return expAdd(l.vnf.logarithm(), r.cnf.Exp, r.cnf.Coeff)
		}
	default:
		switch l.h {
		case headNat:
			return newOrdinal(0, nil, []VnfTerm{r.vnf})
		case headCnf:
			return expAdd(l.cnf.Exp, r.vnf.logarithm(), r.vnf.Coeff)
		default:
			return expAdd(l.vnf.logarithm(), r.vnf.logarithm(), r.vnf.Coeff)
		}
	}
}

// logarithm is the exponent-equivalent ordinal of a VNF term head: the
// value X with ω^X = φ_Sub(Arg). For subscript 0 that is Arg itself;
// any non-zero subscript makes the term its own fixed point of φ_0.
func (t VnfTerm) logarithm() *Ordinal {
	if t.Sub.IsZero() {
		return t.Arg
	}

	return newOrdinal(0, nil, []VnfTerm{{Sub: t.Sub, Arg: t.Arg, Coeff: 1}})
}

// expAdd computes ω^(A+B)·C for a product whose result is known to stay in
// the Veblen hierarchy. When the summed exponent is a single coefficient-1
// fixed-point term, scaling that term directly keeps the normal form; any
// other sum is wrapped as a fresh φ_0 term.
func expAdd(lUp, rUp *Ordinal, c int) *Ordinal {
	up := lUp.Add(rUp)
	if len(up.vnf) == 1 && len(up.cnf) == 0 && up.nat == 0 &&
		!up.vnf[0].Sub.IsZero() && up.vnf[0].Coeff == 1 {
		t := up.vnf[0]

		return newOrdinal(0, nil, []VnfTerm{{Sub: t.Sub, Arg: t.Arg, Coeff: c}})
	}

	return newOrdinal(0, nil, []VnfTerm{{Sub: Zero, Arg: up, Coeff: c}})
}
