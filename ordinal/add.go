// Package ordinal: addition.
package ordinal

// Add returns o + b.
//
// Addition is associative but not commutative. The key reduction is
//
//	ω^A·N + ω^B·M =
//	  A < B --> ω^B·M
//	  A = B --> ω^A·(N+M)
//	  A > B --> no reduction
//
// so everything in the left operand strictly below the right operand's
// leading term is erased, and an equal head merges by summing coefficients.
// The rule applies at the VNF tier and the CNF tier independently: a right
// operand with any VNF term absorbs the left operand's CNF and natural
// content outright.
func (o *Ordinal) Add(b *Ordinal) *Ordinal {
	if len(b.vnf) > 0 {
		// Right operand peaks in the Veblen range.
		head := b.vnf[0]
		rest := b.vnf
		rvnf := append([]VnfTerm(nil), o.vnf...)
		for len(rvnf) > 0 && cmpVnfHeads(rvnf[len(rvnf)-1], head) < 0 {
			rvnf = rvnf[:len(rvnf)-1]
		}
		if n := len(rvnf); n > 0 && cmpVnfHeads(rvnf[n-1], head) == 0 {
			rvnf[n-1].Coeff += head.Coeff
			rest = b.vnf[1:]
		}
		rvnf = append(rvnf, rest...)

		return newOrdinal(b.nat, b.cnf, rvnf)
	}

	if len(b.cnf) > 0 {
		// Right operand peaks in the CNF range.
		head := b.cnf[0]
		rest := b.cnf
		rcnf := append([]CnfTerm(nil), o.cnf...)
		for len(rcnf) > 0 && rcnf[len(rcnf)-1].Exp.Less(head.Exp) {
			rcnf = rcnf[:len(rcnf)-1]
		}
		if n := len(rcnf); n > 0 && rcnf[n-1].Exp.Equal(head.Exp) {
			rcnf[n-1].Coeff += head.Coeff
			rest = b.cnf[1:]
		}
		rcnf = append(rcnf, rest...)

		return newOrdinal(b.nat, rcnf, o.vnf)
	}

	// Right operand is a natural number.
	return newOrdinal(o.nat+b.nat, o.cnf, o.vnf)
}

// AddInt returns o + n for a non-negative integer n; only the natural part
// moves. Returns ErrNegative for n < 0.
func (o *Ordinal) AddInt(n int) (*Ordinal, error) {
	if n < 0 {
		return nil, ErrNegative
	}

	return newOrdinal(o.nat+n, o.cnf, o.vnf), nil
}

// sumBisected folds pieces with Add using a perfect-binary-tree combining
// order, ((a+b)+(c+d))+e rather than (((a+b)+c)+d)+e. Addition is
// associative, so the result is unchanged, but term lists accumulate size
// like concatenated lists and the bisected order keeps the fold at
// O(N log N) instead of O(N²).
func sumBisected(pieces []*Ordinal) *Ordinal {
	if len(pieces) == 0 {
		return Zero
	}

	build := []*Ordinal{pieces[0]}
	for k, v := range pieces[1:] {
		i := k + 2
		build = append(build, v)
		for i&1 == 0 {
			i >>= 1
			rhs := build[len(build)-1]
			build = build[:len(build)-1]
			build[len(build)-1] = build[len(build)-1].Add(rhs)
		}
	}
	for len(build) > 1 {
		rhs := build[len(build)-1]
		build = build[:len(build)-1]
		build[len(build)-1] = build[len(build)-1].Add(rhs)
	}

	return build[0]
}
