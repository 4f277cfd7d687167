// Package ordinal: the two-argument Veblen function.
package ordinal

// Veblen computes φ_sub(value):
//
//   - φ_0(v) = ω^v
//   - φ_s(0) is the smallest z with φ_w(z) = z for all w < s
//   - φ_s(v+1) is the smallest such z greater than φ_s(v)
//
// so φ_1(0) = ε₀, the first fixed point of v = ω^v, and each higher
// subscript enumerates the common fixed points of everything below it.
//
// A value that is already a single coefficient-1 VNF term with a strictly
// larger subscript is a fixed point of φ_sub and is returned unchanged;
// this check must run before the general construction or the wrapping would
// regress forever. Subscript 0 collapses to ω-exponentiation: φ_0(0) = 1, a
// value already inside the Veblen range wraps as a φ_0 term to stay there,
// and anything below ε₀ becomes a plain CNF term ω^value.
func Veblen(sub, value *Ordinal) *Ordinal {
	if len(value.vnf) == 1 && len(value.cnf) == 0 && value.nat == 0 &&
		value.vnf[0].Coeff == 1 && value.vnf[0].Sub.Cmp(sub) > 0 {
		return value
	}

	if sub.IsZero() {
		if value.IsZero() {
			return One
		}
		if len(value.vnf) > 0 {
			return newOrdinal(0, nil, []VnfTerm{{Sub: Zero, Arg: value, Coeff: 1}})
		}

		return newOrdinal(0, []CnfTerm{{Exp: value, Coeff: 1}}, nil)
	}

	return newOrdinal(0, nil, []VnfTerm{{Sub: sub, Arg: value, Coeff: 1}})
}
