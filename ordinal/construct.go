// Package ordinal: construction, named constants, and the cached
// hash / kind / tier computed eagerly for every value.
package ordinal

import (
	"encoding/binary"
	"hash/fnv"
	"math/bits"
)

// Named constants of the hierarchy. Treat as immutable.
var (
	// Zero is the ordinal 0.
	Zero = newOrdinal(0, nil, nil)

	// One is the ordinal 1.
	One = newOrdinal(1, nil, nil)

	// Omega is ω, the first transfinite ordinal.
	Omega = newOrdinal(0, []CnfTerm{{Exp: One, Coeff: 1}}, nil)

	// Epsilon0 is ε₀ = φ_1(0), the first fixed point of v = ω^v.
	Epsilon0 = newOrdinal(0, nil, []VnfTerm{{Sub: One, Arg: Zero, Coeff: 1}})

	// Zeta0 is ζ₀ = φ_2(0), the first common fixed point of the φ_1 hierarchy.
	Zeta0 = newOrdinal(0, nil, []VnfTerm{{Sub: newOrdinal(2, nil, nil), Arg: Zero, Coeff: 1}})
)

// Alias sets accepted by FromName.
var (
	omegaAliases    = map[string]bool{"omega": true, "w": true, `\omega`: true}
	epsilon0Aliases = map[string]bool{"epsilon_0": true, "epsilon0": true, "eps_0": true, "eps0": true, "e_0": true, "e0": true, `\epsilon_0`: true}
	zeta0Aliases    = map[string]bool{"zeta_0": true, "zeta0": true, "z_0": true, "z0": true, `\zeta_0`: true}
)

// New returns the ordinal equal to the non-negative integer n.
// Returns ErrNegative for n < 0; negative ordinals are not defined.
func New(n int) (*Ordinal, error) {
	if n < 0 {
		return nil, ErrNegative
	}

	return newOrdinal(n, nil, nil), nil
}

// MustNew is New for compile-time constants; it panics if n is negative.
func MustNew(n int) *Ordinal {
	o, err := New(n)
	if err != nil {
		panic(err)
	}

	return o
}

// FromName returns a named ordinal: ω ("omega", "w", `\omega`),
// ε₀ ("epsilon_0" and variants) or ζ₀ ("zeta_0" and variants).
// Returns ErrUnknownName for anything else.
func FromName(name string) (*Ordinal, error) {
	switch {
	case omegaAliases[name]:
		return Omega, nil
	case epsilon0Aliases[name]:
		return Epsilon0, nil
	case zeta0Aliases[name]:
		return Zeta0, nil
	default:
		return nil, ErrUnknownName
	}
}

// newOrdinal is the trusted internal constructor. Callers must supply
// already-normalized term lists: descending order, merged heads, positive
// coefficients, CNF exponents ≥ 1. The lists are stored as-is (values are
// immutable, so sharing backing arrays between ordinals is safe) and the
// hash, kind and tier are computed eagerly.
func newOrdinal(nat int, cnf []CnfTerm, vnf []VnfTerm) *Ordinal {
	o := &Ordinal{nat: nat, cnf: cnf, vnf: vnf}
	o.hash = computeHash(nat, cnf, vnf)
	o.kind = computeKind(nat, cnf, vnf)
	o.tier = computeTier(nat, cnf, vnf)

	return o
}

// fromInt wraps a known-non-negative integer without the error path.
func fromInt(n int) *Ordinal {
	switch n {
	case 0:
		return Zero
	case 1:
		return One
	default:
		return newOrdinal(n, nil, nil)
	}
}

// computeHash folds the three fields into one 64-bit FNV-1a hash.
// Term hashes reuse the cached hashes of the nested ordinals, so hashing is
// O(terms) rather than O(tree).
func computeHash(nat int, cnf []CnfTerm, vnf []VnfTerm) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	mix := func(x uint64) {
		binary.LittleEndian.PutUint64(buf[:], x)
		h.Write(buf[:])
	}

	mix(uint64(nat))
	if len(cnf) > 0 {
		mix(1)
		for _, t := range cnf {
			mix(t.Exp.hash)
			mix(uint64(t.Coeff))
		}
	}
	if len(vnf) > 0 {
		mix(2)
		for _, t := range vnf {
			mix(t.Sub.hash)
			mix(t.Arg.hash)
			mix(uint64(t.Coeff))
		}
	}

	return h.Sum64()
}

// computeKind: successor iff the natural part is non-zero, limit iff the
// natural part is zero and any term exists, zero otherwise.
func computeKind(nat int, cnf []CnfTerm, vnf []VnfTerm) Kind {
	switch {
	case nat != 0:
		return KindSuccessor
	case len(cnf) > 0 || len(vnf) > 0:
		return KindLimit
	default:
		return KindZero
	}
}

// computeTier derives the coarse magnitude class from the largest term.
//
// Naturals sit at (0, floor(log2 n)). A leading CNF term ω^p lifts the tier
// of p into level 1 as a height-in-hierarchy. A leading VNF term φ_A(B) can
// be dominated either by growth in A (when B is small, φ_A(B) > B) or by
// growth in B (when B is big, φ_A(B) ≥ B), so the tier is the max of both
// candidates; that keeps tier monotone non-decreasing in the true value.
func computeTier(nat int, cnf []CnfTerm, vnf []VnfTerm) tier {
	switch {
	case len(vnf) > 0:
		sub := vnf[0].Sub.tier
		fromSub := tier{level: sub.level + 2, value: sub.value}
		fromArg := vnf[0].Arg.tier
		if fromSub.cmp(fromArg) >= 0 {
			return fromSub
		}

		return fromArg
	case len(cnf) > 0:
		exp := cnf[0].Exp.tier
		height := 1
		if exp.level != 0 {
			height = exp.value + 1
		}

		return tier{level: 1, value: height}
	default:
		return tier{level: 0, value: binLog(nat)}
	}
}

// binLog is the base-2 floor logarithm, with binLog(0) = 0.
func binLog(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n)) - 1
}

// Int converts a finite ordinal back to its integer value.
// Returns ErrNotFinite when the ordinal is ω or larger.
func (o *Ordinal) Int() (int, error) {
	if !o.IsFinite() {
		return 0, ErrNotFinite
	}

	return o.nat, nil
}

// Predecessor returns x for a successor ordinal x+1.
// Ordinals do not support subtraction in general; only the natural part can
// be decremented. Returns ErrNotSuccessor for zero and limit ordinals.
func (o *Ordinal) Predecessor() (*Ordinal, error) {
	if o.kind != KindSuccessor {
		return nil, ErrNotSuccessor
	}

	return newOrdinal(o.nat-1, o.cnf, o.vnf), nil
}
