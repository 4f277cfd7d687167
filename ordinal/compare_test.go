package ordinal_test

import (
	"testing"

	"github.com/ordmath/transfinite/ordinal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCmp_FiniteAgreesWithIntegers verifies the order on finite ordinals is
// exactly the integer order, including the CmpInt mixed form.
func TestCmp_FiniteAgreesWithIntegers(t *testing.T) {
	for i := 0; i < 30; i++ {
		for j := 0; j < 30; j++ {
			oi, oj := ordinal.MustNew(i), ordinal.MustNew(j)
			assert.Equal(t, i == j, oi.Equal(oj), "i=%d j=%d", i, j)
			assert.Equal(t, i < j, oi.Less(oj), "i=%d j=%d", i, j)
			assert.Equal(t, i <= j, oi.Leq(oj), "i=%d j=%d", i, j)
			assert.Equal(t, i == j, oi.CmpInt(j) == 0, "i=%d j=%d", i, j)
			assert.Equal(t, i < j, oi.CmpInt(j) < 0, "i=%d j=%d", i, j)
		}
	}
}

// TestCmp_Constants fixes the ladder 1 < omega < epsilon_0 < zeta_0 and the
// transfinite-beats-finite rule.
func TestCmp_Constants(t *testing.T) {
	assert.True(t, ordinal.One.Less(ordinal.Omega))
	assert.True(t, ordinal.Omega.Less(ordinal.Epsilon0))
	assert.True(t, ordinal.Epsilon0.Less(ordinal.Zeta0))

	big := ordinal.MustNew(1 << 50)
	assert.True(t, big.Less(ordinal.Omega), "omega exceeds every finite ordinal")
	assert.Equal(t, 1, ordinal.Omega.CmpInt(1<<50))
}

// TestCmp_TierOrdering checks the tier contract on the internal fast path:
// tier(a) < tier(b) implies a < b, while equal tiers decide nothing.
func TestCmp_TierOrdering(t *testing.T) {
	ladder := []*ordinal.Ordinal{
		ordinal.MustNew(3),
		ordinal.Omega,
		ordinal.Omega.Pow(ordinal.Omega),
		ordinal.Epsilon0,
		ordinal.Zeta0,
		ordinal.Veblen(ordinal.Omega, ordinal.Zero),
	}
	for i, a := range ladder {
		for _, b := range ladder[i+1:] {
			require.True(t, a.Less(b))
			assert.LessOrEqual(t, ordinal.TierCmp(a, b), 0,
				"tier must be monotone: tier(%v) <= tier(%v)", a, b)
		}
	}

	// Same tier, different value: the exact comparator must decide.
	a := ordinal.Omega
	b := ordinal.Omega.Add(ordinal.One)
	assert.Equal(t, 0, ordinal.TierCmp(a, b))
	assert.True(t, a.Less(b))
}

// TestCmp_VeblenFixedPointRebasing exercises the subtle cross-subscript
// comparisons that require rewriting the larger-subscript term as an
// argument of the smaller subscript.
func TestCmp_VeblenFixedPointRebasing(t *testing.T) {
	// epsilon_1 < zeta_0 even though its subscript is smaller.
	eps1 := ordinal.Veblen(ordinal.One, ordinal.One)
	assert.True(t, eps1.Less(ordinal.Zeta0))

	// omega^(epsilon_0 + 1) sits strictly between epsilon_0 and epsilon_1.
	above := ordinal.Veblen(ordinal.Zero, ordinal.Epsilon0.Add(ordinal.One))
	assert.True(t, ordinal.Epsilon0.Less(above))
	assert.True(t, above.Less(eps1))

	// phi_{zeta_0}(0) > phi_omega(0), but phi_omega can still reach past it
	// with a large enough argument.
	phiZeta := ordinal.Veblen(ordinal.Zeta0, ordinal.Zero)
	phiOmega := ordinal.Veblen(ordinal.Omega, ordinal.Zero)
	require.True(t, phiOmega.Less(phiZeta))
	assert.True(t, phiZeta.Less(ordinal.Veblen(ordinal.Omega, phiZeta.Add(ordinal.One))))

	// Nested towers from the reference corpus.
	towers := []*ordinal.Ordinal{
		ordinal.Veblen(ordinal.Veblen(ordinal.Epsilon0, ordinal.Zero), ordinal.Zero),
		ordinal.Veblen(ordinal.Veblen(ordinal.Epsilon0, ordinal.Zero), ordinal.One),
		ordinal.Veblen(ordinal.Veblen(ordinal.Epsilon0, ordinal.One), ordinal.Zero),
	}
	assert.True(t, ordinal.Zeta0.Less(towers[0]))
	assert.True(t, towers[0].Less(towers[1]))
	assert.True(t, towers[0].Less(towers[2]))
	assert.True(t, towers[1].Less(towers[2]))
	assert.True(t, ordinal.Veblen(towers[1], towers[2]).Less(ordinal.Veblen(towers[2], towers[1])))
}

// TestCmp_TotalOrderSample verifies antisymmetry and transitivity over a
// mixed corpus of finite, CNF and VNF values.
func TestCmp_TotalOrderSample(t *testing.T) {
	w := ordinal.Omega
	corpus := []*ordinal.Ordinal{
		ordinal.Zero,
		ordinal.MustNew(4),
		w,
		w.Add(ordinal.MustNew(3)),
		w.Mul(ordinal.MustNew(2)),
		w.Mul(w),
		w.Pow(w),
		ordinal.Epsilon0,
		ordinal.Epsilon0.Mul(w),
		ordinal.Zeta0,
	}

	// corpus is listed in strictly increasing order.
	for i, a := range corpus {
		assert.True(t, a.Equal(a))
		for _, b := range corpus[i+1:] {
			assert.True(t, a.Less(b), "%v < %v", a, b)
			assert.False(t, b.Less(a))
			assert.False(t, a.Equal(b))
		}
	}
}

// TestCmp_DeepNestingLinear guards against exponential blowup: comparing
// two depth-d veblen(1, .) towers must stay cheap up to d=50.
func TestCmp_DeepNestingLinear(t *testing.T) {
	const depth = 50
	build := func(d int) *ordinal.Ordinal {
		v := ordinal.Zero
		for i := 0; i < d; i++ {
			v = ordinal.Veblen(ordinal.One, v)
		}
		return v
	}

	a, b := build(depth), build(depth)
	shorter := build(depth - 1)

	assert.True(t, a.Equal(b), "identical towers must compare equal")
	assert.True(t, shorter.Less(a), "shallower tower must compare smaller")
	assert.Equal(t, a.Hash(), b.Hash())
}
