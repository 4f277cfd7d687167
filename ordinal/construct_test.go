package ordinal_test

import (
	"testing"

	"github.com/ordmath/transfinite/ordinal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_NegativeRejected verifies that negative integers are refused with
// ErrNegative at construction time, never coerced.
func TestNew_NegativeRejected(t *testing.T) {
	_, err := ordinal.New(-1)
	assert.ErrorIs(t, err, ordinal.ErrNegative, "negative integers are not ordinals")

	_, err = ordinal.New(-1 << 40)
	assert.ErrorIs(t, err, ordinal.ErrNegative)
}

// TestNew_Kinds checks the zero/successor/limit classification.
func TestNew_Kinds(t *testing.T) {
	zero, err := ordinal.New(0)
	require.NoError(t, err)
	assert.Equal(t, ordinal.KindZero, zero.Kind())
	assert.True(t, zero.IsZero())

	five, err := ordinal.New(5)
	require.NoError(t, err)
	assert.Equal(t, ordinal.KindSuccessor, five.Kind())
	assert.True(t, five.IsFinite())

	assert.Equal(t, ordinal.KindLimit, ordinal.Omega.Kind())
	assert.Equal(t, ordinal.KindLimit, ordinal.Epsilon0.Kind())
	assert.Equal(t, ordinal.KindSuccessor, ordinal.Omega.Add(ordinal.One).Kind())
}

// TestFromName_Aliases verifies every documented alias resolves to the
// canonical constant and unknown names error.
func TestFromName_Aliases(t *testing.T) {
	for _, alias := range []string{"omega", "w", `\omega`} {
		o, err := ordinal.FromName(alias)
		require.NoError(t, err, "alias %q", alias)
		assert.True(t, o.Equal(ordinal.Omega), "alias %q must be omega", alias)
	}
	for _, alias := range []string{"epsilon_0", "epsilon0", "eps_0", "eps0", "e_0", "e0", `\epsilon_0`} {
		o, err := ordinal.FromName(alias)
		require.NoError(t, err, "alias %q", alias)
		assert.True(t, o.Equal(ordinal.Epsilon0), "alias %q must be epsilon_0", alias)
	}
	for _, alias := range []string{"zeta_0", "zeta0", "z_0", "z0", `\zeta_0`} {
		o, err := ordinal.FromName(alias)
		require.NoError(t, err, "alias %q", alias)
		assert.True(t, o.Equal(ordinal.Zeta0), "alias %q must be zeta_0", alias)
	}

	_, err := ordinal.FromName("aleph_0")
	assert.ErrorIs(t, err, ordinal.ErrUnknownName)
}

// TestInt_RoundTrip verifies finite ordinals convert back to their integer
// and transfinite ones refuse with ErrNotFinite.
func TestInt_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 1 << 20} {
		o, err := ordinal.New(n)
		require.NoError(t, err)
		got, err := o.Int()
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	_, err := ordinal.Omega.Int()
	assert.ErrorIs(t, err, ordinal.ErrNotFinite)
	_, err = ordinal.Epsilon0.Int()
	assert.ErrorIs(t, err, ordinal.ErrNotFinite)
}

// TestPredecessor covers the domain violation taxonomy: predecessor exists
// exactly for successor ordinals.
func TestPredecessor(t *testing.T) {
	five := ordinal.MustNew(5)
	four, err := five.Predecessor()
	require.NoError(t, err)
	assert.True(t, four.EqualInt(4))

	wp1 := ordinal.Omega.Add(ordinal.One)
	back, err := wp1.Predecessor()
	require.NoError(t, err)
	assert.True(t, back.Equal(ordinal.Omega), "(omega+1)-1 must be omega")

	_, err = ordinal.Zero.Predecessor()
	assert.ErrorIs(t, err, ordinal.ErrNotSuccessor)
	_, err = ordinal.Omega.Predecessor()
	assert.ErrorIs(t, err, ordinal.ErrNotSuccessor, "limit ordinals have no predecessor")
}

// TestHash_ConsistentWithEqual verifies that equal values built along
// different arithmetic routes share a hash.
func TestHash_ConsistentWithEqual(t *testing.T) {
	w := ordinal.Omega
	a := w.Add(w) // omega + omega
	b, err := w.MulInt(2)
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash(), "equal ordinals must share a hash")

	c := ordinal.One.Add(w)
	require.True(t, c.Equal(w))
	assert.Equal(t, w.Hash(), c.Hash())
}

// TestAccessors_CopySemantics verifies CNF/VNF return defensive copies.
func TestAccessors_CopySemantics(t *testing.T) {
	v := ordinal.Omega.Add(ordinal.MustNew(3))
	terms := v.CNF()
	require.Len(t, terms, 1)
	assert.True(t, terms[0].Exp.EqualInt(1))
	assert.Equal(t, 1, terms[0].Coeff)
	assert.Equal(t, 3, v.Natural())

	terms[0].Coeff = 99
	assert.Equal(t, 1, v.CNF()[0].Coeff, "mutating the copy must not touch the value")

	assert.Nil(t, ordinal.MustNew(4).CNF())
	assert.Nil(t, ordinal.Omega.VNF())
	require.Len(t, ordinal.Zeta0.VNF(), 1)
	assert.True(t, ordinal.Zeta0.VNF()[0].Sub.EqualInt(2))
}
