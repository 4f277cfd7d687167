// Package ordinal: fundamental sequences.
package ordinal

import (
	"iter"
	"sync"
)

// DefaultCacheEvery is the default memoization stride for iterated-step
// sequences: every k-th computed value is retained, bounding recomputation
// to O(n/k) extra steps when indices are requested out of order.
const DefaultCacheEvery = 16

// fsMode describes how a sequence produces its n-th element.
type fsMode int

const (
	// fsDirect computes element n straight from the index (A[n] = n, plus an
	// optional wrapping transform).
	fsDirect fsMode = iota

	// fsDelegate indexes into a child sequence and applies a wrapping
	// transform to its result.
	fsDelegate

	// fsStepped applies a step function n times from a start value, with a
	// stride cache of intermediate results.
	fsStepped
)

// FundamentalSequence is the canonical increasing sequence of smaller
// ordinals converging to one limit ordinal, indexable without bound.
//
// Construction classifies the source's normal form once into one of the
// three modes; indexing afterwards is pure apart from the stride cache,
// which is guarded by a mutex so a sequence may be shared across
// goroutines.
type FundamentalSequence struct {
	source     *Ordinal
	mode       fsMode
	child      *FundamentalSequence       // fsDelegate
	step       func(*Ordinal) *Ordinal    // fsStepped
	then       func(*Ordinal) *Ordinal    // optional post-transform
	cacheEvery int

	mu    sync.Mutex
	cache []*Ordinal // fsStepped: cache[i] = step^(i·cacheEvery)(start)
}

// NewFundamentalSequence builds the fundamental sequence of the limit
// ordinal v. cacheEvery is the memoization stride; values below 1 select
// DefaultCacheEvery. Returns ErrNotLimit for zero and successor ordinals
// and ErrNilOrdinal for nil.
//
// Case analysis on the normal form of v:
//
//	more than one term        peel all but the last term, recurse on the
//	                          last, add the peeled prefix back afterwards
//	leading coeff > 1         same peel with a single coefficient
//	φ_s(limit L)              recurse into L, wrap with φ_s(·)
//	φ_0(succ v+1)             A[n] = φ_0(v) · n
//	φ_{s+1}(arg)              iterate φ_s from 0, or from φ_{s+1}(arg-1)+1
//	φ_{limit S}(arg)          recurse into S, wrap each a as φ_a(fixed arg)
//	ω^1                       A[n] = n
//	ω^(succ p+1)              A[n] = ω^p · n
//	ω^(limit L)               recurse into L, wrap with ω^(·)
func NewFundamentalSequence(v *Ordinal, cacheEvery int) (*FundamentalSequence, error) {
	if v == nil {
		return nil, ErrNilOrdinal
	}
	if v.kind != KindLimit {
		return nil, ErrNotLimit
	}
	if cacheEvery < 1 {
		cacheEvery = DefaultCacheEvery
	}

	fs := &FundamentalSequence{source: v, cacheEvery: cacheEvery}
	start := Zero
	var delegate *Ordinal

	switch {
	case len(v.vnf)+len(v.cnf) > 1:
		// Peel everything but the smallest term; index it and add the rest.
		var prefix *Ordinal
		if len(v.cnf) > 0 {
			prefix = newOrdinal(0, v.cnf[:len(v.cnf)-1], v.vnf)
			delegate = newOrdinal(0, v.cnf[len(v.cnf)-1:], nil)
		} else {
			prefix = newOrdinal(0, nil, v.vnf[:len(v.vnf)-1])
			delegate = newOrdinal(0, nil, v.vnf[len(v.vnf)-1:])
		}
		fs.then = prefix.Add

	case len(v.vnf) > 0:
		t := v.vnf[0]
		switch {
		case t.Coeff > 1:
			prefix := newOrdinal(0, nil, []VnfTerm{{Sub: t.Sub, Arg: t.Arg, Coeff: t.Coeff - 1}})
			delegate = newOrdinal(0, nil, []VnfTerm{{Sub: t.Sub, Arg: t.Arg, Coeff: 1}})
			fs.then = prefix.Add

		case t.Arg.kind == KindLimit:
			delegate = t.Arg
			sub := t.Sub
			fs.then = func(x *Ordinal) *Ordinal { return Veblen(sub, x) }

		case t.Sub.IsZero():
			// Inside the Veblen range with subscript 0 the argument cannot
			// be zero or a limit here, so it is a successor: φ_0(v+1)[n] =
			// φ_0(v) · n.
			pred, _ := t.Arg.Predecessor()
			factor := Veblen(Zero, pred)
			fs.mode = fsDirect
			fs.then = factor.Mul

		case t.Sub.kind == KindSuccessor:
			if !t.Arg.IsZero() {
				predArg, _ := t.Arg.Predecessor()
				start = Veblen(t.Sub, predArg).Add(One)
			}
			predSub, _ := t.Sub.Predecessor()
			fs.mode = fsStepped
			fs.step = func(x *Ordinal) *Ordinal { return Veblen(predSub, x) }

		default:
			// Limit subscript: climb the subscripts themselves.
			arg := Zero
			if !t.Arg.IsZero() {
				predArg, _ := t.Arg.Predecessor()
				arg = Veblen(t.Sub, predArg).Add(One)
			}
			delegate = t.Sub
			fs.then = func(a *Ordinal) *Ordinal { return Veblen(a, arg) }
		}

	default:
		t := v.cnf[0]
		switch {
		case t.Coeff > 1:
			prefix := newOrdinal(0, []CnfTerm{{Exp: t.Exp, Coeff: t.Coeff - 1}}, nil)
			delegate = newOrdinal(0, []CnfTerm{{Exp: t.Exp, Coeff: 1}}, nil)
			fs.then = prefix.Add

		case t.Exp.EqualInt(1):
			// ω[n] = n.
			fs.mode = fsDirect

		case t.Exp.kind == KindSuccessor:
			pred, _ := t.Exp.Predecessor()
			factor := Veblen(Zero, pred)
			fs.mode = fsDirect
			fs.then = factor.Mul

		default:
			delegate = t.Exp
			fs.then = func(x *Ordinal) *Ordinal { return Veblen(Zero, x) }
		}
	}

	if delegate != nil {
		fs.mode = fsDelegate
		child, err := NewFundamentalSequence(delegate, cacheEvery)
		if err != nil {
			return nil, err
		}
		fs.child = child
	}
	if fs.mode == fsStepped {
		fs.cache = []*Ordinal{start}
	}

	return fs, nil
}

// Source is the limit ordinal this sequence converges to.
func (fs *FundamentalSequence) Source() *Ordinal { return fs.source }

// Index returns the n-th element of the sequence.
// Returns ErrNegativeIndex for n < 0.
func (fs *FundamentalSequence) Index(n int) (*Ordinal, error) {
	if n < 0 {
		return nil, ErrNegativeIndex
	}

	var result *Ordinal
	switch fs.mode {
	case fsDirect:
		result = fromInt(n)
	case fsDelegate:
		var err error
		if result, err = fs.child.Index(n); err != nil {
			return nil, err
		}
	default:
		result = fs.stepTo(n)
	}
	if fs.then != nil {
		result = fs.then(result)
	}

	return result, nil
}

// stepTo applies the step function n times from the start value, reusing
// and extending the stride cache.
func (fs *FundamentalSequence) stepTo(n int) *Ordinal {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	stride, rest := n/fs.cacheEvery, n%fs.cacheEvery
	for len(fs.cache) <= stride {
		last := fs.cache[len(fs.cache)-1]
		for i := 0; i < fs.cacheEvery; i++ {
			last = fs.step(last)
		}
		fs.cache = append(fs.cache, last)
	}
	last := fs.cache[stride]
	for i := 0; i < rest; i++ {
		last = fs.step(last)
	}

	return last
}

// All iterates the sequence from index 0 without bound.
func (fs *FundamentalSequence) All() iter.Seq[*Ordinal] {
	return func(yield func(*Ordinal) bool) {
		for n := 0; ; n++ {
			v, err := fs.Index(n)
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Fundamental returns the fundamental sequence of o with the default
// stride, building it on first use and caching it on the ordinal.
// Returns ErrNotLimit for zero and successor ordinals.
func (o *Ordinal) Fundamental() (*FundamentalSequence, error) {
	o.fundMu.Lock()
	defer o.fundMu.Unlock()

	if o.fund == nil {
		fs, err := NewFundamentalSequence(o, DefaultCacheEvery)
		if err != nil {
			return nil, err
		}
		o.fund = fs
	}

	return o.fund, nil
}

// Index is shorthand for Fundamental().Index(n): the n-th element of the
// fundamental sequence of a limit ordinal.
func (o *Ordinal) Index(n int) (*Ordinal, error) {
	fs, err := o.Fundamental()
	if err != nil {
		return nil, err
	}

	return fs.Index(n)
}
