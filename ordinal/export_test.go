// SPDX-License-Identifier: MIT

package ordinal

// Test-only exports. Tiers are deliberately unexported (they are a lossy
// implementation detail, not a mathematical property), but the ordering
// contract tier(a) < tier(b) ⇒ a < b still needs direct coverage.

// TierCmp exposes the tier order of two ordinals to tests.
func TierCmp(a, b *Ordinal) int { return a.tier.cmp(b.tier) }

// SeqMode reports which production mode a sequence classified into:
// 0 direct, 1 delegate, 2 stepped.
func SeqMode(fs *FundamentalSequence) int { return int(fs.mode) }

// SeqCacheLen reports how many stride entries the stepped cache holds.
func SeqCacheLen(fs *FundamentalSequence) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return len(fs.cache)
}

// SumBisected exposes the bisected fold for direct testing.
func SumBisected(pieces []*Ordinal) *Ordinal { return sumBisected(pieces) }
