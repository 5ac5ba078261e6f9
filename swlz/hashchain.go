package swlz

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// DefaultSeedLength is the k-mer width of the HashChainMatcher hash table.
const DefaultSeedLength = 4

// HashChainMatcher is an exact matcher built on an incrementally grown,
// xxhash-keyed k-mer table, in the style of classic LZ77 encoders.
//
// Candidates for matches of length >= SeedLength come from the k-mer chain of
// the window starting at the queried position; shorter matches are resolved
// by walking the per-symbol occurrence chain with the extension capped below
// SeedLength. Every candidate is verified symbol by symbol, so hash
// collisions cannot produce a wrong length.
//
// The table grows as the scan advances, which keeps every candidate inside
// the history prefix but makes the structure inherently sequential. Expected
// cost is near-linear on stochastic input; adversarial inputs with many
// equal-seed candidates degrade toward the naive quadratic scan, which is why
// AutomatonMatcher is the default strategy.
type HashChainMatcher struct {
	// SeedLength is the k-mer width; values below 2 fall back to
	// DefaultSeedLength.
	SeedLength int
}

var _ Matcher = HashChainMatcher{}

// NewHashChainMatcher creates a hash-chain matcher with DefaultSeedLength.
func NewHashChainMatcher() HashChainMatcher {
	return HashChainMatcher{SeedLength: DefaultSeedLength}
}

// MatchLengths returns the exact longest-previous-match length for every
// position of seq.
func (m HashChainMatcher) MatchLengths(seq []int) []int {
	n := len(seq)
	lengths := make([]int, n)
	if n == 0 {
		return lengths
	}

	k := m.SeedLength
	if k < 2 {
		k = DefaultSeedLength
	}

	// seeds maps a k-mer hash to its window start positions; symbols maps a
	// symbol to its occurrence positions. Both only ever hold history.
	seeds := make(map[uint64][]int32)
	symbols := make(map[int][]int32)
	seedBuf := make([]byte, 4*k)

	hashSeed := func(start int) uint64 {
		for i := 0; i < k; i++ {
			binary.LittleEndian.PutUint32(seedBuf[4*i:], uint32(seq[start+i]))
		}

		return xxhash.Sum64(seedBuf)
	}

	for i := 0; i < n; i++ {
		best := 0

		// Matches shorter than the seed width: walk the symbol chain, most
		// recent first, with the extension capped at k-1.
		chain := symbols[seq[i]]
		for c := len(chain) - 1; c >= 0 && best < k-1; c-- {
			j := int(chain[c])
			limit := k - 1
			if i-j < limit {
				limit = i - j
			}
			if n-i < limit {
				limit = n - i
			}
			l := 0
			for l < limit && seq[j+l] == seq[i+l] {
				l++
			}
			if l > best {
				best = l
			}
		}

		// Matches of length >= k: every such match starts at a position whose
		// k-mer equals the one at i, so its start is on the seed chain.
		if i+k <= n {
			for _, j32 := range seeds[hashSeed(i)] {
				j := int(j32)
				limit := i - j // the source run must end at or before i-1
				if n-i < limit {
					limit = n - i
				}
				if limit < k {
					continue
				}
				l := 0
				for l < limit && seq[j+l] == seq[i+l] {
					l++
				}
				if l >= k && l > best {
					best = l
					if best == n-i {
						break
					}
				}
			}
		}

		lengths[i] = best

		// Grow the history index: the symbol at i, and the k-mer window that
		// ends at i (fully inside the history of all later positions).
		symbols[seq[i]] = append(symbols[seq[i]], int32(i))
		if w := i - k + 1; w >= 0 {
			h := hashSeed(w)
			seeds[h] = append(seeds[h], int32(w))
		}
	}

	return lengths
}
