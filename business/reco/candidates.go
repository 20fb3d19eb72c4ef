package reco

import (
	"hash/fnv"
	"math/rand"
)

const (
	// candidateCeiling bounds how many items a single prediction batch
	// may carry under the full-catalog policy.
	candidateCeiling = 1000

	// sampleSeedBase combines with the user hash so the subsample is
	// reproducible per user across requests.
	sampleSeedBase = 42
)

// Selector builds the bounded candidate set for one request. It is
// read-only after construction.
type Selector struct {
	items *IDMapping
	mine  []int
}

// NewSelector wires the item mapping and the optional restricted
// ("mine") index subset.
func NewSelector(items *IDMapping, mine []int) *Selector {
	return &Selector{
		items: items,
		mine:  mine,
	}
}

// Select returns the internal item indices eligible for scoring. rated
// holds external ids the user has already reviewed; excluding them never
// empties the result — if it would, the exclusion is dropped and the
// unfiltered set (restricted subset or full catalog, per policy) comes
// back instead. The output is duplicate-free and may be empty only when
// the underlying catalog is.
func (s *Selector) Select(externalUserID string, rated map[string]struct{}, mineOnly bool) []int {
	if mineOnly && s.mine != nil {
		return s.selectRestricted(rated)
	}
	return s.selectFullCatalog(externalUserID, rated)
}

func (s *Selector) selectRestricted(rated map[string]struct{}) []int {
	candidates := make([]int, 0, len(s.mine))
	for _, idx := range s.mine {
		id, ok := s.items.ToExternal(idx)
		if !ok {
			continue
		}
		if _, seen := rated[id]; seen {
			continue
		}
		candidates = append(candidates, idx)
	}

	// A user who rated every restricted course still gets the subset.
	if len(candidates) == 0 {
		candidates = append(candidates, s.mine...)
	}

	return candidates
}

func (s *Selector) selectFullCatalog(externalUserID string, rated map[string]struct{}) []int {
	total := s.items.Len()
	candidates := make([]int, 0, total)
	for idx := 0; idx < total; idx++ {
		id, _ := s.items.ToExternal(idx)
		if _, seen := rated[id]; seen {
			continue
		}
		candidates = append(candidates, idx)
	}

	if len(candidates) == 0 {
		for idx := 0; idx < total; idx++ {
			candidates = append(candidates, idx)
		}
	}

	if len(candidates) > candidateCeiling {
		candidates = sampleCandidates(externalUserID, candidates)
	}

	return candidates
}

// sampleCandidates reduces an oversized set to exactly candidateCeiling
// entries. The permutation is seeded from a stable hash of the user id,
// so the same user gets the same sample on every request.
func sampleCandidates(externalUserID string, candidates []int) []int {
	seed := sampleSeedBase + int64(userSampleHash(externalUserID)%100000)
	r := rand.New(rand.NewSource(seed))

	perm := r.Perm(len(candidates))
	out := make([]int, candidateCeiling)
	for i := 0; i < candidateCeiling; i++ {
		out[i] = candidates[perm[i]]
	}

	return out
}

func userSampleHash(externalUserID string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(externalUserID))
	return h.Sum32()
}
