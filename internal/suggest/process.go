package suggest

import (
	"encoding/json"
	"sort"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

// Result is the outcome of post-processing a candidate batch. The accepted
// set is sorted ascending by index, overlap-free and deduplicated; every
// member has passed positional validation against the source text.
type Result struct {
	Suggestions []types.Suggestion
	Rejections  []Rejection
	Score       int
}

// Dropped returns how many candidates did not survive validation.
func (r Result) Dropped() int {
	return len(r.Rejections)
}

// Process runs the full post-processing pipeline over raw candidates:
// per-candidate validation, deduplication on (index, endIndex, suggested),
// confidence-ranked overlap resolution, a final sort, and scoring. Invalid
// candidates are filtered, never propagated as errors.
func Process(candidates []json.RawMessage, originalText string) Result {
	accepted := make([]types.Suggestion, 0, len(candidates))
	var rejections []Rejection
	for _, cand := range candidates {
		s, rej := ValidateCandidate(cand, originalText)
		if rej != nil {
			rejections = append(rejections, *rej)
			continue
		}
		accepted = append(accepted, s)
	}

	accepted = dedupe(accepted)
	accepted = resolveOverlaps(accepted)

	// Ascending order holds by construction after the sweep, but callers
	// rely on it as a hard invariant, so assert it explicitly.
	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Index < accepted[j].Index
	})

	return Result{
		Suggestions: accepted,
		Rejections:  rejections,
		Score:       Score(accepted, originalText),
	}
}

type editKey struct {
	index     int
	endIndex  int
	suggested string
}

// dedupe drops suggestions sharing an identical (index, endIndex, suggested)
// triple, keeping the first occurrence. Multiple merged sources routinely
// emit the same edit twice.
func dedupe(in []types.Suggestion) []types.Suggestion {
	seen := make(map[editKey]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		key := editKey{s.Index, s.EndIndex, s.Suggested}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// resolveOverlaps sweeps candidates in ascending index order, keeping an
// accepted set that is overlap-free. A candidate evicts every accepted
// suggestion it overlaps only if its confidence is strictly higher than each
// of them; otherwise the candidate is discarded, so on a confidence tie the
// incumbent wins. This is a greedy, order-dependent sweep, not a globally
// optimal interval selection.
func resolveOverlaps(in []types.Suggestion) []types.Suggestion {
	sorted := make([]types.Suggestion, len(in))
	copy(sorted, in)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index < sorted[j].Index
	})

	accepted := make([]types.Suggestion, 0, len(sorted))
	for _, cand := range sorted {
		var evict []int
		discard := false
		for i, inc := range accepted {
			if !overlaps(inc, cand) {
				continue
			}
			if cand.Confidence > inc.Confidence {
				evict = append(evict, i)
			} else {
				discard = true
				break
			}
		}
		if discard {
			continue
		}
		for k := len(evict) - 1; k >= 0; k-- {
			i := evict[k]
			accepted = append(accepted[:i], accepted[i+1:]...)
		}
		accepted = append(accepted, cand)
	}
	return accepted
}

// overlaps reports whether the [index, endIndex) ranges of a and b intersect.
func overlaps(a, b types.Suggestion) bool {
	return a.Index < b.EndIndex && b.Index < a.EndIndex
}
