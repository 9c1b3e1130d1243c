package selector

import (
	"fmt"
	"sort"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/errors"
)

// Validate checks the policy invariants. A policy that fails here is a
// configuration error and the allocator refuses to touch any candidate.
func (p BudgetPolicy) Validate() error {
	if p.PerFileChars <= 0 {
		return errors.ConfigError(fmt.Sprintf("per-file cap must be positive, got %d", p.PerFileChars), nil)
	}
	if p.TotalChars < p.PerFileChars {
		return errors.ConfigError(fmt.Sprintf("total cap (%d) must be >= per-file cap (%d)", p.TotalChars, p.PerFileChars), nil)
	}
	if p.ReadmeChars <= 0 || p.ReadmeChars > p.TotalChars {
		return errors.ConfigError(fmt.Sprintf("README cap (%d) must be in 1..total cap (%d)", p.ReadmeChars, p.TotalChars), nil)
	}
	if p.PerFileOverhead < 0 {
		return errors.ConfigError(fmt.Sprintf("per-file overhead must be non-negative, got %d", p.PerFileOverhead), nil)
	}
	return nil
}

// Allocator admits ranked candidates into a Selection under the budget
// policy. The algorithm is a greedy rank-then-fill: tie-break rules and
// monotonic admission order are the load-bearing contract, so the selection
// order must never be changed without revisiting the callers' expectations.
type Allocator struct {
	policy BudgetPolicy
}

// NewAllocator validates the policy and returns an allocator. An invalid
// policy fails fast, before any candidate is processed.
func NewAllocator(policy BudgetPolicy) (*Allocator, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Allocator{policy: policy}, nil
}

// Rank orders candidates for admission: tier ascending (higher priority
// first), score descending within the tier, then path depth, then lexical
// path order. The ordering is total, so identical inputs always produce
// identical selections.
func Rank(candidates []Candidate) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Category.Tier() != b.Category.Tier() {
			return a.Category.Tier() < b.Category.Tier()
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if depth(a.Path) != depth(b.Path) {
			return depth(a.Path) < depth(b.Path)
		}
		return a.Path < b.Path
	})

	return ranked
}

// Allocate ranks the candidates and greedily admits them. The returned
// Selection never consumes more than the total cap, and admitting is
// monotonic: a lower-ranked candidate can never displace a higher-ranked one.
// An empty candidate list yields an empty, valid Selection.
func (a *Allocator) Allocate(candidates []Candidate) Selection {
	ranked := Rank(candidates)

	var sel Selection
	remaining := a.policy.TotalChars

	for i, c := range ranked {
		// Overhead scales with the path so long paths cannot push the
		// rendered headers past the cap.
		overhead := a.policy.PerFileOverhead + len(c.Path)

		room := remaining - overhead
		if room <= 0 {
			// Budget exhausted. Everything after this candidate ranks no
			// higher, so the loop ends here.
			for _, rest := range ranked[i:] {
				sel.Skipped = append(sel.Skipped, rest.Path)
			}
			break
		}

		fileCap := a.policy.PerFileChars
		if c.Category == CategoryReadme {
			fileCap = a.policy.ReadmeChars
		}

		admissible := c.Size
		if admissible > fileCap {
			admissible = fileCap
		}
		if admissible > room {
			admissible = room
		}
		if admissible <= 0 {
			// Empty file: nothing to admit, but the budget is intact for
			// the candidates that follow.
			sel.Skipped = append(sel.Skipped, c.Path)
			continue
		}

		sel.Files = append(sel.Files, SelectedFile{
			Path:      c.Path,
			Category:  c.Category,
			Length:    admissible,
			Truncated: admissible < c.Size,
		})
		consumed := admissible + overhead
		remaining -= consumed
		sel.ConsumedChars += consumed
	}

	return sel
}
