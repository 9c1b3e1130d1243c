package payload

import (
	"fmt"
	"sort"
	"strings"
)

// maxStructureEntries bounds the layout hint to the most populated
// top-level entries.
const maxStructureEntries = 8

// BuildStructureHint produces a one-line description of the repository's
// top-level layout from the full tree paths, used both in the model prompt
// and in the non-LLM fallback summary.
func BuildStructureHint(paths []string) string {
	counts := make(map[string]int)
	for _, p := range paths {
		if p == "" {
			continue
		}
		top := p
		if idx := strings.IndexByte(p, '/'); idx >= 0 {
			top = p[:idx]
		}
		counts[top]++
	}

	if len(counts) == 0 {
		return "Top-level layout: (could not infer)"
	}

	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	if len(entries) > maxStructureEntries {
		entries = entries[:maxStructureEntries]
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(e.name, ".") {
			parts = append(parts, fmt.Sprintf("`%s` (%d)", e.name, e.count))
		} else {
			parts = append(parts, fmt.Sprintf("`%s/` (%d items)", e.name, e.count))
		}
	}
	return "Top-level layout: " + strings.Join(parts, ", ")
}
