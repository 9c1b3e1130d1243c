// Package selector chooses which repository files are worth handing to the
// summarization model. Given the flat tree listing of a repository and a
// budget policy, it classifies every file, ranks the survivors, and greedily
// admits content under a hard total-size cap. The whole pass is a pure
// computation over already-known metadata; file contents are fetched later,
// only for admitted paths.
package selector

// FileEntry is one entry from the repository's flat tree listing.
type FileEntry struct {
	// Path is slash-separated and relative to the repo root.
	Path  string
	Size  int
	IsDir bool
}

// Category is the coarse classification of a file, derived purely from its
// path pattern and extension. Exactly one category per file.
type Category int

const (
	CategoryReadme Category = iota
	CategoryBuildConfig
	CategorySourceCode
	CategoryTest
	CategoryDoc
	CategoryOther
)

// String returns the human-readable category name used in payload annotations.
func (c Category) String() string {
	switch c {
	case CategoryReadme:
		return "README"
	case CategoryBuildConfig:
		return "build config"
	case CategorySourceCode:
		return "source code"
	case CategoryTest:
		return "tests"
	case CategoryDoc:
		return "documentation"
	default:
		return "other"
	}
}

// Tier returns the priority tier rank for the category. Lower is higher
// priority; it is the primary sort key for admission.
func (c Category) Tier() int {
	return int(c)
}

// ExclusionReason explains why a file never became a candidate, or why a
// candidate was dropped after selection.
type ExclusionReason int

const (
	ExcludedVendorOrBuildDir ExclusionReason = iota
	ExcludedBinaryAsset
	ExcludedLockFile
	ExcludedOversizedFile
	// ExcludedFetchUnavailable marks a candidate whose content could not be
	// retrieved. It is a soft exclusion recorded after selection.
	ExcludedFetchUnavailable
)

// String returns the reason name used in logs and the omitted-files section.
func (r ExclusionReason) String() string {
	switch r {
	case ExcludedVendorOrBuildDir:
		return "vendor/build directory"
	case ExcludedBinaryAsset:
		return "binary asset"
	case ExcludedLockFile:
		return "lock file"
	case ExcludedOversizedFile:
		return "oversized file"
	case ExcludedFetchUnavailable:
		return "content unavailable"
	default:
		return "excluded"
	}
}

// Exclusion records a file that was filtered out, with its reason.
type Exclusion struct {
	Path   string
	Reason ExclusionReason
}

// Candidate is a file eligible for inclusion in the payload. Score is a pure
// function of (category, size, path); no candidate depends on another.
type Candidate struct {
	Path     string
	Category Category
	Size     int
	Score    int
}

// BudgetPolicy is the configuration for the allocator. All values are
// character counts.
type BudgetPolicy struct {
	// TotalChars is the hard cap on admitted content plus annotation overhead.
	TotalChars int
	// PerFileChars caps each admitted file's content.
	PerFileChars int
	// ReadmeChars replaces PerFileChars for README files, reflecting their
	// outsized importance per unit size. Never exceeds the remaining budget.
	ReadmeChars int
	// PerFileOverhead is reserved per admitted file, on top of the path
	// length, for the header and separator the assembler renders.
	PerFileOverhead int
}

// SelectedFile is one admitted entry of a Selection. The included byte range
// is content[:Length], a straight prefix cut.
type SelectedFile struct {
	Path      string
	Category  Category
	Length    int
	Truncated bool
}

// Selection is the allocator's output. Files are in admission order (tier,
// then score descending), not repository order. Skipped lists ranked
// candidates that did not fit the budget, in rank order.
type Selection struct {
	Files []SelectedFile
	// ConsumedChars is the running total charged against the budget:
	// admitted content plus per-file annotation overhead.
	ConsumedChars int
	Skipped       []string
}

// IsEmpty reports whether nothing was admitted. An empty selection is a
// valid result, not an error.
func (s Selection) IsEmpty() bool {
	return len(s.Files) == 0
}
