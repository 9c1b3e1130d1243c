package selector

import (
	"path"
	"strings"
)

// Enumerator classifies raw tree entries into candidates and exclusions.
// It is a pure classification pass: no side effects, no network.
type Enumerator struct {
	patterns Patterns
	// oversizeBytes is the absolute per-file ceiling protecting the content
	// fetch step. It is independent of the payload budget.
	oversizeBytes int
}

// NewEnumerator creates an enumerator with the given pattern sets and the
// absolute oversized-file ceiling.
func NewEnumerator(patterns Patterns, oversizeBytes int) *Enumerator {
	return &Enumerator{
		patterns:      patterns,
		oversizeBytes: oversizeBytes,
	}
}

// Enumerate walks the flat listing and produces two disjoint lists covering
// every regular-file entry exactly once. Directory entries are neither
// candidates nor exclusions.
//
// Exclusion rules apply in fixed order, first match wins:
// vendor/build directory, oversized file, binary asset, lock file.
// The size ceiling is checked before the binary-pattern rules so that a huge
// asset is reported for its size even when it would also match by extension.
func (e *Enumerator) Enumerate(entries []FileEntry) ([]Candidate, []Exclusion) {
	candidates := make([]Candidate, 0, len(entries))
	var excluded []Exclusion

	for _, entry := range entries {
		if entry.IsDir || entry.Path == "" {
			continue
		}

		if reason, ok := e.exclude(entry); ok {
			excluded = append(excluded, Exclusion{Path: entry.Path, Reason: reason})
			continue
		}

		category := Classify(entry.Path, e.patterns)
		candidates = append(candidates, Candidate{
			Path:     entry.Path,
			Category: category,
			Size:     entry.Size,
			Score:    Score(category, entry.Path, entry.Size),
		})
	}

	return candidates, excluded
}

func (e *Enumerator) exclude(entry FileEntry) (ExclusionReason, bool) {
	if e.underVendorDir(entry.Path) {
		return ExcludedVendorOrBuildDir, true
	}
	if e.oversizeBytes > 0 && entry.Size > e.oversizeBytes {
		return ExcludedOversizedFile, true
	}
	if e.patterns.BinaryExts[ext(entry.Path)] {
		return ExcludedBinaryAsset, true
	}
	if e.patterns.LockFiles[strings.ToLower(basename(entry.Path))] {
		return ExcludedLockFile, true
	}
	return 0, false
}

func (e *Enumerator) underVendorDir(p string) bool {
	for _, part := range strings.Split(p, "/") {
		if e.patterns.VendorDirs[part] {
			return true
		}
	}
	return false
}

func basename(p string) string {
	return path.Base(p)
}

func ext(p string) string {
	return strings.ToLower(path.Ext(p))
}

func depth(p string) int {
	return strings.Count(p, "/")
}
