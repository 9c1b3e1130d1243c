package selector

import "testing"

func defaultEnumerator() *Enumerator {
	return NewEnumerator(DefaultPatterns(), 1024*1024)
}

// TestEnumerateCoversEveryFile verifies candidates and exclusions are
// disjoint and together cover every regular-file entry exactly once.
func TestEnumerateCoversEveryFile(t *testing.T) {
	entries := []FileEntry{
		{Path: "README.md", Size: 2000},
		{Path: "src", IsDir: true},
		{Path: "src/main.go", Size: 1500},
		{Path: "node_modules/lib/x.js", Size: 10000},
		{Path: "logo.png", Size: 500},
		{Path: "yarn.lock", Size: 90},
	}

	candidates, excluded := defaultEnumerator().Enumerate(entries)

	if len(candidates)+len(excluded) != 5 {
		t.Fatalf("Expected 5 classified files (dir skipped), got %d candidates + %d excluded",
			len(candidates), len(excluded))
	}

	seen := make(map[string]bool)
	for _, c := range candidates {
		seen[c.Path] = true
	}
	for _, e := range excluded {
		if seen[e.Path] {
			t.Errorf("Path %s appears in both candidates and exclusions", e.Path)
		}
		seen[e.Path] = true
	}
	for _, p := range []string{"README.md", "src/main.go", "node_modules/lib/x.js", "logo.png", "yarn.lock"} {
		if !seen[p] {
			t.Errorf("Path %s was not classified", p)
		}
	}
	if seen["src"] {
		t.Error("Directory entry should produce no record")
	}
}

// TestExclusionReasons verifies each exclusion rule fires with its reason.
func TestExclusionReasons(t *testing.T) {
	tests := []struct {
		name  string
		entry FileEntry
		want  ExclusionReason
	}{
		{"vendor dir", FileEntry{Path: "node_modules/react/index.js", Size: 100}, ExcludedVendorOrBuildDir},
		{"nested vendor dir", FileEntry{Path: "web/dist/bundle.js", Size: 100}, ExcludedVendorOrBuildDir},
		{"vcs metadata", FileEntry{Path: ".git/HEAD", Size: 20}, ExcludedVendorOrBuildDir},
		{"virtualenv", FileEntry{Path: ".venv/lib/python3.12/site.py", Size: 100}, ExcludedVendorOrBuildDir},
		{"binary image", FileEntry{Path: "assets/icon.png", Size: 100}, ExcludedBinaryAsset},
		{"archive", FileEntry{Path: "release.tar", Size: 100}, ExcludedBinaryAsset},
		{"lock file", FileEntry{Path: "package-lock.json", Size: 100}, ExcludedLockFile},
		{"go checksum", FileEntry{Path: "go.sum", Size: 100}, ExcludedLockFile},
		{"oversized", FileEntry{Path: "data/corpus.csv", Size: 2 * 1024 * 1024}, ExcludedOversizedFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, excluded := defaultEnumerator().Enumerate([]FileEntry{tt.entry})
			if len(candidates) != 0 {
				t.Fatalf("Entry should be excluded, got candidate %+v", candidates[0])
			}
			if len(excluded) != 1 {
				t.Fatalf("Expected 1 exclusion, got %d", len(excluded))
			}
			if excluded[0].Reason != tt.want {
				t.Errorf("Reason = %v, want %v", excluded[0].Reason, tt.want)
			}
		})
	}
}

// TestOversizedBeatsBinary pins the rule order: the size ceiling is evaluated
// before the binary-pattern check, so a huge asset reports OversizedFile even
// though it would also match BinaryAsset.
func TestOversizedBeatsBinary(t *testing.T) {
	entry := FileEntry{Path: "assets/logo.png", Size: 50 * 1024 * 1024}

	_, excluded := defaultEnumerator().Enumerate([]FileEntry{entry})
	if len(excluded) != 1 {
		t.Fatalf("Expected 1 exclusion, got %d", len(excluded))
	}
	if excluded[0].Reason != ExcludedOversizedFile {
		t.Errorf("Reason = %v, want ExcludedOversizedFile", excluded[0].Reason)
	}
}

// TestVendorBeatsEverything pins vendor-directory matching as the first rule.
func TestVendorBeatsEverything(t *testing.T) {
	entry := FileEntry{Path: "node_modules/pkg/huge.png", Size: 50 * 1024 * 1024}

	_, excluded := defaultEnumerator().Enumerate([]FileEntry{entry})
	if len(excluded) != 1 || excluded[0].Reason != ExcludedVendorOrBuildDir {
		t.Errorf("Expected VendorOrBuildDir for a vendored binary, got %+v", excluded)
	}
}

// TestUnknownExtensionDegradesToOther verifies classification never rejects
// an odd file; it lands in the Other tier instead.
func TestUnknownExtensionDegradesToOther(t *testing.T) {
	candidates, excluded := defaultEnumerator().Enumerate([]FileEntry{
		{Path: "weird.xyz123", Size: 50},
	})
	if len(excluded) != 0 {
		t.Fatalf("Unknown extension should not be excluded: %+v", excluded)
	}
	if len(candidates) != 1 || candidates[0].Category != CategoryOther {
		t.Errorf("Expected CategoryOther candidate, got %+v", candidates)
	}
}

// TestEmptyListing verifies an empty input is a valid empty result.
func TestEmptyListing(t *testing.T) {
	candidates, excluded := defaultEnumerator().Enumerate(nil)
	if len(candidates) != 0 || len(excluded) != 0 {
		t.Errorf("Empty listing should classify nothing, got %d/%d", len(candidates), len(excluded))
	}
}
