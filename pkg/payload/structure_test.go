package payload

import (
	"strings"
	"testing"
)

// TestBuildStructureHint verifies the layout hint counts top-level entries.
func TestBuildStructureHint(t *testing.T) {
	paths := []string{
		"src/a.go", "src/b.go", "src/c.go",
		"docs/guide.md",
		"README.md",
	}

	hint := BuildStructureHint(paths)

	if !strings.HasPrefix(hint, "Top-level layout: ") {
		t.Errorf("Unexpected prefix: %s", hint)
	}
	if !strings.Contains(hint, "`src/` (3 items)") {
		t.Errorf("src count missing: %s", hint)
	}
	if !strings.Contains(hint, "`README.md` (1)") {
		t.Errorf("Top-level file missing: %s", hint)
	}
	// Most populated entry leads.
	if strings.Index(hint, "`src/`") > strings.Index(hint, "`docs/`") {
		t.Errorf("Entries should be ordered by count: %s", hint)
	}
}

// TestBuildStructureHintCapsEntries verifies only the top 8 entries appear.
func TestBuildStructureHintCapsEntries(t *testing.T) {
	var paths []string
	for _, d := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		paths = append(paths, d+"/file.go")
	}

	hint := BuildStructureHint(paths)
	if got := strings.Count(hint, "`"); got != 16 {
		t.Errorf("Expected 8 entries (16 backticks), got %d: %s", got, hint)
	}
}

// TestBuildStructureHintEmpty verifies the fallback text.
func TestBuildStructureHintEmpty(t *testing.T) {
	if hint := BuildStructureHint(nil); !strings.Contains(hint, "could not infer") {
		t.Errorf("Empty input should yield the fallback hint: %s", hint)
	}
}

// TestBuildStructureHintDeterministic verifies tie-broken ordering.
func TestBuildStructureHintDeterministic(t *testing.T) {
	paths := []string{"b/x.go", "a/y.go", "c/z.go"}
	first := BuildStructureHint(paths)
	for i := 0; i < 10; i++ {
		if BuildStructureHint(paths) != first {
			t.Fatal("Structure hint must be deterministic")
		}
	}
	// Equal counts fall back to name order.
	if strings.Index(first, "`a/`") > strings.Index(first, "`b/`") {
		t.Errorf("Name tie-break violated: %s", first)
	}
}
