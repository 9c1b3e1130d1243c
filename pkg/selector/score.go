package selector

import "strings"

// Classify maps a path to its category. Exactly one category per file;
// anything unrecognized degrades to CategoryOther rather than failing.
//
// Classification checks run highest tier first. Test-naming conventions are
// checked before source extensions so that foo_test.go lands in the Test
// tier, not SourceCode.
func Classify(p string, patterns Patterns) Category {
	base := basename(p)
	lower := strings.ToLower(base)
	extension := ext(p)

	if strings.HasPrefix(strings.ToUpper(base), "README") {
		return CategoryReadme
	}
	if patterns.Manifests[lower] || patterns.CIFiles[lower] || isCIWorkflow(p) {
		return CategoryBuildConfig
	}
	if isTestPath(p, lower, patterns) {
		return CategoryTest
	}
	if patterns.SourceExts[extension] || inSourceDir(p, patterns) {
		return CategorySourceCode
	}
	if isDocPath(p, extension, patterns) {
		return CategoryDoc
	}
	return CategoryOther
}

// isCIWorkflow matches GitHub Actions pipeline definitions.
func isCIWorkflow(p string) bool {
	if !strings.HasPrefix(p, ".github/workflows/") {
		return false
	}
	e := ext(p)
	return e == ".yml" || e == ".yaml"
}

func isTestPath(p, lowerBase string, patterns Patterns) bool {
	for _, part := range strings.Split(p, "/") {
		if patterns.TestDirs[strings.ToLower(part)] {
			return true
		}
	}
	if strings.HasPrefix(lowerBase, "test_") {
		return true
	}
	for _, suffix := range []string{"_test.go", "_test.py", ".test.js", ".test.ts", ".spec.js", ".spec.ts"} {
		if strings.HasSuffix(lowerBase, suffix) {
			return true
		}
	}
	return false
}

// inSourceDir reports whether any directory component is a conventional
// source root. Files under src/, cmd/, internal/ and the like count as
// source code even when their extension is unrecognized.
func inSourceDir(p string, patterns Patterns) bool {
	parts := strings.Split(p, "/")
	for _, part := range parts[:len(parts)-1] {
		if patterns.SourceDirs[strings.ToLower(part)] {
			return true
		}
	}
	return false
}

func isDocPath(p, extension string, patterns Patterns) bool {
	if patterns.DocExts[extension] {
		return true
	}
	for _, part := range strings.Split(p, "/") {
		l := strings.ToLower(part)
		if l == "docs" || l == "doc" {
			return true
		}
	}
	return false
}

// Score computes the deterministic intra-tier score for a candidate. Two
// signals: path depth (shallower is better, rewarding top-level files) and a
// mild size preference (near-empty files carry little signal; beyond a modest
// size there is no further reward, truncation handles the rest).
func Score(category Category, p string, size int) int {
	const (
		depthBase    = 600
		depthPenalty = 120
		sizeCeiling  = 2000
	)

	score := depthBase - depthPenalty*depth(p)
	if score < 0 {
		score = 0
	}

	if size > 0 {
		s := size
		if s > sizeCeiling {
			s = sizeCeiling
		}
		score += s / 10
	}

	return score
}
