// Package payload renders the selected repository content into the single
// bounded text block handed to the summarization model.
package payload

import (
	"fmt"
	"strings"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/selector"
)

// separator is the stable divider between rendered file blocks.
const separator = "\n\n---\n\n"

// emptyNote is rendered when nothing was admitted, so the model is told
// explicitly rather than being handed an empty string.
const emptyNote = "No file content was available for this repository.\n"

// maxOmittedLines bounds the omitted-files trailer. The trailer is fixed
// overhead on top of the content budget and must not scale with the
// repository; a large vendor tree collapses into a count.
const maxOmittedLines = 32

// Input carries everything the assembler needs: the selection in admission
// order, the fetched content per admitted path, and the files that were
// excluded before or after selection.
type Input struct {
	Selection selector.Selection
	// Contents maps admitted paths to their fetched content. A missing or
	// empty entry means the fetch failed; the file is reported as omitted.
	Contents map[string]string
	Excluded []selector.Exclusion
}

// Assembler renders a Selection into one text artifact. The rendered content
// blocks never exceed the total cap: the allocator reserves per-file header
// room, and the assembler's headers stay inside that reserve.
type Assembler struct {
	totalCap int
}

// NewAssembler creates an assembler for the given total payload cap.
func NewAssembler(totalCap int) *Assembler {
	return &Assembler{totalCap: totalCap}
}

// Assemble renders the payload. Admitted entries appear in admission order,
// each as a path header with a category annotation followed by its
// (possibly truncated) content. A trailing section lists excluded and
// skipped files by name only, so the model knows the repository is larger
// than what it sees.
func (a *Assembler) Assemble(in Input) string {
	var sb strings.Builder
	var unavailable []string

	rendered := 0
	for _, f := range in.Selection.Files {
		content, ok := in.Contents[f.Path]
		if !ok || content == "" {
			unavailable = append(unavailable, f.Path)
			continue
		}

		// The byte range is always a prefix cut, planned by the allocator.
		if len(content) > f.Length {
			content = content[:f.Length]
		}

		if rendered > 0 {
			sb.WriteString(separator)
		}
		fmt.Fprintf(&sb, "## %s (%s)\n\n", f.Path, f.Category)
		sb.WriteString(content)
		if f.Truncated {
			sb.WriteString("\n[truncated]")
		}
		rendered++
	}

	if rendered == 0 {
		sb.WriteString(emptyNote)
	}

	a.writeOmitted(&sb, in, unavailable)
	return sb.String()
}

// writeOmitted renders the trailing names-only section, capped at
// maxOmittedLines entries plus a remainder count.
func (a *Assembler) writeOmitted(sb *strings.Builder, in Input, unavailable []string) {
	var lines []string
	for _, e := range in.Excluded {
		lines = append(lines, fmt.Sprintf("- %s (%s)\n", e.Path, e.Reason))
	}
	for _, p := range unavailable {
		lines = append(lines, fmt.Sprintf("- %s (%s)\n", p, selector.ExcludedFetchUnavailable))
	}
	for _, p := range in.Selection.Skipped {
		lines = append(lines, fmt.Sprintf("- %s (did not fit the content budget)\n", p))
	}
	if len(lines) == 0 {
		return
	}

	rest := 0
	if len(lines) > maxOmittedLines {
		rest = len(lines) - maxOmittedLines
		lines = lines[:maxOmittedLines]
	}

	sb.WriteString("\n\n### Omitted files (not shown above)\n")
	for _, line := range lines {
		sb.WriteString(line)
	}
	if rest > 0 {
		fmt.Fprintf(sb, "- ...and %d more files\n", rest)
	}
}
