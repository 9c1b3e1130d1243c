package summarizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/llm"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/payload"
)

// maxPromptChars is a safety net on the user payload, on top of the
// selection budget applied upstream.
const maxPromptChars = 55000

const systemPrompt = "You are a senior software engineer. Summarize the GitHub repository using ONLY the provided data.\n" +
	"Return STRICT JSON with keys: summary, technologies, structure.\n" +
	"- summary: 4-8 sentences in markdown, mention what it does and primary use-cases.\n" +
	"- technologies: 5-15 concise strings (languages, frameworks, major libs, tooling). No versions.\n" +
	"- structure: 2-4 sentences describing directory layout and key files.\n" +
	"If something is unknown, say so briefly (do not hallucinate).\n"

func buildMessages(rc RepoContext) []llm.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Repository: %s\n", rc.FullName)
	fmt.Fprintf(&b, "Description: %s\n", orNone(rc.Description))
	fmt.Fprintf(&b, "Default branch: %s\n", rc.DefaultBranch)
	fmt.Fprintf(&b, "Homepage: %s\n", orNone(rc.Homepage))
	fmt.Fprintf(&b, "Topics: %s\n", orNone(strings.Join(rc.Topics, ", ")))
	fmt.Fprintf(&b, "GitHub languages(bytes): %s\n", formatLanguages(rc.Languages))
	fmt.Fprintf(&b, "Extracted tech hints: %s\n", orNone(strings.Join(rc.TechHints, ", ")))
	b.WriteString(rc.StructureHint)
	b.WriteString("\n\n### Files (snippets)\n")
	b.WriteString(rc.FilesPayload)

	return []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: payload.Truncate(b.String(), maxPromptChars)},
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// formatLanguages renders language byte counts largest first.
func formatLanguages(langs map[string]int64) string {
	if len(langs) == 0 {
		return "(none)"
	}

	names := make([]string, 0, len(langs))
	for name := range langs {
		names = append(names, name)
	}
	sortByBytes(names, langs)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %d", name, langs[name]))
	}
	return strings.Join(parts, ", ")
}

// sortByBytes orders language names by byte count descending, name ascending
// on ties.
func sortByBytes(names []string, langs map[string]int64) {
	sort.Slice(names, func(i, j int) bool {
		if langs[names[i]] != langs[names[j]] {
			return langs[names[i]] > langs[names[j]]
		}
		return names[i] < names[j]
	})
}
