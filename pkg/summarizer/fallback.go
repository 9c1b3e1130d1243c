package summarizer

import "fmt"

// maxFallbackTech caps the technology list in the non-LLM fallback.
const maxFallbackTech = 12

// Fallback builds a deterministic summary from repository metadata alone,
// used when no model API key is configured so the API still answers.
func Fallback(rc RepoContext) *Summary {
	desc := rc.Description
	if desc == "" {
		desc = "N/A"
	}

	tech := make([]string, 0, maxFallbackTech)
	for _, name := range languageNames(rc.Languages) {
		tech = append(tech, name)
	}
	tech = append(tech, rc.TechHints...)
	tech = normalizeTech(tech, maxFallbackTech)
	if len(tech) == 0 {
		tech = []string{"Unknown"}
	}

	return &Summary{
		Summary: fmt.Sprintf(
			"**%s** is a software repository. GitHub description: %s. "+
				"This response was generated without an LLM because no model API key is set.",
			rc.FullName, desc),
		Technologies: tech,
		Structure:    rc.StructureHint,
	}
}

// languageNames returns language names largest byte count first.
func languageNames(langs map[string]int64) []string {
	names := make([]string, 0, len(langs))
	for name := range langs {
		names = append(names, name)
	}
	sortByBytes(names, langs)
	return names
}
