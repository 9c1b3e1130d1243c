package payload

import (
	"encoding/json"
	"sort"
	"strings"
)

// maxTechHints caps the extracted technology list handed to the prompt.
const maxTechHints = 25

// ExtractTech pulls dependency names out of the manifest files that were
// loaded for the payload, keyed by basename. Best-effort: a malformed
// manifest contributes nothing rather than failing the pass.
func ExtractTech(fileTexts map[string]string) []string {
	tech := make(map[string]bool)

	if req, ok := fileTexts["requirements.txt"]; ok {
		for _, line := range strings.Split(req, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if pkg := requirementName(line); pkg != "" {
				tech[pkg] = true
			}
		}
	}

	if pj, ok := fileTexts["package.json"]; ok {
		var data struct {
			Dependencies    map[string]string `json:"dependencies"`
			DevDependencies map[string]string `json:"devDependencies"`
		}
		if err := json.Unmarshal([]byte(pj), &data); err == nil {
			for name := range data.Dependencies {
				tech[name] = true
			}
			for name := range data.DevDependencies {
				tech[name] = true
			}
		}
	}

	if gm, ok := fileTexts["go.mod"]; ok {
		for _, mod := range goModRequires(gm) {
			tech[mod] = true
		}
	}

	// pyproject.toml gets a keyword scan instead of a full TOML parse.
	if pyproj, ok := fileTexts["pyproject.toml"]; ok {
		lowered := strings.ToLower(pyproj)
		for keyword, name := range map[string]string{
			"django":  "Django",
			"fastapi": "FastAPI",
			"flask":   "Flask",
			"torch":   "PyTorch",
			"numpy":   "NumPy",
		} {
			if strings.Contains(lowered, keyword) {
				tech[name] = true
			}
		}
	}

	names := make([]string, 0, len(tech))
	for name := range tech {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > maxTechHints {
		names = names[:maxTechHints]
	}
	return names
}

// requirementName strips version constraints and extras from a
// requirements.txt line.
func requirementName(line string) string {
	for _, sep := range []string{"==", ">=", "<=", "~=", ">", "<", "[", ";", " "} {
		if idx := strings.Index(line, sep); idx >= 0 {
			line = line[:idx]
		}
	}
	return strings.TrimSpace(line)
}

// goModRequires extracts module paths from require directives.
func goModRequires(content string) []string {
	var mods []string
	inBlock := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "require (":
			inBlock = true
		case inBlock && line == ")":
			inBlock = false
		case inBlock || strings.HasPrefix(line, "require "):
			line = strings.TrimPrefix(line, "require ")
			if strings.Contains(line, "// indirect") {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) >= 2 && strings.Contains(fields[0], ".") {
				mods = append(mods, fields[0])
			}
		}
	}
	return mods
}
