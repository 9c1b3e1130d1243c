// Package summarizer turns an assembled repository payload into a
// structured summary by prompting an OpenAI-compatible model, with a
// deterministic fallback when no model is configured.
package summarizer

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/errors"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/llm"
)

// maxTechnologies caps the normalized technology list in responses.
const maxTechnologies = 15

// schemaName labels the structured output schema in model requests.
const schemaName = "repo_summary"

// summarySchema is the strict JSON schema for model output.
var summarySchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "summary": {"type": "string", "description": "Human-readable markdown summary of the repository"},
    "technologies": {"type": "array", "items": {"type": "string"}, "description": "Main languages/frameworks/libraries used"},
    "structure": {"type": "string", "description": "Brief description of project structure and directories"}
  },
  "required": ["summary", "technologies", "structure"],
  "additionalProperties": false
}`)

// Summary is the structured summarization result.
type Summary struct {
	Summary      string   `json:"summary"`
	Technologies []string `json:"technologies"`
	Structure    string   `json:"structure"`
}

// RepoContext carries everything the prompt needs about a repository.
type RepoContext struct {
	FullName      string
	Description   string
	DefaultBranch string
	Homepage      string
	Topics        []string
	Languages     map[string]int64
	StructureHint string
	TechHints     []string
	FilesPayload  string
}

// ChatClient is the model surface the summarizer depends on.
type ChatClient interface {
	Enabled() bool
	ChatJSONSchema(ctx context.Context, messages []llm.Message, schemaName string, schema json.RawMessage) (string, error)
	ChatJSONObject(ctx context.Context, messages []llm.Message) (string, error)
}

// Summarizer prompts a model for repository summaries.
type Summarizer struct {
	client ChatClient
}

// New creates a Summarizer over the given model client.
func New(client ChatClient) *Summarizer {
	return &Summarizer{client: client}
}

// Enabled reports whether a model is available.
func (s *Summarizer) Enabled() bool {
	return s.client.Enabled()
}

// Summarize prompts the model and parses its structured output. Strict
// json_schema mode is tried first; if the call or the parse fails, the
// looser json_object mode is retried once before giving up.
func (s *Summarizer) Summarize(ctx context.Context, rc RepoContext) (*Summary, error) {
	messages := buildMessages(rc)

	raw, err := s.client.ChatJSONSchema(ctx, messages, schemaName, summarySchema)
	if err == nil {
		if parsed, perr := parseSummary(raw); perr == nil {
			return parsed, nil
		}
	}

	raw, err = s.client.ChatJSONObject(ctx, messages)
	if err != nil {
		return nil, err
	}
	parsed, perr := parseSummary(raw)
	if perr != nil {
		return nil, errors.LLMError("model output is not valid summary JSON", perr)
	}
	return parsed, nil
}

func parseSummary(raw string) (*Summary, error) {
	var s Summary
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, err
	}
	s.Technologies = normalizeTech(s.Technologies, maxTechnologies)
	return &s, nil
}

// normalizeTech trims entries, drops empties, dedupes case-insensitively
// keeping the first spelling, and caps the list.
func normalizeTech(in []string, limit int) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool)
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
		if len(out) == limit {
			break
		}
	}
	return out
}
