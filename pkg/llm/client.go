// Package llm provides a client for OpenAI-compatible chat completion
// APIs. The default backend is Nebius Token Factory, which accepts the
// OpenAI wire format including structured output via response_format.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/config"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/errors"
)

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	http        *http.Client
}

// NewClient builds a Client from configuration. A missing API key is not
// an error; the client reports itself disabled and callers decide fallback
// behavior.
func NewClient(cfg config.LLMConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey(),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		http:        &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// ChatJSONSchema runs a completion with strict json_schema output mode and
// returns the raw message content.
func (c *Client) ChatJSONSchema(ctx context.Context, messages []Message, schemaName string, schema json.RawMessage) (string, error) {
	format := map[string]interface{}{
		"type": "json_schema",
		"json_schema": map[string]interface{}{
			"name":   schemaName,
			"schema": schema,
			"strict": true,
		},
	}
	return c.complete(ctx, messages, format)
}

// ChatJSONObject runs a completion with the looser json_object output mode,
// used as a fallback for backends that reject strict schemas.
func (c *Client) ChatJSONObject(ctx context.Context, messages []Message) (string, error) {
	return c.complete(ctx, messages, map[string]interface{}{"type": "json_object"})
}

func (c *Client) complete(ctx context.Context, messages []Message, responseFormat map[string]interface{}) (string, error) {
	if !c.Enabled() {
		return "", errors.LLMError("LLM API key is not set; model call is disabled", nil)
	}

	payload := map[string]interface{}{
		"model":           c.model,
		"messages":        messages,
		"temperature":     c.temperature,
		"max_tokens":      c.maxTokens,
		"response_format": responseFormat,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.LLMError("failed to encode completion request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.LLMError("failed to build completion request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", errors.TimeoutError("model call canceled or timed out", err)
		}
		return "", errors.LLMError("model call failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.LLMError("failed to read model response", err)
	}
	if resp.StatusCode >= 400 {
		snippet := string(respBody)
		if len(snippet) > 512 {
			snippet = snippet[:512]
		}
		return "", errors.LLMError(fmt.Sprintf("model call failed: %d %s", resp.StatusCode, snippet), nil)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errors.LLMError("model returned a malformed completion", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.LLMError("model returned no choices", nil)
	}
	return parsed.Choices[0].Message.Content, nil
}
