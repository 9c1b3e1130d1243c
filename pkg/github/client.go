// Copyright 2026 Repo AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package github provides a minimal REST client for the GitHub API,
// covering the read-only endpoints the summarizer needs: repository
// metadata, languages, branch and tree listings, and file contents.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/config"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/errors"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/version"
)

// apiVersion pins the REST API version header.
const apiVersion = "2022-11-28"

// maxErrorBodyBytes bounds how much of an error response body is carried
// into error messages.
const maxErrorBodyBytes = 512

// repoURLPattern matches a public GitHub repository URL.
var repoURLPattern = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/#?]+)`)

// Client is a GitHub REST API client.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient builds a Client from configuration. The API base is validated
// before any request is made.
func NewClient(cfg config.GitHubConfig) (*Client, error) {
	base := strings.TrimRight(cfg.APIBase, "/")
	if err := validateBaseURL(base); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: base,
		token:   cfg.Token(),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// ParseRepoURL extracts owner and repository name from a GitHub URL.
func ParseRepoURL(rawURL string) (owner, repo string, err error) {
	m := repoURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", "", errors.ValidationError(
			"github_url must be a public GitHub repo URL like https://github.com/OWNER/REPO", nil)
	}
	return m[1], strings.TrimSuffix(m[2], ".git"), nil
}

// GetRepo fetches repository metadata.
func (c *Client) GetRepo(ctx context.Context, owner, repo string) (*Repo, error) {
	status, body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s", owner, repo), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, errors.NotFoundError("Repository not found (is it public and spelled correctly?)", nil)
	}
	if status >= 400 {
		return nil, upstreamStatusError("GitHub error", status, body)
	}

	var r Repo
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, errors.UpstreamError("GitHub returned malformed repository metadata", err)
	}
	return &r, nil
}

// GetLanguages fetches the language byte counts. Failures degrade to an
// empty map; language data is advisory.
func (c *Client) GetLanguages(ctx context.Context, owner, repo string) map[string]int64 {
	status, body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/languages", owner, repo), nil)
	if err != nil || status >= 400 {
		return map[string]int64{}
	}

	langs := map[string]int64{}
	if err := json.Unmarshal(body, &langs); err != nil {
		return map[string]int64{}
	}
	return langs
}

// GetBranchTreeSHA resolves the tree SHA of a branch's head commit.
func (c *Client) GetBranchTreeSHA(ctx context.Context, owner, repo, branch string) (string, error) {
	status, body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/branches/%s", owner, repo, branch), nil)
	if err != nil {
		return "", err
	}
	if status >= 400 {
		return "", upstreamStatusError("GitHub branch lookup failed", status, body)
	}

	var data struct {
		Commit struct {
			Commit struct {
				Tree struct {
					SHA string `json:"sha"`
				} `json:"tree"`
			} `json:"commit"`
		} `json:"commit"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return "", errors.UpstreamError("GitHub returned malformed branch metadata", err)
	}
	if data.Commit.Commit.Tree.SHA == "" {
		return "", errors.UpstreamError("GitHub branch metadata is missing the tree SHA", nil)
	}
	return data.Commit.Commit.Tree.SHA, nil
}

// GetTree fetches the recursive tree listing for a tree SHA. The truncated
// flag is set when GitHub could not return the full tree.
func (c *Client) GetTree(ctx context.Context, owner, repo, treeSHA string) ([]TreeEntry, bool, error) {
	status, body, err := c.get(ctx,
		fmt.Sprintf("/repos/%s/%s/git/trees/%s", owner, repo, treeSHA),
		url.Values{"recursive": {"1"}})
	if err != nil {
		return nil, false, err
	}
	if status >= 400 {
		return nil, false, upstreamStatusError("GitHub tree fetch failed", status, body)
	}

	var data struct {
		Tree      []TreeEntry `json:"tree"`
		Truncated bool        `json:"truncated"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, false, errors.UpstreamError("GitHub returned a malformed tree listing", err)
	}
	return data.Tree, data.Truncated, nil
}

// GetReadme fetches the repository README through the dedicated endpoint,
// which resolves the preferred README variant server-side. Returns nil
// when no README exists or the fetch fails.
func (c *Client) GetReadme(ctx context.Context, owner, repo, ref string) *FileContent {
	status, body, err := c.get(ctx,
		fmt.Sprintf("/repos/%s/%s/readme", owner, repo),
		url.Values{"ref": {ref}})
	if err != nil || status >= 400 {
		return nil
	}
	return decodeContent(body, "README")
}

// GetFile fetches a single file's content at a ref. Returns nil when the
// file is missing, is not a regular file, or the fetch fails.
func (c *Client) GetFile(ctx context.Context, owner, repo, path, ref string) *FileContent {
	status, body, err := c.get(ctx,
		fmt.Sprintf("/repos/%s/%s/contents/%s", owner, repo, path),
		url.Values{"ref": {ref}})
	if err != nil || status >= 400 {
		return nil
	}
	return decodeContent(body, path)
}

// GetRootContents lists the repository root, used as a fallback when the
// recursive tree is truncated. Failures degrade to an empty listing.
func (c *Client) GetRootContents(ctx context.Context, owner, repo, ref string) []TreeEntry {
	status, body, err := c.get(ctx,
		fmt.Sprintf("/repos/%s/%s/contents", owner, repo),
		url.Values{"ref": {ref}})
	if err != nil || status >= 400 {
		return nil
	}

	var items []struct {
		Path string `json:"path"`
		Type string `json:"type"`
		Size int64  `json:"size"`
	}
	if err := json.Unmarshal(body, &items); err != nil {
		return nil
	}

	entries := make([]TreeEntry, 0, len(items))
	for _, it := range items {
		switch it.Type {
		case "file":
			entries = append(entries, TreeEntry{Path: it.Path, Type: "blob", Size: it.Size})
		case "dir":
			entries = append(entries, TreeEntry{Path: it.Path, Type: "tree"})
		}
	}
	return entries
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, errors.UpstreamError("failed to build GitHub request", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", "repo-summarizer/"+version.Version)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil, errors.TimeoutError("GitHub request canceled or timed out", err)
		}
		return 0, nil, errors.UpstreamError("GitHub request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.UpstreamError("failed to read GitHub response", err)
	}
	return resp.StatusCode, body, nil
}

// decodeContent parses a contents-API response and decodes its base64
// payload. GitHub wraps the encoded content in newlines.
func decodeContent(body []byte, fallbackPath string) *FileContent {
	var obj struct {
		Path     string `json:"path"`
		Type     string `json:"type"`
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
	}
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil
	}
	if obj.Type != "file" && obj.Type != "" {
		return nil
	}
	if obj.Content == "" {
		return nil
	}

	data, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(obj.Content, "\n", ""))
	if err != nil {
		return nil
	}

	path := obj.Path
	if path == "" {
		path = fallbackPath
	}
	return &FileContent{Path: path, Data: data}
}

func upstreamStatusError(prefix string, status int, body []byte) error {
	snippet := string(body)
	if len(snippet) > maxErrorBodyBytes {
		snippet = snippet[:maxErrorBodyBytes]
	}
	return errors.UpstreamError(fmt.Sprintf("%s: %d %s", prefix, status, snippet), nil)
}
