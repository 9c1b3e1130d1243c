// Package service orchestrates a summarize request end to end: repository
// metadata, tree listing, content selection, bounded concurrent fetch,
// payload assembly, model call, and response caching.
package service

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/cache"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/config"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/github"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/observability"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/payload"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/security"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/selector"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/summarizer"
)

// RepoHost is the GitHub surface the service depends on. *github.Client
// satisfies it; tests substitute a fake.
type RepoHost interface {
	GetRepo(ctx context.Context, owner, repo string) (*github.Repo, error)
	GetLanguages(ctx context.Context, owner, repo string) map[string]int64
	GetBranchTreeSHA(ctx context.Context, owner, repo, branch string) (string, error)
	GetTree(ctx context.Context, owner, repo, treeSHA string) ([]github.TreeEntry, bool, error)
	GetReadme(ctx context.Context, owner, repo, ref string) *github.FileContent
	GetFile(ctx context.Context, owner, repo, path, ref string) *github.FileContent
	GetRootContents(ctx context.Context, owner, repo, ref string) []github.TreeEntry
}

// SummaryModel produces the structured summary from the assembled context.
type SummaryModel interface {
	Enabled() bool
	Summarize(ctx context.Context, rc summarizer.RepoContext) (*summarizer.Summary, error)
}

// Service handles summarize requests.
type Service struct {
	host    RepoHost
	model   SummaryModel
	cache   cache.Cache
	keys    *cache.KeyGenerator
	metrics *observability.Metrics
	logger  observability.Logger
	guard   *security.ContentGuard

	budget      config.BudgetConfig
	cacheTTL    time.Duration
	concurrency int
	maxTree     int
	patterns    selector.Patterns
}

// New creates a Service.
func New(host RepoHost, model SummaryModel, store cache.Cache, metrics *observability.Metrics, logger observability.Logger, cfg *config.Config) *Service {
	concurrency := cfg.GitHub.FetchConcurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	return &Service{
		host:        host,
		model:       model,
		cache:       store,
		keys:        cache.NewKeyGenerator(),
		metrics:     metrics,
		logger:      logger,
		guard:       security.NewContentGuard(),
		budget:      cfg.Budget,
		cacheTTL:    cfg.Cache.TTL,
		concurrency: concurrency,
		maxTree:     cfg.GitHub.MaxTreeItems,
		patterns:    selector.DefaultPatterns(),
	}
}

// Summarize produces a summary for the given repository URL, serving from
// cache when possible.
func (s *Service) Summarize(ctx context.Context, githubURL string) (*summarizer.Summary, error) {
	start := time.Now()
	out, err := s.summarize(ctx, githubURL)
	s.metrics.RecordRequest(err == nil)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordSummarizeDuration(time.Since(start))
	return out, nil
}

func (s *Service) summarize(ctx context.Context, githubURL string) (*summarizer.Summary, error) {
	key := s.keys.GenerateForRepo(githubURL)
	if data, err := s.cache.Get(ctx, key); err == nil {
		var cached summarizer.Summary
		if err := json.Unmarshal(data, &cached); err == nil {
			s.metrics.RecordCacheHit(true)
			s.logger.Debug("cache hit", observability.String("url", githubURL))
			return &cached, nil
		}
	}
	s.metrics.RecordCacheHit(false)

	owner, repo, err := github.ParseRepoURL(githubURL)
	if err != nil {
		return nil, err
	}

	meta, err := s.host.GetRepo(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	branch := meta.DefaultBranch
	if branch == "" {
		branch = "main"
	}

	languages := s.host.GetLanguages(ctx, owner, repo)

	entries, err := s.listTree(ctx, owner, repo, branch)
	if err != nil {
		return nil, err
	}

	files, allPaths := splitEntries(entries)

	// When the tree carries no README, the dedicated endpoint still might:
	// GitHub resolves the preferred variant server-side. The fetched content
	// is kept so the budget pass can admit it without a second request.
	preloaded := map[string]string{}
	if !hasReadme(files, s.patterns) {
		if fc := s.host.GetReadme(ctx, owner, repo, branch); fc != nil && !payload.IsProbablyBinary(fc.Data) {
			files = append(files, selector.FileEntry{Path: fc.Path, Size: len(fc.Data)})
			preloaded[fc.Path] = string(fc.Data)
		}
	}

	enum := selector.NewEnumerator(s.patterns, s.budget.OversizedFileBytes)
	candidates, excluded := enum.Enumerate(files)

	alloc, err := selector.NewAllocator(selector.BudgetPolicy{
		TotalChars:      s.budget.TotalChars,
		PerFileChars:    s.budget.PerFileChars,
		ReadmeChars:     s.budget.ReadmeChars,
		PerFileOverhead: s.budget.PerFileOverhead,
	})
	if err != nil {
		return nil, err
	}
	sel := alloc.Allocate(candidates)

	s.logger.Info("selection complete",
		observability.String("repo", meta.FullName),
		observability.Int("candidates", len(candidates)),
		observability.Int("admitted", len(sel.Files)),
		observability.Int("consumed_chars", sel.ConsumedChars))

	contents, unavailable := s.fetchContents(ctx, owner, repo, branch, sel, preloaded)
	if len(unavailable) > 0 {
		s.logger.Warn("some admitted files could not be fetched",
			observability.String("repo", meta.FullName),
			observability.Int("unavailable", len(unavailable)))
	}

	assembled := payload.NewAssembler(s.budget.TotalChars).Assemble(payload.Input{
		Selection: sel,
		Contents:  contents,
		Excluded:  excluded,
	})

	rc := summarizer.RepoContext{
		FullName:      meta.FullName,
		Description:   meta.Description,
		DefaultBranch: branch,
		Homepage:      meta.Homepage,
		Topics:        meta.Topics,
		Languages:     languages,
		StructureHint: payload.BuildStructureHint(allPaths),
		TechHints:     payload.ExtractTech(byBasename(contents)),
		FilesPayload:  assembled,
	}

	out, err := s.produce(ctx, rc)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(out); err == nil {
		if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
			s.logger.Warn("cache write failed", observability.Err(err))
		}
	}
	return out, nil
}

// listTree fetches the recursive tree, falling back to the root listing
// when GitHub reports the tree as truncated, and applies the safety cap.
func (s *Service) listTree(ctx context.Context, owner, repo, branch string) ([]github.TreeEntry, error) {
	treeSHA, err := s.host.GetBranchTreeSHA(ctx, owner, repo, branch)
	if err != nil {
		return nil, err
	}

	entries, truncated, err := s.host.GetTree(ctx, owner, repo, treeSHA)
	if err != nil {
		return nil, err
	}
	if truncated {
		s.logger.Warn("tree truncated, falling back to root listing",
			observability.String("repo", owner+"/"+repo))
		entries = s.host.GetRootContents(ctx, owner, repo, branch)
	}

	if s.maxTree > 0 && len(entries) > s.maxTree {
		entries = entries[:s.maxTree]
	}
	return entries, nil
}

// fetchContents retrieves the admitted files concurrently. Failed fetches
// and binary-looking content become soft exclusions instead of failing the
// request.
func (s *Service) fetchContents(ctx context.Context, owner, repo, branch string, sel selector.Selection, preloaded map[string]string) (map[string]string, []selector.Exclusion) {
	contents := make(map[string]string, len(sel.Files))
	var unavailable []selector.Exclusion
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, f := range sel.Files {
		path := f.Path
		if text, ok := preloaded[path]; ok {
			contents[path] = text
			continue
		}

		g.Go(func() error {
			fc := s.host.GetFile(gctx, owner, repo, path, branch)

			mu.Lock()
			defer mu.Unlock()
			if fc == nil || payload.IsProbablyBinary(fc.Data) {
				unavailable = append(unavailable, selector.Exclusion{
					Path:   path,
					Reason: selector.ExcludedFetchUnavailable,
				})
				return nil
			}
			contents[path] = string(fc.Data)
			return nil
		})
	}
	_ = g.Wait()

	// Concurrent appends land in arrival order; sort for stable output.
	sort.Slice(unavailable, func(i, j int) bool {
		return unavailable[i].Path < unavailable[j].Path
	})
	return contents, unavailable
}

// produce runs the model, or the deterministic fallback when no key is set.
func (s *Service) produce(ctx context.Context, rc summarizer.RepoContext) (*summarizer.Summary, error) {
	if !s.model.Enabled() {
		s.logger.Info("model disabled, using fallback summary",
			observability.String("repo", rc.FullName))
		return summarizer.Fallback(rc), nil
	}

	// Repository content is untrusted input for the model.
	cleaned, findings := s.guard.Redact(rc.FilesPayload)
	if len(findings) > 0 {
		s.logger.Warn("suspicious content in payload",
			observability.String("repo", rc.FullName),
			observability.Int("findings", len(findings)))
		rc.FilesPayload = cleaned
	}

	out, err := s.model.Summarize(ctx, rc)
	s.metrics.RecordLLMCall(err == nil)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func splitEntries(entries []github.TreeEntry) ([]selector.FileEntry, []string) {
	files := make([]selector.FileEntry, 0, len(entries))
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Path == "" {
			continue
		}
		paths = append(paths, e.Path)
		if e.Type == "blob" {
			files = append(files, selector.FileEntry{Path: e.Path, Size: int(e.Size)})
		}
	}
	return files, paths
}

// hasReadme reports whether any enumerable entry classifies as a README.
func hasReadme(files []selector.FileEntry, patterns selector.Patterns) bool {
	for _, f := range files {
		if selector.Classify(f.Path, patterns) == selector.CategoryReadme {
			return true
		}
	}
	return false
}

// byBasename rekeys fetched contents by basename for tech extraction.
func byBasename(contents map[string]string) map[string]string {
	out := make(map[string]string, len(contents))
	for p, text := range contents {
		out[basename(p)] = text
	}
	return out
}

func basename(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[i+1:]
		}
	}
	return p
}
