// Copyright 2026 Repo AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package security screens untrusted repository content before it is
// handed to the summarization model. README and source files come straight
// from the public internet, so lines that look like prompt-injection
// attempts are removed from the payload.
package security

import (
	"regexp"
	"strings"
)

// Severity represents the severity level of a detected pattern.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the severity name used in logs.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "critical"
	}
}

// Finding is a single suspicious match in scanned content.
type Finding struct {
	Category string
	Severity Severity
	Line     int
}

// redactedLine replaces content lines the guard removes.
const redactedLine = "[line removed: suspected prompt injection]"

type contentPattern struct {
	re       *regexp.Regexp
	severity Severity
	category string
}

// ContentGuard scans repository content for prompt-injection attempts.
type ContentGuard struct {
	patterns []contentPattern
	// redactAt is the minimum severity at which a line is removed rather
	// than just reported.
	redactAt Severity
}

// NewContentGuard creates a guard that redacts high-severity matches and
// reports the rest.
func NewContentGuard() *ContentGuard {
	specs := []struct {
		pattern  string
		severity Severity
		category string
	}{
		{`(?i)(ignore|disregard|forget)\s+(all\s+)?(previous|above|the)\s+(instructions?|prompts?|commands?)`, SeverityCritical, "override"},
		{`(?i)you\s+are\s+now\s+(a\s+)?new\s+(AI|assistant|persona|chatbot|model)`, SeverityCritical, "role_confusion"},
		{`(?i)from\s+now\s+on\s+you\s+are`, SeverityCritical, "role_confusion"},
		{`(?i)(show|print|reveal)\s+(me\s+)?(your|the)\s+(instructions?|prompts?|system\s+prompt)`, SeverityCritical, "extraction"},
		{`(?i)repeat\s+(everything|all\s+text)\s+(above|before)`, SeverityCritical, "extraction"},
		{`(?i)(jailbreak|jail\s*break)\s*(mode|technique|method|protocol)`, SeverityHigh, "jailbreak"},
		{`(?i)developer\s+mode`, SeverityHigh, "jailbreak"},
		{`(?i)DAN\s+(mode|protocol)`, SeverityHigh, "jailbreak"},
		{`(?i)respond\s+(only|just)\s+with\s+"`, SeverityMedium, "format_manipulation"},
		{`(?i)(your\s+)?response\s+(must|should)\s+(start|begin|end)\s+with`, SeverityMedium, "format_manipulation"},
	}

	g := &ContentGuard{redactAt: SeverityHigh}
	for _, s := range specs {
		g.patterns = append(g.patterns, contentPattern{
			re:       regexp.MustCompile(s.pattern),
			severity: s.severity,
			category: s.category,
		})
	}
	return g
}

// Scan reports suspicious lines without modifying the text.
func (g *ContentGuard) Scan(text string) []Finding {
	var findings []Finding
	for i, line := range strings.Split(text, "\n") {
		for _, p := range g.patterns {
			if p.re.MatchString(line) {
				findings = append(findings, Finding{
					Category: p.category,
					Severity: p.severity,
					Line:     i + 1,
				})
				break
			}
		}
	}
	return findings
}

// Redact removes lines whose matches reach the redaction severity and
// returns the cleaned text along with every finding, including the ones
// left in place.
func (g *ContentGuard) Redact(text string) (string, []Finding) {
	findings := g.Scan(text)
	if len(findings) == 0 {
		return text, nil
	}

	toRemove := make(map[int]bool)
	for _, f := range findings {
		if f.Severity >= g.redactAt {
			toRemove[f.Line] = true
		}
	}
	if len(toRemove) == 0 {
		return text, findings
	}

	lines := strings.Split(text, "\n")
	for i := range lines {
		if toRemove[i+1] {
			lines[i] = redactedLine
		}
	}
	return strings.Join(lines, "\n"), findings
}
