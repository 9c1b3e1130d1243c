package github

import (
	"net/url"
	"regexp"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/errors"
)

// validSchemePattern matches safe URL schemes (http/https only).
var validSchemePattern = regexp.MustCompile(`^https?://`)

// privateHostPatterns matches private/internal network addresses. A
// configured API base pointing at one of these is almost always a
// misconfiguration; localhost stays allowed for test servers.
var privateHostPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(^|\.)10\.`),                          // 10.0.0.0/8
	regexp.MustCompile(`(^|\.)172\.(1[6-9]|2[0-9]|3[0-1])\.`), // 172.16.0.0/12
	regexp.MustCompile(`(^|\.)192\.168\.`),                    // 192.168.0.0/16
	regexp.MustCompile(`(^|\.)169\.254\.169\.254$`),           // cloud metadata endpoint
	regexp.MustCompile(`(^|\.)fc00:`),                         // fc00::/7
	regexp.MustCompile(`^fe80:`),                              // fe80::/10 link-local
	regexp.MustCompile(`^::1`),                                // IPv6 loopback and ::1%zone forms
}

// validateBaseURL rejects API base URLs that point at unsafe destinations.
func validateBaseURL(baseURL string) error {
	if !validSchemePattern.MatchString(baseURL) {
		return errors.ConfigError("invalid API base URL scheme: only http and https are allowed", nil)
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return errors.ConfigError("invalid API base URL", err)
	}

	hostname := parsed.Hostname()
	if hostname == "" {
		return errors.ConfigError("API base URL has no hostname", nil)
	}

	for _, pattern := range privateHostPatterns {
		if pattern.MatchString(hostname) {
			return errors.ConfigError("API base URL resolves to a private/internal network: "+hostname, nil)
		}
	}
	return nil
}
