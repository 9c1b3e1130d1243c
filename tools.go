//go:build tools

// Package tools manages development tool dependencies.
// These dependencies are not included in the final binary.
package tools

import (
// Linting and formatting tools (added via go mod tidy when needed)
// _ "github.com/golangci/golangci-lint/cmd/golangci-lint"
// _ "mvdan.cc/gofumpt"
)
