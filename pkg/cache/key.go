// Copyright 2026 Repo AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// KeyGenerator generates cache keys.
type KeyGenerator struct {
	prefix string
}

// NewKeyGenerator creates a new key generator.
func NewKeyGenerator() *KeyGenerator {
	return &KeyGenerator{
		prefix: "summary",
	}
}

// Generate generates a cache key from inputs using a SHA256 digest, so
// arbitrary URLs become fixed-size keys.
func (kg *KeyGenerator) Generate(inputs ...string) string {
	h := sha256.New()
	for _, input := range inputs {
		h.Write([]byte(input))
	}
	return kg.prefix + ":" + hex.EncodeToString(h.Sum(nil))
}

// GenerateForRepo generates the key for a repository summary.
func (kg *KeyGenerator) GenerateForRepo(githubURL string) string {
	return kg.Generate(githubURL)
}
