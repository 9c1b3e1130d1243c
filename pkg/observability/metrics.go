// Copyright 2026 Repo AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package observability

import (
	"sync/atomic"
	"time"
)

// Metrics collects service counters. All methods are safe for concurrent
// use.
type Metrics struct {
	requestsTotal   atomic.Int64
	requestErrors   atomic.Int64
	cacheHits       atomic.Int64
	cacheMisses     atomic.Int64
	llmCalls        atomic.Int64
	llmFailures     atomic.Int64
	summarizeNanos  atomic.Int64
	summarizeCount  atomic.Int64
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordRequest records a summarize request and its outcome.
func (m *Metrics) RecordRequest(success bool) {
	m.requestsTotal.Add(1)
	if !success {
		m.requestErrors.Add(1)
	}
}

// RecordCacheHit records a cache hit or miss.
func (m *Metrics) RecordCacheHit(hit bool) {
	if hit {
		m.cacheHits.Add(1)
	} else {
		m.cacheMisses.Add(1)
	}
}

// RecordLLMCall records a model call and its outcome.
func (m *Metrics) RecordLLMCall(success bool) {
	m.llmCalls.Add(1)
	if !success {
		m.llmFailures.Add(1)
	}
}

// RecordSummarizeDuration records end-to-end summarization latency.
func (m *Metrics) RecordSummarizeDuration(d time.Duration) {
	m.summarizeNanos.Add(int64(d))
	m.summarizeCount.Add(1)
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	RequestsTotal      int64   `json:"requests_total"`
	RequestErrors      int64   `json:"request_errors"`
	CacheHits          int64   `json:"cache_hits"`
	CacheMisses        int64   `json:"cache_misses"`
	LLMCalls           int64   `json:"llm_calls"`
	LLMFailures        int64   `json:"llm_failures"`
	AvgSummarizeMillis float64 `json:"avg_summarize_ms"`
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() Snapshot {
	s := Snapshot{
		RequestsTotal: m.requestsTotal.Load(),
		RequestErrors: m.requestErrors.Load(),
		CacheHits:     m.cacheHits.Load(),
		CacheMisses:   m.cacheMisses.Load(),
		LLMCalls:      m.llmCalls.Load(),
		LLMFailures:   m.llmFailures.Load(),
	}
	if count := m.summarizeCount.Load(); count > 0 {
		s.AvgSummarizeMillis = float64(m.summarizeNanos.Load()) / float64(count) / 1e6
	}
	return s
}
