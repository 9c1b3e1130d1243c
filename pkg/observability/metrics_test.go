package observability

import (
	"sync"
	"testing"
	"time"
)

// TestMetricsSnapshot verifies counters accumulate correctly.
func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest(true)
	m.RecordRequest(false)
	m.RecordCacheHit(true)
	m.RecordCacheHit(false)
	m.RecordCacheHit(false)
	m.RecordLLMCall(true)
	m.RecordLLMCall(false)
	m.RecordSummarizeDuration(100 * time.Millisecond)
	m.RecordSummarizeDuration(300 * time.Millisecond)

	s := m.Snapshot()
	if s.RequestsTotal != 2 || s.RequestErrors != 1 {
		t.Errorf("Requests = %d/%d errors", s.RequestsTotal, s.RequestErrors)
	}
	if s.CacheHits != 1 || s.CacheMisses != 2 {
		t.Errorf("Cache = %d hits, %d misses", s.CacheHits, s.CacheMisses)
	}
	if s.LLMCalls != 2 || s.LLMFailures != 1 {
		t.Errorf("LLM = %d calls, %d failures", s.LLMCalls, s.LLMFailures)
	}
	if s.AvgSummarizeMillis != 200 {
		t.Errorf("AvgSummarizeMillis = %v, want 200", s.AvgSummarizeMillis)
	}
}

// TestMetricsConcurrent verifies the counters tolerate concurrent writers.
func TestMetricsConcurrent(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.RecordRequest(true)
				m.RecordCacheHit(j%2 == 0)
			}
		}()
	}
	wg.Wait()

	if s := m.Snapshot(); s.RequestsTotal != 1000 {
		t.Errorf("RequestsTotal = %d, want 1000", s.RequestsTotal)
	}
}
