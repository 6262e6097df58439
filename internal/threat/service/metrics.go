package service

import (
	"sync/atomic"
	"time"
)

// Metrics tracks analysis call counters.
type Metrics struct {
	llmCalls      int64
	llmErrors     int64
	llmLatency    int64 // total latency in nanoseconds
	heuristicRuns int64
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	return Metrics{
		llmCalls:      atomic.LoadInt64(&globalMetrics.llmCalls),
		llmErrors:     atomic.LoadInt64(&globalMetrics.llmErrors),
		llmLatency:    atomic.LoadInt64(&globalMetrics.llmLatency),
		heuristicRuns: atomic.LoadInt64(&globalMetrics.heuristicRuns),
	}
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.llmCalls, 0)
	atomic.StoreInt64(&globalMetrics.llmErrors, 0)
	atomic.StoreInt64(&globalMetrics.llmLatency, 0)
	atomic.StoreInt64(&globalMetrics.heuristicRuns, 0)
}

// recordLLMCall records one model attempt
func recordLLMCall(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.llmCalls, 1)
	atomic.AddInt64(&globalMetrics.llmLatency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.llmErrors, 1)
	}
}

// recordHeuristicRun records one heuristic classification
func recordHeuristicRun() {
	atomic.AddInt64(&globalMetrics.heuristicRuns, 1)
}

// LLMCalls returns the number of model attempts
func (m Metrics) LLMCalls() int64 { return m.llmCalls }

// LLMErrors returns the number of failed model attempts
func (m Metrics) LLMErrors() int64 { return m.llmErrors }

// HeuristicRuns returns the number of heuristic classifications
func (m Metrics) HeuristicRuns() int64 { return m.heuristicRuns }

// AverageLLMLatency returns the average model latency in milliseconds
func (m Metrics) AverageLLMLatency() float64 {
	if m.llmCalls == 0 {
		return 0
	}
	avgNs := float64(m.llmLatency) / float64(m.llmCalls)
	return avgNs / 1e6
}

// LLMErrorRate returns the model error rate as a percentage
func (m Metrics) LLMErrorRate() float64 {
	if m.llmCalls == 0 {
		return 0
	}
	return float64(m.llmErrors) / float64(m.llmCalls) * 100
}
