package metrics

import (
	"sync/atomic"
	"time"
)

// SolverMetric counts the work done by the reasoning agents of one matchup.
type SolverMetric struct {
	Duration    time.Duration
	Evaluations int64 // move values computed
	Replays     int64
	Revisions   int64 // claim verifications computed
	Discounts   int64 // worlds discounted as not rationalisable
	CacheHits   int64
	CacheMisses int64
}

// HitRate is the share of cache lookups that hit, or 0 without lookups.
func (m SolverMetric) HitRate() float64 {
	lookups := m.CacheHits + m.CacheMisses
	if lookups == 0 {
		return 0
	}
	return float64(m.CacheHits) / float64(lookups)
}

// Collector may be shared by solvers running on different goroutines.
type Collector interface {
	Start()
	AddEvaluation()
	AddReplay()
	AddRevision()
	AddDiscount()
	AddCacheHit()
	AddCacheMiss()
	Complete() SolverMetric
}

type collector struct {
	startTime   time.Time
	evaluations atomic.Int64
	replays     atomic.Int64
	revisions   atomic.Int64
	discounts   atomic.Int64
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
}

func NewCollector() Collector {
	return &collector{startTime: time.Now()}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddReplay() {
	m.replays.Add(1)
}

func (m *collector) AddRevision() {
	m.revisions.Add(1)
}

func (m *collector) AddDiscount() {
	m.discounts.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) AddCacheMiss() {
	m.cacheMisses.Add(1)
}

func (m *collector) Complete() SolverMetric {
	return SolverMetric{
		Duration:    time.Since(m.startTime),
		Evaluations: m.evaluations.Load(),
		Replays:     m.replays.Load(),
		Revisions:   m.revisions.Load(),
		Discounts:   m.discounts.Load(),
		CacheHits:   m.cacheHits.Load(),
		CacheMisses: m.cacheMisses.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) AddReplay()             {}
func (m *dummyCollector) AddRevision()           {}
func (m *dummyCollector) AddDiscount()           {}
func (m *dummyCollector) AddCacheHit()           {}
func (m *dummyCollector) AddCacheMiss()          {}
func (m *dummyCollector) Complete() SolverMetric { return SolverMetric{} }
