package hashlife

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds optional Prometheus instrumentation for the node pool and
// cache manager. A nil *Metrics is always safe to use: every hashlife
// operation checks for nil before recording. Attach one with AttachMetrics
// to start collecting.
type Metrics struct {
	PoolSize      prometheus.Gauge
	InternHits    prometheus.Counter
	InternMisses  prometheus.Counter
	StepCalls     prometheus.Counter
	AdvanceCalls  prometheus.Counter
	MemoHits      prometheus.Counter
	MemoMisses    prometheus.Counter
	GCSweeps      prometheus.Counter
	GCDuration    prometheus.Histogram
	GCRetained    prometheus.Gauge
}

// NewMetrics builds a Metrics instance and registers all of its collectors
// with reg. Pass a fresh prometheus.NewRegistry() in tests to avoid
// colliding with the global default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PoolSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hashlife_pool_nodes",
			Help: "Number of canonical nodes currently interned.",
		}),
		InternHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_intern_hits_total",
			Help: "Interner lookups that found an existing canonical node.",
		}),
		InternMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_intern_misses_total",
			Help: "Interner lookups that created a new canonical node.",
		}),
		StepCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_step_calls_total",
			Help: "Step evaluations, including recursive sub-steps and memoized ones.",
		}),
		AdvanceCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_advance_calls_total",
			Help: "Calls to Advance.",
		}),
		MemoHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_step_memo_hits_total",
			Help: "Step calls served from the memo table.",
		}),
		MemoMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_step_memo_misses_total",
			Help: "Step calls that required recomputation.",
		}),
		GCSweeps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_gc_sweeps_total",
			Help: "Completed CollectGarbage sweeps.",
		}),
		GCDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hashlife_gc_duration_seconds",
			Help:    "Wall-clock duration of CollectGarbage sweeps.",
			Buckets: prometheus.DefBuckets,
		}),
		GCRetained: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hashlife_gc_retained_nodes",
			Help: "Number of nodes retained by the most recent GC sweep.",
		}),
	}
	reg.MustRegister(
		m.PoolSize, m.InternHits, m.InternMisses,
		m.StepCalls, m.AdvanceCalls, m.MemoHits, m.MemoMisses,
		m.GCSweeps, m.GCDuration, m.GCRetained,
	)
	return m
}

func (m *Metrics) recordLookup(hit bool) {
	if hit {
		m.InternHits.Inc()
	} else {
		m.InternMisses.Inc()
	}
}

func (m *Metrics) setPoolSize(n int) {
	m.PoolSize.Set(float64(n))
}

func (m *Metrics) recordStep(memoHit bool) {
	m.StepCalls.Inc()
	if memoHit {
		m.MemoHits.Inc()
	} else {
		m.MemoMisses.Inc()
	}
}

func (m *Metrics) recordAdvance() {
	m.AdvanceCalls.Inc()
}

func (m *Metrics) recordGC(start time.Time, retained int) {
	m.GCSweeps.Inc()
	m.GCDuration.Observe(time.Since(start).Seconds())
	m.GCRetained.Set(float64(retained))
}
