package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Monitor collects conversation metrics: it feeds the Prometheus registry
// for scraping and keeps an in-process snapshot for the metrics API.
// All methods are safe on a nil receiver so components can run unmonitored.
type Monitor struct {
	messages    *prometheus.CounterVec
	shortcuts   *prometheus.CounterVec
	llmFailures *prometheus.CounterVec
	turnSeconds prometheus.Histogram

	mu        sync.RWMutex
	counts    map[string]float64
	startTime time.Time
}

// NewMonitor creates a monitor registered with the given registerer.
// A nil registerer uses the default Prometheus registry.
func NewMonitor(reg prometheus.Registerer) *Monitor {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Monitor{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shackchat_messages_total",
			Help: "Messages handled, by classified intent.",
		}, []string{"intent"}),
		shortcuts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shackchat_shortcuts_total",
			Help: "Messages answered by a literal-keyword shortcut, by shortcut name.",
		}, []string{"shortcut"}),
		llmFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shackchat_llm_failures_total",
			Help: "Completion-call failures, by failure category.",
		}, []string{"kind"}),
		turnSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "shackchat_turn_duration_seconds",
			Help:    "Time to handle one conversation turn.",
			Buckets: prometheus.DefBuckets,
		}),
		counts:    make(map[string]float64),
		startTime: time.Now(),
	}

	reg.MustRegister(m.messages, m.shortcuts, m.llmFailures, m.turnSeconds)
	return m
}

// RecordIntent counts one handled message for an intent
func (m *Monitor) RecordIntent(intent string) {
	if m == nil {
		return
	}
	m.messages.WithLabelValues(intent).Inc()
	m.bump("intent_" + intent)
}

// RecordShortcut counts one message answered by a keyword shortcut
func (m *Monitor) RecordShortcut(name string) {
	if m == nil {
		return
	}
	m.shortcuts.WithLabelValues(name).Inc()
	m.bump("shortcut_" + name)
}

// RecordLLMFailure counts one categorized completion failure
func (m *Monitor) RecordLLMFailure(kind string) {
	if m == nil {
		return
	}
	m.llmFailures.WithLabelValues(kind).Inc()
	m.bump("llm_failure_" + kind)
}

// ObserveTurn records the duration of one conversation turn
func (m *Monitor) ObserveTurn(d time.Duration) {
	if m == nil {
		return
	}
	m.turnSeconds.Observe(d.Seconds())
}

func (m *Monitor) bump(key string) {
	m.mu.Lock()
	m.counts[key]++
	m.mu.Unlock()
}

// Snapshot returns a copy of the in-process counters plus uptime
func (m *Monitor) Snapshot() map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]interface{}, len(m.counts)+1)
	for k, v := range m.counts {
		out[k] = v
	}
	out["uptime_seconds"] = time.Since(m.startTime).Seconds()
	return out
}
