// Package scheduler runs the periodic health probe against the remote
// recommendation sources. Probe failures are informational: the
// orchestrator already falls through on its own, this just makes
// outages visible before users hit them.
package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/TaddsTechnology/huematch-api/recommend"
)

// probeHex and probeTone are the mid-scale reference sample used to
// exercise the real query contract on every probe.
const (
	probeHex     = "D7BD96"
	probeTone    = "Monk05"
	probeTimeout = 10 * time.Second
)

// SourceStatus is the outcome of the most recent probe of one source.
type SourceStatus struct {
	Name      string    `json:"name"`
	Available bool      `json:"available"`
	CheckedAt time.Time `json:"checkedAt"`
	Error     string    `json:"error,omitempty"`
}

// Monitor probes each source on a fixed interval and keeps the last
// result per source.
type Monitor struct {
	sources  []recommend.Source
	interval time.Duration
	ticker   *time.Ticker
	done     chan bool

	mu       sync.RWMutex
	statuses map[string]SourceStatus
}

func NewMonitor(interval time.Duration, sources ...recommend.Source) *Monitor {
	return &Monitor{
		sources:  sources,
		interval: interval,
		done:     make(chan bool),
		statuses: make(map[string]SourceStatus),
	}
}

// Start probes once immediately, then on every interval tick until Stop.
func (m *Monitor) Start() {
	log.Printf("Source health monitor started. Probing every %v", m.interval)

	m.ProbeAll()

	m.ticker = time.NewTicker(m.interval)
	go func() {
		for {
			select {
			case <-m.ticker.C:
				m.ProbeAll()
			case <-m.done:
				return
			}
		}
	}()
}

// Stop stops the monitor
func (m *Monitor) Stop() {
	if m.ticker != nil {
		m.ticker.Stop()
	}
	m.done <- true
	log.Println("Source health monitor stopped")
}

// ProbeAll checks every source once and records the results.
func (m *Monitor) ProbeAll() {
	for _, source := range m.sources {
		if source == nil {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		_, err := source.Fetch(ctx, probeHex, probeTone)
		cancel()

		status := SourceStatus{
			Name:      source.Name(),
			Available: err == nil,
			CheckedAt: time.Now(),
		}
		if err != nil {
			status.Error = err.Error()
			log.Printf("Source %s unavailable: %v", source.Name(), err)
		}

		m.mu.Lock()
		m.statuses[source.Name()] = status
		m.mu.Unlock()
	}
}

// Statuses returns the last recorded status per source.
func (m *Monitor) Statuses() []SourceStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]SourceStatus, 0, len(m.statuses))
	for _, source := range m.sources {
		if source == nil {
			continue
		}
		if status, ok := m.statuses[source.Name()]; ok {
			out = append(out, status)
		}
	}
	return out
}
