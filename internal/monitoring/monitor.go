package monitoring

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/logging"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/metrics"
)

// Health levels reported by Monitor
const (
	HealthHealthy  = "healthy"
	HealthWarning  = "warning"
	HealthCritical = "critical"
)

// Thresholds above which the backlog raises alerts
type Thresholds struct {
	QueueDepth int
	DLQDepth   int
}

// DefaultThresholds suit a single cache warming worker
var DefaultThresholds = Thresholds{QueueDepth: 1000, DLQDepth: 100}

// Snapshot holds the last sampled backlog
type Snapshot struct {
	QueueDepth  int       `json:"queue_depth"`
	DLQDepth    int       `json:"dlq_depth"`
	Manifests   int64     `json:"manifests"`
	LastUpdated time.Time `json:"last_updated"`
}

// QueueProvider reports queue backlog
type QueueProvider interface {
	QueueName() string
	DeadLetterQueueName() string
	GetQueueDepth() (int, error)
	GetDLQDepth() (int, error)
}

// CatalogCounter reports the catalog size
type CatalogCounter interface {
	CountManifests(ctx context.Context) (int64, error)
}

// Monitor samples queue and catalog sizes into gauges and derives alerts
type Monitor struct {
	queue      QueueProvider
	catalog    CatalogCounter
	thresholds Thresholds
	logger     *logging.Logger

	mu       sync.RWMutex
	snapshot Snapshot
	alerts   []string
}

// NewMonitor creates a monitor. catalog may be nil. Zero thresholds take
// their DefaultThresholds value.
func NewMonitor(queue QueueProvider, catalog CatalogCounter, thresholds Thresholds, logger *logging.Logger) *Monitor {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if thresholds.QueueDepth <= 0 {
		thresholds.QueueDepth = DefaultThresholds.QueueDepth
	}
	if thresholds.DLQDepth <= 0 {
		thresholds.DLQDepth = DefaultThresholds.DLQDepth
	}
	return &Monitor{
		queue:      queue,
		catalog:    catalog,
		thresholds: thresholds,
		logger:     logger,
	}
}

// Run samples every interval until ctx is done
func (m *Monitor) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := m.Sample(ctx); err != nil {
			m.logger.WithError(err).Warn("Failed to sample backlog")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Sample refreshes the snapshot and the exported gauges
func (m *Monitor) Sample(ctx context.Context) error {
	queueDepth, err := m.queue.GetQueueDepth()
	if err != nil {
		return fmt.Errorf("failed to get queue depth: %w", err)
	}
	dlqDepth, err := m.queue.GetDLQDepth()
	if err != nil {
		return fmt.Errorf("failed to get DLQ depth: %w", err)
	}

	metrics.SetQueueDepth(m.queue.QueueName(), queueDepth)
	metrics.SetQueueDepth(m.queue.DeadLetterQueueName(), dlqDepth)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshot.QueueDepth = queueDepth
	m.snapshot.DLQDepth = dlqDepth
	if m.catalog != nil {
		n, err := m.catalog.CountManifests(ctx)
		if err != nil {
			return fmt.Errorf("failed to count manifests: %w", err)
		}
		m.snapshot.Manifests = n
		metrics.SetManifestsStored(n)
	}
	m.snapshot.LastUpdated = time.Now()

	alerts := m.evaluate()
	if len(alerts) > 0 && len(m.alerts) == 0 {
		m.logger.WithField("alerts", alerts).Warn("Backlog alerts raised")
	} else if len(alerts) == 0 && len(m.alerts) > 0 {
		m.logger.Info("Backlog alerts cleared")
	}
	m.alerts = alerts

	return nil
}

// evaluate must be called with mu held
func (m *Monitor) evaluate() []string {
	var alerts []string
	if m.snapshot.DLQDepth > m.thresholds.DLQDepth {
		alerts = append(alerts, fmt.Sprintf("High DLQ depth: %d messages", m.snapshot.DLQDepth))
	}
	if m.snapshot.QueueDepth > m.thresholds.QueueDepth {
		alerts = append(alerts, fmt.Sprintf("High queue depth: %d events pending", m.snapshot.QueueDepth))
	}
	return alerts
}

// Snapshot returns the last sample
func (m *Monitor) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// Alerts returns the alerts raised by the last sample
func (m *Monitor) Alerts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.alerts...)
}

// Health summarises the backlog as healthy, warning or critical
func (m *Monitor) Health() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch {
	case m.snapshot.DLQDepth > m.thresholds.DLQDepth:
		return HealthCritical
	case m.snapshot.QueueDepth > m.thresholds.QueueDepth:
		return HealthWarning
	default:
		return HealthHealthy
	}
}

// Check fails while the backlog is critical. It suits a readiness probe.
func (m *Monitor) Check() error {
	if m.Health() != HealthCritical {
		return nil
	}
	return fmt.Errorf("backlog %s: %s", HealthCritical, strings.Join(m.Alerts(), "; "))
}
