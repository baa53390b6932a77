package monitoring

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/logging"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/metrics"
)

type fakeQueue struct {
	depth, dlq int
	err        error
}

func (f *fakeQueue) QueueName() string           { return "warm" }
func (f *fakeQueue) DeadLetterQueueName() string { return "warm_dlq" }
func (f *fakeQueue) GetQueueDepth() (int, error) { return f.depth, f.err }
func (f *fakeQueue) GetDLQDepth() (int, error)   { return f.dlq, nil }

type fakeCatalog struct {
	n int64
}

func (f *fakeCatalog) CountManifests(ctx context.Context) (int64, error) { return f.n, nil }

func TestSample(t *testing.T) {
	q := &fakeQueue{depth: 3, dlq: 1}
	m := NewMonitor(q, &fakeCatalog{n: 17}, DefaultThresholds, nil)

	require.NoError(t, m.Sample(context.Background()))

	snap := m.Snapshot()
	assert.Equal(t, 3, snap.QueueDepth)
	assert.Equal(t, 1, snap.DLQDepth)
	assert.Equal(t, int64(17), snap.Manifests)
	assert.False(t, snap.LastUpdated.IsZero())

	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.QueueDepth.WithLabelValues("warm")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.QueueDepth.WithLabelValues("warm_dlq")))
	assert.Equal(t, float64(17), testutil.ToFloat64(metrics.ManifestsStored))

	assert.Equal(t, HealthHealthy, m.Health())
	assert.NoError(t, m.Check())
	assert.Empty(t, m.Alerts())
}

func TestHealthLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: "info", Format: "json"}, &buf)

	q := &fakeQueue{}
	m := NewMonitor(q, nil, Thresholds{QueueDepth: 10, DLQDepth: 2}, logger)
	ctx := context.Background()

	q.depth = 11
	require.NoError(t, m.Sample(ctx))
	assert.Equal(t, HealthWarning, m.Health())
	assert.Len(t, m.Alerts(), 1)
	assert.Contains(t, buf.String(), "Backlog alerts raised")
	assert.NoError(t, m.Check())

	q.dlq = 3
	require.NoError(t, m.Sample(ctx))
	assert.Equal(t, HealthCritical, m.Health())
	assert.Len(t, m.Alerts(), 2)
	require.Error(t, m.Check())
	assert.Contains(t, m.Check().Error(), "High DLQ depth: 3 messages")

	q.depth, q.dlq = 0, 0
	require.NoError(t, m.Sample(ctx))
	assert.Equal(t, HealthHealthy, m.Health())
	assert.Contains(t, buf.String(), "Backlog alerts cleared")
}

func TestSampleError(t *testing.T) {
	m := NewMonitor(&fakeQueue{err: errors.New("channel closed")}, nil, DefaultThresholds, nil)
	assert.Error(t, m.Sample(context.Background()))
}

func TestRunStops(t *testing.T) {
	m := NewMonitor(&fakeQueue{depth: 1}, nil, DefaultThresholds, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 1, m.Snapshot().QueueDepth)
}
