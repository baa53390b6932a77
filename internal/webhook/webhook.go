package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/logging"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/metrics"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/models"
)

const userAgent = "dashmpd-webhook/1.0"

// maxResponseBody bounds how much of a failed response is kept for the error
const maxResponseBody = 512

// Endpoint is a subscriber URL. An empty Events list receives every event type.
type Endpoint struct {
	URL    string
	Secret string
	Events []string
}

// Wants reports whether the endpoint subscribes to eventType
func (e Endpoint) Wants(eventType string) bool {
	return len(e.Events) == 0 || slices.Contains(e.Events, eventType)
}

// Payload is the JSON body posted to subscribers
type Payload struct {
	Event     string                `json:"event"`
	Timestamp time.Time             `json:"timestamp"`
	Data      *models.ManifestEvent `json:"data"`
}

// Notifier posts manifest events to configured endpoints
type Notifier struct {
	client    *http.Client
	endpoints []Endpoint
	logger    *logging.Logger
	now       func() time.Time
}

// NewNotifier creates a notifier. A zero timeout falls back to 30s.
func NewNotifier(endpoints []Endpoint, timeout time.Duration, logger *logging.Logger) *Notifier {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Notifier{
		client:    &http.Client{Timeout: timeout},
		endpoints: endpoints,
		logger:    logger,
		now:       time.Now,
	}
}

// Notify delivers event to every subscribed endpoint. Failed deliveries are
// joined into the returned error so the queue can retry the event; the
// delivery id is the event id so receivers can drop duplicates.
func (n *Notifier) Notify(ctx context.Context, event *models.ManifestEvent) error {
	if event == nil {
		return nil
	}

	var targets []Endpoint
	for _, ep := range n.endpoints {
		if ep.Wants(event.Type) {
			targets = append(targets, ep)
		}
	}
	if len(targets) == 0 {
		return nil
	}

	body, err := json.Marshal(Payload{
		Event:     event.Type,
		Timestamp: n.now().UTC(),
		Data:      event,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	var errs []error
	for _, ep := range targets {
		start := time.Now()
		err := n.deliver(ctx, ep, event, body)
		metrics.RecordWebhookDelivery(event.Type, metrics.Status(err), time.Since(start).Seconds())

		log := n.logger.WithManifest(event.Name).WithField("url", ep.URL)
		if err != nil {
			log.WithError(err).Warn("Webhook delivery failed")
			errs = append(errs, fmt.Errorf("deliver to %s: %w", ep.URL, err))
			continue
		}
		log.Debugf("Delivered %s webhook", event.Type)
	}

	return errors.Join(errs...)
}

func (n *Notifier) deliver(ctx context.Context, ep Endpoint, event *models.ManifestEvent, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Webhook-Event", event.Type)
	req.Header.Set("X-Webhook-Delivery", event.ID)
	if ep.Secret != "" {
		req.Header.Set("X-Webhook-Signature", Sign(body, ep.Secret))
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}
	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// Sign returns the HMAC-SHA256 signature header value for payload
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return "sha256=" + hex.EncodeToString(h.Sum(nil))
}

// Verify checks a signature produced by Sign
func Verify(payload []byte, secret, signature string) bool {
	return hmac.Equal([]byte(Sign(payload, secret)), []byte(signature))
}
