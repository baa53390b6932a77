package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/config"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/logging"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/metrics"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/models"
)

// EventBinding matches every manifest event type on the topic exchange
const EventBinding = "manifest.#"

// Handler processes one delivered manifest event
type Handler func(ctx context.Context, event *models.ManifestEvent) error

// Queue publishes and consumes manifest events
type Queue struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
	logger   *logging.Logger

	deadLettering bool
}

// URL builds the AMQP connection URL for cfg
func URL(cfg config.QueueConfig) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Vhost)
}

// New creates a new queue client
func New(cfg config.QueueConfig, logger *logging.Logger) (*Queue, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	conn, err := amqp.Dial(URL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	q := &Queue{
		conn:     conn,
		channel:  channel,
		exchange: cfg.Exchange,
		queue:    cfg.Queue,
		logger:   logger,
	}

	if err := q.declare(); err != nil {
		q.Close()
		return nil, err
	}

	return q, nil
}

func (q *Queue) declare() error {
	err := q.channel.ExchangeDeclare(
		q.exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	if q.queue == "" {
		return nil
	}

	_, err = q.channel.QueueDeclare(
		q.queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := q.channel.QueueBind(q.queue, EventBinding, q.exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	return nil
}

// Close closes the queue connection
func (q *Queue) Close() error {
	if q.channel != nil {
		q.channel.Close()
	}
	if q.conn != nil {
		return q.conn.Close()
	}
	return nil
}

// PublishEvent publishes a manifest event, routed by its type
func (q *Queue) PublishEvent(ctx context.Context, event *models.ManifestEvent) error {
	msg, err := newPublishing(event, 0)
	if err != nil {
		return err
	}

	err = q.channel.PublishWithContext(ctx,
		q.exchange,
		event.Type,
		false, // mandatory
		false, // immediate
		msg,
	)
	q.logger.LogQueueOperation("publish", q.exchange, event.Type, err)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// ConsumeEvents delivers events to handler until ctx is done. A failed
// delivery is rescheduled through the retry queue when dead lettering is set up,
// otherwise it is requeued.
func (q *Queue) ConsumeEvents(ctx context.Context, prefetch int, handler Handler) error {
	if prefetch <= 0 {
		prefetch = 1
	}

	// Set QoS to limit concurrent processing
	if err := q.channel.Qos(prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := q.channel.Consume(
		q.queue,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				q.deliver(ctx, msg, handler)
			}
		}
	}()

	return nil
}

func (q *Queue) deliver(ctx context.Context, msg amqp.Delivery, handler Handler) {
	event, err := decodeEvent(msg.Body)
	if err != nil {
		q.logger.WithError(err).Warn("Dropping malformed manifest event")
		metrics.RecordQueueEvent("consume", "unknown", "malformed")
		msg.Nack(false, false)
		return
	}

	err = handler(ctx, event)
	metrics.RecordQueueEvent("consume", event.Type, metrics.Status(err))
	if err != nil {
		q.logger.WithManifest(event.Name).WithError(err).Warn("Manifest event handler failed")
		if !q.deadLettering {
			msg.Nack(false, true)
			return
		}
		if retryErr := q.PublishToRetryQueue(ctx, event, retryCount(msg.Headers)); retryErr != nil {
			msg.Nack(false, true)
			return
		}
	}
	msg.Ack(false)
}

// GetQueueDepth returns the number of messages in the queue
func (q *Queue) GetQueueDepth() (int, error) {
	info, err := q.channel.QueueInspect(q.queue)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect queue: %w", err)
	}

	return info.Messages, nil
}

func newPublishing(event *models.ManifestEvent, retries int) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	return amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    event.ID,
		Type:         event.Type,
		Body:         body,
		Timestamp:    time.Now(),
		Headers:      amqp.Table{retryHeader: int32(retries)},
	}, nil
}

func decodeEvent(body []byte) (*models.ManifestEvent, error) {
	var event models.ManifestEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.Name == "" || event.Type == "" {
		return nil, fmt.Errorf("event %q is missing name or type", event.ID)
	}
	return &event, nil
}
