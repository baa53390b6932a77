package queue

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/models"
)

const (
	// MaxRetries is how often a failed event is retried before dead lettering
	MaxRetries = 5

	retryHeader    = "x-retry-count"
	reasonHeader   = "x-failure-reason"
	failedAtHeader = "x-failed-at"
)

// QueueName is the queue consumers read events from
func (q *Queue) QueueName() string { return q.queue }

// DeadLetterQueueName is where events land after MaxRetries failures
func (q *Queue) DeadLetterQueueName() string { return q.queue + "_dlq" }

// RetryQueueName holds events waiting out their backoff delay
func (q *Queue) RetryQueueName() string { return q.queue + "_retry" }

// DeadLetterExchangeName routes to the dead letter queue
func (q *Queue) DeadLetterExchangeName() string { return q.exchange + "_dlq" }

// SetupDeadLetterQueue sets up the dead letter queue infrastructure
func (q *Queue) SetupDeadLetterQueue() error {
	err := q.channel.ExchangeDeclare(
		q.DeadLetterExchangeName(),
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare DLQ exchange: %w", err)
	}

	_, err = q.channel.QueueDeclare(
		q.DeadLetterQueueName(),
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare DLQ: %w", err)
	}

	err = q.channel.QueueBind(
		q.DeadLetterQueueName(),
		q.DeadLetterQueueName(),
		q.DeadLetterExchangeName(),
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to bind DLQ: %w", err)
	}

	// Expired retries go straight back to the consumer queue
	retryArgs := amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": q.queue,
	}

	_, err = q.channel.QueueDeclare(
		q.RetryQueueName(),
		true,
		false,
		false,
		false,
		retryArgs,
	)
	if err != nil {
		return fmt.Errorf("failed to declare retry queue: %w", err)
	}

	q.deadLettering = true
	q.logger.Info("Dead letter queue infrastructure set up successfully")
	return nil
}

// PublishToRetryQueue schedules event for another delivery after a backoff delay
func (q *Queue) PublishToRetryQueue(ctx context.Context, event *models.ManifestEvent, retries int) error {
	if retries >= MaxRetries {
		return q.PublishToDeadLetterQueue(ctx, event, "max retries exceeded")
	}

	msg, err := newPublishing(event, retries+1)
	if err != nil {
		return err
	}
	delay := calculateBackoffDelay(retries)
	msg.Expiration = fmt.Sprintf("%d", delay.Milliseconds())

	if err := q.channel.PublishWithContext(ctx, "", q.RetryQueueName(), false, false, msg); err != nil {
		return fmt.Errorf("failed to publish to retry queue: %w", err)
	}

	q.logger.WithManifest(event.Name).Infof("Event %s queued for retry #%d in %v", event.ID, retries+1, delay)
	return nil
}

// PublishToDeadLetterQueue publishes a failed event to the dead letter queue
func (q *Queue) PublishToDeadLetterQueue(ctx context.Context, event *models.ManifestEvent, reason string) error {
	msg, err := newPublishing(event, MaxRetries)
	if err != nil {
		return err
	}
	msg.Headers[reasonHeader] = reason
	msg.Headers[failedAtHeader] = time.Now().Format(time.RFC3339)

	err = q.channel.PublishWithContext(ctx,
		q.DeadLetterExchangeName(),
		q.DeadLetterQueueName(),
		false,
		false,
		msg,
	)
	if err != nil {
		return fmt.Errorf("failed to publish to DLQ: %w", err)
	}

	q.logger.WithManifest(event.Name).Warnf("Event %s moved to dead letter queue: %s", event.ID, reason)
	return nil
}

// GetDLQDepth returns the number of messages in the dead letter queue
func (q *Queue) GetDLQDepth() (int, error) {
	info, err := q.channel.QueueInspect(q.DeadLetterQueueName())
	if err != nil {
		return 0, fmt.Errorf("failed to inspect DLQ: %w", err)
	}

	return info.Messages, nil
}

// calculateBackoffDelay calculates exponential backoff delay
func calculateBackoffDelay(attempt int) time.Duration {
	// 5s, 10s, 20s, 40s, 80s
	baseDelay := 5 * time.Second
	delay := baseDelay * (1 << attempt)

	if delay > 5*time.Minute {
		delay = 5 * time.Minute
	}

	return delay
}

// retryCount reads the retry header, which arrives as whatever integer width
// the publisher used
func retryCount(headers amqp.Table) int {
	switch v := headers[retryHeader].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	case int16:
		return int(v)
	case int8:
		return int(v)
	default:
		return 0
	}
}
