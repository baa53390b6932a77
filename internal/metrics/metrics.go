package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashmpd_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashmpd_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Codec Metrics
	ManifestsDecodedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashmpd_manifests_decoded_total",
			Help: "Total number of MPD documents decoded",
		},
		[]string{"result"},
	)

	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashmpd_validation_failures_total",
			Help: "Total number of rejected manifests by failure kind",
		},
		[]string{"kind"},
	)

	CodecDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashmpd_codec_duration_seconds",
			Help:    "Time spent decoding or encoding an MPD document",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 100µs to ~0.8s
		},
		[]string{"operation"},
	)

	// Catalog Metrics
	ManifestsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashmpd_manifests_published_total",
			Help: "Total number of manifest revisions published",
		},
		[]string{"type"},
	)

	ManifestsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dashmpd_manifests_deleted_total",
			Help: "Total number of manifests deleted",
		},
	)

	ManifestSizeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashmpd_manifest_size_bytes",
			Help:    "Size of published manifests in bytes",
			Buckets: prometheus.ExponentialBuckets(512, 2, 14), // 512B to 4MB
		},
	)

	// Queue Metrics
	QueueEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashmpd_queue_events_total",
			Help: "Total number of manifest events by direction and status",
		},
		[]string{"direction", "type", "status"},
	)

	QueueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashmpd_queue_depth",
			Help: "Messages waiting in each queue",
		},
		[]string{"queue"},
	)

	ManifestsStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashmpd_manifests_stored",
			Help: "Number of manifests in the catalog",
		},
	)

	// Webhook Metrics
	WebhookDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashmpd_webhook_deliveries_total",
			Help: "Total number of webhook deliveries by event type and status",
		},
		[]string{"type", "status"},
	)

	WebhookDeliveryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashmpd_webhook_delivery_duration_seconds",
			Help:    "Webhook delivery duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Storage Metrics
	StorageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashmpd_storage_operations_total",
			Help: "Total number of storage operations",
		},
		[]string{"operation", "status"},
	)

	StorageOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashmpd_storage_operation_duration_seconds",
			Help:    "Storage operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
		[]string{"operation"},
	)

	StorageBytesTransferred = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashmpd_storage_bytes_transferred_total",
			Help: "Total bytes transferred to/from storage",
		},
		[]string{"operation"},
	)

	// Database Metrics
	DatabaseOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashmpd_database_operations_total",
			Help: "Total number of database operations",
		},
		[]string{"operation", "status"},
	)

	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashmpd_database_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Cache Metrics
	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashmpd_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashmpd_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashmpd_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)

// RecordHTTPRequest records an HTTP request
func RecordHTTPRequest(method, endpoint, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordDecode records one decode attempt
func RecordDecode(ok bool, duration float64) {
	result := "ok"
	if !ok {
		result = "error"
	}
	ManifestsDecodedTotal.WithLabelValues(result).Inc()
	CodecDuration.WithLabelValues("decode").Observe(duration)
}

// RecordEncode records one encode
func RecordEncode(duration float64) {
	CodecDuration.WithLabelValues("encode").Observe(duration)
}

// RecordValidationFailure records a rejected manifest
func RecordValidationFailure(kind string) {
	ValidationFailuresTotal.WithLabelValues(kind).Inc()
}

// RecordManifestPublished records a stored revision
func RecordManifestPublished(presentationType string, sizeBytes int) {
	ManifestsPublishedTotal.WithLabelValues(presentationType).Inc()
	ManifestSizeBytes.Observe(float64(sizeBytes))
}

// RecordManifestDeleted records a deleted manifest
func RecordManifestDeleted() {
	ManifestsDeletedTotal.Inc()
}

// RecordQueueEvent records a published or consumed event
func RecordQueueEvent(direction, eventType, status string) {
	QueueEventsTotal.WithLabelValues(direction, eventType, status).Inc()
}

// SetQueueDepth records the number of messages waiting in a queue
func SetQueueDepth(queue string, depth int) {
	QueueDepth.WithLabelValues(queue).Set(float64(depth))
}

// SetManifestsStored records the catalog size
func SetManifestsStored(n int64) {
	ManifestsStored.Set(float64(n))
}

// RecordWebhookDelivery records one webhook delivery attempt
func RecordWebhookDelivery(eventType, status string, duration float64) {
	WebhookDeliveriesTotal.WithLabelValues(eventType, status).Inc()
	WebhookDeliveryDuration.Observe(duration)
}

// RecordStorageOperation records a storage operation
func RecordStorageOperation(operation, status string, duration float64, bytesTransferred int64) {
	StorageOperationsTotal.WithLabelValues(operation, status).Inc()
	StorageOperationDuration.WithLabelValues(operation).Observe(duration)
	StorageBytesTransferred.WithLabelValues(operation).Add(float64(bytesTransferred))
}

// RecordDatabaseOperation records a database operation
func RecordDatabaseOperation(operation, status string, duration float64) {
	DatabaseOperationsTotal.WithLabelValues(operation, status).Inc()
	DatabaseOperationDuration.WithLabelValues(operation).Observe(duration)
}

// RecordCacheAccess records cache hit or miss
func RecordCacheAccess(cacheType string, hit bool) {
	if hit {
		CacheHitsTotal.WithLabelValues(cacheType).Inc()
	} else {
		CacheMissesTotal.WithLabelValues(cacheType).Inc()
	}
}

// RecordError records an error
func RecordError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}

// Status maps an error to the status label used across metrics
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
