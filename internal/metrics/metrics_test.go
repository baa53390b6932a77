package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/api/v1/manifests/:name", "200", 0.123)

	counter := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/manifests/:name", "200"))
	if counter != 1.0 {
		t.Errorf("Expected counter to be 1.0, got %f", counter)
	}
}

func TestRecordDecode(t *testing.T) {
	ManifestsDecodedTotal.Reset()
	CodecDuration.Reset()

	RecordDecode(true, 0.002)
	RecordDecode(true, 0.001)
	RecordDecode(false, 0.0005)

	if ok := testutil.ToFloat64(ManifestsDecodedTotal.WithLabelValues("ok")); ok != 2.0 {
		t.Errorf("Expected 2 successful decodes, got %f", ok)
	}
	if failed := testutil.ToFloat64(ManifestsDecodedTotal.WithLabelValues("error")); failed != 1.0 {
		t.Errorf("Expected 1 failed decode, got %f", failed)
	}

	RecordEncode(0.001)
	if n := testutil.CollectAndCount(CodecDuration); n != 2 {
		t.Errorf("Expected decode and encode series, got %d", n)
	}
}

func TestRecordValidationFailure(t *testing.T) {
	ValidationFailuresTotal.Reset()

	RecordValidationFailure("missing required field")
	RecordValidationFailure("missing required field")
	RecordValidationFailure("out of range")

	missing := testutil.ToFloat64(ValidationFailuresTotal.WithLabelValues("missing required field"))
	if missing != 2.0 {
		t.Errorf("Expected 2 missing field failures, got %f", missing)
	}
}

func TestRecordManifestPublished(t *testing.T) {
	ManifestsPublishedTotal.Reset()

	RecordManifestPublished("static", 2048)
	RecordManifestPublished("dynamic", 4096)
	RecordManifestPublished("dynamic", 1024)

	dynamic := testutil.ToFloat64(ManifestsPublishedTotal.WithLabelValues("dynamic"))
	if dynamic != 2.0 {
		t.Errorf("Expected 2 dynamic publishes, got %f", dynamic)
	}

	before := testutil.ToFloat64(ManifestsDeletedTotal)
	RecordManifestDeleted()
	if after := testutil.ToFloat64(ManifestsDeletedTotal); after != before+1 {
		t.Errorf("Expected deleted counter to increase by 1, got %f -> %f", before, after)
	}
}

func TestRecordQueueEvent(t *testing.T) {
	QueueEventsTotal.Reset()

	RecordQueueEvent("publish", "manifest.published", "success")
	RecordQueueEvent("consume", "manifest.published", "error")

	published := testutil.ToFloat64(QueueEventsTotal.WithLabelValues("publish", "manifest.published", "success"))
	if published != 1.0 {
		t.Errorf("Expected 1 published event, got %f", published)
	}
}

func TestRecordStorageOperation(t *testing.T) {
	StorageOperationsTotal.Reset()
	StorageBytesTransferred.Reset()

	RecordStorageOperation("upload", "success", 0.034, 8192)

	counter := testutil.ToFloat64(StorageOperationsTotal.WithLabelValues("upload", "success"))
	if counter != 1.0 {
		t.Errorf("Expected storage operation counter to be 1.0, got %f", counter)
	}

	bytes := testutil.ToFloat64(StorageBytesTransferred.WithLabelValues("upload"))
	if bytes != 8192.0 {
		t.Errorf("Expected bytes transferred to be 8192.0, got %f", bytes)
	}
}

func TestRecordDatabaseOperation(t *testing.T) {
	DatabaseOperationsTotal.Reset()

	RecordDatabaseOperation("select", "success", 0.05)
	RecordDatabaseOperation("insert", "error", 0.02)

	success := testutil.ToFloat64(DatabaseOperationsTotal.WithLabelValues("select", "success"))
	if success != 1.0 {
		t.Errorf("Expected select success counter to be 1.0, got %f", success)
	}

	failed := testutil.ToFloat64(DatabaseOperationsTotal.WithLabelValues("insert", "error"))
	if failed != 1.0 {
		t.Errorf("Expected insert error counter to be 1.0, got %f", failed)
	}
}

func TestRecordCacheAccess(t *testing.T) {
	CacheHitsTotal.Reset()
	CacheMissesTotal.Reset()

	RecordCacheAccess("manifest", true)
	RecordCacheAccess("manifest", true)
	RecordCacheAccess("manifest", false)

	hits := testutil.ToFloat64(CacheHitsTotal.WithLabelValues("manifest"))
	if hits != 2.0 {
		t.Errorf("Expected cache hits to be 2.0, got %f", hits)
	}

	misses := testutil.ToFloat64(CacheMissesTotal.WithLabelValues("manifest"))
	if misses != 1.0 {
		t.Errorf("Expected cache misses to be 1.0, got %f", misses)
	}
}

func TestRecordError(t *testing.T) {
	ErrorsTotal.Reset()

	RecordError("api", "validation")
	RecordError("worker", "storage")
	RecordError("api", "validation")

	apiErrors := testutil.ToFloat64(ErrorsTotal.WithLabelValues("api", "validation"))
	if apiErrors != 2.0 {
		t.Errorf("Expected API validation errors to be 2.0, got %f", apiErrors)
	}
}

func TestGauges(t *testing.T) {
	SetQueueDepth("manifest_cache_warm", 12)
	SetQueueDepth("manifest_cache_warm_dlq", 1)
	SetManifestsStored(42)

	if depth := testutil.ToFloat64(QueueDepth.WithLabelValues("manifest_cache_warm")); depth != 12 {
		t.Errorf("Expected queue depth 12, got %f", depth)
	}
	if depth := testutil.ToFloat64(QueueDepth.WithLabelValues("manifest_cache_warm_dlq")); depth != 1 {
		t.Errorf("Expected DLQ depth 1, got %f", depth)
	}
	if stored := testutil.ToFloat64(ManifestsStored); stored != 42 {
		t.Errorf("Expected 42 manifests, got %f", stored)
	}
}

func TestRecordWebhookDelivery(t *testing.T) {
	WebhookDeliveriesTotal.Reset()

	RecordWebhookDelivery("manifest.published", "success", 0.05)
	RecordWebhookDelivery("manifest.published", "error", 1.2)

	if ok := testutil.ToFloat64(WebhookDeliveriesTotal.WithLabelValues("manifest.published", "success")); ok != 1.0 {
		t.Errorf("Expected 1 successful delivery, got %f", ok)
	}
	if n := testutil.CollectAndCount(WebhookDeliveriesTotal); n != 2 {
		t.Errorf("Expected 2 series, got %d", n)
	}
}

func TestStatus(t *testing.T) {
	if got := Status(nil); got != "success" {
		t.Errorf("Status(nil) = %q", got)
	}
	if got := Status(errors.New("x")); got != "error" {
		t.Errorf("Status(err) = %q", got)
	}
}

func TestServerRoutes(t *testing.T) {
	RecordManifestPublished("static", 100)
	srv := NewServer(0)

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 from /health, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "dashmpd_manifests_published_total") {
		t.Error("Expected /metrics to expose dashmpd_manifests_published_total")
	}
}

func TestServerHealthCheck(t *testing.T) {
	var failing error
	srv := NewServer(0).WithHealth(func() error { return failing })

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 from /health, got %d", rec.Code)
	}

	failing = errors.New("backlog critical")
	rec = httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 from /health, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "backlog critical") {
		t.Errorf("Expected the failure in the body, got %q", rec.Body.String())
	}
}

func BenchmarkRecordHTTPRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordHTTPRequest("GET", "/api/v1/manifests/:name", "200", 0.123)
	}
}

func BenchmarkRecordDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordDecode(true, 0.001)
	}
}
