package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "JSON format to stdout",
			config: Config{
				Level:  "info",
				Format: "json",
				Output: "stdout",
			},
			wantErr: false,
		},
		{
			name: "Console format to stderr",
			config: Config{
				Level:  "debug",
				Format: "console",
				Output: "stderr",
			},
			wantErr: false,
		},
		{
			name: "Invalid log level defaults to info",
			config: Config{
				Level:  "invalid",
				Format: "json",
				Output: "stdout",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewLogger() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && logger == nil {
				t.Error("Expected non-nil logger")
			}
		})
	}
}

// decodeLine parses the single JSON line written to buf.
func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to decode log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "json"}, &buf)

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered, got %q", buf.String())
	}

	logger.Warn("kept")
	entry := decodeLine(t, &buf)
	if entry["message"] != "kept" {
		t.Errorf("Expected message 'kept', got %v", entry["message"])
	}
	if entry["level"] != "warn" {
		t.Errorf("Expected level 'warn', got %v", entry["level"])
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json"}, &buf)

	logger.
		WithManifest("live/channel-1").
		WithRequestID("req-123").
		WithFields(map[string]interface{}{"revision": 3}).
		Info("stored")

	entry := decodeLine(t, &buf)
	if entry["manifest"] != "live/channel-1" {
		t.Errorf("Expected manifest field, got %v", entry["manifest"])
	}
	if entry["request_id"] != "req-123" {
		t.Errorf("Expected request_id field, got %v", entry["request_id"])
	}
	if entry["revision"] != float64(3) {
		t.Errorf("Expected revision 3, got %v", entry["revision"])
	}
}

func TestLogManifestPublished(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json"}, &buf)

	logger.LogManifestPublished("vod/movie", 2, "static", 1, 2048)

	entry := decodeLine(t, &buf)
	if entry["message"] != "Manifest published" {
		t.Errorf("Unexpected message %v", entry["message"])
	}
	if entry["type"] != "static" || entry["size_bytes"] != float64(2048) {
		t.Errorf("Unexpected fields %v", entry)
	}
}

func TestLogValidationFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json"}, &buf)

	_, err := (&mpd.MPDBuilder{}).Build()
	if err == nil {
		t.Fatal("Expected MPD without profiles to fail")
	}
	logger.LogValidationFailure("broken", err)

	entry := decodeLine(t, &buf)
	if entry["entity"] != "MPD" {
		t.Errorf("Expected entity MPD, got %v", entry["entity"])
	}
	if entry["kind"] != "empty required collection" {
		t.Errorf("Unexpected kind %v", entry["kind"])
	}

	buf.Reset()
	_, err = mpd.ParseRatio("16:")
	logger.LogValidationFailure("broken", err)
	entry = decodeLine(t, &buf)
	if entry["value_type"] != "Ratio" {
		t.Errorf("Expected value_type Ratio, got %v", entry["value_type"])
	}
}

func TestLogOperations(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Format: "json"}, &buf)

	logger.LogCacheOperation("get", "manifest:vod/movie", true, nil)
	entry := decodeLine(t, &buf)
	if entry["hit"] != true || entry["level"] != "debug" {
		t.Errorf("Unexpected cache entry %v", entry)
	}

	buf.Reset()
	logger.LogStorageOperation("put", "manifests", "vod/movie/r1.mpd", 1024, 20*time.Millisecond, errors.New("denied"))
	entry = decodeLine(t, &buf)
	if entry["level"] != "error" || entry["error"] != "denied" {
		t.Errorf("Unexpected storage entry %v", entry)
	}

	buf.Reset()
	logger.LogQueueOperation("publish", "manifests", "manifest.published", nil)
	entry = decodeLine(t, &buf)
	if entry["routing_key"] != "manifest.published" {
		t.Errorf("Unexpected queue entry %v", entry)
	}

	buf.Reset()
	logger.LogHTTPRequest("GET", "/api/v1/manifests", "192.168.1.1", 200, 100*time.Millisecond)
	entry = decodeLine(t, &buf)
	if entry["status_code"] != float64(200) {
		t.Errorf("Unexpected request entry %v", entry)
	}

	buf.Reset()
	logger.LogDatabaseOperation("SELECT", 50*time.Millisecond, nil)
	entry = decodeLine(t, &buf)
	if entry["operation"] != "SELECT" {
		t.Errorf("Unexpected database entry %v", entry)
	}
}

func TestNewDefaultLogger(t *testing.T) {
	logger, err := NewDefaultLogger()
	if err != nil {
		t.Errorf("NewDefaultLogger() error = %v", err)
	}
	if logger == nil {
		t.Error("Expected non-nil logger from NewDefaultLogger")
	}
}

func TestNewConsoleLogger(t *testing.T) {
	logger, err := NewConsoleLogger()
	if err != nil {
		t.Errorf("NewConsoleLogger() error = %v", err)
	}
	if logger == nil {
		t.Error("Expected non-nil logger from NewConsoleLogger")
	}
}

func BenchmarkLogInfo(b *testing.B) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json"}, &buf)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		logger.Info("benchmark message")
	}
}

func BenchmarkLogWithFields(b *testing.B) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "json"}, &buf)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		logger.WithFields(map[string]interface{}{
			"key1": "value1",
			"key2": 123,
		}).Info("benchmark message")
	}
}
