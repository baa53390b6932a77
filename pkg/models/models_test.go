package models

import (
	"encoding/json"
	"testing"
)

func TestMetadataValue(t *testing.T) {
	meta := Metadata{
		"key1": "value1",
		"key2": 123,
	}

	value, err := meta.Value()
	if err != nil {
		t.Fatalf("Failed to get value: %v", err)
	}

	// Value should be JSON
	var result map[string]interface{}
	if err := json.Unmarshal(value.([]byte), &result); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if result["key1"] != "value1" {
		t.Errorf("Expected key1=value1, got %v", result["key1"])
	}
}

func TestMetadataScan(t *testing.T) {
	jsonData := []byte(`{"key1":"value1","key2":123}`)

	var meta Metadata
	if err := meta.Scan(jsonData); err != nil {
		t.Fatalf("Failed to scan: %v", err)
	}

	if meta["key1"] != "value1" {
		t.Errorf("Expected key1=value1, got %v", meta["key1"])
	}

	if val, ok := meta["key2"].(float64); !ok || val != 123 {
		t.Errorf("Expected key2=123, got %v", meta["key2"])
	}
}

func TestMetadataScanNil(t *testing.T) {
	var meta Metadata
	if err := meta.Scan(nil); err != nil {
		t.Fatalf("Failed to scan nil: %v", err)
	}

	if len(meta) != 0 {
		t.Error("Expected empty metadata after scanning nil")
	}
}

func TestManifestSummaryRepresentationCount(t *testing.T) {
	summary := ManifestSummary{
		Type: "static",
		Periods: []PeriodSummary{
			{
				ID: "p0",
				AdaptationSets: []AdaptationSummary{
					{ContentType: "video", Representations: []RepresentationSummary{{ID: "360p"}, {ID: "720p"}}},
					{ContentType: "audio", Representations: []RepresentationSummary{{ID: "aac"}}},
				},
			},
			{ID: "p1", Remote: "https://example.com/p1.xml"},
		},
	}

	if got := summary.RepresentationCount(); got != 3 {
		t.Errorf("Expected 3 representations, got %d", got)
	}
}

func TestManifestEventJSON(t *testing.T) {
	event := ManifestEvent{
		ID:        "evt-1",
		Type:      ManifestEventPublished,
		Name:      "live/channel-1",
		Revision:  4,
		ObjectKey: "manifests/live/channel-1/4.mpd",
	}

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if result["type"] != "manifest.published" {
		t.Errorf("Expected manifest.published, got %v", result["type"])
	}
	if _, ok := result["checksum"]; ok {
		t.Error("Expected empty checksum to be omitted")
	}
}
