package config

import (
	"os"
	"testing"
	"time"

	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}
	return tmpfile.Name()
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  host: "127.0.0.1"

database:
  host: "testdb"
  port: 5432
  user: "testuser"
  password: "testpass"
  dbname: "testdb"

manifest:
  cacheTTL: "90s"
  defaultProfiles:
    - "urn:mpeg:dash:profile:isoff-on-demand:2011"
    - "urn:mpeg:dash:profile:cmaf:2019"

webhook:
  timeout: "3s"
  endpoints:
    - url: "https://hooks.example.com/dash"
      secret: "s3cret"
      events: ["manifest.published"]
`)

	// Load config
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify loaded values
	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Expected host 127.0.0.1, got %s", cfg.Server.Host)
	}

	if cfg.Database.Host != "testdb" {
		t.Errorf("Expected database host testdb, got %s", cfg.Database.Host)
	}

	if cfg.Manifest.CacheTTL != 90*time.Second {
		t.Errorf("Expected cache TTL 90s, got %v", cfg.Manifest.CacheTTL)
	}

	profiles, err := cfg.Manifest.Profiles()
	if err != nil {
		t.Fatalf("Profiles() error = %v", err)
	}
	if len(profiles) != 2 || profiles[0] != mpd.ProfileISOOnDemand || profiles[1] != mpd.ProfileCMAF {
		t.Errorf("Unexpected profiles %v", profiles)
	}

	if cfg.Webhook.Timeout != 3*time.Second {
		t.Errorf("Expected webhook timeout 3s, got %v", cfg.Webhook.Timeout)
	}
	if len(cfg.Webhook.Endpoints) != 1 {
		t.Fatalf("Expected one webhook endpoint, got %d", len(cfg.Webhook.Endpoints))
	}
	ep := cfg.Webhook.Endpoints[0]
	if ep.URL != "https://hooks.example.com/dash" || ep.Secret != "s3cret" {
		t.Errorf("Unexpected webhook endpoint %+v", ep)
	}
	if len(ep.Events) != 1 || ep.Events[0] != "manifest.published" {
		t.Errorf("Unexpected webhook events %v", ep.Events)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected shutdown timeout 10s, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Storage.BucketName != "manifests" {
		t.Errorf("Expected bucket manifests, got %s", cfg.Storage.BucketName)
	}
	if cfg.Manifest.MaxDocumentBytes != 4*1024*1024 {
		t.Errorf("Expected 4MB document limit, got %d", cfg.Manifest.MaxDocumentBytes)
	}
	if len(cfg.Manifest.DefaultProfiles) != 1 {
		t.Errorf("Expected one default profile, got %v", cfg.Manifest.DefaultProfiles)
	}
	if cfg.Webhook.Timeout != 10*time.Second {
		t.Errorf("Expected webhook timeout 10s, got %v", cfg.Webhook.Timeout)
	}
	if cfg.Monitor.Interval != 15*time.Second || cfg.Monitor.MaxDLQDepth != 100 {
		t.Errorf("Unexpected monitor defaults %+v", cfg.Monitor)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DASHMPD_SERVER_PORT", "7070")
	t.Setenv("DASHMPD_REDIS_HOST", "cache.internal")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Expected port 7070 from environment, got %d", cfg.Server.Port)
	}
	if cfg.Redis.Host != "cache.internal" {
		t.Errorf("Expected redis host from environment, got %s", cfg.Redis.Host)
	}
}

func TestLoadInvalidProfile(t *testing.T) {
	path := writeConfig(t, `
manifest:
  defaultProfiles:
    - "not a profile"
`)

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed default profile")
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Expected error when loading nonexistent file")
	}
}
