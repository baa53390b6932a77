package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

// EnvPrefix is prepended to every environment override, e.g. DASHMPD_SERVER_PORT.
const EnvPrefix = "DASHMPD"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Storage   StorageConfig
	Queue     QueueConfig
	Tracing   TracingConfig
	Metrics   MetricsConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
	Auth      AuthConfig
	Manifest  ManifestConfig
	Webhook   WebhookConfig
	Monitor   MonitorConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int
	Host            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
	MinConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
}

// QueueConfig holds RabbitMQ configuration
type QueueConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Vhost    string
	Exchange string
	Queue    string
}

// TracingConfig holds Jaeger configuration
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	Endpoint    string
}

// MetricsConfig holds the Prometheus endpoint configuration
type MetricsConfig struct {
	Enabled bool
	Port    int
}

// LoggingConfig mirrors logging.Config
type LoggingConfig struct {
	Level  string
	Format string
	Output string
}

// RateLimitConfig holds per-client request limits for the API
type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
	PublishPerMinute  int64
}

// AuthConfig holds JWT settings for write routes
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// ManifestConfig holds limits and defaults for stored manifests
type ManifestConfig struct {
	MaxDocumentBytes int64
	CacheTTL         time.Duration
	DefaultProfiles  []string
	KeyPrefix        string
}

// WebhookConfig lists endpoints notified of manifest events
type WebhookConfig struct {
	Timeout   time.Duration
	Endpoints []WebhookEndpoint
}

// WebhookEndpoint is one subscriber. An empty Events list subscribes to all events.
type WebhookEndpoint struct {
	URL    string
	Secret string
	Events []string
}

// MonitorConfig controls backlog sampling in the worker
type MonitorConfig struct {
	Interval      time.Duration
	MaxQueueDepth int
	MaxDLQDepth   int
}

// Profiles parses DefaultProfiles.
func (m ManifestConfig) Profiles() ([]mpd.Profile, error) {
	profiles := make([]mpd.Profile, 0, len(m.DefaultProfiles))
	for _, s := range m.DefaultProfiles {
		p, err := mpd.ParseProfile(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("invalid default profile %q: %w", s, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Load reads configuration from an optional YAML file and environment variables.
// An empty configPath loads defaults and environment only.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if _, err := config.Manifest.Profiles(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.readTimeout", "30s")
	v.SetDefault("server.writeTimeout", "30s")
	v.SetDefault("server.shutdownTimeout", "10s")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "dashmpd")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.maxConns", 25)
	v.SetDefault("database.minConns", 5)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Storage defaults
	v.SetDefault("storage.endpoint", "localhost:9000")
	v.SetDefault("storage.accessKeyID", "minioadmin")
	v.SetDefault("storage.secretAccessKey", "minioadmin")
	v.SetDefault("storage.bucketName", "manifests")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.useSSL", false)

	// Queue defaults
	v.SetDefault("queue.host", "localhost")
	v.SetDefault("queue.port", 5672)
	v.SetDefault("queue.user", "guest")
	v.SetDefault("queue.password", "guest")
	v.SetDefault("queue.vhost", "/")
	v.SetDefault("queue.exchange", "manifests")
	v.SetDefault("queue.queue", "manifest_cache_warm")

	// Tracing defaults
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.serviceName", "dashmpd")
	v.SetDefault("tracing.endpoint", "http://localhost:14268/api/traces")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")

	// Rate limit defaults
	v.SetDefault("rateLimit.requestsPerSecond", 20)
	v.SetDefault("rateLimit.burst", 40)
	v.SetDefault("rateLimit.publishPerMinute", 60)

	// Auth defaults
	v.SetDefault("auth.jwtSecret", "change-me")
	v.SetDefault("auth.tokenTTL", "24h")

	// Manifest defaults
	v.SetDefault("manifest.maxDocumentBytes", 4*1024*1024) // 4MB
	v.SetDefault("manifest.cacheTTL", "5m")
	v.SetDefault("manifest.defaultProfiles", []string{string(mpd.ProfileISOLive)})
	v.SetDefault("manifest.keyPrefix", "manifests")

	// Webhook defaults
	v.SetDefault("webhook.timeout", "10s")

	// Monitor defaults
	v.SetDefault("monitor.interval", "15s")
	v.SetDefault("monitor.maxQueueDepth", 1000)
	v.SetDefault("monitor.maxDLQDepth", 100)
}
