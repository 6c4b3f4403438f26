package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	platformstrings "caseflow/pkg/platform/strings"
)

// Server captures process level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	Redis         RedisConfig
	PostgresDSN   string
	Kafka         KafkaConfig
	Lead          LeadConfig
	SnapshotTTL   time.Duration
}

// RedisConfig holds connection settings for the snapshot store. An empty URL
// means Redis is not configured and the in-memory store is used instead.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds settings for the audit event publisher. Empty Brokers
// disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// LeadConfig holds settings for outbound lead submission. An empty Endpoint
// disables submission (leads are still recorded locally).
type LeadConfig struct {
	Endpoint string
	RetryMax int
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CASEFLOW_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("CASEFLOW_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	var brokers []string
	if raw := os.Getenv("CASEFLOW_KAFKA_BROKERS"); raw != "" {
		brokers = platformstrings.DedupeAndTrim(strings.Split(raw, ","))
	}
	topic := os.Getenv("CASEFLOW_KAFKA_TOPIC")
	if topic == "" {
		topic = "caseflow.wizard.audit"
	}

	return Server{
		Addr:          addr,
		JWTSigningKey: jwtSigningKey,
		Redis: RedisConfig{
			URL:          os.Getenv("CASEFLOW_REDIS_URL"),
			PoolSize:     envInt("CASEFLOW_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("CASEFLOW_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		PostgresDSN: os.Getenv("CASEFLOW_POSTGRES_DSN"),
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   topic,
		},
		Lead: LeadConfig{
			Endpoint: os.Getenv("CASEFLOW_LEAD_ENDPOINT"),
			RetryMax: envInt("CASEFLOW_LEAD_RETRY_MAX", 0),
		},
		SnapshotTTL: envDuration("CASEFLOW_SNAPSHOT_TTL", 24*time.Hour),
	}
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return v
}
