package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates runtime configuration grouped by concern.
type Config struct {
	ServiceName string
	HTTP        HTTPConfig
	Bridge      BridgeConfig
	Sandbox     SandboxConfig
	Journal     JournalConfig
	Kafka       KafkaConfig
	Telemetry   TelemetryConfig
}

type HTTPConfig struct {
	Addr string
	// CallTimeout bounds how long a channel request waits for its reply.
	CallTimeout time.Duration
}

type BridgeConfig struct {
	ThreeDSTimeout   time.Duration
	GooglePayTimeout time.Duration
	QueueSize        int
	JournalBuffer    int
}

type SandboxConfig struct {
	PublicKeyPEM string
	KeyVersion   string
}

type JournalConfig struct {
	Enabled bool
	Table   string
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

type TelemetryConfig struct {
	Enabled bool
}

// Load reads configuration from environment variables, applying defaults.
// A zero flow timeout disables the deadline for that flow kind.
func Load() (Config, error) {
	cfg := Config{
		ServiceName: getEnv("SERVICE_NAME", "cloudpayments-bridge"),
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_LISTEN_ADDR", ":8080"),
		},
		Sandbox: SandboxConfig{
			PublicKeyPEM: getEnv("CRYPTOGRAM_PUBLIC_KEY", ""),
			KeyVersion:   getEnv("CRYPTOGRAM_KEY_VERSION", "04"),
		},
		Journal: JournalConfig{
			Table: getEnv("FLOWS_TABLE", "bridge_flows"),
		},
		Kafka: KafkaConfig{
			Brokers: splitAndTrim(getEnv("KAFKA_BROKERS", "localhost:9092")),
			Topic:   getEnv("KAFKA_FLOWS_TOPIC", "bridge.flows.v1"),
		},
	}

	var err error
	if cfg.HTTP.CallTimeout, err = durationEnv("HTTP_CALL_TIMEOUT", "10m"); err != nil {
		return Config{}, err
	}
	if cfg.Bridge.ThreeDSTimeout, err = durationEnv("BRIDGE_3DS_TIMEOUT", "10m"); err != nil {
		return Config{}, err
	}
	if cfg.Bridge.GooglePayTimeout, err = durationEnv("BRIDGE_GOOGLE_PAY_TIMEOUT", "5m"); err != nil {
		return Config{}, err
	}
	if cfg.Bridge.QueueSize, err = intEnv("BRIDGE_QUEUE_SIZE", "256"); err != nil {
		return Config{}, err
	}
	if cfg.Bridge.JournalBuffer, err = intEnv("BRIDGE_JOURNAL_BUFFER", "128"); err != nil {
		return Config{}, err
	}
	if cfg.Journal.Enabled, err = boolEnv("FLOW_JOURNAL_ENABLED", "false"); err != nil {
		return Config{}, err
	}
	if cfg.Kafka.Enabled, err = boolEnv("KAFKA_ENABLED", "false"); err != nil {
		return Config{}, err
	}
	if cfg.Telemetry.Enabled, err = boolEnv("OTEL_ENABLED", "false"); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationEnv(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("parse %s: negative duration", key)
	}
	return d, nil
}

func intEnv(key, fallback string) (int, error) {
	n, err := strconv.Atoi(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func boolEnv(key, fallback string) (bool, error) {
	b, err := strconv.ParseBool(getEnv(key, fallback))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
