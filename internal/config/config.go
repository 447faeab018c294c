// Package config loads service settings from environment variables.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/transit-traffic-service/internal/domain"
)

// Default focus point for the report summary. Historically hardcoded;
// overridable via REPORT_LAT/REPORT_LON.
const (
	defaultReportLat = 17.385
	defaultReportLon = 78.4867
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// ScoreFallback decides whether missing-data score queries substitute a
	// simulated value or report no data.
	ScoreFallback domain.FallbackPolicy

	// ReportLocation is the coordinate the report summary averages around.
	ReportLocation domain.Coordinate

	// Kafka observation event publishing configuration.
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	reportLat, err := parseFloat("REPORT_LAT", defaultReportLat)
	if err != nil {
		return nil, err
	}
	reportLon, err := parseFloat("REPORT_LON", defaultReportLon)
	if err != nil {
		return nil, err
	}

	kafkaEnabled := false
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		ScoreFallback:   domain.FallbackPolicy(envOrDefault("SCORE_FALLBACK", string(domain.FallbackSimulate))),
		ReportLocation:  domain.Coordinate{Latitude: reportLat, Longitude: reportLon},
		KafkaEnabled:    kafkaEnabled,
		KafkaBrokers:    parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:      envOrDefault("KAFKA_TOPIC", "traffic-observations"),
	}

	if cfg.ScoreFallback != domain.FallbackSimulate && cfg.ScoreFallback != domain.FallbackReport {
		return nil, errors.New("SCORE_FALLBACK must be \"simulate\" or \"report\"")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
	}
	if cfg.KafkaEnabled && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_TOPIC is empty")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseShutdownTimeout() (time.Duration, error) {
	s := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	return d, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}

func parseBrokers(s string) []string {
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}
