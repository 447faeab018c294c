// Package kafka publishes accepted observations to a Kafka topic as a
// best-effort side channel for downstream analytics. The publisher is
// feature-flagged; the API works identically without it.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/transit-traffic-service/internal/config"
	"github.com/couchcryptid/transit-traffic-service/internal/domain"

	kafkago "github.com/segmentio/kafka-go"
)

// Publisher produces observation events to the configured topic.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
	}
	return &Publisher{writer: w, logger: logger}
}

// PublishObservation serializes and publishes one observation together with
// its computed score.
func (p *Publisher) PublishObservation(ctx context.Context, obs domain.Observation, score float64) error {
	msg, err := serializeToMessage(obs, score)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// observationEvent is the published payload: the observation plus its
// derived score and risk, so consumers need not reimplement the scoring
// rules.
type observationEvent struct {
	domain.Observation
	Score     float64          `json:"score"`
	RiskLevel domain.RiskLevel `json:"risk_level"`
}

// serializeToMessage marshals an observation into a Kafka message keyed by
// observation ID.
func serializeToMessage(obs domain.Observation, score float64) (kafkago.Message, error) {
	event := observationEvent{
		Observation: obs,
		Score:       score,
		RiskLevel:   domain.ClassifyRisk(score),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize observation event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(obs.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "weather", Value: []byte(obs.Weather)},
			{Key: "observed_at", Value: []byte(obs.Timestamp.Format(time.RFC3339))},
		},
	}, nil
}
