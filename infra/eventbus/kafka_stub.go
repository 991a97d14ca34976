//go:build !kafka
// +build !kafka

package eventbus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/privplan/pkg/domain/events"
	"github.com/amirasaad/privplan/pkg/eventbus"
)

// KafkaEventBusConfig holds configuration for the Kafka event bus.
type KafkaEventBusConfig struct {
	GroupID      string
	TopicPrefix  string
	SASLUsername string
	SASLPassword string
}

// DefaultKafkaEventBusConfig returns default configuration for KafkaEventBus.
func DefaultKafkaEventBusConfig() *KafkaEventBusConfig {
	return &KafkaEventBusConfig{
		GroupID:     "privplan",
		TopicPrefix: "privplan.events",
	}
}

// KafkaEventBus is the disabled placeholder compiled without the kafka tag.
type KafkaEventBus struct{}

// NewWithKafka fails unless the binary was built with -tags kafka.
func NewWithKafka(
	brokers string,
	logger *slog.Logger,
	config *KafkaEventBusConfig,
) (*KafkaEventBus, error) {
	return nil, fmt.Errorf("kafka event bus: build with -tags kafka to enable")
}

func (b *KafkaEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
}

func (b *KafkaEventBus) Emit(ctx context.Context, event events.Event) error {
	return fmt.Errorf("kafka event bus: build with -tags kafka to enable")
}

var _ eventbus.Bus = (*KafkaEventBus)(nil)
