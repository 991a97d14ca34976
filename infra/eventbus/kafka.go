//go:build kafka
// +build kafka

package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/privplan/pkg/domain/events"
	"github.com/amirasaad/privplan/pkg/eventbus"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
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

// KafkaEventBus implements a Kafka-backed event bus. Each event type gets its
// own topic under the configured prefix; failed deliveries land on a DLQ
// topic alongside it.
type KafkaEventBus struct {
	brokers []string
	writer  *kafka.Writer
	dialer  *kafka.Dialer
	ctx     context.Context
	cancel  context.CancelFunc

	handlers    map[string][]eventbus.HandlerFunc
	handlersMtx sync.RWMutex

	readers    map[string]*kafka.Reader
	readersMtx sync.Mutex

	logger *slog.Logger
	config *KafkaEventBusConfig
	wg     sync.WaitGroup
}

// NewWithKafka creates a new Kafka-backed event bus.
// brokers: comma-separated broker list (e.g. "localhost:9092,localhost:9093").
func NewWithKafka(
	brokers string,
	logger *slog.Logger,
	config *KafkaEventBusConfig,
) (*KafkaEventBus, error) {
	parsedBrokers := parseBrokers(brokers)
	if len(parsedBrokers) == 0 {
		return nil, fmt.Errorf("kafka event bus: brokers are required")
	}
	if config == nil {
		config = DefaultKafkaEventBusConfig()
	}
	if config.GroupID == "" {
		config.GroupID = "privplan"
	}
	if strings.TrimSpace(config.TopicPrefix) == "" {
		config.TopicPrefix = "privplan.events"
	}
	if logger == nil {
		logger = slog.Default()
	}

	saslMechanism, err := buildKafkaSASLMechanism(config)
	if err != nil {
		return nil, err
	}
	dialer := &kafka.Dialer{
		Timeout:       5 * time.Second,
		SASLMechanism: saslMechanism,
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(parsedBrokers...),
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
	}
	if saslMechanism != nil {
		writer.Transport = &kafka.Transport{SASL: saslMechanism}
	}

	ctx, cancel := context.WithCancel(context.Background())
	bus := &KafkaEventBus{
		brokers:  parsedBrokers,
		writer:   writer,
		dialer:   dialer,
		ctx:      ctx,
		cancel:   cancel,
		handlers: make(map[string][]eventbus.HandlerFunc),
		readers:  make(map[string]*kafka.Reader),
		logger:   logger.With("bus", "kafka"),
		config:   config,
	}

	if err := bus.ping(ctx); err != nil {
		_ = bus.Close()
		return nil, err
	}

	logger.Info("🚀 Kafka event bus initialized",
		"group_id", config.GroupID,
		"brokers", parsedBrokers,
		"sasl_enabled", saslMechanism != nil,
	)
	return bus, nil
}

// Close stops background goroutines and closes network resources.
func (b *KafkaEventBus) Close() error {
	if b == nil {
		return nil
	}
	if b.cancel != nil {
		b.cancel()
	}
	b.readersMtx.Lock()
	for _, r := range b.readers {
		_ = r.Close()
	}
	b.readersMtx.Unlock()
	b.wg.Wait()
	if b.writer != nil {
		return b.writer.Close()
	}
	return nil
}

// Register registers an event handler for a specific event type.
func (b *KafkaEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.handlersMtx.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.handlersMtx.Unlock()

	b.ensureConsumer(eventType)
}

// Emit publishes an event to Kafka.
func (b *KafkaEventBus) Emit(ctx context.Context, event events.Event) error {
	if b == nil || b.writer == nil {
		return fmt.Errorf("kafka event bus: writer not initialized")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka event bus: marshal failed: %w", err)
	}
	env := envelope{Type: event.Type(), Payload: data}
	envBytes, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("kafka event bus: envelope marshal failed: %w", err)
	}

	msg := kafka.Message{
		Topic: topicNameFor(b.config.TopicPrefix, event.Type()),
		Key:   []byte(event.Type()),
		Value: envBytes,
		Time:  time.Now(),
	}
	if err := b.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka event bus: publish failed: %w", err)
	}
	return nil
}

func (b *KafkaEventBus) ping(ctx context.Context) error {
	conn, err := b.dialer.DialContext(ctx, "tcp", b.brokers[0])
	if err != nil {
		return fmt.Errorf("kafka event bus: connection failed: %w", err)
	}
	_ = conn.Close()
	return nil
}

func (b *KafkaEventBus) ensureConsumer(eventType string) {
	b.readersMtx.Lock()
	defer b.readersMtx.Unlock()

	if _, exists := b.readers[eventType]; exists {
		return
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     b.brokers,
		GroupID:     b.config.GroupID,
		Topic:       topicNameFor(b.config.TopicPrefix, eventType),
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     1 * time.Second,
		Dialer:      b.dialer,
	})
	b.readers[eventType] = reader

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.consumeLoop(b.ctx, eventType, reader)
	}()
}

func (b *KafkaEventBus) consumeLoop(ctx context.Context, eventType string, reader *kafka.Reader) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			b.logger.Error("kafka consume error", "error", err, "event_type", eventType)
			time.Sleep(500 * time.Millisecond)
			continue
		}

		b.processMessage(ctx, eventType, msg)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			b.logger.Error("kafka commit error", "error", err, "topic", msg.Topic, "offset", msg.Offset)
		}
	}
}

func (b *KafkaEventBus) processMessage(ctx context.Context, eventType string, msg kafka.Message) {
	var env envelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		b.logger.Error("failed to unmarshal envelope", "error", err, "topic", msg.Topic, "offset", msg.Offset)
		return
	}

	constructor, ok := events.EventTypes[env.Type]
	if !ok {
		b.logger.Error("unknown event type", "type", env.Type, "topic", msg.Topic, "offset", msg.Offset)
		b.publishToDLQ(ctx, eventType, msg.Value)
		return
	}

	evt := constructor()
	if err := json.Unmarshal(env.Payload, evt); err != nil {
		b.logger.Error("failed to unmarshal event payload", "error", err, "event_type", env.Type)
		return
	}

	b.handlersMtx.RLock()
	handlers := append([]eventbus.HandlerFunc{}, b.handlers[env.Type]...)
	b.handlersMtx.RUnlock()

	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("handler panic recovered", "panic", r, "event_type", env.Type)
					b.publishToDLQ(ctx, eventType, msg.Value)
				}
			}()
			if err := handler(ctx, evt); err != nil {
				b.logger.Error("handler error", "error", err, "event_type", env.Type)
				b.publishToDLQ(ctx, eventType, msg.Value)
			}
		}()
	}
}

func (b *KafkaEventBus) publishToDLQ(ctx context.Context, eventType string, raw []byte) {
	dlqTopic := dlqTopicNameFor(b.config.TopicPrefix, eventType)
	msg := kafka.Message{
		Topic: dlqTopic,
		Key:   []byte(eventType),
		Value: raw,
		Time:  time.Now(),
	}
	if err := b.writer.WriteMessages(ctx, msg); err != nil {
		b.logger.Error("kafka dlq publish failed", "error", err, "dlq_topic", dlqTopic)
		return
	}
	b.logger.Warn("message sent to DLQ", "event_type", eventType, "dlq_topic", dlqTopic)
}

func buildKafkaSASLMechanism(config *KafkaEventBusConfig) (sasl.Mechanism, error) {
	username := strings.TrimSpace(config.SASLUsername)
	password := strings.TrimSpace(config.SASLPassword)
	if username == "" && password == "" {
		return nil, nil
	}
	if username == "" || password == "" {
		return nil, fmt.Errorf("kafka event bus: sasl username and password are required")
	}
	return plain.Mechanism{Username: username, Password: password}, nil
}

func parseBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func topicNameFor(prefix, eventType string) string {
	return fmt.Sprintf("%s.%s", prefix, strings.ToLower(eventType))
}

func dlqTopicNameFor(prefix, eventType string) string {
	return fmt.Sprintf("%s.dlq.%s", prefix, strings.ToLower(eventType))
}

var _ eventbus.Bus = (*KafkaEventBus)(nil)
