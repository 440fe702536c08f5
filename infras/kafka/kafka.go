package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	"go.opentelemetry.io/otel/trace"

	"slotkeeper/config"
)

const (
	HeaderEventID   = "event_id"
	HeaderEventType = "event_type"

	writeTimeout  = 10 * time.Second
	batchTimeout  = 10 * time.Millisecond
	retryInterval = time.Second
)

type Message struct {
	Key     string
	Value   any
	Headers map[string]string
}

func (m *Message) ToKafkaMessage(ctx context.Context) (kafkaGo.Message, error) {
	var (
		jsonValue []byte
		err       error
	)

	switch v := m.Value.(type) {
	case []byte:
		jsonValue = v
	case json.RawMessage:
		jsonValue = v
	default:
		jsonValue, err = json.Marshal(v)
		if err != nil {
			log.Error().Err(err).Msg("Failed to marshal message value to JSON")

			return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
		}
	}

	headers := make([]kafkaGo.Header, 0, len(m.Headers)+2)
	for key, value := range m.Headers {
		headers = append(headers, kafkaGo.Header{Key: key, Value: []byte(value)})
	}

	// Headers that already carry a trace context keep it.
	carried := ExtractTraceContext(context.Background(), kafkaGo.Message{Headers: headers})
	if !trace.SpanContextFromContext(carried).IsValid() {
		headers = InjectTraceHeaders(ctx, headers)
	}

	return kafkaGo.Message{
		Key:     []byte(m.Key),
		Value:   jsonValue,
		Headers: headers,
	}, nil
}

// DecodeKafkaMessage unmarshals the JSON value of msg into T.
func DecodeKafkaMessage[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal Kafka message value from JSON")

		return value, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return value, nil
}

// Delivered returns how many leading messages of a batch the broker acknowledged before
// SendMessages failed with err.
func Delivered(err error, total int) int {
	if err == nil {
		return total
	}

	var writeErrs kafkaGo.WriteErrors
	if !errors.As(err, &writeErrs) {
		return 0
	}

	for i, writeErr := range writeErrs {
		if writeErr != nil {
			return i
		}
	}

	return len(writeErrs)
}

// Handler processes one message. The offset is committed only when it returns nil.
type Handler func(ctx context.Context, message kafkaGo.Message) error

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Consume(ctx context.Context, consumerGroup, topic string, handler Handler)
	Close() error
}

type kafkaClientImpl struct {
	config *config.Config
	dialer *kafkaGo.Dialer
	writer *kafkaGo.Writer
}

func New(config *config.Config) Client {
	dialer := &kafkaGo.Dialer{
		ClientID:  config.Kafka.ClientID,
		DualStack: true,
		Timeout:   writeTimeout,
	}

	transport := &kafkaGo.Transport{
		ClientID: config.Kafka.ClientID,
	}

	if config.Kafka.SASL.Enable {
		mechanism := plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
		dialer.SASLMechanism = mechanism
		transport.SASL = mechanism
	}

	// WriteMessages returns once the broker acknowledged the batch. BatchTimeout bounds how long
	// a partial batch waits for more messages before it is flushed.
	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(config.Kafka.Brokers...),
		Transport:              transport,
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           batchTimeout,
		WriteTimeout:           writeTimeout,
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		config: config,
		dialer: dialer,
		writer: writer,
	}
}

func (k *kafkaClientImpl) reader(consumerGroup, topic string) *kafkaGo.Reader {
	groupID := k.config.Kafka.ConsumerGroup
	if consumerGroup != "" {
		groupID = consumerGroup
	}

	return kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     groupID,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage(ctx)
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message.")

			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msg.Topic = topic
		msgs = append(msgs, msg)
	}

	err = k.writer.WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("Sent messages successfully.")

	return nil
}

// Consume blocks until ctx is done. Messages are handled in order; a failed message is retried
// before the consumer moves on, so the import it triggers is applied at least once.
func (k *kafkaClientImpl) Consume(ctx context.Context, consumerGroup, topic string, handler Handler) {
	if topic == "" {
		log.Error().Msg("Topic name cannot be empty when creating Kafka reader")

		return
	}

	reader := k.reader(consumerGroup, topic)
	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka reader.")
		}
	}()

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				log.Info().Str("topic", topic).Msg("Consumer context done.")

				return
			}

			log.Error().Err(err).Str("topic", topic).Msg("Failed to read message from Kafka.")

			continue
		}

		msgCtx := ExtractTraceContext(ctx, msg)

		for {
			err = handler(msgCtx, msg)
			if err == nil || ctx.Err() != nil {
				break
			}

			log.Error().Err(err).Str("topic", topic).Str("key", string(msg.Key)).Msg("Failed to handle Kafka message, retrying.")

			select {
			case <-ctx.Done():
			case <-time.After(retryInterval):
			}
		}

		if ctx.Err() != nil {
			return
		}

		if err = reader.CommitMessages(ctx, msg); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to commit Kafka offset.")
		}
	}
}

func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}
