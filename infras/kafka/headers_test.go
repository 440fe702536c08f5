package kafka_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"slotkeeper/infras/kafka"
)

func TestTraceHeadersRoundTrip(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), parent)

	headers := kafka.InjectTraceHeaders(ctx, []kafkaGo.Header{{Key: kafka.HeaderEventType, Value: []byte("ReservationCreated")}})

	assert.Equal(t, "ReservationCreated", kafka.HeaderValue(headers, kafka.HeaderEventType))
	assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", kafka.HeaderValue(headers, "traceparent"))

	extracted := trace.SpanContextFromContext(kafka.ExtractTraceContext(context.Background(), kafkaGo.Message{Headers: headers}))
	assert.Equal(t, traceID, extracted.TraceID())
	assert.Equal(t, spanID, extracted.SpanID())
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{
		Key:     "booking-1",
		Value:   map[string]int{"quantity": 2},
		Headers: map[string]string{kafka.HeaderEventID: "evt-1"},
	}

	msg, err := message.ToKafkaMessage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []byte("booking-1"), msg.Key)
	assert.JSONEq(t, `{"quantity":2}`, string(msg.Value))
	assert.Equal(t, "evt-1", kafka.HeaderValue(msg.Headers, kafka.HeaderEventID))

	raw := kafka.Message{Key: "k", Value: []byte(`{"already":"encoded"}`)}
	msg, err = raw.ToKafkaMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"already":"encoded"}`, string(msg.Value))
}

func TestMessage_ToKafkaMessageKeepsCarriedTrace(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	traceID, err := trace.TraceIDFromHex("0af7651916cd43dd8448eb211c80319c")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("b7ad6b7169203331")
	require.NoError(t, err)

	worker := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	stored := "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
	carried := kafka.Message{Key: "k", Value: []byte(`{}`), Headers: map[string]string{"traceparent": stored}}

	msg, err := carried.ToKafkaMessage(worker)
	require.NoError(t, err)
	assert.Equal(t, stored, kafka.HeaderValue(msg.Headers, "traceparent"))

	bare := kafka.Message{Key: "k", Value: []byte(`{}`)}

	msg, err = bare.ToKafkaMessage(worker)
	require.NoError(t, err)
	assert.Equal(t, "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01", kafka.HeaderValue(msg.Headers, "traceparent"))
}

func TestDelivered(t *testing.T) {
	broker := errors.New("not leader for partition")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "no error", want: 3},
		{name: "unrelated error", err: errors.New("dial tcp: refused"), want: 0},
		{name: "first message failed", err: fmt.Errorf("send: %w", kafkaGo.WriteErrors{broker, nil, nil}), want: 0},
		{name: "middle message failed", err: fmt.Errorf("send: %w", kafkaGo.WriteErrors{nil, broker, nil}), want: 1},
		{name: "last message failed", err: kafkaGo.WriteErrors{nil, nil, broker}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kafka.Delivered(tt.err, 3))
		})
	}
}

func TestDecodeKafkaMessage(t *testing.T) {
	type payload struct {
		ConnectionID string `json:"connection_id"`
	}

	got, err := kafka.DecodeKafkaMessage[payload](kafkaGo.Message{Value: []byte(`{"connection_id":"c-1"}`)})
	require.NoError(t, err)
	assert.Equal(t, "c-1", got.ConnectionID)

	_, err = kafka.DecodeKafkaMessage[payload](kafkaGo.Message{Value: []byte(`{`)})
	assert.Error(t, err)
}
