package kafka

import (
	"context"

	kafkaGo "github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// InjectTraceHeaders appends W3C trace context headers to headers.
func InjectTraceHeaders(ctx context.Context, headers []kafkaGo.Header) []kafkaGo.Header {
	carrier := &headerCarrier{headers: headers}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	return carrier.headers
}

// ExtractTraceContext returns ctx carrying the trace context found in msg headers.
func ExtractTraceContext(ctx context.Context, msg kafkaGo.Message) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, &headerCarrier{headers: msg.Headers})
}

func HeaderValue(headers []kafkaGo.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}

	return ""
}

type headerCarrier struct {
	headers []kafkaGo.Header
}

var _ propagation.TextMapCarrier = (*headerCarrier)(nil)

func (c *headerCarrier) Get(key string) string {
	return HeaderValue(c.headers, key)
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}

	return keys
}

func (c *headerCarrier) Set(key, value string) {
	for i := range c.headers {
		if c.headers[i].Key == key {
			c.headers[i].Value = []byte(value)

			return
		}
	}

	c.headers = append(c.headers, kafkaGo.Header{Key: key, Value: []byte(value)})
}
