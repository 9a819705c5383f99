package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"slidedeck/internal/deck"
)

func attr(t *testing.T, s sdktrace.ReadOnlySpan, key attribute.Key) attribute.Value {
	t.Helper()
	for _, kv := range s.Attributes() {
		if kv.Key == key {
			return kv.Value
		}
	}
	t.Fatalf("span %q has no attribute %s", s.Name(), key)
	return attribute.Value{}
}

func TestSlideTracer_SpanPerSlideView(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	d, err := deck.NewDeck("demo", []deck.Slide{{Title: "a"}, {Title: "b"}, {Title: "c"}})
	require.NoError(t, err)

	tr := NewSlideTracer(context.Background(), provider, d)
	cursor := deck.NewCursor(d, tr)
	cursor.Next()
	cursor.JumpTo(2)
	cursor.JumpTo(2) // no-op, no span
	tr.Close()
	tr.Close()

	ended := rec.Ended()
	require.Len(t, ended, 4)

	var titles []string
	for _, s := range ended[:3] {
		assert.Equal(t, "slide.view", s.Name())
		titles = append(titles, attr(t, s, AttrSlideTitle).AsString())
		assert.Equal(t, int64(3), attr(t, s, AttrSlideTotal).AsInt64())
	}
	assert.Equal(t, []string{"a", "b", "c"}, titles)
	assert.Equal(t, int64(2), attr(t, ended[2], AttrSlideIndex).AsInt64())

	session := ended[3]
	assert.Equal(t, "presentation", session.Name())
	assert.Equal(t, "demo", attr(t, session, AttrDeckTitle).AsString())
	for _, s := range ended[:3] {
		assert.Equal(t, session.SpanContext().SpanID(), s.Parent().SpanID())
		assert.Equal(t, session.SpanContext().TraceID(), s.SpanContext().TraceID())
	}
}

func TestSlideTracer_IgnoresChangesAfterClose(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	d, err := deck.NewCountDeck(3)
	require.NoError(t, err)

	tr := NewSlideTracer(context.Background(), provider, d)
	tr.Close()
	started := len(rec.Started())

	tr.OnSlideChanged(1, 3)
	tr.Close()

	assert.Len(t, rec.Started(), started)
	assert.Len(t, rec.Ended(), 2)
}

func TestSlideTracer_NilProvider(t *testing.T) {
	d, err := deck.NewCountDeck(2)
	require.NoError(t, err)
	tr := NewSlideTracer(context.Background(), nil, d)
	assert.NotPanics(t, func() {
		tr.OnSlideChanged(1, 2)
		tr.Close()
	})
}

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	p, err := NewProvider(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestNewProvider_Enabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	t.Setenv("OTEL_SERVICE_NAME", "")
	p, err := NewProvider(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.NoError(t, p.Shutdown(context.Background()))
}
