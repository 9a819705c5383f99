package trace

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"slidedeck/internal/deck"
)

// Attribute keys recorded on spans.
const (
	AttrDeckTitle  = attribute.Key("slidedeck.deck.title")
	AttrSlideIndex = attribute.Key("slidedeck.slide.index")
	AttrSlideTotal = attribute.Key("slidedeck.slide.total")
	AttrSlideTitle = attribute.Key("slidedeck.slide.title")
)

// SlideTracer implements deck.Observer. It keeps one "presentation" span
// open for the session and a "slide.view" child span for the slide on
// screen, so span durations are dwell times.
// Not safe for concurrent use; it runs on the UI event loop like the cursor.
type SlideTracer struct {
	tracer oteltrace.Tracer
	deck   *deck.Deck
	now    func() time.Time

	ctx     context.Context
	session oteltrace.Span
	view    oteltrace.Span
}

// Ensure SlideTracer implements deck.Observer.
var _ deck.Observer = (*SlideTracer)(nil)

// NewSlideTracer starts the presentation span and a view span for slide 0.
// A nil provider yields a tracer that records nothing.
func NewSlideTracer(ctx context.Context, provider oteltrace.TracerProvider, d *deck.Deck) *SlideTracer {
	if provider == nil {
		return &SlideTracer{}
	}
	t := &SlideTracer{
		tracer: provider.Tracer("slidedeck/presenter"),
		deck:   d,
		now:    time.Now,
	}
	t.ctx, t.session = t.tracer.Start(ctx, "presentation",
		oteltrace.WithAttributes(
			AttrDeckTitle.String(d.Title()),
			AttrSlideTotal.Int(d.SlideCount()),
		),
	)
	t.startView(0, d.SlideCount())
	return t
}

// OnSlideChanged ends the current view span and opens one for index.
// It does nothing once Close has been called.
func (t *SlideTracer) OnSlideChanged(index, total int) {
	if t.tracer == nil || t.session == nil {
		return
	}
	at := t.now()
	if t.view != nil {
		t.view.End(oteltrace.WithTimestamp(at))
	}
	t.startView(index, total)
}

// Close ends the open spans. Safe to call more than once.
func (t *SlideTracer) Close() {
	if t.tracer == nil {
		return
	}
	at := t.now()
	if t.view != nil {
		t.view.End(oteltrace.WithTimestamp(at))
		t.view = nil
	}
	if t.session != nil {
		t.session.End(oteltrace.WithTimestamp(at))
		t.session = nil
	}
}

func (t *SlideTracer) startView(index, total int) {
	_, t.view = t.tracer.Start(t.ctx, "slide.view",
		oteltrace.WithTimestamp(t.now()),
		oteltrace.WithAttributes(
			AttrSlideIndex.Int(index),
			AttrSlideTotal.Int(total),
			AttrSlideTitle.String(t.deck.Slide(index).Title),
		),
	)
}
