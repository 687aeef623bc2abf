// Package tracing holds shared OpenTelemetry helpers.
package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Error type attribute values recorded on pipeline spans.
const (
	ErrTypeUnsupportedFormat = "unsupported_format"
	ErrTypeCorruptFile       = "corrupt_file"
	ErrTypeOCR               = "ocr_failed"
	ErrTypeModelCall         = "model_call_failed"
	ErrTypeInsufficientText  = "insufficient_text"
	ErrTypeInternal          = "internal"
)

// RecordError marks span as failed and attaches err with a stable
// error.type attribute so traces can be filtered by failure class.
func RecordError(span trace.Span, err error, errType string) {
	if err == nil || span == nil {
		return
	}
	span.RecordError(err, trace.WithAttributes(attribute.String("error.type", errType)))
	span.SetStatus(codes.Error, err.Error())
}

// RecordDegraded attaches a span event for failures the pipeline absorbs
// instead of surfacing, keeping the span itself successful.
func RecordDegraded(span trace.Span, err error, errType string) {
	if err == nil || span == nil {
		return
	}
	span.AddEvent("degraded", trace.WithAttributes(
		attribute.String("error.type", errType),
		attribute.String("error.message", err.Error()),
	))
}
