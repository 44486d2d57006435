package logger

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedClient(tracingEnabled bool) (*LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	client := &LoggerClient{
		Zap:            zap.New(core),
		tracingEnabled: tracingEnabled,
	}
	return client, logs
}

func TestInfoIncludesErrorAndFields(t *testing.T) {
	client, logs := newObservedClient(false)

	client.Info("operation done", errors.New("boom"), map[string]interface{}{
		"topic":     "orders",
		"schema_id": 42,
	})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Message != "operation done" {
		t.Errorf("unexpected message: %q", entry.Message)
	}

	fields := entry.ContextMap()
	if fields["error"] != "boom" {
		t.Errorf("expected error field %q, got %v", "boom", fields["error"])
	}
	if fields["topic"] != "orders" {
		t.Errorf("expected topic field %q, got %v", "orders", fields["topic"])
	}
	if fields["schema_id"] != int64(42) {
		t.Errorf("expected schema_id field 42, got %v", fields["schema_id"])
	}
}

func TestNilErrorProducesNoErrorField(t *testing.T) {
	client, logs := newObservedClient(false)

	client.Info("all good", nil, nil)

	fields := logs.All()[0].ContextMap()
	if _, ok := fields["error"]; ok {
		t.Errorf("expected no error field, got %v", fields["error"])
	}
}

func TestLaterFieldMapsOverrideEarlier(t *testing.T) {
	client, logs := newObservedClient(false)

	client.Info("override", nil,
		map[string]interface{}{"key": "first"},
		map[string]interface{}{"key": "second"},
	)

	fields := logs.All()[0].ContextMap()
	if fields["key"] != "second" {
		t.Errorf("expected later map to win, got %v", fields["key"])
	}
}

func TestInfoWithContextExtractsTraceIDs(t *testing.T) {
	client, logs := newObservedClient(true)

	traceID := trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}
	spanID := trace.SpanID{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11}
	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	client.InfoWithContext(ctx, "traced", nil, nil)

	fields := logs.All()[0].ContextMap()
	if fields["trace_id"] != traceID.String() {
		t.Errorf("expected trace_id %q, got %v", traceID.String(), fields["trace_id"])
	}
	if fields["span_id"] != spanID.String() {
		t.Errorf("expected span_id %q, got %v", spanID.String(), fields["span_id"])
	}
}

func TestWithContextSkipsTraceIDsWhenTracingDisabled(t *testing.T) {
	client, logs := newObservedClient(false)

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01},
		SpanID:  trace.SpanID{0x01},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	client.ErrorWithContext(ctx, "untraced", errors.New("boom"), nil)

	fields := logs.All()[0].ContextMap()
	if _, ok := fields["trace_id"]; ok {
		t.Errorf("expected no trace_id when tracing disabled, got %v", fields["trace_id"])
	}
	if _, ok := fields["span_id"]; ok {
		t.Errorf("expected no span_id when tracing disabled, got %v", fields["span_id"])
	}
}

func TestWithContextSkipsTraceIDsWithoutActiveSpan(t *testing.T) {
	client, logs := newObservedClient(true)

	client.WarnWithContext(context.Background(), "no span", nil, nil)

	fields := logs.All()[0].ContextMap()
	if _, ok := fields["trace_id"]; ok {
		t.Errorf("expected no trace_id without active span, got %v", fields["trace_id"])
	}
}

func TestNewLoggerClientLevels(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
	}{
		{Debug, zapcore.DebugLevel},
		{Info, zapcore.InfoLevel},
		{Warning, zapcore.WarnLevel},
		{Error, zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		client := NewLoggerClient(Config{Level: tt.level, ServiceName: "test"})
		if !client.Zap.Core().Enabled(tt.enabled) {
			t.Errorf("level %q: expected %v to be enabled", tt.level, tt.enabled)
		}
		if tt.enabled > zapcore.DebugLevel && client.Zap.Core().Enabled(tt.enabled-1) {
			t.Errorf("level %q: expected %v to be disabled", tt.level, tt.enabled-1)
		}
	}
}
