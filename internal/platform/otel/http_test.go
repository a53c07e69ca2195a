package otel

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestHTTPMiddlewareRecordsSpan(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	var sawSpan bool
	handler := HTTPMiddleware(tp, "test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawSpan = trace.SpanContextFromContext(r.Context()).IsValid()
		w.WriteHeader(http.StatusTeapot)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/chrome/header", nil))

	if !sawSpan {
		t.Fatal("expected span in request context")
	}
	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	span := spans[0]
	if span.Name() != "GET /chrome/header" {
		t.Fatalf("span name = %q", span.Name())
	}
	if span.SpanKind() != trace.SpanKindServer {
		t.Fatalf("span kind = %v", span.SpanKind())
	}
	if !hasAttribute(span.Attributes(), "http.response.status_code", attribute.IntValue(http.StatusTeapot)) {
		t.Fatalf("missing status attribute: %v", span.Attributes())
	}
	if span.Status().Code == codes.Error {
		t.Fatalf("unexpected error status for 418")
	}
}

func TestHTTPMiddlewareMarksServerErrors(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	handler := HTTPMiddleware(tp, "test")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/chrome/theme", nil))

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Fatalf("status = %v, want error", spans[0].Status().Code)
	}
}

func TestHTTPMiddlewareDefaultsStatusOK(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	handler := HTTPMiddleware(tp, "test")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	spans := recorder.Ended()
	if len(spans) != 1 || !hasAttribute(spans[0].Attributes(), "http.response.status_code", attribute.IntValue(http.StatusOK)) {
		t.Fatalf("expected 200 status attribute, got %v", spans)
	}
}

func hasAttribute(attrs []attribute.KeyValue, key string, value attribute.Value) bool {
	for _, attr := range attrs {
		if string(attr.Key) == key && attr.Value.Type() == value.Type() && attr.Value.Emit() == value.Emit() {
			return true
		}
	}
	return false
}
