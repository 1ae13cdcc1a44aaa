package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
)

func TestSetupWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")

	before := otel.GetTracerProvider()
	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}
	if otel.GetTracerProvider() != before {
		t.Error("Setup without an endpoint should not replace the global provider")
	}
}

func TestEnabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "http://localhost:4318/v1/traces")

	if !Enabled() {
		t.Error("A traces endpoint alone should enable export")
	}
}

func TestTracerName(t *testing.T) {
	if Tracer("fov") == nil {
		t.Fatal("Tracer returned nil")
	}
}
