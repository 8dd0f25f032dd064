package otel

import (
	"context"
	"testing"
)

func TestSetupWithoutEndpointReturnsNoop(t *testing.T) {
	t.Setenv("STAGEPROOF_OTEL_ENDPOINT", "")
	t.Setenv("STAGEPROOF_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background(), "web")
	if err != nil {
		t.Fatalf("Setup() = %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected non-nil shutdown function")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown() = %v", err)
	}
}

func TestSetupDisabledReturnsNoop(t *testing.T) {
	t.Setenv("STAGEPROOF_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("STAGEPROOF_OTEL_ENABLED", "false")

	shutdown, err := Setup(context.Background(), "web")
	if err != nil {
		t.Fatalf("Setup() = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown() = %v", err)
	}
}
