package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_ForwardsLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := NewZapLogger(zap.New(core).Sugar())
	ctx := context.Background()

	log.Info(ctx, "inf", "a", 1)
	log.Warn(ctx, "wrn", "b", 2)
	log.Error(ctx, "err", "c", 3)

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Message != "inf" || entries[1].Message != "wrn" || entries[2].Message != "err" {
		t.Fatalf("unexpected messages: %v", entries)
	}
	if got := entries[0].ContextMap()["a"]; got != int64(1) {
		t.Fatalf("expected a=1, got %v", got)
	}
}

func TestZapLogger_With(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := NewZapLogger(zap.New(core).Sugar())

	log.With("server_id", "S1").Info(context.Background(), "hello")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["server_id"]; got != "S1" {
		t.Fatalf("expected server_id=S1, got %v", got)
	}
}
