package logging

import (
	"context"
	"testing"
)

func TestOrderIDContext(t *testing.T) {
	ctx := context.Background()

	if got := GetOrderID(ctx); got != "" {
		t.Errorf("expected empty order id, got %q", got)
	}

	ctx = WithOrderID(ctx, "ord-abc123")
	if got := GetOrderID(ctx); got != "ord-abc123" {
		t.Errorf("expected ord-abc123, got %q", got)
	}
}

func TestOperatorContext(t *testing.T) {
	ctx := context.Background()

	if got := GetOperator(ctx); got != "" {
		t.Errorf("expected empty operator, got %q", got)
	}

	ctx = WithOperator(ctx, "sam")
	if got := GetOperator(ctx); got != "sam" {
		t.Errorf("expected sam, got %q", got)
	}
}
