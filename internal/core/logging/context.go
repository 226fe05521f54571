package logging

import "context"

type contextKey string

const (
	orderIDKey  contextKey = "order_id"
	operatorKey contextKey = "operator"
)

// WithOrderID adds a service-order id to the context.
func WithOrderID(ctx context.Context, orderID string) context.Context {
	return context.WithValue(ctx, orderIDKey, orderID)
}

// WithOperator adds the acting operator's name to the context.
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, operatorKey, operator)
}

// GetOrderID retrieves the service-order id from the context.
// Returns empty string if not present.
func GetOrderID(ctx context.Context) string {
	if id, ok := ctx.Value(orderIDKey).(string); ok {
		return id
	}
	return ""
}

// GetOperator retrieves the operator name from the context.
// Returns empty string if not present.
func GetOperator(ctx context.Context) string {
	if op, ok := ctx.Value(operatorKey).(string); ok {
		return op
	}
	return ""
}
