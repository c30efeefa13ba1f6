package middleware

import "context"

type (
	requestIDKey struct{}
	gateIDKey    struct{}
)

func stringValue(ctx context.Context, key any) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(key).(string)
	return v
}

func withValue(ctx context.Context, key any, value string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, key, value)
}

func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestIDKey{})
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withValue(ctx, requestIDKey{}, requestID)
}

// GateIDFromContext returns the jti of the admin gate token that authorized the request.
func GateIDFromContext(ctx context.Context) string {
	return stringValue(ctx, gateIDKey{})
}

func WithGateID(ctx context.Context, gateID string) context.Context {
	return withValue(ctx, gateIDKey{}, gateID)
}
