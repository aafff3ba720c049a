package log

import "context"

type correlationIdKey struct{}
type hostKey struct{}

func SetCorrelationId(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIdKey{}, id)
}

func GetCorrelationId(ctx context.Context) string {
	if v, ok := ctx.Value(correlationIdKey{}).(string); ok {
		return v
	}
	return ""
}

func SetHost(ctx context.Context, host string) context.Context {
	return context.WithValue(ctx, hostKey{}, host)
}

func GetHost(ctx context.Context) string {
	if v, ok := ctx.Value(hostKey{}).(string); ok {
		return v
	}
	return ""
}
