package reco

import "context"

type ctxKey string

const TraceIDKey ctxKey = "trace_id"

// WithTraceID stows a request trace id in the context; the serving
// middleware calls this once per request.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

func TraceIDFromContext(ctx context.Context) string {
	if v := ctx.Value(TraceIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
