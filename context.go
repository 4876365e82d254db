package goConsole

import "context"

type requestIDContextKey struct{}

// WithRequestID attaches a caller-chosen request identifier to ctx. The
// transport sends it as X-Request-ID instead of generating one, which
// lets a host application correlate console calls with its own traces.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	requestID, _ := ctx.Value(requestIDContextKey{}).(string)
	return requestID
}

type bearerTokenContextKey struct{}

// withBearerToken carries a token that is not in the session yet, for
// the profile fetch that runs between login and session save.
func withBearerToken(ctx context.Context, tok string) context.Context {
	return context.WithValue(ctx, bearerTokenContextKey{}, tok)
}

func bearerTokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	tok, _ := ctx.Value(bearerTokenContextKey{}).(string)
	return tok
}
