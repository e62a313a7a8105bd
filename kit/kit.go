// Package kit holds small transport-agnostic plumbing shared by the HTTP
// and MCP surfaces: the Endpoint function shape and request-scoped context
// accessors.
package kit

import "context"

// Endpoint is a transport-agnostic handler: typed request in, typed
// response out. Transport adapters (HTTP, MCP) decode their wire format
// into the request and encode the response back out.
type Endpoint func(ctx context.Context, req any) (any, error)

type contextKey string

const (
	RequestIDKey contextKey = "kit_request_id"
	TransportKey contextKey = "kit_transport" // "http", "mcp"
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(RequestIDKey).(string)
	return v
}

func WithTransport(ctx context.Context, t string) context.Context {
	return context.WithValue(ctx, TransportKey, t)
}

func GetTransport(ctx context.Context) string {
	if v, ok := ctx.Value(TransportKey).(string); ok {
		return v
	}
	return "http"
}
