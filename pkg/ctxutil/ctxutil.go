package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/makerclub/toolroom/internal/domain"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "request_id"
)

// Caller is the verified identity attached to a request by the auth
// middleware. The core trusts it and never re-derives it.
type Caller struct {
	ID   uuid.UUID
	Name string
	Role domain.Role
}

// WithCaller stores the caller identity in the context.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey, c)
}

// CallerFromCtx extracts the caller from the context.
// Returns false if the value is missing, has a nil ID, or is the wrong type.
func CallerFromCtx(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey).(Caller)
	if !ok || c.ID == uuid.Nil {
		return Caller{}, false
	}
	return c, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
