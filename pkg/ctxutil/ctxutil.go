// Package ctxutil carries the acting user and the correlation id of one
// operator action through the context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userKey        struct{}
	correlationKey struct{}
)

// WithUserID records who performs the action. State records, comments and
// audit entries are attributed to this user.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}

// UserIDFromCtx reports the acting user. A missing or nil id yields false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, _ := ctx.Value(userKey{}).(uuid.UUID)
	return id, id != uuid.Nil
}

// WithCorrelationID tags logs and published events of one action.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationIDFromCtx returns the correlation id, or "".
func CorrelationIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}
