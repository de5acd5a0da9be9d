package user

import (
	"context"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	operatorKey contextKey = "operator"
)

// WithUserID sets the chat user ID of the current turn in context
func WithUserID(ctx context.Context, userID types.UserID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// FromContext extracts user ID from context
func FromContext(ctx context.Context) types.UserID {
	if userID, ok := ctx.Value(userIDKey).(types.UserID); ok {
		return userID
	}
	return types.EmptyUserID
}

// WithOperator sets the display name of the worker. It is resolved by the transport.
func WithOperator(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, operatorKey, name)
}

// OperatorFromContext returns the display name, falling back to the user ID.
func OperatorFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(operatorKey).(string); ok && name != "" {
		return name
	}
	return FromContext(ctx).String()
}
