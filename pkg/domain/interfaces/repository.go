package interfaces

import (
	"context"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/dialog"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
)

// RecordGateway stores completed records in one of three tables.
type RecordGateway interface {
	// EnsureSchema creates missing tables with their header. Existing tables
	// are left untouched, so calling it again changes nothing.
	EnsureSchema(ctx context.Context) error

	// Append stores one full row in the table of the record kind, or fails.
	Append(ctx context.Context, rec record.Record) error
}

// SessionStore keeps one dialog session per user.
type SessionStore interface {
	// GetOrCreate returns the session of userID, creating an empty one at MAIN_MENU.
	GetOrCreate(ctx context.Context, userID types.UserID) *dialog.Session
	Get(ctx context.Context, userID types.UserID) (*dialog.Session, bool)
	Clear(ctx context.Context, userID types.UserID)

	// Lock serializes turns of the same user. Turns of different users do not wait
	// on each other. Call the returned function to release.
	Lock(ctx context.Context, userID types.UserID) func()

	Len(ctx context.Context) int
}
