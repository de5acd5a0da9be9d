package interfaces

import (
	"context"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/dialog"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
)

// Replier sends the replies of a turn back to the worker through the transport
// the message came from.
type Replier interface {
	Reply(ctx context.Context, reply dialog.Reply) error
}

type DialogUsecases interface {
	// StartDialog resets the session of userID and shows the menu.
	StartDialog(ctx context.Context, userID types.UserID, replier Replier) error

	// CancelDialog drops the session of userID without storing anything.
	CancelDialog(ctx context.Context, userID types.UserID, replier Replier) error

	// HandleDialogText processes one text message.
	HandleDialogText(ctx context.Context, userID types.UserID, text string, replier Replier) error

	// HandleMenuChoice processes a click on a menu button. A click is only
	// accepted while the dialog waits at the menu.
	HandleMenuChoice(ctx context.Context, userID types.UserID, choice string, replier Replier) error
}

// SchemaUsecases prepares the record tables outside of a dialog.
type SchemaUsecases interface {
	EnsureSchema(ctx context.Context) error
}
