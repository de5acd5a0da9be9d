package safe

import (
	"context"
	"io"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
)

// Close closes closer and only logs a failure. Use it in defer for clients and rows.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", logging.ErrAttr(err))
	}
}

// Write writes data and only logs a failure. The console transport uses it for prompts.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if w == nil {
		return
	}
	if _, err := w.Write(data); err != nil {
		logging.From(ctx).Error("Failed to write", logging.ErrAttr(err))
	}
}
