package errs

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/request_id"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/user"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
)

func Handle(ctx context.Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			// Ultimate fallback to stderr if slog crashes
			fmt.Fprintf(os.Stderr, "[CRITICAL] slog crashed during error handling: original_error=%s, slog_panic=%v\n",
				err.Error(), r)
		}
	}()

	logAttrs := []any{slog.Any("error", err)}
	logger := logging.From(ctx)

	// Rejected input is part of a normal dialog and is not worth an alert.
	if goerr.HasTag(err, TagValidation) || goerr.HasTag(err, TagInvalidRequest) {
		logger.Warn("Rejected: "+err.Error(), logAttrs...)
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if reqID := request_id.FromContext(ctx); reqID != "" && reqID != "(unknown)" {
			scope.SetTag("request_id", reqID)
		}
		if userID := user.FromContext(ctx); userID != "" {
			scope.SetUser(sentry.User{ID: userID.String(), Username: user.OperatorFromContext(ctx)})
		}

		for k, v := range goerr.Values(err) {
			scope.SetExtra(k, v)
		}
	})
	evID := hub.CaptureException(err)
	logAttrs = append(logAttrs, slog.Any("sentry.id", evID))

	logger.Error("Error: "+err.Error(), logAttrs...)
}
