package http

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/request_id"
)

type statusResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, reqID := request_id.Generate(r.Context())
		logger := logging.From(ctx).With("request_id", reqID)

		attrs := []any{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		}
		if retry := r.Header.Get("X-Slack-Retry-Num"); retry != "" {
			attrs = append(attrs,
				slog.String("slack_retry_num", retry),
				slog.String("slack_retry_reason", r.Header.Get("X-Slack-Retry-Reason")))
		}

		if logger.Enabled(ctx, slog.LevelDebug) {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				logger.Warn("failed to read request body", logging.ErrAttr(err))
			} else {
				attrs = append(attrs, slog.String("body", string(body)))
			}
			r.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		sw := &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r.WithContext(logging.With(ctx, logger)))
		attrs = append(attrs, slog.Int("status", sw.status))

		logger.Info("Access Log", attrs...)
	})
}
