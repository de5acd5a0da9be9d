package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

func verifySlackRequest(verifier PayloadVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				logging.From(r.Context()).Warn("slack signing secret is not set, skipping verification")
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				handleError(w, r, goerr.Wrap(err, "failed to read request body"))
				return
			}
			r.Body = io.NopCloser(bytes.NewBuffer(body))

			if err := verifier(r.Context(), r.Header, body); err != nil {
				handleError(w, r, goerr.Wrap(err, "failed to verify slack request"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getDetailedStackTrace returns a detailed stack trace with function names and line numbers
func getDetailedStackTrace() string {
	var buf strings.Builder
	buf.WriteString("Detailed Stack Trace:\n")

	callers := make([]uintptr, 64)
	n := runtime.Callers(3, callers)
	frames := runtime.CallersFrames(callers[:n])

	for {
		frame, more := frames.Next()
		fmt.Fprintf(&buf, "  %s\n    %s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}

	return buf.String()
}

func panicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				panicErr := goerr.New("panic recovered",
					goerr.V("panic", fmt.Sprintf("%v", err)),
					goerr.V("debug_stack", string(debug.Stack())),
					goerr.V("detailed_stack", getDetailedStackTrace()),
					goerr.V("method", r.Method),
					goerr.V("path", r.URL.Path),
				)

				handleError(w, r, panicErr)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
