package errs

import "github.com/m-mizutani/goerr/v2"

var (
	// Client errors (4xx)
	TagNotFound     = goerr.NewTag("not_found")    // 404
	TagValidation   = goerr.NewTag("validation")   // 400
	TagUnauthorized = goerr.NewTag("unauthorized") // 401

	// Server errors (5xx)
	TagInternal = goerr.NewTag("internal") // 500
	TagExternal = goerr.NewTag("external") // 502/503
	TagTimeout  = goerr.NewTag("timeout")  // 504
	TagDatabase = goerr.NewTag("database") // 500 (specific to DB errors)

	// Dialog errors
	TagInvalidState = goerr.NewTag("invalid_state")

	// External service errors
	TagSlackError = goerr.NewTag("slack_error")

	TagInvalidRequest = goerr.NewTag("invalid_request")
)
