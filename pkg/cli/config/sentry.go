package config

import (
	"log/slog"
	"time"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Sentry struct {
	dsn     string
	env     string
	release string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Sources:     cli.EnvVars("PRODBOT_SENTRY_DSN"),
			Destination: &x.dsn,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Sources:     cli.EnvVars("PRODBOT_SENTRY_ENV"),
			Destination: &x.env,
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Release name reported to Sentry",
			Category:    "Sentry",
			Sources:     cli.EnvVars("PRODBOT_SENTRY_RELEASE", "RAILWAY_GIT_COMMIT_SHA"),
			Destination: &x.release,
		},
	}
}

func (x Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("dsn.len", len(x.dsn)),
		slog.String("env", x.env),
		slog.String("release", x.release),
	)
}

// Configure initializes the Sentry client. The returned function flushes
// buffered events and is safe to call when Sentry is disabled.
func (x *Sentry) Configure() (func(), error) {
	noop := func() {}
	if x.dsn == "" {
		logging.Default().Warn("Sentry is not configured")
		return noop, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.env,
		Release:     x.release,
	}); err != nil {
		return noop, goerr.Wrap(err, "failed to initialize sentry")
	}

	return func() { sentry.Flush(2 * time.Second) }, nil
}
