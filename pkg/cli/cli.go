package cli

import (
	"context"
	"time"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/cli/config"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/clock"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var timezone string
	var closer func()
	app := &cli.Command{
		Name:  "prodbot",
		Usage: "Chat bot recording production operations of shop-floor workers",
		Flags: append(loggerCfg.Flags(),
			&cli.StringFlag{
				Name:        "timezone",
				Usage:       "IANA time zone of record timestamps (e.g. Europe/Moscow), local zone if empty",
				Sources:     cli.EnvVars("PRODBOT_TIMEZONE", "TZ"),
				Destination: &timezone,
			},
		),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Info("base options", "logger", loggerCfg, "timezone", timezone)

			if timezone != "" {
				loc, err := time.LoadLocation(timezone)
				if err != nil {
					return ctx, goerr.Wrap(err, "invalid timezone", goerr.V("timezone", timezone))
				}
				ctx = clock.WithTimezone(ctx, loc)
			}

			return logging.With(ctx, logging.Default()), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdChat(),
			cmdSchema(),
			cmdMigrate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", logging.ErrAttr(err))
		return err
	}

	return nil
}
