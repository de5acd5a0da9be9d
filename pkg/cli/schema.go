package cli

import (
	"context"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/cli/config"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdSchema() *cli.Command {
	var backend config.Backend

	return &cli.Command{
		Name:  "schema",
		Usage: "Create missing record tables with their header and exit",
		Flags: backend.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)
			logger.Info("preparing record tables", "backend", backend)

			uc, closer, err := newUseCases(ctx, &backend)
			defer closer()
			if err != nil {
				return err
			}

			if err := uc.EnsureSchema(ctx); err != nil {
				return err
			}

			logger.Info("record tables are ready", "backend", backend.Kind())
			return nil
		},
	}
}
