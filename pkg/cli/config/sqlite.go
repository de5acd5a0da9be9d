package config

import (
	"context"
	"log/slog"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/repository/sqlite"
	"github.com/urfave/cli/v3"
)

type SQLite struct {
	path string
}

func (x *SQLite) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sqlite-path",
			Usage:       "SQLite database file",
			Category:    "SQLite",
			Value:       "prodbot.db",
			Destination: &x.path,
			Sources:     cli.EnvVars("PRODBOT_SQLITE_PATH"),
		},
	}
}

func (x SQLite) LogValue() slog.Value {
	return slog.GroupValue(slog.String("path", x.path))
}

func (x *SQLite) Configure(ctx context.Context, schemas record.Schemas) (*sqlite.SQLite, error) {
	return sqlite.New(ctx, x.path, schemas)
}
