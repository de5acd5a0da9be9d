package config

import (
	"context"
	"log/slog"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/repository"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/repository/memory"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	BackendMemory    = "memory"
	BackendSQLite    = "sqlite"
	BackendSheets    = "sheets"
	BackendBigQuery  = "bigquery"
	BackendFirestore = "firestore"
)

// Backend selects where records are stored and optionally mirrors them to
// the Cloud Storage archive.
type Backend struct {
	kind string

	Tables    Tables
	Sheets    Sheets
	BigQuery  BigQuery
	Firestore Firestore
	SQLite    SQLite
	Storage   Storage
}

func (x *Backend) Flags() []cli.Flag {
	return joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "backend",
				Aliases:     []string{"b"},
				Usage:       "Record backend [memory|sqlite|sheets|bigquery|firestore]",
				Category:    "Backend",
				Value:       BackendSheets,
				Destination: &x.kind,
				Sources:     cli.EnvVars("PRODBOT_BACKEND"),
			},
		},
		x.Tables.Flags(),
		x.Sheets.Flags(),
		x.BigQuery.Flags(),
		x.Firestore.Flags(),
		x.SQLite.Flags(),
		x.Storage.Flags(),
	)
}

func (x Backend) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", x.kind),
		slog.Any("tables", x.Tables),
	}
	switch x.kind {
	case BackendSheets:
		attrs = append(attrs, slog.Any("sheets", x.Sheets))
	case BackendBigQuery:
		attrs = append(attrs, slog.Any("bigquery", x.BigQuery))
	case BackendFirestore:
		attrs = append(attrs, slog.Any("firestore", x.Firestore))
	case BackendSQLite:
		attrs = append(attrs, slog.Any("sqlite", x.SQLite))
	}
	if x.Storage.IsConfigured() {
		attrs = append(attrs, slog.Any("storage", &x.Storage))
	}
	return slog.GroupValue(attrs...)
}

func (x *Backend) Kind() string {
	return x.kind
}

// Configure builds the record gateway. Call the returned closer on shutdown;
// it is never nil.
func (x *Backend) Configure(ctx context.Context) (interfaces.RecordGateway, func(), error) {
	closers := []func(){}
	closer := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	schemas, err := x.Tables.Configure()
	if err != nil {
		return nil, closer, err
	}

	var primary interfaces.RecordGateway
	switch x.kind {
	case BackendMemory:
		logging.From(ctx).Warn("memory backend keeps records only until the process exits")
		primary = memory.NewRecordGateway(schemas)

	case BackendSQLite:
		db, err := x.SQLite.Configure(ctx, schemas)
		if err != nil {
			return nil, closer, err
		}
		closers = append(closers, func() { safe.Close(ctx, db) })
		primary = db

	case BackendSheets:
		s, err := x.Sheets.Configure(ctx, schemas)
		if err != nil {
			return nil, closer, err
		}
		primary = s

	case BackendBigQuery:
		bq, err := x.BigQuery.Configure(ctx, schemas)
		if err != nil {
			return nil, closer, err
		}
		closers = append(closers, func() { safe.Close(ctx, bq) })
		primary = bq

	case BackendFirestore:
		fs, err := x.Firestore.Configure(ctx, schemas)
		if err != nil {
			return nil, closer, err
		}
		closers = append(closers, func() { safe.Close(ctx, fs) })
		primary = fs

	default:
		return nil, closer, goerr.New("unknown backend",
			goerr.T(errs.TagValidation),
			goerr.TV(errutil.BackendKey, x.kind))
	}

	if !x.Storage.IsConfigured() {
		return primary, closer, nil
	}

	archive, client, err := x.Storage.Configure(ctx, schemas)
	if err != nil {
		closer()
		return nil, func() {}, err
	}
	closers = append(closers, func() { client.Close(ctx) })

	return repository.NewMirror(primary, repository.WithMirror("archive", archive)), closer, nil
}
