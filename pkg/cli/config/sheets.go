package config

import (
	"context"
	"log/slog"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/repository/sheets"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

type Sheets struct {
	spreadsheetID   string
	credentials     string
	credentialsJSON string
}

func (x *Sheets) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sheets-spreadsheet-id",
			Usage:       "Google Sheets spreadsheet ID",
			Category:    "Google Sheets",
			Destination: &x.spreadsheetID,
			Sources:     cli.EnvVars("PRODBOT_SHEETS_SPREADSHEET_ID"),
		},
		&cli.StringFlag{
			Name:        "sheets-credentials",
			Usage:       "Path to a service account key file (ADC is used if empty)",
			Category:    "Google Sheets",
			Destination: &x.credentials,
			Sources:     cli.EnvVars("PRODBOT_SHEETS_CREDENTIALS"),
		},
		&cli.StringFlag{
			Name:        "sheets-credentials-json",
			Usage:       "Service account key as JSON, for platforms without a file system",
			Category:    "Google Sheets",
			Destination: &x.credentialsJSON,
			Sources:     cli.EnvVars("PRODBOT_SHEETS_CREDENTIALS_JSON"),
		},
	}
}

func (x Sheets) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("spreadsheet_id", x.spreadsheetID),
		slog.String("credentials", x.credentials),
		slog.Int("credentials_json.len", len(x.credentialsJSON)),
	)
}

func (x *Sheets) clientOptions() []option.ClientOption {
	var opts []option.ClientOption
	switch {
	case x.credentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(x.credentialsJSON))) //nolint:staticcheck // key comes from operator-controlled env
	case x.credentials != "":
		opts = append(opts, option.WithCredentialsFile(x.credentials)) //nolint:staticcheck // credentials file path is from trusted internal config, not external input
	}
	return opts
}

func (x *Sheets) Configure(ctx context.Context, schemas record.Schemas) (*sheets.Sheets, error) {
	if x.spreadsheetID == "" {
		return nil, goerr.New("sheets-spreadsheet-id is required")
	}
	return sheets.New(ctx, x.spreadsheetID, schemas, x.clientOptions()...)
}
