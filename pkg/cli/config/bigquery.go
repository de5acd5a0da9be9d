package config

import (
	"context"
	"log/slog"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/repository/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

type BigQuery struct {
	projectID   string
	datasetID   string
	credentials string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID",
			Category:    "BigQuery",
			Destination: &x.projectID,
			Sources:     cli.EnvVars("PRODBOT_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID holding the record tables",
			Category:    "BigQuery",
			Destination: &x.datasetID,
			Sources:     cli.EnvVars("PRODBOT_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-credentials",
			Usage:       "Path to a service account key file (ADC is used if empty)",
			Category:    "BigQuery",
			Destination: &x.credentials,
			Sources:     cli.EnvVars("PRODBOT_BIGQUERY_CREDENTIALS"),
		},
	}
}

func (x BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_id", x.projectID),
		slog.String("dataset_id", x.datasetID),
		slog.String("credentials", x.credentials),
	)
}

func (x *BigQuery) Configure(ctx context.Context, schemas record.Schemas) (*bigquery.BigQuery, error) {
	if x.projectID == "" || x.datasetID == "" {
		return nil, goerr.New("bigquery-project-id and bigquery-dataset-id are required",
			goerr.V("project_id", x.projectID),
			goerr.V("dataset_id", x.datasetID))
	}

	var opts []option.ClientOption
	if x.credentials != "" {
		opts = append(opts, option.WithCredentialsFile(x.credentials)) //nolint:staticcheck // credentials file path is from trusted internal config, not external input
	}

	return bigquery.New(ctx, x.projectID, x.datasetID, schemas, opts...)
}
