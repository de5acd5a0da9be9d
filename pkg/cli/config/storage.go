package config

import (
	"context"
	"log/slog"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/adapter/storage"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	svc "github.com/d8o8m8-lab/production-bot-railway/pkg/service/storage"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"

	"github.com/urfave/cli/v3"
)

// Storage configures the Cloud Storage archive that mirrors every stored record.
type Storage struct {
	bucket    string
	prefix    string
	projectID string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-bucket",
			Usage:       "Cloud Storage bucket for the record archive (disabled if empty)",
			Category:    "Storage",
			Destination: &x.bucket,
			Sources:     cli.EnvVars("PRODBOT_STORAGE_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "storage-prefix",
			Usage:       "Object prefix for the record archive",
			Category:    "Storage",
			Destination: &x.prefix,
			Sources:     cli.EnvVars("PRODBOT_STORAGE_PREFIX"),
		},
		&cli.StringFlag{
			Name:        "storage-project-id",
			Usage:       "Quota project ID for Cloud Storage",
			Category:    "Storage",
			Destination: &x.projectID,
			Sources:     cli.EnvVars("PRODBOT_STORAGE_PROJECT_ID"),
		},
	}
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("bucket", x.bucket),
		slog.String("prefix", x.prefix),
		slog.String("project_id", x.projectID),
	)
}

// Configure returns the archive gateway and the client to close on shutdown.
func (x *Storage) Configure(ctx context.Context, schemas record.Schemas) (*svc.Service, *storage.Client, error) {
	if x.bucket == "" {
		return nil, nil, goerr.New("storage bucket is not set")
	}

	var opts []option.ClientOption
	if x.projectID != "" {
		opts = append(opts, option.WithQuotaProject(x.projectID))
	}

	client, err := storage.New(ctx, x.bucket, opts...)
	if err != nil {
		return nil, nil, err
	}

	return svc.New(client, schemas, svc.WithPrefix(x.prefix)), client, nil
}

func (x *Storage) Bucket() string {
	return x.bucket
}

func (x *Storage) IsConfigured() bool {
	return x.bucket != ""
}
