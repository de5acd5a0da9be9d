package cli

import (
	"context"
	"time"

	firestoreadmin "cloud.google.com/go/firestore/apiv1/admin"
	adminpb "cloud.google.com/go/firestore/apiv1/admin/adminpb"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/cli/config"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/repository/firestore"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/safe"
	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/iterator"
)

func cmdMigrate() *cli.Command {
	var cfg config.Firestore
	var tables config.Tables
	var dryRun bool

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Create Firestore indexes of the record collections",
		Flags: joinFlags(
			cfg.Flags(),
			tables.Flags(),
			[]cli.Flag{
				&cli.BoolFlag{
					Name:        "dry-run",
					Usage:       "Show what would be changed without applying",
					Destination: &dryRun,
				},
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			schemas, err := tables.Configure()
			if err != nil {
				return err
			}
			return runMigrate(ctx, &cfg, schemas, dryRun)
		},
	}
}

func runMigrate(ctx context.Context, cfg *config.Firestore, schemas record.Schemas, dryRun bool) error {
	logger := logging.From(ctx)

	projectID := cfg.ProjectID()
	databaseID := cfg.DatabaseID()

	if projectID == "" {
		return goerr.New("firestore-project-id is required")
	}

	logger.Info("Starting Firestore migration",
		"project_id", projectID,
		"database_id", databaseID,
		"dry_run", dryRun,
	)

	indexConfig := defineFirestoreIndexes(schemas)

	var opts []fireconf.Option

	opts = append(opts, fireconf.WithLogger(logger))
	if dryRun {
		logger.Info("Dry-run mode: showing planned changes without applying")
		opts = append(opts, fireconf.WithDryRun(true))
	}

	client, err := fireconf.NewClient(ctx, projectID, databaseID, opts...)
	if err != nil {
		return goerr.Wrap(err, "failed to create fireconf client",
			goerr.V("project_id", projectID),
			goerr.V("database_id", databaseID),
		)
	}

	// Apply migration
	if err := client.Migrate(ctx, indexConfig); err != nil {
		return goerr.Wrap(err, "failed to migrate indexes",
			goerr.V("project_id", projectID),
			goerr.V("database_id", databaseID),
			goerr.V("dry_run", dryRun),
		)
	}

	if !dryRun {
		// fireconf may return before the indexes are usable.
		if err := waitForIndexesReady(ctx, projectID, databaseID, indexConfig, logger.With("phase", "wait_ready")); err != nil {
			return goerr.Wrap(err, "indexes did not become ready",
				goerr.V("project_id", projectID),
				goerr.V("database_id", databaseID),
			)
		}
	}

	logger.Info("Migration completed successfully")
	return nil
}

// waitForIndexesReady polls Firestore Admin API until all managed indexes are READY.
func waitForIndexesReady(ctx context.Context, projectID, databaseID string, cfg *fireconf.Config, logger interface{ Info(string, ...any) }) error {
	adminClient, err := firestoreadmin.NewFirestoreAdminClient(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to create firestore admin client")
	}
	defer safe.Close(ctx, adminClient)

	var collections []string
	for _, col := range cfg.Collections {
		collections = append(collections, col.Name)
	}

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		allReady := true

		for _, collectionName := range collections {
			parent := "projects/" + projectID + "/databases/" + databaseID + "/collectionGroups/" + collectionName

			it := adminClient.ListIndexes(ctx, &adminpb.ListIndexesRequest{Parent: parent})
			for {
				idx, err := it.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					return goerr.Wrap(err, "failed to list indexes",
						goerr.V("collection", collectionName))
				}

				state := idx.GetState()
				if state == adminpb.Index_CREATING || state == adminpb.Index_NEEDS_REPAIR {
					allReady = false
					logger.Info("Index not yet ready, waiting",
						"collection", collectionName,
						"index", idx.GetName(),
						"state", state.String(),
					)
				}
			}
		}

		if allReady {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// defineFirestoreIndexes returns the indexes used to browse the records of
// an operator in time order, one collection per record table.
func defineFirestoreIndexes(schemas record.Schemas) *fireconf.Config {
	var collections []fireconf.Collection

	for _, s := range schemas.All() {
		collections = append(collections, fireconf.Collection{
			Name: s.Table,
			Indexes: []fireconf.Index{
				{
					QueryScope: fireconf.QueryScopeCollection,
					Fields: []fireconf.IndexField{
						{Path: record.ColumnOperator, Order: fireconf.OrderAscending},
						{Path: firestore.FieldCreatedAt, Order: fireconf.OrderDescending},
						{Path: "__name__", Order: fireconf.OrderDescending},
					},
				},
			},
		})
	}

	return &fireconf.Config{
		Collections: collections,
	}
}
