package bigquery

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cloud.google.com/go/bigquery"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// BigQuery streams records into one table per record kind. Every column is
// STRING, so quantity keeps free text as typed; header labels become column
// descriptions.
type BigQuery struct {
	client  *bigquery.Client
	tables  TableFactory
	schemas record.Schemas
	eb      *goerr.Builder
}

var _ interfaces.RecordGateway = &BigQuery{}

func New(ctx context.Context, projectID, datasetID string, schemas record.Schemas, opts ...option.ClientOption) (*BigQuery, error) {
	client, err := bigquery.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create bigquery client",
			goerr.T(errs.TagExternal),
			goerr.TV(errutil.BackendKey, "bigquery"),
			goerr.V("project_id", projectID))
	}

	dataset := client.Dataset(datasetID)
	gw := NewWithTables(func(name string) Table {
		return &bqTable{table: dataset.Table(name)}
	}, schemas, goerr.V("project_id", projectID), goerr.V("dataset_id", datasetID))
	gw.client = client
	return gw, nil
}

// NewWithTables builds the gateway over an arbitrary table factory.
func NewWithTables(tables TableFactory, schemas record.Schemas, opts ...goerr.Option) *BigQuery {
	opts = append([]goerr.Option{goerr.TV(errutil.BackendKey, "bigquery")}, opts...)
	return &BigQuery{
		tables:  tables,
		schemas: schemas,
		eb:      goerr.NewBuilder(opts...),
	}
}

func (r *BigQuery) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

func (r *BigQuery) EnsureSchema(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	for _, s := range r.schemas.All() {
		eg.Go(func() error {
			return r.ensureTable(ctx, s)
		})
	}

	return eg.Wait()
}

func (r *BigQuery) ensureTable(ctx context.Context, s record.Schema) error {
	table := r.tables(s.Table)

	_, err := table.Metadata(ctx)
	if err == nil {
		return nil
	}
	if !hasStatus(err, http.StatusNotFound) {
		return r.wrap(err, "failed to get table metadata", goerr.TV(errutil.TableKey, s.Table))
	}

	md := &bigquery.TableMetadata{
		Name:   s.Table,
		Schema: tableSchema(s),
	}
	if err := table.Create(ctx, md); err != nil {
		// another replica created it first
		if hasStatus(err, http.StatusConflict) {
			return nil
		}
		return r.wrap(err, "failed to create table", goerr.TV(errutil.TableKey, s.Table))
	}

	logging.From(ctx).Info("bigquery table created", "table", s.Table)
	return nil
}

func (r *BigQuery) Append(ctx context.Context, rec record.Record) error {
	values, err := record.Map(rec)
	if err != nil {
		return r.eb.Wrap(err, "failed to render record", goerr.T(errs.TagValidation))
	}
	s := r.schemas.Of(rec.Kind())

	row := &valueRow{
		insertID: uuid.NewString(),
		values:   make(map[string]bigquery.Value, len(values)),
	}
	for k, v := range values {
		row.values[k] = fmt.Sprint(v)
	}

	if err := r.tables(s.Table).Put(ctx, row); err != nil {
		return r.wrap(err, "failed to insert row",
			goerr.TV(errutil.TableKey, s.Table),
			goerr.TV(errutil.KindKey, rec.Kind().String()))
	}
	return nil
}

func (r *BigQuery) wrap(err error, msg string, opts ...goerr.Option) error {
	opts = append(opts, goerr.T(errs.TagExternal))
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		opts = append(opts, goerr.TV(errutil.HTTPStatusKey, apiErr.Code))
	}
	return r.eb.Wrap(err, msg, opts...)
}

func tableSchema(s record.Schema) bigquery.Schema {
	schema := make(bigquery.Schema, 0, len(s.Columns))
	for _, c := range s.Columns {
		schema = append(schema, &bigquery.FieldSchema{
			Name:        c.Key,
			Description: c.Label,
			Type:        bigquery.StringFieldType,
			Required:    true,
		})
	}
	return schema
}

func hasStatus(err error, code int) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// valueRow implements bigquery.ValueSaver with a per-row insert ID for
// best-effort deduplication of streaming inserts.
type valueRow struct {
	insertID string
	values   map[string]bigquery.Value
}

func (x *valueRow) Save() (map[string]bigquery.Value, string, error) {
	return x.values, x.insertID, nil
}
