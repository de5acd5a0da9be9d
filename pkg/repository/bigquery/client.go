package bigquery

import (
	"context"

	"cloud.google.com/go/bigquery"
)

// Table is the part of *bigquery.Table the gateway uses.
type Table interface {
	Metadata(ctx context.Context) (*bigquery.TableMetadata, error)
	Create(ctx context.Context, md *bigquery.TableMetadata) error
	Put(ctx context.Context, src any) error
}

// TableFactory returns the table handle for a table name of the dataset.
type TableFactory func(name string) Table

type bqTable struct {
	table *bigquery.Table
}

func (x *bqTable) Metadata(ctx context.Context) (*bigquery.TableMetadata, error) {
	return x.table.Metadata(ctx)
}

func (x *bqTable) Create(ctx context.Context, md *bigquery.TableMetadata) error {
	return x.table.Create(ctx, md)
}

func (x *bqTable) Put(ctx context.Context, src any) error {
	return x.table.Inserter().Put(ctx, src)
}
