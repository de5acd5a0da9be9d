package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore stores each record table as a collection named after the table.
// Table headers live in the tables collection.
type Firestore struct {
	db      *firestore.Client
	schemas record.Schemas
	eb      *goerr.Builder
}

var _ interfaces.RecordGateway = &Firestore{}

const (
	collectionTables = "record_tables"

	// FieldCreatedAt is set on every record document for ordering.
	FieldCreatedAt = "created_at"
	FieldKind      = "kind"
)

func New(ctx context.Context, projectID, databaseID string, schemas record.Schemas) (*Firestore, error) {
	db, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.T(errs.TagExternal),
			goerr.TV(errutil.BackendKey, "firestore"))
	}

	return &Firestore{
		db:      db,
		schemas: schemas,
		eb: goerr.NewBuilder(
			goerr.TV(errutil.BackendKey, "firestore"),
			goerr.V("project_id", projectID),
			goerr.V("database_id", databaseID),
		),
	}, nil
}

func (r *Firestore) Close() error {
	return r.db.Close()
}

type tableDoc struct {
	Table     string    `firestore:"table"`
	Kind      string    `firestore:"kind"`
	Columns   []string  `firestore:"columns"`
	Header    []string  `firestore:"header"`
	CreatedAt time.Time `firestore:"created_at"`
}

// EnsureSchema registers the header of every table. Create fails on existing
// documents, so registered headers are never overwritten.
func (r *Firestore) EnsureSchema(ctx context.Context) error {
	for _, s := range r.schemas.All() {
		doc := tableDoc{
			Table:     s.Table,
			Kind:      s.Kind.String(),
			Columns:   s.Keys(),
			Header:    s.Header(),
			CreatedAt: time.Now().UTC(),
		}

		_, err := r.db.Collection(collectionTables).Doc(s.Table).Create(ctx, doc)
		if status.Code(err) == codes.AlreadyExists {
			continue
		}
		if err != nil {
			return r.eb.Wrap(err, "failed to register table",
				goerr.T(errs.TagDatabase),
				goerr.TV(errutil.TableKey, s.Table))
		}
		logging.From(ctx).Info("firestore table registered", "table", s.Table)
	}
	return nil
}

func (r *Firestore) Append(ctx context.Context, rec record.Record) error {
	data, err := record.Map(rec)
	if err != nil {
		return r.eb.Wrap(err, "failed to render record", goerr.T(errs.TagValidation))
	}
	data[FieldCreatedAt] = rec.CreatedAt()
	data[FieldKind] = rec.Kind().String()

	table := r.schemas.Of(rec.Kind()).Table
	if _, err := r.db.Collection(table).Doc(uuid.NewString()).Create(ctx, data); err != nil {
		return r.eb.Wrap(err, "failed to store record",
			goerr.T(errs.TagDatabase),
			goerr.TV(errutil.TableKey, table),
			goerr.TV(errutil.KindKey, rec.Kind().String()))
	}
	return nil
}

// Header returns the header registered for table. A missing table returns
// an error tagged not found.
func (r *Firestore) Header(ctx context.Context, table string) ([]string, error) {
	snap, err := r.db.Collection(collectionTables).Doc(table).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, r.eb.Wrap(err, "table is not registered",
				goerr.T(errs.TagNotFound),
				goerr.TV(errutil.TableKey, table))
		}
		return nil, r.eb.Wrap(err, "failed to get table",
			goerr.T(errs.TagDatabase),
			goerr.TV(errutil.TableKey, table))
	}

	var doc tableDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, r.eb.Wrap(err, "failed to decode table", goerr.TV(errutil.TableKey, table))
	}
	return doc.Header, nil
}

// Count returns the number of records stored in table.
func (r *Firestore) Count(ctx context.Context, table string) (int, error) {
	const alias = "total"
	result, err := r.db.Collection(table).NewAggregationQuery().WithCount(alias).Get(ctx)
	if err != nil {
		return 0, r.eb.Wrap(err, "failed to count records",
			goerr.T(errs.TagDatabase),
			goerr.TV(errutil.TableKey, table))
	}
	return extractCount(result, alias)
}

// extractCount handles both int64 and *firestorepb.Value, which the client
// returns depending on version.
func extractCount(result firestore.AggregationResult, alias string) (int, error) {
	countVal, ok := result[alias]
	if !ok {
		return 0, goerr.New("count alias not found in aggregation result",
			goerr.V("alias", alias),
			goerr.T(errs.TagInternal))
	}

	switch v := countVal.(type) {
	case int64:
		return int(v), nil
	case *firestorepb.Value:
		if v != nil {
			if _, isInt := v.ValueType.(*firestorepb.Value_IntegerValue); isInt {
				return int(v.GetIntegerValue()), nil
			}
		}
		return 0, goerr.New("count value is not an integer",
			goerr.V("alias", alias),
			goerr.T(errs.TagInternal))
	default:
		return 0, goerr.New("unexpected count value type",
			goerr.V("type", fmt.Sprintf("%T", v)),
			goerr.V("alias", alias),
			goerr.T(errs.TagInternal))
	}
}
