package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/safe"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

const (
	StorageSchemaVersion = "v1"
)

// Service archives every record as one JSON object in a bucket. It is used as
// a mirror of the primary backend.
type Service struct {
	prefix        string
	schemas       record.Schemas
	storageClient interfaces.StorageClient
}

var _ interfaces.RecordGateway = &Service{}

func New(storageClient interfaces.StorageClient, schemas record.Schemas, opts ...Option) *Service {
	s := &Service{storageClient: storageClient, schemas: schemas}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type Option func(*Service)

func WithPrefix(prefix string) Option {
	return func(s *Service) {
		s.prefix = prefix
	}
}

func pathToSchema(prefix, table string) string {
	return fmt.Sprintf("%s%s/tables/%s/schema.json", prefix, StorageSchemaVersion, table)
}

func pathToRecord(prefix, table string, createdAt time.Time, id string) string {
	return fmt.Sprintf("%s%s/records/%s/%s/%s.json", prefix, StorageSchemaVersion, table, createdAt.Format("2006/01/02"), id)
}

// TableManifest is the object written once per table by EnsureSchema.
type TableManifest struct {
	Table   string          `json:"table"`
	Kind    string          `json:"kind"`
	Columns []record.Column `json:"columns"`
}

// ArchivedRecord is the object written per record.
type ArchivedRecord struct {
	ID        string         `json:"id"`
	Kind      string         `json:"kind"`
	Table     string         `json:"table"`
	CreatedAt time.Time      `json:"created_at"`
	Values    map[string]any `json:"values"`
}

// EnsureSchema writes the manifest of tables that have none yet.
func (s *Service) EnsureSchema(ctx context.Context) error {
	for _, schema := range s.schemas.All() {
		path := pathToSchema(s.prefix, schema.Table)

		r, err := s.storageClient.GetObject(ctx, path)
		if err == nil {
			safe.Close(ctx, r)
			continue
		}
		if !goerr.HasTag(err, errs.TagNotFound) {
			return goerr.Wrap(err, "failed to check table manifest", goerr.TV(errutil.ObjectKey, path))
		}

		manifest := TableManifest{
			Table:   schema.Table,
			Kind:    schema.Kind.String(),
			Columns: schema.Columns,
		}
		if err := s.put(ctx, path, manifest); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) Append(ctx context.Context, rec record.Record) error {
	values, err := record.Map(rec)
	if err != nil {
		return goerr.Wrap(err, "failed to render record", goerr.T(errs.TagValidation))
	}

	archived := ArchivedRecord{
		ID:        uuid.NewString(),
		Kind:      rec.Kind().String(),
		Table:     s.schemas.Of(rec.Kind()).Table,
		CreatedAt: rec.CreatedAt(),
		Values:    values,
	}
	return s.put(ctx, pathToRecord(s.prefix, archived.Table, archived.CreatedAt, archived.ID), archived)
}

func (s *Service) put(ctx context.Context, path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return goerr.Wrap(err, "failed to encode object",
			goerr.T(errs.TagValidation),
			goerr.TV(errutil.ObjectKey, path))
	}

	w := s.storageClient.PutObject(ctx, path)
	if _, err := w.Write(append(data, '\n')); err != nil {
		safe.Close(ctx, w)
		return goerr.Wrap(err, "failed to write object",
			goerr.T(errs.TagExternal),
			goerr.TV(errutil.ObjectKey, path))
	}

	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to upload object",
			goerr.T(errs.TagExternal),
			goerr.TV(errutil.ObjectKey, path))
	}

	logging.From(ctx).Debug("object archived",
		"path", path,
		"size", humanize.Bytes(uint64(len(data)+1)))
	return nil
}
