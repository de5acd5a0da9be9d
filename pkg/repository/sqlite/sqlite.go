package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"

	_ "modernc.org/sqlite"
)

// headerTable keeps the header labels of every record table, since SQL column
// names cannot carry them.
const headerTable = "record_headers"

// SQLite stores each record table as a SQL table in a local database file.
type SQLite struct {
	db      *sql.DB
	schemas record.Schemas
	eb      *goerr.Builder
}

var _ interfaces.RecordGateway = &SQLite{}

func New(ctx context.Context, path string, schemas record.Schemas) (*SQLite, error) {
	eb := goerr.NewBuilder(
		goerr.TV(errutil.BackendKey, "sqlite"),
		goerr.TV(errutil.FilePathKey, path),
	)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, eb.Wrap(err, "failed to create database directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eb.Wrap(err, "failed to open database", goerr.T(errs.TagDatabase))
	}
	// modernc sqlite serializes writers; a single connection avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, eb.Wrap(err, "failed to connect database", goerr.T(errs.TagDatabase))
	}

	return &SQLite{db: db, schemas: schemas, eb: eb}, nil
}

func (r *SQLite) Close() error {
	return r.db.Close()
}

func (r *SQLite) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return r.eb.Wrap(err, "failed to begin transaction", goerr.T(errs.TagDatabase))
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+quote(headerTable)+` (
		table_name TEXT NOT NULL,
		position INTEGER NOT NULL,
		label TEXT NOT NULL,
		PRIMARY KEY (table_name, position)
	)`); err != nil {
		return r.eb.Wrap(err, "failed to create header table", goerr.T(errs.TagDatabase))
	}

	for _, s := range r.schemas.All() {
		exists, err := tableExists(ctx, tx, s.Table)
		if err != nil {
			return r.eb.Wrap(err, "failed to look up table", goerr.T(errs.TagDatabase), goerr.TV(errutil.TableKey, s.Table))
		}
		if exists {
			continue
		}

		if _, err := tx.ExecContext(ctx, createTableSQL(s)); err != nil {
			return r.eb.Wrap(err, "failed to create table", goerr.T(errs.TagDatabase), goerr.TV(errutil.TableKey, s.Table))
		}
		for i, label := range s.Header() {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO `+quote(headerTable)+` (table_name, position, label) VALUES (?, ?, ?)`,
				s.Table, i, label); err != nil {
				return r.eb.Wrap(err, "failed to write header", goerr.T(errs.TagDatabase), goerr.TV(errutil.TableKey, s.Table))
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return r.eb.Wrap(err, "failed to commit schema", goerr.T(errs.TagDatabase))
	}
	return nil
}

func (r *SQLite) Append(ctx context.Context, rec record.Record) error {
	row, err := record.Row(rec)
	if err != nil {
		return r.eb.Wrap(err, "failed to render record", goerr.T(errs.TagValidation))
	}
	s := r.schemas.Of(rec.Kind())

	if _, err := r.db.ExecContext(ctx, insertSQL(s), row...); err != nil {
		return r.eb.Wrap(err, "failed to insert record",
			goerr.T(errs.TagDatabase),
			goerr.TV(errutil.TableKey, s.Table),
			goerr.TV(errutil.KindKey, rec.Kind().String()),
		)
	}
	return nil
}

// Header returns the header labels stored for table.
func (r *SQLite) Header(ctx context.Context, table string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT label FROM `+quote(headerTable)+` WHERE table_name = ? ORDER BY position`, table)
	if err != nil {
		return nil, r.eb.Wrap(err, "failed to query header", goerr.T(errs.TagDatabase), goerr.TV(errutil.TableKey, table))
	}
	defer rows.Close()

	var header []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, r.eb.Wrap(err, "failed to scan header", goerr.T(errs.TagDatabase))
		}
		header = append(header, label)
	}
	if err := rows.Err(); err != nil {
		return nil, r.eb.Wrap(err, "failed to read header", goerr.T(errs.TagDatabase))
	}
	return header, nil
}

// Rows returns all data rows of table in insertion order.
func (r *SQLite) Rows(ctx context.Context, table string) ([][]any, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT * FROM `+quote(table)+` ORDER BY rowid`)
	if err != nil {
		return nil, r.eb.Wrap(err, "failed to query rows", goerr.T(errs.TagDatabase), goerr.TV(errutil.TableKey, table))
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, r.eb.Wrap(err, "failed to get columns", goerr.T(errs.TagDatabase))
	}

	var result [][]any
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, r.eb.Wrap(err, "failed to scan row", goerr.T(errs.TagDatabase))
		}
		result = append(result, values)
	}
	if err := rows.Err(); err != nil {
		return nil, r.eb.Wrap(err, "failed to read rows", goerr.T(errs.TagDatabase))
	}
	return result, nil
}

func tableExists(ctx context.Context, tx *sql.Tx, table string) (bool, error) {
	var n int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// createTableSQL declares quantity without a type so that numbers stay integers
// and free text stays text.
func createTableSQL(s record.Schema) string {
	cols := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		if record.Field(c.Key).IsQuantity() {
			cols[i] = quote(c.Key)
		} else {
			cols[i] = quote(c.Key) + " TEXT NOT NULL"
		}
	}
	return "CREATE TABLE " + quote(s.Table) + " (" + strings.Join(cols, ", ") + ")"
}

func insertSQL(s record.Schema) string {
	keys := s.Keys()
	cols := make([]string, len(keys))
	marks := make([]string, len(keys))
	for i, k := range keys {
		cols[i] = quote(k)
		marks[i] = "?"
	}
	return "INSERT INTO " + quote(s.Table) + " (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")"
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
