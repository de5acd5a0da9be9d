package sheets

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Size of worksheets created by EnsureSchema.
const (
	newSheetRows    = 1000
	newSheetColumns = 10
)

// Sheets appends records to worksheets of one Google spreadsheet, one
// worksheet per record kind.
type Sheets struct {
	api           api
	spreadsheetID string
	schemas       record.Schemas
	eb            *goerr.Builder
}

var _ interfaces.RecordGateway = &Sheets{}

func New(ctx context.Context, spreadsheetID string, schemas record.Schemas, opts ...option.ClientOption) (*Sheets, error) {
	opts = append([]option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}, opts...)
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create sheets service",
			goerr.T(errs.TagExternal),
			goerr.TV(errutil.BackendKey, "sheets"))
	}
	return newSheets(&serviceAPI{svc: svc}, spreadsheetID, schemas), nil
}

func newSheets(client api, spreadsheetID string, schemas record.Schemas) *Sheets {
	return &Sheets{
		api:           client,
		spreadsheetID: spreadsheetID,
		schemas:       schemas,
		eb: goerr.NewBuilder(
			goerr.TV(errutil.BackendKey, "sheets"),
			goerr.V("spreadsheet_id", spreadsheetID),
		),
	}
}

// EnsureSchema creates missing worksheets and writes the header only to the
// worksheets it created. Existing worksheets are not touched.
func (r *Sheets) EnsureSchema(ctx context.Context) error {
	titles, err := r.api.SheetTitles(ctx, r.spreadsheetID)
	if err != nil {
		return r.wrap(err, "failed to list worksheets")
	}

	for _, s := range r.schemas.All() {
		if slices.Contains(titles, s.Table) {
			continue
		}

		if err := r.api.AddSheet(ctx, r.spreadsheetID, s.Table, newSheetRows, newSheetColumns); err != nil {
			return r.wrap(err, "failed to add worksheet", goerr.TV(errutil.TableKey, s.Table))
		}

		header := make([]any, 0, len(s.Columns))
		for _, label := range s.Header() {
			header = append(header, label)
		}
		if err := r.api.UpdateValues(ctx, r.spreadsheetID, a1Range(s.Table), [][]any{header}); err != nil {
			return r.wrap(err, "failed to write header", goerr.TV(errutil.TableKey, s.Table))
		}

		logging.From(ctx).Info("worksheet created", "table", s.Table)
	}

	return nil
}

func (r *Sheets) Append(ctx context.Context, rec record.Record) error {
	row, err := record.Row(rec)
	if err != nil {
		return r.eb.Wrap(err, "failed to render record", goerr.T(errs.TagValidation))
	}
	table := r.schemas.Of(rec.Kind()).Table

	if err := r.api.AppendValues(ctx, r.spreadsheetID, a1Range(table), [][]any{row}); err != nil {
		return r.wrap(err, "failed to append row",
			goerr.TV(errutil.TableKey, table),
			goerr.TV(errutil.KindKey, rec.Kind().String()),
		)
	}
	return nil
}

func (r *Sheets) wrap(err error, msg string, opts ...goerr.Option) error {
	opts = append(opts, goerr.T(errs.TagExternal))

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		opts = append(opts, goerr.TV(errutil.HTTPStatusKey, apiErr.Code))
		if apiErr.Code == 404 {
			opts = append(opts, goerr.T(errs.TagNotFound))
		}
	}
	return r.eb.Wrap(err, msg, opts...)
}

// a1Range addresses the first cell of a worksheet, quoting the title.
func a1Range(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'!A1"
}
