package sheets_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/repository/sheets"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/test"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// spreadsheet is an in-memory stand-in for the Sheets API.
type spreadsheet struct {
	mu        sync.Mutex
	sheets    map[string][][]any
	order     []string
	added     []string
	sizes     map[string][2]int64
	appendErr error
}

func newSpreadsheet(existing ...string) *spreadsheet {
	s := &spreadsheet{sheets: map[string][][]any{}, sizes: map[string][2]int64{}}
	for _, title := range existing {
		s.sheets[title] = [][]any{{"custom header"}}
		s.order = append(s.order, title)
	}
	return s
}

func titleOf(rng string) string {
	title := strings.TrimSuffix(rng, "!A1")
	title = strings.TrimPrefix(strings.TrimSuffix(title, "'"), "'")
	return strings.ReplaceAll(title, "''", "'")
}

func (x *spreadsheet) SheetTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]string{}, x.order...), nil
}

func (x *spreadsheet) AddSheet(ctx context.Context, spreadsheetID, title string, rows, cols int64) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, ok := x.sheets[title]; ok {
		return &googleapi.Error{Code: 400, Message: "sheet already exists"}
	}
	x.sheets[title] = nil
	x.order = append(x.order, title)
	x.added = append(x.added, title)
	x.sizes[title] = [2]int64{rows, cols}
	return nil
}

func (x *spreadsheet) UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	title := titleOf(rng)
	if _, ok := x.sheets[title]; !ok {
		return &googleapi.Error{Code: 400, Message: "unable to parse range"}
	}
	x.sheets[title] = values
	return nil
}

func (x *spreadsheet) AppendValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.appendErr != nil {
		return x.appendErr
	}
	title := titleOf(rng)
	if _, ok := x.sheets[title]; !ok {
		return &googleapi.Error{Code: 400, Message: "unable to parse range"}
	}
	x.sheets[title] = append(x.sheets[title], values...)
	return nil
}

func TestEnsureSchema(t *testing.T) {
	ctx := t.Context()

	t.Run("creates missing worksheets with header", func(t *testing.T) {
		ss := newSpreadsheet()
		gw := sheets.NewWithAPI(ss, "sheet-id", record.DefaultSchemas())
		gt.NoError(t, gw.EnsureSchema(ctx)).Required()

		gt.A(t, ss.added).Equal([]string{"Timing", "Blanks", "Other"})
		gt.Equal(t, ss.sizes["Timing"], [2]int64{1000, 10})
		gt.A(t, ss.sheets["Timing"]).Equal([][]any{{"Date and time", "Operator", "Operation time", "Product", "Quantity"}})
		gt.A(t, ss.sheets["Blanks"]).Equal([][]any{{"Date and time", "Operator", "Blank type", "Quantity"}})
		gt.A(t, ss.sheets["Other"]).Equal([][]any{{"Date and time", "Operator", "Operation", "Details"}})
	})

	t.Run("existing worksheets are left untouched", func(t *testing.T) {
		ss := newSpreadsheet("Timing")
		gw := sheets.NewWithAPI(ss, "sheet-id", record.DefaultSchemas())
		gt.NoError(t, gw.EnsureSchema(ctx)).Required()

		gt.A(t, ss.added).Equal([]string{"Blanks", "Other"})
		gt.A(t, ss.sheets["Timing"]).Equal([][]any{{"custom header"}})
	})

	t.Run("second call changes nothing", func(t *testing.T) {
		ss := newSpreadsheet()
		gw := sheets.NewWithAPI(ss, "sheet-id", record.DefaultSchemas())
		gt.NoError(t, gw.EnsureSchema(ctx)).Required()
		gt.NoError(t, gw.EnsureSchema(ctx)).Required()

		gt.A(t, ss.added).Length(3)
		gt.A(t, ss.sheets["Other"]).Length(1)
	})
}

func TestAppend(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	t.Run("appends one row to the worksheet of the kind", func(t *testing.T) {
		ss := newSpreadsheet()
		gw := sheets.NewWithAPI(ss, "sheet-id", record.DefaultSchemas())
		gt.NoError(t, gw.EnsureSchema(ctx)).Required()

		gt.NoError(t, gw.Append(ctx, record.BlankRecord{
			Timestamp: now, Operator: "Anna", BlankType: "Plate", Quantity: record.TextValue("abc"),
		})).Required()

		rows := ss.sheets["Blanks"]
		gt.A(t, rows).Length(2)
		gt.A(t, rows[1]).Equal([]any{"2024-03-05 14:07:09", "Anna", "Plate", "abc"})
		gt.A(t, ss.sheets["Timing"]).Length(1)
	})

	t.Run("api failure is reported with status", func(t *testing.T) {
		ss := newSpreadsheet()
		ss.appendErr = &googleapi.Error{Code: 503, Message: "unavailable"}
		gw := sheets.NewWithAPI(ss, "sheet-id", record.DefaultSchemas())
		gt.NoError(t, gw.EnsureSchema(ctx)).Required()

		err := gw.Append(ctx, record.OtherRecord{Timestamp: now, Operator: "Anna", Operation: "Cleaning", Details: "Line 2"})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagExternal))

		status, ok := goerr.GetTypedValue(err, errutil.HTTPStatusKey)
		gt.True(t, ok)
		gt.Equal(t, status, 503)
	})
}

func TestA1Range(t *testing.T) {
	gt.Equal(t, sheets.A1Range("Timing"), "'Timing'!A1")
	gt.Equal(t, sheets.A1Range("Bob's"), "'Bob''s'!A1")
}

func TestSheetsLive(t *testing.T) {
	vars := test.NewEnvVars(t, "TEST_SHEETS_SPREADSHEET_ID", "TEST_SHEETS_CREDENTIALS")
	ctx := t.Context()

	gw, err := sheets.New(ctx,
		vars.Get("TEST_SHEETS_SPREADSHEET_ID"),
		record.DefaultSchemas(),
		option.WithCredentialsFile(vars.Get("TEST_SHEETS_CREDENTIALS")),
	)
	gt.NoError(t, err).Required()

	gt.NoError(t, gw.EnsureSchema(ctx)).Required()
	gt.NoError(t, gw.EnsureSchema(ctx)).Required()
	gt.NoError(t, gw.Append(ctx, record.OtherRecord{
		Timestamp: time.Now(), Operator: "test", Operation: "live test", Details: t.Name(),
	}))
}
