package sheets

import (
	"context"

	"google.golang.org/api/sheets/v4"
)

// api is the part of the Sheets service the gateway uses.
type api interface {
	SheetTitles(ctx context.Context, spreadsheetID string) ([]string, error)
	AddSheet(ctx context.Context, spreadsheetID, title string, rows, cols int64) error
	UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error
	AppendValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error
}

type serviceAPI struct {
	svc *sheets.Service
}

func (x *serviceAPI) SheetTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	resp, err := x.svc.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(resp.Sheets))
	for _, s := range resp.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

func (x *serviceAPI) AddSheet(ctx context.Context, spreadsheetID, title string, rows, cols int64) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{
						Title: title,
						GridProperties: &sheets.GridProperties{
							RowCount:    rows,
							ColumnCount: cols,
						},
					},
				},
			},
		},
	}
	_, err := x.svc.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	return err
}

func (x *serviceAPI) UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error {
	_, err := x.svc.Spreadsheets.Values.Update(spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

func (x *serviceAPI) AppendValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error {
	_, err := x.svc.Spreadsheets.Values.Append(spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}
