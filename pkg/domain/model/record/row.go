package record

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Row renders rec as cells in column order. Timestamp is formatted with
// TimestampFormat in the zone of the record's time. Quantity is int or string.
func Row(rec Record) ([]any, error) {
	switch r := rec.(type) {
	case TimingRecord:
		return []any{formatTime(r.Timestamp), r.Operator, r.TimeSpan, r.Product, r.Quantity.Cell()}, nil
	case BlankRecord:
		return []any{formatTime(r.Timestamp), r.Operator, r.BlankType, r.Quantity.Cell()}, nil
	case OtherRecord:
		return []any{formatTime(r.Timestamp), r.Operator, r.Operation, r.Details}, nil
	case nil:
		return nil, goerr.New("record is nil")
	}
	return nil, goerr.New("unsupported record type", goerr.V("record", rec))
}

// Map renders rec keyed by column key, for document and structured stores.
func Map(rec Record) (map[string]any, error) {
	row, err := Row(rec)
	if err != nil {
		return nil, err
	}
	keys := append([]string{ColumnTimestamp, ColumnOperator}, fieldKeys(rec.Kind())...)
	m := make(map[string]any, len(keys))
	for i, k := range keys {
		m[k] = row[i]
	}
	return m, nil
}

func formatTime(t time.Time) string {
	return t.Format(TimestampFormat)
}
