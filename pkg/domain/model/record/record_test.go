package record_test

import (
	"testing"
	"time"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

var testNow = time.Date(2024, 5, 14, 8, 3, 9, 0, time.UTC)

func TestAssemble(t *testing.T) {
	t.Run("timing", func(t *testing.T) {
		rec, err := record.Assemble(types.RecordKindTiming, "Ivan", map[record.Field]record.Value{
			record.FieldTimeSpan: record.TextValue("10:00-11:30"),
			record.FieldProduct:  record.TextValue("Gear housing"),
			record.FieldQuantity: record.IntValue(12),
		}, testNow)
		gt.NoError(t, err).Required()

		gt.Equal(t, rec, record.Record(record.TimingRecord{
			Timestamp: testNow,
			Operator:  "Ivan",
			TimeSpan:  "10:00-11:30",
			Product:   "Gear housing",
			Quantity:  record.IntValue(12),
		}))
		gt.Equal(t, rec.Kind(), types.RecordKindTiming)
	})

	t.Run("blank with text quantity", func(t *testing.T) {
		rec, err := record.Assemble(types.RecordKindBlank, "Olga", map[record.Field]record.Value{
			record.FieldBlankType: record.TextValue("Bracket"),
			record.FieldQuantity:  record.TextValue("many"),
		}, testNow)
		gt.NoError(t, err).Required()

		blank, ok := rec.(record.BlankRecord)
		gt.True(t, ok)
		gt.Equal(t, blank.Quantity.String(), "many")
		gt.False(t, blank.Quantity.IsNumber())
	})

	t.Run("other", func(t *testing.T) {
		rec, err := record.Assemble(types.RecordKindOther, "Petr", map[record.Field]record.Value{
			record.FieldOperation: record.TextValue("Maintenance"),
			record.FieldDetails:   record.TextValue("Replaced belt"),
		}, testNow)
		gt.NoError(t, err).Required()
		gt.Equal(t, rec.OperatorName(), "Petr")
		gt.True(t, rec.CreatedAt().Equal(testNow))
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := record.Assemble(types.RecordKindTiming, "Ivan", map[record.Field]record.Value{
			record.FieldTimeSpan: record.TextValue("10:00-11:30"),
		}, testNow)
		gt.Error(t, err)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := record.Assemble(types.RecordKind("scrap"), "Ivan", nil, testNow)
		gt.Error(t, err)
	})
}

func TestRow(t *testing.T) {
	t.Run("timing row follows header order", func(t *testing.T) {
		row, err := record.Row(record.TimingRecord{
			Timestamp: testNow,
			Operator:  "Ivan",
			TimeSpan:  "10:00-11:30",
			Product:   "Gear housing",
			Quantity:  record.IntValue(12),
		})
		gt.NoError(t, err)
		gt.A(t, row).Equal([]any{"2024-05-14 08:03:09", "Ivan", "10:00-11:30", "Gear housing", 12})
	})

	t.Run("blank row keeps text quantity", func(t *testing.T) {
		row, err := record.Row(record.BlankRecord{
			Timestamp: testNow,
			Operator:  "Olga",
			BlankType: "Bracket",
			Quantity:  record.TextValue("a dozen"),
		})
		gt.NoError(t, err)
		gt.A(t, row).Equal([]any{"2024-05-14 08:03:09", "Olga", "Bracket", "a dozen"})
	})

	t.Run("row length matches schema", func(t *testing.T) {
		schemas := record.DefaultSchemas()
		recs := []record.Record{
			record.TimingRecord{Timestamp: testNow, Quantity: record.IntValue(1)},
			record.BlankRecord{Timestamp: testNow, Quantity: record.IntValue(1)},
			record.OtherRecord{Timestamp: testNow},
		}
		for _, rec := range recs {
			row, err := record.Row(rec)
			gt.NoError(t, err)
			gt.A(t, row).Length(len(schemas.Of(rec.Kind()).Columns))
		}
	})

	t.Run("nil record", func(t *testing.T) {
		_, err := record.Row(nil)
		gt.Error(t, err)
	})
}

func TestMap(t *testing.T) {
	m, err := record.Map(record.OtherRecord{
		Timestamp: testNow,
		Operator:  "Petr",
		Operation: "Maintenance",
		Details:   "Replaced belt",
	})
	gt.NoError(t, err)
	gt.Map(t, m).HasKeyValue("operation", "Maintenance")
	gt.Map(t, m).HasKeyValue("details", "Replaced belt")
	gt.Map(t, m).HasKeyValue("timestamp", "2024-05-14 08:03:09")
}

func TestValues(t *testing.T) {
	values := record.Values(record.BlankRecord{BlankType: "Bracket", Quantity: record.IntValue(3)})
	gt.A(t, values).Length(2)
	gt.Equal(t, values[0].Field, record.FieldBlankType)
	gt.Equal(t, values[1].Value.String(), "3")
}
