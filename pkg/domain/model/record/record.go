package record

import (
	"time"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

// Record is one completed dialog. The set of implementations is closed:
// TimingRecord, BlankRecord and OtherRecord.
type Record interface {
	Kind() types.RecordKind
	CreatedAt() time.Time
	OperatorName() string
	record()
}

type TimingRecord struct {
	Timestamp time.Time
	Operator  string
	TimeSpan  string
	Product   string
	Quantity  Value
}

func (x TimingRecord) Kind() types.RecordKind { return types.RecordKindTiming }
func (x TimingRecord) CreatedAt() time.Time   { return x.Timestamp }
func (x TimingRecord) OperatorName() string   { return x.Operator }
func (TimingRecord) record()                  {}

type BlankRecord struct {
	Timestamp time.Time
	Operator  string
	BlankType string
	Quantity  Value
}

func (x BlankRecord) Kind() types.RecordKind { return types.RecordKindBlank }
func (x BlankRecord) CreatedAt() time.Time   { return x.Timestamp }
func (x BlankRecord) OperatorName() string   { return x.Operator }
func (BlankRecord) record()                  {}

type OtherRecord struct {
	Timestamp time.Time
	Operator  string
	Operation string
	Details   string
}

func (x OtherRecord) Kind() types.RecordKind { return types.RecordKindOther }
func (x OtherRecord) CreatedAt() time.Time   { return x.Timestamp }
func (x OtherRecord) OperatorName() string   { return x.Operator }
func (OtherRecord) record()                  {}

// Assemble builds the record of kind from the collected fields. A missing field
// means the dialog reached a terminal state without visiting every step.
func Assemble(kind types.RecordKind, operator string, fields map[Field]Value, now time.Time) (Record, error) {
	eb := goerr.NewBuilder(goerr.TV(errutil.KindKey, kind.String()))

	for _, f := range FieldsOf(kind) {
		if v, ok := fields[f]; !ok || v.IsZero() {
			return nil, eb.New("missing field for record", goerr.TV(errutil.FieldKey, f.String()))
		}
	}

	switch kind {
	case types.RecordKindTiming:
		return TimingRecord{
			Timestamp: now,
			Operator:  operator,
			TimeSpan:  fields[FieldTimeSpan].String(),
			Product:   fields[FieldProduct].String(),
			Quantity:  fields[FieldQuantity],
		}, nil

	case types.RecordKindBlank:
		return BlankRecord{
			Timestamp: now,
			Operator:  operator,
			BlankType: fields[FieldBlankType].String(),
			Quantity:  fields[FieldQuantity],
		}, nil

	case types.RecordKindOther:
		return OtherRecord{
			Timestamp: now,
			Operator:  operator,
			Operation: fields[FieldOperation].String(),
			Details:   fields[FieldDetails].String(),
		}, nil
	}

	return nil, eb.New("unknown record kind")
}

// Values returns the dialog inputs of rec in asking order, for summaries.
func Values(rec Record) []FieldValue {
	switch r := rec.(type) {
	case TimingRecord:
		return []FieldValue{
			{FieldTimeSpan, TextValue(r.TimeSpan)},
			{FieldProduct, TextValue(r.Product)},
			{FieldQuantity, r.Quantity},
		}
	case BlankRecord:
		return []FieldValue{
			{FieldBlankType, TextValue(r.BlankType)},
			{FieldQuantity, r.Quantity},
		}
	case OtherRecord:
		return []FieldValue{
			{FieldOperation, TextValue(r.Operation)},
			{FieldDetails, TextValue(r.Details)},
		}
	}
	return nil
}

type FieldValue struct {
	Field Field
	Value Value
}
