package record

import (
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

const (
	ColumnTimestamp = "timestamp"
	ColumnOperator  = "operator"
)

// TimestampFormat is the layout of the timestamp cell.
const TimestampFormat = "2006-01-02 15:04:05"

type Column struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// Schema is the table a record kind is appended to and its header row.
type Schema struct {
	Kind    types.RecordKind
	Table   string
	Columns []Column
}

func (x Schema) Header() []string {
	header := make([]string, len(x.Columns))
	for i, c := range x.Columns {
		header[i] = c.Label
	}
	return header
}

func (x Schema) Keys() []string {
	keys := make([]string, len(x.Columns))
	for i, c := range x.Columns {
		keys[i] = c.Key
	}
	return keys
}

// Schemas is the set of three tables a gateway manages.
type Schemas struct {
	Timing Schema
	Blank  Schema
	Other  Schema
}

func DefaultSchemas() Schemas {
	return Schemas{
		Timing: Schema{
			Kind:  types.RecordKindTiming,
			Table: "Timing",
			Columns: []Column{
				{ColumnTimestamp, "Date and time"},
				{ColumnOperator, "Operator"},
				{FieldTimeSpan.String(), "Operation time"},
				{FieldProduct.String(), "Product"},
				{FieldQuantity.String(), "Quantity"},
			},
		},
		Blank: Schema{
			Kind:  types.RecordKindBlank,
			Table: "Blanks",
			Columns: []Column{
				{ColumnTimestamp, "Date and time"},
				{ColumnOperator, "Operator"},
				{FieldBlankType.String(), "Blank type"},
				{FieldQuantity.String(), "Quantity"},
			},
		},
		Other: Schema{
			Kind:  types.RecordKindOther,
			Table: "Other",
			Columns: []Column{
				{ColumnTimestamp, "Date and time"},
				{ColumnOperator, "Operator"},
				{FieldOperation.String(), "Operation"},
				{FieldDetails.String(), "Details"},
			},
		},
	}
}

// Of returns the schema of kind. It panics on an unknown kind.
func (x Schemas) Of(kind types.RecordKind) Schema {
	switch kind {
	case types.RecordKindTiming:
		return x.Timing
	case types.RecordKindBlank:
		return x.Blank
	case types.RecordKindOther:
		return x.Other
	}
	panic("unknown record kind: " + kind.String())
}

// All returns the schemas in menu order.
func (x Schemas) All() []Schema {
	return []Schema{x.Timing, x.Blank, x.Other}
}

// Validate checks table names are set and unique and that every schema carries
// exactly the columns of its record kind.
func (x Schemas) Validate() error {
	seen := map[string]types.RecordKind{}
	for _, s := range x.All() {
		eb := goerr.NewBuilder(
			goerr.TV(errutil.KindKey, s.Kind.String()),
			goerr.TV(errutil.TableKey, s.Table),
		)
		if s.Table == "" {
			return eb.New("table name is empty")
		}
		if other, ok := seen[s.Table]; ok {
			return eb.New("table name is used twice", goerr.V("other_kind", other))
		}
		seen[s.Table] = s.Kind

		want := append([]string{ColumnTimestamp, ColumnOperator}, fieldKeys(s.Kind)...)
		got := s.Keys()
		if len(got) != len(want) {
			return eb.New("column count mismatch", goerr.V("want", want), goerr.V("got", got))
		}
		for i := range want {
			if got[i] != want[i] {
				return eb.New("column order mismatch", goerr.V("want", want), goerr.V("got", got))
			}
			if s.Columns[i].Label == "" {
				return eb.New("column label is empty", goerr.V("column", want[i]))
			}
		}
	}
	return nil
}

func fieldKeys(kind types.RecordKind) []string {
	var keys []string
	for _, f := range FieldsOf(kind) {
		keys = append(keys, f.String())
	}
	return keys
}
