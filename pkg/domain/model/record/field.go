package record

import "github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"

// Field is one input collected by the dialog. The string form is also the column key.
type Field string

const (
	FieldTimeSpan  Field = "time_span"
	FieldProduct   Field = "product"
	FieldQuantity  Field = "quantity"
	FieldBlankType Field = "blank_type"
	FieldOperation Field = "operation"
	FieldDetails   Field = "details"
)

var fieldLabels = map[Field]string{
	FieldTimeSpan:  "Time",
	FieldProduct:   "Product",
	FieldQuantity:  "Quantity",
	FieldBlankType: "Blank type",
	FieldOperation: "Operation",
	FieldDetails:   "Details",
}

func (x Field) String() string {
	return string(x)
}

func (x Field) Label() string {
	if label, ok := fieldLabels[x]; ok {
		return label
	}
	return string(x)
}

func (x Field) IsQuantity() bool {
	return x == FieldQuantity
}

var kindFields = map[types.RecordKind][]Field{
	types.RecordKindTiming: {FieldTimeSpan, FieldProduct, FieldQuantity},
	types.RecordKindBlank:  {FieldBlankType, FieldQuantity},
	types.RecordKindOther:  {FieldOperation, FieldDetails},
}

// FieldsOf returns the inputs of kind in the order the dialog asks for them.
func FieldsOf(kind types.RecordKind) []Field {
	fields := kindFields[kind]
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// HasField reports whether field belongs to the schema of kind.
func HasField(kind types.RecordKind, field Field) bool {
	for _, f := range kindFields[kind] {
		if f == field {
			return true
		}
	}
	return false
}
