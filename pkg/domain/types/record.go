package types

import "github.com/m-mizutani/goerr/v2"

// RecordKind selects one of the three record sub-flows and the table a record is stored in.
type RecordKind string

const (
	RecordKindTiming RecordKind = "timing"
	RecordKindBlank  RecordKind = "blank"
	RecordKindOther  RecordKind = "other"
)

// RecordKinds lists every kind in menu order.
var RecordKinds = []RecordKind{
	RecordKindTiming,
	RecordKindBlank,
	RecordKindOther,
}

func (x RecordKind) String() string {
	return string(x)
}

// Label returns the plain menu label of the kind.
func (x RecordKind) Label() string {
	switch x {
	case RecordKindTiming:
		return "Timing"
	case RecordKindBlank:
		return "Blank"
	case RecordKindOther:
		return "Other"
	default:
		return string(x)
	}
}

func (x RecordKind) Validate() error {
	switch x {
	case RecordKindTiming, RecordKindBlank, RecordKindOther:
		return nil
	default:
		return goerr.New("invalid record kind", goerr.V("kind", x))
	}
}
