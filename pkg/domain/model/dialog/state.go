package dialog

import (
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
)

// State is the step of the dialog that the next message answers.
type State string

const (
	StateMainMenu       State = "MAIN_MENU"
	StateChronoTime     State = "CHRONO_TIME"
	StateChronoProduct  State = "CHRONO_PRODUCT"
	StateChronoQuantity State = "CHRONO_QUANTITY"
	StateBlankType      State = "BLANK_TYPE"
	StateBlankQuantity  State = "BLANK_QUANTITY"
	StateOtherOperation State = "OTHER_OPERATION"
	StateOtherDetails   State = "OTHER_DETAILS"
)

func (x State) String() string {
	return string(x)
}

type step struct {
	kind  types.RecordKind
	field record.Field
	next  State
}

// steps maps every input state to the field it collects. An empty next state
// marks the last step of a branch.
var steps = map[State]step{
	StateChronoTime:     {types.RecordKindTiming, record.FieldTimeSpan, StateChronoProduct},
	StateChronoProduct:  {types.RecordKindTiming, record.FieldProduct, StateChronoQuantity},
	StateChronoQuantity: {types.RecordKindTiming, record.FieldQuantity, ""},
	StateBlankType:      {types.RecordKindBlank, record.FieldBlankType, StateBlankQuantity},
	StateBlankQuantity:  {types.RecordKindBlank, record.FieldQuantity, ""},
	StateOtherOperation: {types.RecordKindOther, record.FieldOperation, StateOtherDetails},
	StateOtherDetails:   {types.RecordKindOther, record.FieldDetails, ""},
}

var entryStates = map[types.RecordKind]State{
	types.RecordKindTiming: StateChronoTime,
	types.RecordKindBlank:  StateBlankType,
	types.RecordKindOther:  StateOtherOperation,
}

// EntryState returns the first input state of the branch for kind.
func EntryState(kind types.RecordKind) (State, bool) {
	s, ok := entryStates[kind]
	return s, ok
}

// Field returns the field collected in this state. ok is false for MAIN_MENU
// and unknown states.
func (x State) Field() (record.Field, bool) {
	s, ok := steps[x]
	return s.field, ok
}

// Kind returns the record kind whose branch the state belongs to.
func (x State) Kind() (types.RecordKind, bool) {
	s, ok := steps[x]
	return s.kind, ok
}

// Next returns the state after a valid input. ok is false when the state is
// the last step of its branch.
func (x State) Next() (State, bool) {
	s, found := steps[x]
	if !found || s.next == "" {
		return "", false
	}
	return s.next, true
}

// IsLast reports whether a valid input in this state completes the record.
func (x State) IsLast() bool {
	s, ok := steps[x]
	return ok && s.next == ""
}

func (x State) Valid() bool {
	if x == StateMainMenu {
		return true
	}
	_, ok := steps[x]
	return ok
}
