package dialog

import (
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
)

type ActionKind int

const (
	// ActionReprompt keeps the state and fields; the input was rejected.
	ActionReprompt ActionKind = iota + 1
	// ActionAdvance stores the input and moves to the next state.
	ActionAdvance
	// ActionComplete stores the last input and carries the assembled record.
	ActionComplete
)

func (x ActionKind) String() string {
	switch x {
	case ActionReprompt:
		return "reprompt"
	case ActionAdvance:
		return "advance"
	case ActionComplete:
		return "complete"
	}
	return "unknown"
}

// Action is the outcome of one turn. It is computed without touching the session.
type Action struct {
	Kind ActionKind
	Next State

	// RecordKind is set when the turn picks a branch at MAIN_MENU.
	RecordKind types.RecordKind

	Field record.Field
	Value record.Value

	Record record.Record

	// Reason is the rejection cause of ActionReprompt.
	Reason error

	Reply Reply
}

// Apply writes the mutation of the action to sess. A completed dialog leaves the
// session at MAIN_MENU with no fields; the caller removes it from the store.
func (x Action) Apply(sess *Session) {
	switch x.Kind {
	case ActionReprompt:
		return

	case ActionAdvance:
		if x.RecordKind != "" {
			sess.Kind = x.RecordKind
			sess.Fields = map[record.Field]record.Value{}
		}
		if x.Field != "" {
			if sess.Fields == nil {
				sess.Fields = map[record.Field]record.Value{}
			}
			sess.Fields[x.Field] = x.Value
		}
		sess.State = x.Next

	case ActionComplete:
		if sess.Fields == nil {
			sess.Fields = map[record.Field]record.Value{}
		}
		sess.Fields[x.Field] = x.Value
		sess.State = StateMainMenu
	}
}

// Reply is the outbound message of a turn. Buttons are shown only at MAIN_MENU.
type Reply struct {
	Text    string
	Buttons []string
}

func (x Reply) HasButtons() bool {
	return len(x.Buttons) > 0
}
