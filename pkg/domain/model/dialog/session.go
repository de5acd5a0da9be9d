package dialog

import (
	"maps"
	"time"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
)

// Session is the in-progress dialog of one worker.
type Session struct {
	ID           types.DialogID
	UserID       types.UserID
	OperatorName string
	State        State
	Kind         types.RecordKind
	Fields       map[record.Field]record.Value
	StartedAt    time.Time
}

func NewSession(userID types.UserID) *Session {
	return &Session{
		UserID: userID,
		State:  StateMainMenu,
		Fields: map[record.Field]record.Value{},
	}
}

// Start resets the session to a fresh dialog at MAIN_MENU.
func (x *Session) Start(operator string, now time.Time) {
	x.ID = types.NewDialogID()
	x.OperatorName = operator
	x.State = StateMainMenu
	x.Kind = ""
	x.Fields = map[record.Field]record.Value{}
	x.StartedAt = now
}

// Clone returns a deep copy.
func (x *Session) Clone() *Session {
	c := *x
	c.Fields = maps.Clone(x.Fields)
	if c.Fields == nil {
		c.Fields = map[record.Field]record.Value{}
	}
	return &c
}

// Field returns the value collected for f in the current dialog.
func (x *Session) Field(f record.Field) (record.Value, bool) {
	v, ok := x.Fields[f]
	return v, ok
}
