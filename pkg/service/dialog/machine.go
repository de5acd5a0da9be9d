package dialog

import (
	"errors"
	"maps"
	"time"

	model "github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/dialog"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/service/menu"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

// Machine computes dialog transitions. It holds no per-user state.
type Machine struct {
	menu *menu.Dispatcher
}

func New(dispatcher *menu.Dispatcher) *Machine {
	if dispatcher == nil {
		dispatcher = menu.New()
	}
	return &Machine{menu: dispatcher}
}

// Step computes the outcome of text in the current state of sess. It does not
// modify sess; apply the returned action to commit it.
func (x *Machine) Step(sess *model.Session, text string, now time.Time) model.Action {
	if sess.State == model.StateMainMenu {
		return x.stepMenu(text)
	}

	field, ok := sess.State.Field()
	kind, _ := sess.State.Kind()
	if !ok || kind != sess.Kind {
		return model.Action{
			Kind: model.ActionReprompt,
			Next: sess.State,
			Reason: goerr.New("session is in an inconsistent state",
				goerr.T(errs.TagInvalidState),
				goerr.TV(errutil.StateKey, sess.State.String()),
				goerr.TV(errutil.KindKey, sess.Kind.String()),
			),
			Reply: x.Menu(unrecognizedMessage),
		}
	}

	value, err := record.ValidateField(field, text)
	if err != nil {
		return model.Action{
			Kind:   model.ActionReprompt,
			Next:   sess.State,
			Reason: err,
			Reply:  model.Reply{Text: rejection(field, err)},
		}
	}

	if next, ok := sess.State.Next(); ok {
		return model.Action{
			Kind:  model.ActionAdvance,
			Next:  next,
			Field: field,
			Value: value,
			Reply: model.Reply{Text: echo(field, value) + "\n\n" + promptOf(next)},
		}
	}

	fields := maps.Clone(sess.Fields)
	if fields == nil {
		fields = map[record.Field]record.Value{}
	}
	fields[field] = value

	rec, err := record.Assemble(sess.Kind, sess.OperatorName, fields, now)
	if err != nil {
		return model.Action{
			Kind:   model.ActionReprompt,
			Next:   sess.State,
			Reason: goerr.Wrap(err, "failed to assemble record", goerr.T(errs.TagInvalidState)),
			Reply:  x.Menu(unrecognizedMessage),
		}
	}

	return model.Action{
		Kind:   model.ActionComplete,
		Next:   model.StateMainMenu,
		Field:  field,
		Value:  value,
		Record: rec,
	}
}

func (x *Machine) stepMenu(text string) model.Action {
	kind, err := x.menu.Classify(text)
	if err != nil {
		return model.Action{
			Kind:   model.ActionReprompt,
			Next:   model.StateMainMenu,
			Reason: err,
			Reply:  x.Menu(unrecognizedMessage),
		}
	}

	entry, _ := model.EntryState(kind)
	return model.Action{
		Kind:       model.ActionAdvance,
		Next:       entry,
		RecordKind: kind,
		Reply:      model.Reply{Text: promptOf(entry)},
	}
}

func rejection(field record.Field, err error) string {
	if errors.Is(err, record.ErrNonPositive) {
		return nonPositiveMessage
	}
	return emptyMessage(field)
}

// Menu returns a MAIN_MENU reply with text and the menu buttons.
func (x *Machine) Menu(text string) model.Reply {
	return model.Reply{Text: text, Buttons: x.menu.Buttons()}
}

// Greeting is the reply to the start command.
func (x *Machine) Greeting(operator string) model.Reply {
	return x.Menu(greeting(operator))
}

// SchemaWarning is shown together with the greeting when table setup failed.
func (x *Machine) SchemaWarning(operator string) model.Reply {
	return x.Menu(schemaWarning + "\n\n" + greeting(operator))
}

// Completed is the reply after the record of a finished dialog was handed to the
// gateway. err is the gateway result.
func (x *Machine) Completed(rec record.Record, err error) model.Reply {
	if err != nil {
		return model.Reply{Text: saveFailedMessage}
	}
	return model.Reply{Text: summary(rec)}
}

func (x *Machine) Cancelled() model.Reply {
	return model.Reply{Text: cancelMessage}
}

// NoDialog is the reply to text or cancel from a user without a session.
func (x *Machine) NoDialog() model.Reply {
	return model.Reply{Text: noDialogMessage}
}
