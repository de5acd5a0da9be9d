package menu

import (
	"errors"
	"strings"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

var ErrUnrecognizedChoice = errors.New("unrecognized menu choice")

// Label ties a record kind to the text matched in a choice and the decorated
// button shown to the worker. Button must contain Match.
type Label struct {
	Kind   types.RecordKind
	Match  string
	Button string
}

// Labels is checked in order; the first label contained in the input wins.
var Labels = []Label{
	{Kind: types.RecordKindTiming, Match: "Timing", Button: "⏱️ Timing"},
	{Kind: types.RecordKindBlank, Match: "Blank", Button: "⚙️ Blank"},
	{Kind: types.RecordKindOther, Match: "Other", Button: "📝 Other"},
}

type Dispatcher struct {
	labels []Label
}

// New returns a dispatcher over labels, or over Labels when none are given.
func New(labels ...Label) *Dispatcher {
	if len(labels) == 0 {
		labels = Labels
	}
	return &Dispatcher{labels: labels}
}

// Classify maps a menu answer to a record kind. Matching is a case-sensitive
// substring test so emoji and decoration around the label are tolerated.
func (x *Dispatcher) Classify(text string) (types.RecordKind, error) {
	for _, l := range x.labels {
		if l.Match != "" && strings.Contains(text, l.Match) {
			return l.Kind, nil
		}
	}

	return "", goerr.Wrap(ErrUnrecognizedChoice, "failed to classify menu choice",
		goerr.T(errs.TagValidation),
		goerr.V("text", text),
	)
}

// Buttons returns the decorated labels in menu order.
func (x *Dispatcher) Buttons() []string {
	buttons := make([]string, len(x.labels))
	for i, l := range x.labels {
		buttons[i] = l.Button
	}
	return buttons
}

// Button returns the decorated label of kind.
func (x *Dispatcher) Button(kind types.RecordKind) string {
	for _, l := range x.labels {
		if l.Kind == kind {
			return l.Button
		}
	}
	return kind.Label()
}
