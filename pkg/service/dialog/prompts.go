package dialog

import (
	"fmt"
	"strings"

	model "github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/dialog"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
)

const startHint = "Send /start to begin."

var statePrompts = map[model.State]string{
	model.StateChronoTime:     "⏱️ *Timing*\n\nEnter the start and end time of the operation:\n_Example: \"10:00-11:30\" or \"from 9:00 to 10:15\"_",
	model.StateChronoProduct:  "Which product was made?",
	model.StateChronoQuantity: "How many were made?",
	model.StateBlankType:      "⚙️ *Blank*\n\nWhich blank did you make?",
	model.StateBlankQuantity:  "How many pieces?",
	model.StateOtherOperation: "📝 *Other*\n\nDescribe the operation:",
	model.StateOtherDetails:   "Add the details:",
}

var kindTitles = map[types.RecordKind]string{
	types.RecordKindTiming: "Timing",
	types.RecordKindBlank:  "Blank",
	types.RecordKindOther:  "Operation",
}

func promptOf(state model.State) string {
	if p, ok := statePrompts[state]; ok {
		return p
	}
	return "Choose an option:"
}

func echo(field record.Field, v record.Value) string {
	return fmt.Sprintf("✅ *%s:* %s", field.Label(), v.String())
}

func emptyMessage(field record.Field) string {
	return fmt.Sprintf("❌ %s cannot be empty.", field.Label())
}

const (
	nonPositiveMessage  = "❌ Enter a positive number."
	unrecognizedMessage = "❌ Please choose an option from the menu."
	saveFailedMessage   = "❌ Failed to save the record. Please try again.\n\n" + startHint
	cancelMessage       = "❌ Dialog cancelled. " + startHint
	noDialogMessage     = "There is no active dialog. " + startHint
	schemaWarning       = "⚠️ The record storage is not ready. Saving may fail."
)

func greeting(operator string) string {
	return fmt.Sprintf("🏭 *Production tracking*\n\nHello, %s!\nChoose the operation type:", operator)
}

func summary(rec record.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ *%s saved!*\n\n", kindTitles[rec.Kind()])
	for _, fv := range record.Values(rec) {
		fmt.Fprintf(&b, "%s: %s\n", fv.Field.Label(), fv.Value.String())
	}
	b.WriteString("\nFor a new record send /start")
	return b.String()
}
