package types

import "github.com/google/uuid"

// DialogID identifies one run of the dialog from start to completion or cancellation.
// It is used only to correlate log lines and archived records.
type DialogID string

func NewDialogID() DialogID {
	return DialogID(uuid.New().String())
}

func (x DialogID) String() string {
	return string(x)
}
