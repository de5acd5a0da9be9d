package types

// UserID is the stable chat-side identifier of a worker. Sessions are keyed by it.
type UserID string

func (x UserID) String() string {
	return string(x)
}

// EmptyUserID is used for events that carry no user (bot messages, edits)
const EmptyUserID UserID = ""
