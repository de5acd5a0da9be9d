package errutil

import (
	"github.com/m-mizutani/goerr/v2"
)

var (
	// IDs
	UserIDKey    = goerr.NewTypedKey[string]("user_id")
	DialogIDKey  = goerr.NewTypedKey[string]("dialog_id")
	RequestIDKey = goerr.NewTypedKey[string]("request_id")

	// Dialog
	StateKey = goerr.NewTypedKey[string]("state")
	FieldKey = goerr.NewTypedKey[string]("field")
	KindKey  = goerr.NewTypedKey[string]("kind")

	// Backends
	BackendKey = goerr.NewTypedKey[string]("backend")
	TableKey   = goerr.NewTypedKey[string]("table")
	ObjectKey  = goerr.NewTypedKey[string]("object")

	// External services
	ServiceKey    = goerr.NewTypedKey[string]("service")
	HTTPStatusKey = goerr.NewTypedKey[int]("http_status")

	// File and path
	FilePathKey = goerr.NewTypedKey[string]("file_path")

	// Slack specific
	ChannelIDKey = goerr.NewTypedKey[string]("channel_id")
	MessageTSKey = goerr.NewTypedKey[string]("message_ts")
	ActionIDKey  = goerr.NewTypedKey[string]("action_id")
	CommandKey   = goerr.NewTypedKey[string]("command")
)
