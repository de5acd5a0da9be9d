package interfaces

import (
	"context"
	"io"

	"github.com/slack-go/slack"
)

//go:generate go tool moq -out ../mock/interfaces.go -pkg mock . SlackClient StorageClient RecordGateway SessionStore Replier ProfileResolver

type StorageClient interface {
	PutObject(ctx context.Context, object string) io.WriteCloser
	GetObject(ctx context.Context, object string) (io.ReadCloser, error)
	Close(ctx context.Context)
}

// SlackClient is the subset of *slack.Client the bot calls.
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	UpdateMessageContext(ctx context.Context, channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)
	AuthTest() (*slack.AuthTestResponse, error)
	GetUserInfoContext(ctx context.Context, userID string) (*slack.User, error)
}

// ProfileResolver returns the display name of a chat user.
type ProfileResolver interface {
	GetUserProfile(ctx context.Context, userID string) (string, error)
}
