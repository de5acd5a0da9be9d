package slack

import (
	"context"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
	slack_svc "github.com/d8o8m8-lab/production-bot-railway/pkg/service/slack"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/clock"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/metrics"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/request_id"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/user"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

const (
	CommandStart  = "/start"
	CommandCancel = "/cancel"

	channelTypeIM = "im"
)

// Messenger is the Slack side of a dialog: where replies go and how a clicked
// menu is retired.
type Messenger interface {
	NewReplier(channelID string) interfaces.Replier
	DismissMenu(ctx context.Context, channelID, timestamp, text, choice string)
	IsBotUser(userID string) bool
}

var _ Messenger = &slack_svc.Service{}

type ctxSyncKey struct{}

// WithSync makes the controller run handlers inline instead of on a
// background goroutine. Tests use it to observe replies deterministically.
func WithSync(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxSyncKey{}, true)
}

func isSync(ctx context.Context) bool {
	v, _ := ctx.Value(ctxSyncKey{}).(bool)
	return v
}

func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()
	newCtx = logging.With(newCtx, logging.From(ctx))
	newCtx = clock.WithTimezone(newCtx, clock.Timezone(ctx))
	if reqID := request_id.FromContext(ctx); reqID != "" {
		newCtx = request_id.With(newCtx, reqID)
	}
	if userID := user.FromContext(ctx); userID != types.EmptyUserID {
		newCtx = user.WithUserID(newCtx, userID)
		newCtx = user.WithOperator(newCtx, user.OperatorFromContext(ctx))
	}
	return newCtx
}

// Slack escapes these characters in message text.
var slackEntities = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")

func unescapeText(text string) string {
	return slackEntities.Replace(text)
}

// dispatch runs handler after the HTTP response so Slack gets its ack within
// three seconds. Turns of one user are still ordered by the session lock.
func (x *Controller) dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	if isSync(ctx) {
		if err := handler(newCtx); err != nil {
			errs.Handle(newCtx, err)
		}
		return
	}

	x.inflight.Add(1)
	go func() {
		defer x.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				logger := logging.From(newCtx)
				logger.Error("panic recovered in background goroutine",
					"error", r,
					"stack", string(stack),
				)
				errs.Handle(newCtx, goerr.New("panic recovered in background goroutine",
					goerr.V("recover", r),
					goerr.V("stack", string(stack))))
			}
		}()

		if err := handler(newCtx); err != nil {
			errs.Handle(newCtx, err)
		}
	}()
}

type Controller struct {
	dialog    interfaces.DialogUsecases
	messenger Messenger

	inflight sync.WaitGroup
}

func New(dialog interfaces.DialogUsecases, messenger Messenger) *Controller {
	return &Controller{
		dialog:    dialog,
		messenger: messenger,
	}
}

// Wait blocks until every dispatched handler returned or ctx is done. Call it
// after the HTTP server stopped accepting events and before closing the backend.
func (x *Controller) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		x.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "dispatched handlers did not finish", goerr.T(errs.TagTimeout))
	}
}

// isDialogMessage accepts plain messages a user typed in the direct message
// channel of the bot. Edits, joins, and bot posts are ignored.
func (x *Controller) isDialogMessage(event *slackevents.MessageEvent) bool {
	if event.ChannelType != channelTypeIM {
		return false
	}
	if event.BotID != "" || event.SubType != "" || event.User == "" {
		return false
	}
	return !x.messenger.IsBotUser(event.User)
}

func (x *Controller) HandleSlackMessage(ctx context.Context, apiEvent *slackevents.EventsAPIEvent, event *slackevents.MessageEvent) error {
	metrics.SlackEvents.WithLabelValues("message").Inc()

	ctx = logging.WithAttrs(ctx, "event_ts", event.EventTimeStamp)
	logger := logging.From(ctx)

	if !x.isDialogMessage(event) {
		logger.Debug("ignored slack message",
			"channel_type", event.ChannelType,
			"subtype", event.SubType,
			"bot_id", event.BotID)
		return nil
	}

	ctx = user.WithUserID(ctx, types.UserID(event.User))
	replier := x.messenger.NewReplier(event.Channel)
	text := unescapeText(event.Text)

	x.dispatch(ctx, func(ctx context.Context) error {
		return x.dialog.HandleDialogText(ctx, types.UserID(event.User), text, replier)
	})

	return nil
}

func (x *Controller) HandleSlackInteraction(ctx context.Context, interaction slack.InteractionCallback) error {
	metrics.SlackEvents.WithLabelValues("interaction").Inc()

	logger := logging.From(ctx)
	logger.Debug("slack interaction event",
		"type", interaction.Type,
		"user_id", interaction.User.ID,
		"channel_id", interaction.Channel.ID)

	if interaction.Type != slack.InteractionTypeBlockActions {
		return nil
	}

	var choice *slack.BlockAction
	for _, action := range interaction.ActionCallback.BlockActions {
		if action.ActionID == slack_svc.MenuActionID {
			choice = action
			break
		}
	}
	if choice == nil {
		return nil
	}

	userID := types.UserID(interaction.User.ID)
	ctx = user.WithUserID(ctx, userID)
	ctx = user.WithOperator(ctx, interaction.User.Name)

	channelID := interaction.Channel.ID
	x.messenger.DismissMenu(ctx, channelID, interaction.Message.Timestamp, interaction.Message.Text, choice.Value)

	replier := x.messenger.NewReplier(channelID)
	x.dispatch(ctx, func(ctx context.Context) error {
		return x.dialog.HandleMenuChoice(ctx, userID, choice.Value, replier)
	})

	return nil
}

// HandleSlashCommand serves /start and /cancel. Replies go to the direct
// message channel of the user, wherever the command was typed.
func (x *Controller) HandleSlashCommand(ctx context.Context, cmd slack.SlashCommand) error {
	metrics.SlackEvents.WithLabelValues("command").Inc()

	userID := types.UserID(cmd.UserID)
	ctx = user.WithUserID(ctx, userID)
	ctx = user.WithOperator(ctx, cmd.UserName)
	logging.From(ctx).Debug("slack slash command", "command", cmd.Command, "user_id", cmd.UserID)

	replier := x.messenger.NewReplier(cmd.UserID)

	switch strings.ToLower(cmd.Command) {
	case CommandStart:
		x.dispatch(ctx, func(ctx context.Context) error {
			return x.dialog.StartDialog(ctx, userID, replier)
		})
	case CommandCancel:
		x.dispatch(ctx, func(ctx context.Context) error {
			return x.dialog.CancelDialog(ctx, userID, replier)
		})
	default:
		return goerr.New("unsupported slash command",
			goerr.T(errs.TagInvalidRequest),
			goerr.TV(errutil.CommandKey, cmd.Command))
	}

	return nil
}
