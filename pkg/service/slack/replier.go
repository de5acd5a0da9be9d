package slack

import (
	"context"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/dialog"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Replier posts dialog replies into one Slack channel.
type Replier struct {
	svc       *Service
	channelID string
}

var _ interfaces.Replier = &Replier{}

func (x *Replier) Reply(ctx context.Context, reply dialog.Reply) error {
	channelID, ts, err := x.svc.client.PostMessageContext(ctx, x.channelID,
		slack.MsgOptionText(reply.Text, false),
		slack.MsgOptionBlocks(buildReplyBlocks(reply)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post reply",
			goerr.T(errs.TagSlackError),
			goerr.TV(errutil.ChannelIDKey, x.channelID))
	}

	logging.From(ctx).Debug("reply posted",
		"channel_id", channelID,
		"ts", ts,
		"buttons", len(reply.Buttons),
	)
	return nil
}
