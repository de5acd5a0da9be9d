package slack

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// MenuDismissRequest asks to replace the buttons of a posted menu.
type MenuDismissRequest struct {
	ChannelID string
	Timestamp string
	Text      string
	Choice    string
}

// MenuUpdater updates posted menu messages with rate limiting
type MenuUpdater interface {
	Dismiss(ctx context.Context, req MenuDismissRequest)
	Stop()
}

// RateLimitedUpdater serializes chat.update calls through a single goroutine.
type RateLimitedUpdater struct {
	client      interfaces.SlackClient
	requestChan chan *MenuDismissRequest
	once        sync.Once

	interval      time.Duration
	retryInterval time.Duration // base of the backoff when Slack gives no Retry-After
	maxRetries    int

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// UpdaterOption represents a configuration option for RateLimitedUpdater
type UpdaterOption func(*RateLimitedUpdater)

// WithInterval sets the rate limiting interval
func WithInterval(interval time.Duration) UpdaterOption {
	return func(r *RateLimitedUpdater) {
		r.interval = interval
	}
}

// WithRetryInterval sets the base retry interval
func WithRetryInterval(interval time.Duration) UpdaterOption {
	return func(r *RateLimitedUpdater) {
		r.retryInterval = interval
	}
}

func WithMaxRetries(n int) UpdaterOption {
	return func(r *RateLimitedUpdater) {
		r.maxRetries = n
	}
}

func NewRateLimitedUpdater(client interfaces.SlackClient, opts ...UpdaterOption) *RateLimitedUpdater {
	ctx, cancel := context.WithCancel(context.Background())

	r := &RateLimitedUpdater{
		client:        client,
		requestChan:   make(chan *MenuDismissRequest, 64),
		interval:      1200 * time.Millisecond, // chat.update is Tier 3, ~50 req/min
		retryInterval: time.Second,
		maxRetries:    3,
		ctx:           ctx,
		cancel:        cancel,
		done:          make(chan struct{}),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Dismiss queues the update. A full queue drops the request: the menu then
// stays clickable, which the dialog tolerates.
func (r *RateLimitedUpdater) Dismiss(ctx context.Context, req MenuDismissRequest) {
	r.once.Do(func() {
		go r.processRequests(r.ctx)
	})

	select {
	case r.requestChan <- &req:
	case <-r.ctx.Done():
	default:
		logging.From(ctx).Warn("menu update queue is full, dropping request",
			"channel_id", req.ChannelID,
			"ts", req.Timestamp)
	}
}

func (r *RateLimitedUpdater) processRequests(ctx context.Context) {
	defer close(r.done)
	logger := logging.From(ctx)
	logger.Debug("starting rate-limited menu updater")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("stopping rate-limited menu updater")
			return
		case <-ticker.C:
			select {
			case req := <-r.requestChan:
				r.processRequest(ctx, req)
			default:
			}
		}
	}
}

func (r *RateLimitedUpdater) processRequest(ctx context.Context, req *MenuDismissRequest) {
	logger := logging.From(ctx)

	defer func() {
		if v := recover(); v != nil {
			errs.Handle(ctx, goerr.New("panic in menu update processing", goerr.V("panic", v)))
		}
	}()

	blocks := buildDismissedMenuBlocks(req.Text, req.Choice)

	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		_, _, _, err := r.client.UpdateMessageContext(ctx, req.ChannelID, req.Timestamp,
			slack.MsgOptionText(req.Text, false),
			slack.MsgOptionBlocks(blocks...),
		)
		if err == nil {
			logger.Debug("menu dismissed", "channel_id", req.ChannelID, "ts", req.Timestamp)
			return
		}

		if !isRateLimitError(err) {
			errs.Handle(ctx, goerr.Wrap(err, "failed to update slack message",
				goerr.T(errs.TagSlackError),
				goerr.TV(errutil.ChannelIDKey, req.ChannelID),
				goerr.TV(errutil.MessageTSKey, req.Timestamp)))
			return
		}

		wait := extractRetryAfter(err)
		if wait == 0 {
			wait = time.Duration(attempt) * r.retryInterval
		}
		logger.Warn("rate limited, waiting before retry",
			"wait_time", wait,
			"attempt", attempt,
			"max_retries", r.maxRetries)

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return
		}
	}

	errs.Handle(ctx, goerr.New("max retries exceeded for menu update",
		goerr.T(errs.TagSlackError),
		goerr.TV(errutil.ChannelIDKey, req.ChannelID),
		goerr.TV(errutil.MessageTSKey, req.Timestamp),
		goerr.V("max_retries", r.maxRetries)))
}

func isRateLimitError(err error) bool {
	var rateLimitErr *slack.RateLimitedError
	if errors.As(err, &rateLimitErr) {
		return true
	}

	var slackErr *slack.SlackErrorResponse
	if errors.As(err, &slackErr) {
		return slackErr.Err == "rate_limited"
	}

	return false
}

func extractRetryAfter(err error) time.Duration {
	var rateLimitErr *slack.RateLimitedError
	if errors.As(err, &rateLimitErr) {
		return rateLimitErr.RetryAfter
	}

	var slackErr *slack.SlackErrorResponse
	if errors.As(err, &slackErr) && len(slackErr.ResponseMetadata.Messages) > 0 {
		if seconds, parseErr := strconv.Atoi(slackErr.ResponseMetadata.Messages[0]); parseErr == nil {
			return time.Duration(seconds) * time.Second
		}
	}

	return 0
}

// Stop stops the worker goroutine and waits for it when it was started.
func (r *RateLimitedUpdater) Stop() {
	r.cancel()
	started := true
	r.once.Do(func() { started = false })
	if started {
		<-r.done
	}
}
