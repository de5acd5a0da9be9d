package usecase

import (
	"context"
	"time"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	model "github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/dialog"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/clock"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/metrics"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/user"
	"github.com/m-mizutani/goerr/v2"
)

// StartDialog always overwrites an in-progress dialog of the user.
func (u *UseCases) StartDialog(ctx context.Context, userID types.UserID, replier interfaces.Replier) error {
	ctx = user.WithUserID(ctx, userID)
	unlock := u.sessions.Lock(ctx, userID)
	defer unlock()

	schemaErr := u.ensureSchemaOnce(ctx)
	operator := u.resolveOperator(ctx, userID)

	sess := u.sessions.GetOrCreate(ctx, userID)
	sess.Start(operator, clock.Now(ctx))

	metrics.DialogsStarted.Inc()
	metrics.ActiveSessions.Set(float64(u.sessions.Len(ctx)))
	logging.From(ctx).Info("dialog started",
		"user_id", userID,
		"dialog_id", sess.ID,
		"operator", operator,
	)

	reply := u.machine.Greeting(operator)
	if schemaErr != nil {
		reply = u.machine.SchemaWarning(operator)
	}
	return u.reply(ctx, replier, reply)
}

// CancelDialog drops the session from any state. No record is stored.
func (u *UseCases) CancelDialog(ctx context.Context, userID types.UserID, replier interfaces.Replier) error {
	ctx = user.WithUserID(ctx, userID)
	unlock := u.sessions.Lock(ctx, userID)
	defer unlock()

	sess, ok := u.sessions.Get(ctx, userID)
	if !ok {
		return u.reply(ctx, replier, u.machine.NoDialog())
	}

	u.sessions.Clear(ctx, userID)
	metrics.DialogsCancelled.Inc()
	metrics.ActiveSessions.Set(float64(u.sessions.Len(ctx)))
	logging.From(ctx).Info("dialog cancelled",
		"user_id", userID,
		"dialog_id", sess.ID,
		"state", sess.State,
	)

	return u.reply(ctx, replier, u.machine.Cancelled())
}

// HandleDialogText runs one turn. A failed append is reported to the worker
// and the session is cleared anyway; only a failed reply is returned.
func (u *UseCases) HandleDialogText(ctx context.Context, userID types.UserID, text string, replier interfaces.Replier) error {
	return u.turn(ctx, userID, text, replier, false)
}

// HandleMenuChoice runs a turn for a menu click. Menus are single use: a click
// arriving after the dialog left the menu (double click, old message) is
// dropped without a reply.
func (u *UseCases) HandleMenuChoice(ctx context.Context, userID types.UserID, choice string, replier interfaces.Replier) error {
	return u.turn(ctx, userID, choice, replier, true)
}

func (u *UseCases) turn(ctx context.Context, userID types.UserID, text string, replier interfaces.Replier, menuClick bool) error {
	ctx = user.WithUserID(ctx, userID)
	unlock := u.sessions.Lock(ctx, userID)
	defer unlock()

	sess, ok := u.sessions.Get(ctx, userID)
	if !ok {
		return u.reply(ctx, replier, u.machine.NoDialog())
	}

	ctx = logging.WithAttrs(ctx, "user_id", userID, "dialog_id", sess.ID)
	logger := logging.From(ctx)

	if menuClick && sess.State != model.StateMainMenu {
		metrics.StaleMenuClicks.Inc()
		logger.Info("stale menu click ignored", "state", sess.State, "choice", text)
		return nil
	}

	now := clock.Now(ctx)
	action := u.machine.Step(sess, text, now)
	logger.Debug("dialog turn",
		"state", sess.State,
		"action", action.Kind.String(),
		"next", action.Next,
	)

	switch action.Kind {
	case model.ActionReprompt:
		metrics.InputsRejected.WithLabelValues(sess.State.String()).Inc()
		if goerr.HasTag(action.Reason, errs.TagInvalidState) {
			errs.Handle(ctx, goerr.Wrap(action.Reason, "dialog reset",
				goerr.TV(errutil.UserIDKey, userID.String()),
				goerr.TV(errutil.DialogIDKey, sess.ID.String())))
			sess.Start(sess.OperatorName, now)
		}

	case model.ActionAdvance:
		action.Apply(sess)

	case model.ActionComplete:
		action.Apply(sess)
		return u.complete(ctx, userID, action, replier)
	}

	return u.reply(ctx, replier, action.Reply)
}

func (u *UseCases) complete(ctx context.Context, userID types.UserID, action model.Action, replier interfaces.Replier) error {
	rec := action.Record
	kind := rec.Kind().String()

	started := time.Now()
	err := u.gateway.Append(ctx, rec)
	metrics.AppendDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())

	u.sessions.Clear(ctx, userID)
	metrics.ActiveSessions.Set(float64(u.sessions.Len(ctx)))

	if err != nil {
		metrics.DialogsCompleted.WithLabelValues(kind, metrics.ResultFailed).Inc()
		errs.Handle(ctx, goerr.Wrap(err, "failed to store record",
			goerr.TV(errutil.UserIDKey, userID.String()),
			goerr.TV(errutil.KindKey, kind)))
	} else {
		metrics.DialogsCompleted.WithLabelValues(kind, metrics.ResultSaved).Inc()
		logging.From(ctx).Info("record stored", "kind", kind, "operator", rec.OperatorName())
	}

	return u.reply(ctx, replier, u.machine.Completed(rec, err))
}

// resolveOperator looks the display name up, falling back to what the
// transport put in the context.
func (u *UseCases) resolveOperator(ctx context.Context, userID types.UserID) string {
	if u.profiles != nil {
		name, err := u.profiles.GetUserProfile(ctx, userID.String())
		if err == nil && name != "" {
			return name
		}
		if err != nil {
			logging.From(ctx).Warn("failed to resolve operator name",
				"user_id", userID,
				logging.ErrAttr(err))
		}
	}
	return user.OperatorFromContext(ctx)
}

func (u *UseCases) reply(ctx context.Context, replier interfaces.Replier, reply model.Reply) error {
	if err := replier.Reply(ctx, reply); err != nil {
		return goerr.Wrap(err, "failed to send reply",
			goerr.T(errs.TagExternal),
			goerr.TV(errutil.UserIDKey, user.FromContext(ctx).String()))
	}
	return nil
}
