package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/mock"
	model "github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/dialog"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/repository/memory"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/usecase"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/clock"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/user"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"go.uber.org/goleak"
)

var testNow = time.Date(2024, 5, 14, 8, 3, 9, 0, time.UTC)

func testContext(t *testing.T) context.Context {
	ctx := clock.With(t.Context(), func() time.Time { return testNow })
	return clock.WithTimezone(ctx, time.UTC)
}

func newReplier() *mock.ReplierMock {
	return &mock.ReplierMock{
		ReplyFunc: func(ctx context.Context, reply model.Reply) error { return nil },
	}
}

func lastReply(t *testing.T, r *mock.ReplierMock) model.Reply {
	t.Helper()
	calls := r.ReplyCalls()
	if len(calls) == 0 {
		t.Fatal("no reply was sent")
	}
	return calls[len(calls)-1].Reply
}

type fixture struct {
	uc       *usecase.UseCases
	gateway  *memory.RecordGateway
	sessions *memory.SessionStore
}

func newFixture(opts ...usecase.Option) *fixture {
	f := &fixture{
		gateway:  memory.NewRecordGateway(record.DefaultSchemas()),
		sessions: memory.NewSessionStore(),
	}
	opts = append([]usecase.Option{
		usecase.WithRecordGateway(f.gateway),
		usecase.WithSessionStore(f.sessions),
	}, opts...)
	f.uc = usecase.New(opts...)
	return f
}

func (f *fixture) send(t *testing.T, ctx context.Context, userID types.UserID, r *mock.ReplierMock, texts ...string) {
	t.Helper()
	for _, text := range texts {
		gt.NoError(t, f.uc.HandleDialogText(ctx, userID, text, r)).Required()
	}
}

func TestStartDialog(t *testing.T) {
	t.Run("greets the operator with the menu", func(t *testing.T) {
		ctx := user.WithOperator(testContext(t), "Ivan")
		f := newFixture()
		r := newReplier()

		gt.NoError(t, f.uc.StartDialog(ctx, "U1", r)).Required()

		reply := lastReply(t, r)
		gt.S(t, reply.Text).Contains("Hello, Ivan!")
		gt.A(t, reply.Buttons).Equal([]string{"⏱️ Timing", "⚙️ Blank", "📝 Other"})

		sess, ok := f.sessions.Get(ctx, "U1")
		gt.True(t, ok)
		gt.Equal(t, sess.State, model.StateMainMenu)
		gt.Equal(t, sess.OperatorName, "Ivan")
		gt.A(t, f.gateway.Tables()).Length(3)
	})

	t.Run("operator falls back to user ID", func(t *testing.T) {
		ctx := testContext(t)
		f := newFixture()
		r := newReplier()

		gt.NoError(t, f.uc.StartDialog(ctx, "U-NONAME", r)).Required()
		gt.S(t, lastReply(t, r).Text).Contains("Hello, U-NONAME!")
	})

	t.Run("profile resolver provides operator name", func(t *testing.T) {
		ctx := user.WithOperator(testContext(t), "from-context")
		profiles := &mock.ProfileResolverMock{
			GetUserProfileFunc: func(ctx context.Context, userID string) (string, error) {
				return "Maria", nil
			},
		}
		f := newFixture(usecase.WithProfileResolver(profiles))
		r := newReplier()

		gt.NoError(t, f.uc.StartDialog(ctx, "U2", r)).Required()
		gt.S(t, lastReply(t, r).Text).Contains("Hello, Maria!")
		gt.A(t, profiles.GetUserProfileCalls()).Length(1)
		gt.Equal(t, profiles.GetUserProfileCalls()[0].UserID, "U2")
	})

	t.Run("failing profile resolver falls back to context", func(t *testing.T) {
		ctx := user.WithOperator(testContext(t), "Ivan")
		profiles := &mock.ProfileResolverMock{
			GetUserProfileFunc: func(ctx context.Context, userID string) (string, error) {
				return "", errors.New("users:read missing")
			},
		}
		f := newFixture(usecase.WithProfileResolver(profiles))
		r := newReplier()

		gt.NoError(t, f.uc.StartDialog(ctx, "U3", r)).Required()
		gt.S(t, lastReply(t, r).Text).Contains("Hello, Ivan!")
	})

	t.Run("start overwrites a dialog in progress", func(t *testing.T) {
		ctx := testContext(t)
		f := newFixture()
		r := newReplier()

		gt.NoError(t, f.uc.StartDialog(ctx, "U1", r)).Required()
		f.send(t, ctx, "U1", r, "Timing", "10:00-11:30")
		first, _ := f.sessions.Get(ctx, "U1")
		firstID := first.ID

		gt.NoError(t, f.uc.StartDialog(ctx, "U1", r)).Required()
		sess, ok := f.sessions.Get(ctx, "U1")
		gt.True(t, ok)
		gt.Equal(t, sess.State, model.StateMainMenu)
		gt.Equal(t, len(sess.Fields), 0)
		gt.NotEqual(t, sess.ID, firstID)
		gt.Equal(t, f.sessions.Len(ctx), 1)
	})

	t.Run("schema is prepared once even on failure", func(t *testing.T) {
		ctx := testContext(t)
		gw := &mock.RecordGatewayMock{
			EnsureSchemaFunc: func(ctx context.Context) error { return errors.New("permission denied") },
		}
		uc := usecase.New(usecase.WithRecordGateway(gw))
		r := newReplier()

		gt.NoError(t, uc.StartDialog(ctx, "U1", r)).Required()
		gt.S(t, lastReply(t, r).Text).Contains("storage is not ready")
		gt.A(t, lastReply(t, r).Buttons).Length(3)

		gt.NoError(t, uc.StartDialog(ctx, "U2", r)).Required()
		gt.A(t, gw.EnsureSchemaCalls()).Length(1)
	})

	t.Run("reply failure is returned", func(t *testing.T) {
		ctx := testContext(t)
		f := newFixture()
		r := &mock.ReplierMock{
			ReplyFunc: func(ctx context.Context, reply model.Reply) error { return errors.New("channel_not_found") },
		}

		err := f.uc.StartDialog(ctx, "U1", r)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagExternal))
	})
}

func TestDialogScenarios(t *testing.T) {
	t.Run("timing record is stored", func(t *testing.T) {
		ctx := user.WithOperator(testContext(t), "Ivan")
		f := newFixture()
		r := newReplier()

		gt.NoError(t, f.uc.StartDialog(ctx, "U1", r)).Required()
		f.send(t, ctx, "U1", r, "⏱️ Timing", "10:00-11:30", "Gear housing", "12")

		rows := f.gateway.Rows("Timing")
		gt.A(t, rows).Length(1)
		gt.A(t, rows[0]).Equal([]any{"2024-05-14 08:03:09", "Ivan", "10:00-11:30", "Gear housing", 12})

		reply := lastReply(t, r)
		gt.S(t, reply.Text).Contains("Timing saved")
		gt.S(t, reply.Text).Contains("Gear housing")
		gt.False(t, reply.HasButtons())

		_, ok := f.sessions.Get(ctx, "U1")
		gt.False(t, ok)
	})

	t.Run("blank quantity is re-asked until positive", func(t *testing.T) {
		ctx := user.WithOperator(testContext(t), "Ivan")
		f := newFixture()
		r := newReplier()

		gt.NoError(t, f.uc.StartDialog(ctx, "U1", r)).Required()
		f.send(t, ctx, "U1", r, "Blank", "Plate 40x40", "0")

		gt.S(t, lastReply(t, r).Text).Contains("positive number")
		sess, ok := f.sessions.Get(ctx, "U1")
		gt.True(t, ok)
		gt.Equal(t, sess.State, model.StateBlankQuantity)
		gt.A(t, f.gateway.Rows("Blanks")).Length(0)

		f.send(t, ctx, "U1", r, "  ", "5")
		rows := f.gateway.Rows("Blanks")
		gt.A(t, rows).Length(1)
		gt.A(t, rows[0]).Equal([]any{"2024-05-14 08:03:09", "Ivan", "Plate 40x40", 5})
	})

	t.Run("non-numeric quantity is stored as text", func(t *testing.T) {
		ctx := testContext(t)
		f := newFixture()
		r := newReplier()

		gt.NoError(t, f.uc.StartDialog(ctx, "U1", r)).Required()
		f.send(t, ctx, "U1", r, "Blank", "Plate", "about ten")
		rows := f.gateway.Rows("Blanks")
		gt.A(t, rows).Length(1)
		gt.Equal(t, rows[0][3], any("about ten"))
	})

	t.Run("cancel from every input state stores nothing", func(t *testing.T) {
		testCases := []struct {
			state  model.State
			inputs []string
		}{
			{model.StateChronoTime, []string{"Timing"}},
			{model.StateChronoProduct, []string{"Timing", "10:00-11:30"}},
			{model.StateChronoQuantity, []string{"Timing", "10:00-11:30", "Gear housing"}},
			{model.StateBlankType, []string{"Blank"}},
			{model.StateBlankQuantity, []string{"Blank", "Plate"}},
			{model.StateOtherOperation, []string{"Other"}},
			{model.StateOtherDetails, []string{"Other", "Cleaning"}},
		}

		for _, tc := range testCases {
			t.Run(tc.state.String(), func(t *testing.T) {
				ctx := testContext(t)
				f := newFixture()
				r := newReplier()

				gt.NoError(t, f.uc.StartDialog(ctx, "U1", r)).Required()
				f.send(t, ctx, "U1", r, tc.inputs...)
				sess, ok := f.sessions.Get(ctx, "U1")
				gt.True(t, ok)
				gt.Equal(t, sess.State, tc.state)

				gt.NoError(t, f.uc.CancelDialog(ctx, "U1", r)).Required()
				gt.S(t, lastReply(t, r).Text).Contains("Dialog cancelled")
				gt.Equal(t, f.sessions.Len(ctx), 0)

				// later text gets the start hint
				f.send(t, ctx, "U1", r, "42")
				gt.S(t, lastReply(t, r).Text).Contains("/start")

				for _, table := range []string{"Timing", "Blanks", "Other"} {
					gt.A(t, f.gateway.Rows(table)).Length(0)
				}
			})
		}
	})

	t.Run("failed append still ends the dialog", func(t *testing.T) {
		ctx := testContext(t)
		sessions := memory.NewSessionStore()
		gw := &mock.RecordGatewayMock{
			EnsureSchemaFunc: func(ctx context.Context) error { return nil },
			AppendFunc: func(ctx context.Context, rec record.Record) error {
				return goerr.New("quota exceeded", goerr.T(errs.TagExternal))
			},
		}
		uc := usecase.New(usecase.WithRecordGateway(gw), usecase.WithSessionStore(sessions))
		r := newReplier()

		gt.NoError(t, uc.StartDialog(ctx, "U1", r)).Required()
		for _, text := range []string{"Other", "Cleaning", "Line 2"} {
			gt.NoError(t, uc.HandleDialogText(ctx, "U1", text, r)).Required()
		}

		gt.A(t, gw.AppendCalls()).Length(1)
		gt.S(t, lastReply(t, r).Text).Contains("Failed to save")
		_, ok := sessions.Get(ctx, "U1")
		gt.False(t, ok)
	})

	t.Run("unknown menu choice is re-asked", func(t *testing.T) {
		ctx := testContext(t)
		f := newFixture()
		r := newReplier()

		gt.NoError(t, f.uc.StartDialog(ctx, "U1", r)).Required()
		f.send(t, ctx, "U1", r, "timing")

		reply := lastReply(t, r)
		gt.S(t, reply.Text).Contains("choose an option")
		gt.A(t, reply.Buttons).Length(3)
		sess, _ := f.sessions.Get(ctx, "U1")
		gt.Equal(t, sess.State, model.StateMainMenu)
	})
}

func TestHandleDialogTextWithoutSession(t *testing.T) {
	ctx := testContext(t)
	f := newFixture()
	r := newReplier()

	gt.NoError(t, f.uc.HandleDialogText(ctx, "U1", "Timing", r)).Required()
	gt.S(t, lastReply(t, r).Text).Contains("no active dialog")
	gt.Equal(t, f.sessions.Len(ctx), 0)

	gt.NoError(t, f.uc.CancelDialog(ctx, "U1", r)).Required()
	gt.S(t, lastReply(t, r).Text).Contains("no active dialog")
}

func TestInconsistentSessionIsReset(t *testing.T) {
	ctx := testContext(t)
	f := newFixture()
	r := newReplier()

	gt.NoError(t, f.uc.StartDialog(ctx, "U1", r)).Required()
	sess, _ := f.sessions.Get(ctx, "U1")
	sess.State = model.StateBlankType
	sess.Kind = types.RecordKindTiming

	f.send(t, ctx, "U1", r, "Plate")

	sess, ok := f.sessions.Get(ctx, "U1")
	gt.True(t, ok)
	gt.Equal(t, sess.State, model.StateMainMenu)
	gt.Equal(t, sess.Kind, types.RecordKind(""))
	gt.A(t, lastReply(t, r).Buttons).Length(3)
}

func TestConcurrentDialogs(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := testContext(t)
	f := newFixture()
	const users = 30

	var wg sync.WaitGroup
	errCh := make(chan error, users)
	for i := range users {
		wg.Add(1)
		go func() {
			defer wg.Done()
			userID := types.UserID(fmt.Sprintf("U%03d", i))
			r := newReplier()

			if err := f.uc.StartDialog(ctx, userID, r); err != nil {
				errCh <- err
				return
			}
			for _, text := range []string{"Timing", "08:00-09:00", fmt.Sprintf("Part %d", i), "3"} {
				if err := f.uc.HandleDialogText(ctx, userID, text, r); err != nil {
					errCh <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		gt.NoError(t, err)
	}
	gt.A(t, f.gateway.Rows("Timing")).Length(users)
	gt.Equal(t, f.sessions.Len(ctx), 0)
}

func TestEnsureSchema(t *testing.T) {
	ctx := testContext(t)

	t.Run("creates tables", func(t *testing.T) {
		f := newFixture()
		gt.NoError(t, f.uc.EnsureSchema(ctx)).Required()
		gt.A(t, f.gateway.Tables()).Length(3)
	})

	t.Run("failure is tagged", func(t *testing.T) {
		gw := &mock.RecordGatewayMock{
			EnsureSchemaFunc: func(ctx context.Context) error { return errors.New("forbidden") },
		}
		err := usecase.New(usecase.WithRecordGateway(gw)).EnsureSchema(ctx)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagExternal))
	})
}

func TestHandleMenuChoice(t *testing.T) {
	t.Run("click at the menu picks the operation", func(t *testing.T) {
		ctx := testContext(t)
		f := newFixture()
		r := newReplier()

		gt.NoError(t, f.uc.StartDialog(ctx, "U1", r)).Required()
		gt.NoError(t, f.uc.HandleMenuChoice(ctx, "U1", "⚙️ Blank", r)).Required()

		sess, _ := f.sessions.Get(ctx, "U1")
		gt.Equal(t, sess.State, model.StateBlankType)
	})

	t.Run("click after leaving the menu is dropped", func(t *testing.T) {
		ctx := testContext(t)
		f := newFixture()
		r := newReplier()

		gt.NoError(t, f.uc.StartDialog(ctx, "U1", r)).Required()
		gt.NoError(t, f.uc.HandleMenuChoice(ctx, "U1", "⚙️ Blank", r)).Required()
		replies := len(r.ReplyCalls())

		gt.NoError(t, f.uc.HandleMenuChoice(ctx, "U1", "⚙️ Blank", r)).Required()
		gt.A(t, r.ReplyCalls()).Length(replies)

		sess, _ := f.sessions.Get(ctx, "U1")
		gt.Equal(t, sess.State, model.StateBlankType)
		_, ok := sess.Fields[record.FieldBlankType]
		gt.False(t, ok)
	})

	t.Run("click without a dialog gets the start hint", func(t *testing.T) {
		ctx := testContext(t)
		f := newFixture()
		r := newReplier()

		gt.NoError(t, f.uc.HandleMenuChoice(ctx, "U1", "📝 Other", r)).Required()
		gt.S(t, lastReply(t, r).Text).Contains("/start")
	})
}
