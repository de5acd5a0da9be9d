package user_test

import (
	"context"
	"testing"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/user"
	"github.com/m-mizutani/gt"
)

func TestOperatorFromContext(t *testing.T) {
	t.Run("falls back to user ID", func(t *testing.T) {
		ctx := user.WithUserID(context.Background(), types.UserID("U123"))
		gt.V(t, user.OperatorFromContext(ctx)).Equal("U123")
	})

	t.Run("uses operator name when set", func(t *testing.T) {
		ctx := user.WithUserID(context.Background(), types.UserID("U123"))
		ctx = user.WithOperator(ctx, "Ivan")
		gt.V(t, user.OperatorFromContext(ctx)).Equal("Ivan")
	})

	t.Run("empty context", func(t *testing.T) {
		gt.V(t, user.FromContext(context.Background())).Equal(types.EmptyUserID)
		gt.V(t, user.OperatorFromContext(context.Background())).Equal("")
	})
}
