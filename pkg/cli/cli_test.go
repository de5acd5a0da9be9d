package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/cli"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/repository/memory"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/usecase"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/user"
	"github.com/fatih/color"
	"github.com/m-mizutani/gt"
)

func TestResolveAddr(t *testing.T) {
	gt.Equal(t, cli.ResolveAddr("127.0.0.1:8080", false, ""), "127.0.0.1:8080")
	gt.Equal(t, cli.ResolveAddr("127.0.0.1:8080", false, "3000"), ":3000")
	gt.Equal(t, cli.ResolveAddr("127.0.0.1:9090", true, "3000"), "127.0.0.1:9090")
}

func TestRunConsole(t *testing.T) {
	color.NoColor = true

	newUC := func() (*usecase.UseCases, *memory.RecordGateway) {
		gw := memory.NewRecordGateway(record.DefaultSchemas())
		return usecase.New(usecase.WithRecordGateway(gw)), gw
	}

	t.Run("menu number and answers store a record", func(t *testing.T) {
		uc, gw := newUC()
		ctx := user.WithOperator(t.Context(), "Anna")
		in := strings.NewReader("3\nCleaning\nLine 2\n/exit\n")
		var out bytes.Buffer

		gt.NoError(t, cli.RunConsole(ctx, uc, "console", in, &out)).Required()

		gt.A(t, gw.Rows("Other")).Length(1)
		gt.S(t, out.String()).Contains("Hello, Anna!")
		gt.S(t, out.String()).Contains("[3] 📝 Other")
		gt.S(t, out.String()).Contains("saved!")
		gt.S(t, out.String()).Contains("Session ended.")
	})

	t.Run("cancel drops the dialog", func(t *testing.T) {
		uc, gw := newUC()
		in := strings.NewReader("1\n/cancel\n")
		var out bytes.Buffer

		gt.NoError(t, cli.RunConsole(t.Context(), uc, "console", in, &out)).Required()

		gt.A(t, gw.Rows("Timing")).Length(0)
		gt.S(t, out.String()).Contains("Session ended.")
	})

	t.Run("blank line is re-prompted", func(t *testing.T) {
		uc, gw := newUC()
		in := strings.NewReader("3\n   \nCleaning\nLine 2\n")
		var out bytes.Buffer

		gt.NoError(t, cli.RunConsole(t.Context(), uc, "console", in, &out)).Required()
		gt.S(t, out.String()).Contains("cannot be empty")
		gt.A(t, gw.Rows("Other")).Length(1)
	})

	t.Run("exit is an answer inside a dialog", func(t *testing.T) {
		uc, gw := newUC()
		in := strings.NewReader("3\nexit\nquit\n/exit\n")
		var out bytes.Buffer

		gt.NoError(t, cli.RunConsole(t.Context(), uc, "console", in, &out)).Required()

		rows := gw.Rows("Other")
		gt.A(t, rows).Length(1)
		gt.Equal(t, rows[0][2], any("exit"))
		gt.Equal(t, rows[0][3], any("quit"))
	})
}
