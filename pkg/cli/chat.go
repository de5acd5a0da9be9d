package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/cli/config"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/service/notifier"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/user"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	consoleStart  = "/start"
	consoleCancel = "/cancel"
	consoleExit   = "/exit"
)

func cmdChat() *cli.Command {
	var (
		userID     string
		operator   string
		backendCfg config.Backend
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "user",
				Aliases:     []string{"u"},
				Usage:       "User ID of the console session",
				Sources:     cli.EnvVars("PRODBOT_CHAT_USER"),
				Value:       "console",
				Destination: &userID,
			},
			&cli.StringFlag{
				Name:        "operator",
				Aliases:     []string{"o"},
				Usage:       "Operator name written to records (default: $USER)",
				Sources:     cli.EnvVars("PRODBOT_CHAT_OPERATOR", "USER"),
				Destination: &operator,
			},
		},
		backendCfg.Flags(),
	)

	return &cli.Command{
		Name:    "chat",
		Aliases: []string{"c"},
		Usage:   "Run the dialog in the terminal",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.From(ctx).Info("starting console dialog",
				"user", userID,
				"operator", operator,
				"backend", backendCfg,
			)

			uc, closer, err := newUseCases(ctx, &backendCfg)
			defer closer()
			if err != nil {
				return err
			}

			if operator == "" {
				operator = userID
			}
			ctx = user.WithOperator(ctx, operator)

			return runConsole(ctx, uc, types.UserID(userID), os.Stdin, os.Stdout)
		},
	}
}

// runConsole reads worker input line by line until EOF or /exit.
func runConsole(ctx context.Context, uc interfaces.DialogUsecases, userID types.UserID, in io.Reader, out io.Writer) error {
	logger := logging.From(ctx)
	replier := notifier.NewConsoleReplier(out)

	_, _ = fmt.Fprintln(out, "💬 Console mode. Type /start to restart, /cancel to abort, /exit to quit.")
	if err := uc.StartDialog(ctx, userID, replier); err != nil {
		return goerr.Wrap(err, "failed to start dialog")
	}

	scanner := bufio.NewScanner(in)
	for {
		_, _ = fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		// blank lines are answers too; the dialog re-prompts for them
		message := strings.TrimSpace(scanner.Text())

		var err error
		switch message {
		case consoleExit:
			_, _ = fmt.Fprintln(out, "👋 Session ended.")
			return nil
		case consoleStart:
			err = uc.StartDialog(ctx, userID, replier)
		case consoleCancel:
			err = uc.CancelDialog(ctx, userID, replier)
		default:
			err = uc.HandleDialogText(ctx, userID, replier.Resolve(message), replier)
		}

		if err != nil {
			_, _ = fmt.Fprintf(out, "❌ Error: %s\n", err.Error())
			logger.Error("dialog error", logging.ErrAttr(err))
		}
	}

	if err := scanner.Err(); err != nil {
		return goerr.Wrap(err, "failed to read input")
	}
	_, _ = fmt.Fprintln(out, "\n👋 Session ended.")
	return nil
}
