package notifier

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/dialog"
	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
)

// ConsoleReplier prints dialog replies to a terminal with color formatting.
// Menu buttons are numbered so that a worker can type the number instead of
// the label.
type ConsoleReplier struct {
	w io.Writer

	mu      sync.Mutex
	buttons []string
}

var _ interfaces.Replier = &ConsoleReplier{}

var markup = strings.NewReplacer("*", "", "_", "")

func NewConsoleReplier(w io.Writer) *ConsoleReplier {
	return &ConsoleReplier{w: w}
}

func (n *ConsoleReplier) Reply(ctx context.Context, reply dialog.Reply) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)

	if _, err := cyan.Fprint(n.w, "bot> "); err != nil {
		return goerr.Wrap(err, "failed to write reply")
	}
	if _, err := fmt.Fprintln(n.w, markup.Replace(reply.Text)); err != nil {
		return goerr.Wrap(err, "failed to write reply")
	}

	n.buttons = append(n.buttons[:0], reply.Buttons...)
	for i, label := range reply.Buttons {
		if _, err := yellow.Fprintf(n.w, "  [%d] %s\n", i+1, label); err != nil {
			return goerr.Wrap(err, "failed to write menu")
		}
	}

	return nil
}

// Resolve maps a typed menu number to its label. Anything else is returned
// unchanged.
func (n *ConsoleReplier) Resolve(input string) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > len(n.buttons) {
		return input
	}
	return n.buttons[idx-1]
}
