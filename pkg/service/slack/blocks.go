package slack

import (
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/dialog"
	"github.com/slack-go/slack"
)

const (
	// MenuBlockID identifies the actions block carrying the menu buttons.
	MenuBlockID = "dialog_menu"
	// MenuActionID is the action ID of every menu button. The button value is
	// the label, which the dialog treats like a typed message.
	MenuActionID = "menu_choice"
)

func buildReplyBlocks(reply dialog.Reply) []slack.Block {
	blocks := []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, reply.Text, false, false),
			nil,
			nil,
		),
	}

	if !reply.HasButtons() {
		return blocks
	}

	elements := make([]slack.BlockElement, 0, len(reply.Buttons))
	for _, label := range reply.Buttons {
		btn := slack.NewButtonBlockElement(
			MenuActionID,
			label,
			slack.NewTextBlockObject(slack.PlainTextType, label, true, false),
		)
		elements = append(elements, btn)
	}
	blocks = append(blocks, slack.NewActionBlock(MenuBlockID, elements...))

	return blocks
}

// buildDismissedMenuBlocks keeps the original prompt and shows the choice in
// place of the buttons.
func buildDismissedMenuBlocks(text, choice string) []slack.Block {
	blocks := []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, text, false, false),
			nil,
			nil,
		),
	}
	if choice != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, "➡️ "+choice, false, false),
		))
	}
	return blocks
}
