package config

import (
	"log/slog"

	server "github.com/d8o8m8-lab/production-bot-railway/pkg/controller/http"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/service/slack"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	sdk "github.com/slack-go/slack"
)

type Slack struct {
	oauthToken    string
	signingSecret string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot OAuth token",
			Category:    "Slack",
			Destination: &x.oauthToken,
			Sources:     cli.EnvVars("PRODBOT_SLACK_OAUTH_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Usage:       "Slack signing secret",
			Category:    "Slack",
			Destination: &x.signingSecret,
			Sources:     cli.EnvVars("PRODBOT_SLACK_SIGNING_SECRET"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("oauth-token.len", len(x.oauthToken)),
		slog.Int("signing-secret.len", len(x.signingSecret)),
	)
}

func (x *Slack) IsConfigured() bool {
	return x.oauthToken != ""
}

func (x *Slack) Configure(opts ...slack.ServiceOption) (*slack.Service, error) {
	if x.oauthToken == "" {
		return nil, goerr.New("slack oauth token is not set")
	}

	return slack.New(sdk.New(x.oauthToken), opts...)
}

func (x *Slack) Verifier() server.PayloadVerifier {
	if x.signingSecret == "" {
		return nil
	}

	return server.NewPayloadVerifier(x.signingSecret)
}
