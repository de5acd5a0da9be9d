package http

import (
	"context"
	"net/http"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// PayloadVerifier checks the signature Slack puts on every request.
type PayloadVerifier func(ctx context.Context, header http.Header, payload []byte) error

func NewPayloadVerifier(signingSecret string) PayloadVerifier {
	return func(ctx context.Context, header http.Header, payload []byte) error {
		verifier, err := slack.NewSecretsVerifier(header, signingSecret)
		if err != nil {
			return goerr.Wrap(err, "failed to create secrets verifier", goerr.T(errs.TagUnauthorized))
		}

		if _, err := verifier.Write(payload); err != nil {
			return goerr.Wrap(err, "failed to write request body to verifier")
		}

		if err := verifier.Ensure(); err != nil {
			return goerr.Wrap(err, "invalid slack signature", goerr.T(errs.TagUnauthorized))
		}

		return nil
	}
}
