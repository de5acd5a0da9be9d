package cli

import (
	"context"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/cli/config"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, flag := range flags {
		result = append(result, flag...)
	}
	return result
}

// newUseCases wires the configured backend. The closer is never nil.
func newUseCases(ctx context.Context, backend *config.Backend, opts ...usecase.Option) (*usecase.UseCases, func(), error) {
	gateway, closer, err := backend.Configure(ctx)
	if err != nil {
		return nil, closer, goerr.Wrap(err, "failed to configure backend")
	}

	opts = append([]usecase.Option{usecase.WithRecordGateway(gateway)}, opts...)
	return usecase.New(opts...), closer, nil
}
