package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/cli/config"
	server "github.com/d8o8m8-lab/production-bot-railway/pkg/controller/http"
	slack_ctrl "github.com/d8o8m8-lab/production-bot-railway/pkg/controller/slack"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/usecase"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	defaultAddr          = "127.0.0.1:8080"
	profileCleanupPeriod = 5 * time.Minute
)

// resolveAddr prefers an explicit --addr. Otherwise a PORT given by the
// hosting platform binds all interfaces.
func resolveAddr(addr string, explicit bool, port string) string {
	if explicit || port == "" {
		return addr
	}
	return net.JoinHostPort("", port)
}

func cmdServe() *cli.Command {
	var (
		addr          string
		enableMetrics bool
		sentryCfg     config.Sentry
		slackCfg      config.Slack
		backendCfg    config.Backend
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Sources:     cli.EnvVars("PRODBOT_ADDR"),
				Usage:       "Listen address. PORT is used when not set",
				Value:       defaultAddr,
				Destination: &addr,
			},
			&cli.BoolFlag{
				Name:        "enable-metrics",
				Usage:       "Expose Prometheus metrics at /metrics",
				Category:    "Metrics",
				Sources:     cli.EnvVars("PRODBOT_ENABLE_METRICS"),
				Value:       true,
				Destination: &enableMetrics,
			},
		},
		sentryCfg.Flags(),
		slackCfg.Flags(),
		backendCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the Slack bot server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			addr = resolveAddr(addr, cmd.IsSet("addr"), os.Getenv("PORT"))

			logging.Default().Info("starting server",
				"addr", addr,
				"metrics", enableMetrics,
				"sentry", sentryCfg,
				"slack", slackCfg,
				"backend", backendCfg,
			)

			flush, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			defer flush()

			if !slackCfg.IsConfigured() {
				return goerr.New("slack-oauth-token is required")
			}
			verifier := slackCfg.Verifier()
			if verifier == nil {
				logging.Default().Warn("slack-signing-secret is not set, requests are not verified")
			}

			slackSvc, err := slackCfg.Configure()
			if err != nil {
				return err
			}
			defer slackSvc.Stop()

			uc, closeBackend, err := newUseCases(ctx, &backendCfg, usecase.WithProfileResolver(slackSvc))
			defer closeBackend()
			if err != nil {
				return err
			}

			slackCtrl := slack_ctrl.New(uc, slackSvc)
			serverOptions := []server.Options{
				server.WithSlackController(slackCtrl),
				server.WithMetrics(enableMetrics),
			}
			if verifier != nil {
				serverOptions = append(serverOptions, server.WithSlackVerifier(verifier))
			}

			go func() {
				ticker := time.NewTicker(profileCleanupPeriod)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						slackSvc.ClearExpiredProfileCache()
					}
				}
			}()

			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.New(serverOptions...),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if err == nil {
					return nil
				}
				return goerr.Wrap(err, "server stopped", goerr.V("addr", addr))
			case sig := <-sigCh:
				logging.Default().Info("shutting down", "signal", sig.String())
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shut down server")
				}
				// dialog turns run past the HTTP response; the backend closes after them
				return slackCtrl.Wait(ctx)
			}
		},
	}
}
