package http

import (
	"encoding/json"
	"net/http"

	slack_controller "github.com/d8o8m8-lab/production-bot-railway/pkg/controller/slack"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	router    *chi.Mux
	slackCtrl *slack_controller.Controller
	verifier  PayloadVerifier
	metrics   bool
}

type Options func(*Server)

func WithSlackVerifier(verifier PayloadVerifier) Options {
	return func(s *Server) {
		s.verifier = verifier
	}
}

func WithSlackController(ctrl *slack_controller.Controller) Options {
	return func(s *Server) {
		s.slackCtrl = ctrl
	}
}

// WithMetrics exposes Prometheus metrics at /metrics.
func WithMetrics(enabled bool) Options {
	return func(s *Server) {
		s.metrics = enabled
	}
}

func New(opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	r.Get("/health", healthHandler)

	if s.metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	if s.slackCtrl != nil {
		r.Route("/hooks/slack", func(r chi.Router) {
			r.Use(verifySlackRequest(s.verifier))
			r.Post("/event", slackEventHandler(s.slackCtrl))
			r.Post("/interaction", slackInteractionHandler(s.slackCtrl))
			r.Post("/command", slackCommandHandler(s.slackCtrl))
		})
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		logging.From(r.Context()).Error("failed to write health response", logging.ErrAttr(err))
	}
}
