package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DialogsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prodbot_dialogs_started_total",
		Help: "Dialogs started with the start command",
	})

	DialogsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prodbot_dialogs_completed_total",
		Help: "Dialogs that reached a terminal state, by record kind and result",
	}, []string{"kind", "result"})

	DialogsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prodbot_dialogs_cancelled_total",
		Help: "Dialogs cancelled by the worker",
	})

	InputsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prodbot_inputs_rejected_total",
		Help: "Messages answered with a re-prompt, by dialog state",
	}, []string{"state"})

	StaleMenuClicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prodbot_stale_menu_clicks_total",
		Help: "Menu clicks dropped because the dialog already left the menu",
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "prodbot_active_sessions",
		Help: "Sessions currently held in memory",
	})

	AppendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "prodbot_append_duration_seconds",
		Help:    "Latency of storing one record in the backend",
		Buckets: []float64{0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0, 10.0},
	}, []string{"kind"})

	SlackEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prodbot_slack_events_total",
		Help: "Inbound Slack requests by type",
	}, []string{"type"})
)

// Result labels of DialogsCompleted.
const (
	ResultSaved  = "saved"
	ResultFailed = "failed"
)
