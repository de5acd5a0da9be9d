package metrics_test

import (
	"testing"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/metrics"
	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestDialogsCompleted(t *testing.T) {
	c := metrics.DialogsCompleted.WithLabelValues("timing", metrics.ResultSaved)
	before := testutil.ToFloat64(c)
	c.Inc()
	gt.Equal(t, testutil.ToFloat64(c), before+1)
}

func TestMetricsAreRegistered(t *testing.T) {
	metrics.InputsRejected.WithLabelValues("MAIN_MENU").Inc()
	gt.True(t, testutil.CollectAndCount(metrics.InputsRejected) >= 1)
	gt.Equal(t, testutil.CollectAndCount(metrics.ActiveSessions), 1)
}
