package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_CountsOutcomesAndPages(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncBuildOutcome(OutcomeSuccess)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.IncBuildOutcome(OutcomeFailed)
	pr.AddPagesRendered(11)
	pr.AddPagesFromCache(3)
	pr.ObserveBuildDuration(120 * time.Millisecond)
	pr.ObserveStageDuration("render", 80*time.Millisecond)
	pr.IncReloadBroadcast()

	require.Equal(t, float64(2), testutil.ToFloat64(pr.buildOutcome.WithLabelValues("success")))
	require.Equal(t, float64(1), testutil.ToFloat64(pr.buildOutcome.WithLabelValues("failed")))
	require.Equal(t, float64(11), testutil.ToFloat64(pr.pagesRendered))
	require.Equal(t, float64(3), testutil.ToFloat64(pr.pagesCached))
	require.Equal(t, float64(1), testutil.ToFloat64(pr.reloads))
}

func TestNewPrometheusRecorder_NilRegistryGetsPrivateOne(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	require.NotNil(t, pr.Registry())
}

func TestNoopRecorder_ImplementsRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveBuildDuration(time.Second)
	r.IncBuildOutcome(OutcomeCanceled)
}
