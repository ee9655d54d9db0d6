// Package metrics defines the observability hooks for builds and the preview
// server.
package metrics

import "time"

// Outcome enumerates build result categories for counters.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// Recorder receives build and serve measurements. Implementations may forward
// to Prometheus or elsewhere. The NoopRecorder allows optional injection.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome Outcome)
	AddPagesRendered(n int)
	AddPagesFromCache(n int)
	IncReloadBroadcast()
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not
// configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncBuildOutcome(Outcome)                    {}
func (NoopRecorder) AddPagesRendered(int)                       {}
func (NoopRecorder) AddPagesFromCache(int)                      {}
func (NoopRecorder) IncReloadBroadcast()                        {}
