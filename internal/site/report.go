package site

import "time"

// Report summarizes a completed build.
type Report struct {
	Lectures       int
	PagesRendered  int // converted from markdown this build
	PagesFromCache int // served by the render cache
	Assets         int
	Redirects      int
	Duration       time.Duration
	Stages         []StageTiming
}

// StageTiming records one stage's wall time.
type StageTiming struct {
	Name     string
	Duration time.Duration
}
