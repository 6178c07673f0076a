package measure

import "time"

// Measure holds one Metric per step.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric counts what happened to a step across runs.
type Metric interface {
	// AddOutput records an evaluation that produced a value.
	AddOutput(elapsed time.Duration)
	// AddEmpty records an evaluation that produced no value.
	AddEmpty(elapsed time.Duration)
	// AddSkipped records a run that never reached the step.
	AddSkipped()
	AVGDuration() time.Duration
	Outputs() int64
	Empties() int64
	Skipped() int64
	// EmptyRatio is the share of evaluations that produced no value, 0 when the step was never evaluated.
	EmptyRatio() float64
}
