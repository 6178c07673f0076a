package model

import "time"

// PipelineOption defines the interface for pipeline options.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error
	// PrepareStep runs when a step is added to the pipeline. parentStep is StartStep for a root step.
	PrepareStep(parentStep, step *StepInfo) error
	// PrepareMerger runs when a merger step is added to the pipeline.
	PrepareMerger(parentSteps []*StepInfo, step *StepInfo) error

	pipelineRunOption
	pipelineStepOption

	// Finish runs when the pipeline is finished.
	Finish() error
}

// pipelineRunOption defines the interface for run options at the pipeline level.
type pipelineRunOption interface {
	// OnRunStart runs before the first step of a run is evaluated.
	OnRunStart(run *RunInfo) error
	// OnRunEnd runs after the last step of a run, present tells whether the run produced a value.
	OnRunEnd(run *RunInfo, present bool, totalDuration time.Duration) error
}

// pipelineStepOption defines the interface for step options at the pipeline level.
type pipelineStepOption interface {
	// OnStepOutput runs everytime a step produces a value.
	OnStepOutput(run *RunInfo, step *StepInfo, computationDuration time.Duration) error
	// OnStepEmpty runs everytime a step produces no value.
	OnStepEmpty(run *RunInfo, step *StepInfo, computationDuration time.Duration) error
	// OnStepSkipped runs for every step left unevaluated because an earlier step produced no value.
	OnStepSkipped(run *RunInfo, step *StepInfo) error
}
