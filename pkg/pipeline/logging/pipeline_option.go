package logging

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/askiada/go-compose/pkg/pipeline/model"
)

const (
	FieldRunID    = "run_id"
	FieldStep     = "step"
	FieldParent   = "parent"
	FieldParents  = "parents"
	FieldStepType = "step_type"
	FieldDuration = "duration"
	FieldPresent  = "present"
)

type pipelineLogger struct {
	logger zerolog.Logger
}

func (pl *pipelineLogger) New() error {
	pl.logger.Debug().Msg("pipeline created")
	return nil
}

func (pl *pipelineLogger) PrepareStep(parentStep, step *model.StepInfo) error {
	pl.logger.Debug().
		Str(FieldStep, step.Name).
		Str(FieldParent, parentStep.Name).
		Str(FieldStepType, string(step.Type)).
		Msg("step added")

	return nil
}

func (pl *pipelineLogger) PrepareMerger(parentSteps []*model.StepInfo, step *model.StepInfo) error {
	parents := zerolog.Arr()
	for _, parentStep := range parentSteps {
		parents.Str(parentStep.Name)
	}

	pl.logger.Debug().
		Str(FieldStep, step.Name).
		Array(FieldParents, parents).
		Msg("merger added")

	return nil
}

func (pl *pipelineLogger) OnRunStart(run *model.RunInfo) error {
	pl.logger.Debug().Str(FieldRunID, run.ID).Msg("run started")
	return nil
}

func (pl *pipelineLogger) OnRunEnd(run *model.RunInfo, present bool, totalDuration time.Duration) error {
	pl.logger.Info().
		Str(FieldRunID, run.ID).
		Bool(FieldPresent, present).
		Dur(FieldDuration, totalDuration).
		Msg("run finished")

	return nil
}

func (pl *pipelineLogger) OnStepOutput(run *model.RunInfo, step *model.StepInfo, computationDuration time.Duration) error {
	pl.logger.Debug().
		Str(FieldRunID, run.ID).
		Str(FieldStep, step.Name).
		Dur(FieldDuration, computationDuration).
		Msg("step produced a value")

	return nil
}

func (pl *pipelineLogger) OnStepEmpty(run *model.RunInfo, step *model.StepInfo, computationDuration time.Duration) error {
	pl.logger.Debug().
		Str(FieldRunID, run.ID).
		Str(FieldStep, step.Name).
		Dur(FieldDuration, computationDuration).
		Msg("step produced no value")

	return nil
}

func (pl *pipelineLogger) OnStepSkipped(run *model.RunInfo, step *model.StepInfo) error {
	pl.logger.Trace().
		Str(FieldRunID, run.ID).
		Str(FieldStep, step.Name).
		Msg("step skipped")

	return nil
}

func (pl *pipelineLogger) Finish() error {
	pl.logger.Debug().Msg("pipeline finished")
	return nil
}

// PipelineLogger returns an option logging the life of the pipeline to logger.
func PipelineLogger(logger zerolog.Logger) model.PipelineOption {
	return &pipelineLogger{logger: logger.With().Str("component", "pipeline").Logger()}
}
