package measure

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-compose/pkg/pipeline/model"
)

var ErrUnknownStep = errors.New("no metric for step")

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) metric(name string) (Metric, error) {
	mt := pm.GetMetric(name)
	if mt == nil {
		return nil, errors.Wrap(ErrUnknownStep, name)
	}

	return mt, nil
}

// New registers the end step, which measures whole runs.
func (pm *pipelineMeasure) New() error {
	pm.AddMetric(model.EndStep.Name)
	return nil
}

func (pm *pipelineMeasure) PrepareStep(parentStep, step *model.StepInfo) error {
	pm.AddMetric(step.Name)
	return nil
}

func (pm *pipelineMeasure) PrepareMerger(parentSteps []*model.StepInfo, step *model.StepInfo) error {
	pm.AddMetric(step.Name)
	return nil
}

func (pm *pipelineMeasure) OnRunStart(run *model.RunInfo) error {
	return nil
}

func (pm *pipelineMeasure) OnRunEnd(run *model.RunInfo, present bool, totalDuration time.Duration) error {
	mt, err := pm.metric(model.EndStep.Name)
	if err != nil {
		return err
	}

	if present {
		mt.AddOutput(totalDuration)
	} else {
		mt.AddEmpty(totalDuration)
	}

	return nil
}

func (pm *pipelineMeasure) OnStepOutput(run *model.RunInfo, step *model.StepInfo, computationDuration time.Duration) error {
	mt, err := pm.metric(step.Name)
	if err != nil {
		return err
	}
	mt.AddOutput(computationDuration)

	return nil
}

func (pm *pipelineMeasure) OnStepEmpty(run *model.RunInfo, step *model.StepInfo, computationDuration time.Duration) error {
	mt, err := pm.metric(step.Name)
	if err != nil {
		return err
	}
	mt.AddEmpty(computationDuration)

	return nil
}

func (pm *pipelineMeasure) OnStepSkipped(run *model.RunInfo, step *model.StepInfo) error {
	mt, err := pm.metric(step.Name)
	if err != nil {
		return err
	}
	mt.AddSkipped()

	return nil
}

func (pm *pipelineMeasure) Finish() error {
	return nil
}

// PipelineMeasure returns an option recording a metric per step in measure, plus one for whole runs under the name
// of model.EndStep.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{measure}
}
