package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-compose/pkg/pipeline/measure"
	"github.com/askiada/go-compose/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	m        measure.Measure
	children map[string]int
	order    []string
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStep(model.StartStep.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}
	err = pd.AddStep(model.EndStep.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) PrepareStep(parentStep, step *model.StepInfo) error {
	err := pd.AddStep(step.Name)
	if err != nil {
		return err
	}
	err = pd.AddLink(parentStep.Name, step.Name)
	if err != nil {
		return err
	}

	pd.children[parentStep.Name]++
	pd.order = append(pd.order, step.Name)

	return nil
}

func (pd *pipelineDrawer) PrepareMerger(parentSteps []*model.StepInfo, step *model.StepInfo) error {
	err := pd.AddStep(step.Name)
	if err != nil {
		return err
	}

	for _, parentStep := range parentSteps {
		err = pd.AddLink(parentStep.Name, step.Name)
		if err != nil {
			return err
		}

		pd.children[parentStep.Name]++
	}

	pd.order = append(pd.order, step.Name)

	return nil
}

// Finish links every last step of a chain to the end step, adds the measure if any, and draws the graph.
func (pd *pipelineDrawer) Finish() error {
	for _, name := range pd.order {
		if pd.children[name] > 0 {
			continue
		}

		err := pd.AddLink(name, model.EndStep.Name)
		if err != nil {
			return errors.Wrap(err, "unable to link step to end step")
		}
	}

	if pd.m != nil {
		err := pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

func (pd *pipelineDrawer) OnRunStart(run *model.RunInfo) error {
	return nil
}

func (pd *pipelineDrawer) OnRunEnd(run *model.RunInfo, present bool, totalDuration time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) OnStepOutput(run *model.RunInfo, step *model.StepInfo, computationDuration time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) OnStepEmpty(run *model.RunInfo, step *model.StepInfo, computationDuration time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) OnStepSkipped(run *model.RunInfo, step *model.StepInfo) error {
	return nil
}

// PipelineDrawer returns an option drawing the pipeline when it finishes. measure can be nil, when it is not it
// should be the one given to measure.PipelineMeasure.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{
		Drawer:   drawer,
		m:        measure,
		children: make(map[string]int),
	}
}
