package pipeline

import (
	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-compose/internal/store"
	"github.com/askiada/go-compose/pkg/pipeline/model"
)

// Pipeline is a pipeline of steps.
type Pipeline struct {
	opts  []model.PipelineOption
	store *store.MemoryStore[string, *model.StepInfo]
	graph graph.Graph[string, *model.StepInfo]
}

func stepHash(step *model.StepInfo) string {
	return step.Name
}

// New creates a new pipeline.
func New(opts ...model.PipelineOption) (*Pipeline, error) {
	stepStore := store.NewMemoryStore[string, *model.StepInfo]()
	pipe := &Pipeline{
		opts:  opts,
		store: stepStore,
		graph: graph.NewWithStore[string, *model.StepInfo](stepHash, stepStore, graph.Directed()),
	}

	err := pipe.graph.AddVertex(model.StartStep)
	if err != nil {
		return nil, errors.Wrap(err, "unable to add start step")
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

func (p *Pipeline) addStep(parent, step *model.StepInfo) error {
	return p.register([]*model.StepInfo{parent}, step, func(opt model.PipelineOption) error {
		return errors.Wrap(opt.PrepareStep(parent, step), "unable to run prepare step function")
	})
}

// register adds step to the graph, linked to its parents, then lets the options prepare it. The graph is left
// untouched when any of it fails.
func (p *Pipeline) register(parents []*model.StepInfo, step *model.StepInfo, prepare func(opt model.PipelineOption) error) error {
	if step.Name == model.StartStep.Name || step.Name == model.EndStep.Name {
		return errors.Wrap(ErrReservedStepName, step.Name)
	}

	err := p.graph.AddVertex(step)
	if err != nil {
		if errors.Is(err, graph.ErrVertexAlreadyExists) {
			return errors.Wrap(ErrStepAlreadyExists, step.Name)
		}

		return errors.Wrapf(err, "unable to add step %s", step.Name)
	}

	for i, parent := range parents {
		err = p.graph.AddEdge(parent.Name, step.Name)
		if err != nil {
			return p.unregister(parents[:i], step, errors.Wrapf(err, "unable to link %s to %s", parent.Name, step.Name))
		}
	}

	for _, opt := range p.opts {
		err = prepare(opt)
		if err != nil {
			return p.unregister(parents, step, err)
		}
	}

	return nil
}

// unregister removes step and its links to parents, and returns cause.
func (p *Pipeline) unregister(parents []*model.StepInfo, step *model.StepInfo, cause error) error {
	for _, parent := range parents {
		err := p.graph.RemoveEdge(parent.Name, step.Name)
		if err != nil {
			return errors.Wrapf(cause, "unable to unlink %s from %s: %s", step.Name, parent.Name, err)
		}
	}

	err := p.graph.RemoveVertex(step.Name)
	if err != nil {
		return errors.Wrapf(cause, "unable to remove step %s: %s", step.Name, err)
	}

	return cause
}

// Steps returns every step of the pipeline in the order they were added.
func (p *Pipeline) Steps() ([]*model.StepInfo, error) {
	names, err := p.store.ListVertices()
	if err != nil {
		return nil, errors.Wrap(err, "unable to list steps")
	}

	steps := make([]*model.StepInfo, 0, len(names))
	for _, name := range names {
		if name == model.StartStep.Name {
			continue
		}

		step, err := p.graph.Vertex(name)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to get step %s", name)
		}

		steps = append(steps, step)
	}

	return steps, nil
}

// Path returns the names of the steps from a root step down to stepName. For a merger, only the shortest branch is
// returned.
func (p *Pipeline) Path(stepName string) ([]string, error) {
	path, err := graph.ShortestPath(p.graph, model.StartStep.Name, stepName)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to find path to %s", stepName)
	}

	return path[1:], nil
}

// Finish lets every option know the pipeline will not be used anymore.
func (p *Pipeline) Finish() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
