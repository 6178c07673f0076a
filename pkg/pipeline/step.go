package pipeline

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-compose/pkg/compose"
	"github.com/askiada/go-compose/pkg/optional"
	"github.com/askiada/go-compose/pkg/pipeline/model"
)

// Step is a pipeline from an input of type I up to a named step producing O.
type Step[I, O any] struct {
	pipe    *Pipeline
	details *model.StepInfo
	// chain lists the steps evaluated to produce the output of this one, itself included.
	chain []*model.StepInfo
	fn    func(I) optional.Optional[O]
	eval  func(r *run, in I) optional.Optional[O]
}

// Name returns the name of the last step.
func (s *Step[I, O]) Name() string {
	return s.details.Name
}

// Info returns the details of the last step.
func (s *Step[I, O]) Info() model.StepInfo {
	return *s.details
}

// Func returns the composed function, without any option.
func (s *Step[I, O]) Func() func(I) optional.Optional[O] {
	return s.fn
}

// Run evaluates the pipeline on in and lets the options observe the evaluation. The returned error only ever comes
// from an option, an input for which a step produced no value gives an empty Optional and a nil error.
func (s *Step[I, O]) Run(in I) (optional.Optional[O], error) {
	r := newRun(s.pipe)
	r.start()
	out := s.eval(r, in)
	r.end(s.chain, out.IsPresent())

	if r.err != nil {
		return optional.None[O](), errors.Wrapf(r.err, "run %s", r.info.ID)
	}

	return out, nil
}

// AddRootStep adds the first step of a chain.
func AddRootStep[I, O any](p *Pipeline, name string, stepFn func(I) optional.Optional[O]) (*Step[I, O], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}

	if stepFn == nil {
		return nil, ErrStepFnMustBeSet
	}

	details := &model.StepInfo{
		Type:   model.RootStepType,
		Name:   name,
		Parent: model.StartStep.Name,
	}

	err := p.addStep(model.StartStep, details)
	if err != nil {
		return nil, err
	}

	return &Step[I, O]{
		pipe:    p,
		details: details,
		chain:   []*model.StepInfo{details},
		fn:      stepFn,
		eval: memoize(details, func(r *run, in I) optional.Optional[O] {
			return observe(r, details, stepFn)(in)
		}),
	}, nil
}

func addStep[I, M, O any](p *Pipeline, typ model.StepType, name string, input *Step[I, M], stepFn func(M) optional.Optional[O]) (*Step[I, O], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}

	if input == nil {
		return nil, ErrInputMustBeSet
	}

	if input.pipe != p {
		return nil, ErrInputFromOtherPipeline
	}

	if stepFn == nil {
		return nil, ErrStepFnMustBeSet
	}

	details := &model.StepInfo{
		Type:   typ,
		Name:   name,
		Parent: input.details.Name,
		Depth:  input.details.Depth + 1,
	}

	err := p.addStep(input.details, details)
	if err != nil {
		return nil, err
	}

	return &Step[I, O]{
		pipe:    p,
		details: details,
		chain:   mergeChains(input.chain, []*model.StepInfo{details}),
		fn:      optional.ComposeK(input.fn, stepFn),
		eval: memoize(details, func(r *run, in I) optional.Optional[O] {
			return optional.Bind(input.eval(r, in), observe(r, details, stepFn))
		}),
	}, nil
}

// AddStep appends a fallible step to input. stepFn is never called when an earlier step produced no value.
func AddStep[I, M, O any](p *Pipeline, name string, input *Step[I, M], stepFn func(M) optional.Optional[O]) (*Step[I, O], error) {
	return addStep(p, model.BindStepType, name, input, stepFn)
}

// AddMapStep appends a step that cannot fail to input.
func AddMapStep[I, M, O any](p *Pipeline, name string, input *Step[I, M], mapFn func(M) O) (*Step[I, O], error) {
	if mapFn == nil {
		return nil, ErrStepFnMustBeSet
	}

	return addStep(p, model.MapStepType, name, input, compose.Compose2(optional.Some[O], mapFn))
}
