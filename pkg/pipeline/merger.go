package pipeline

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-compose/pkg/compose"
	"github.com/askiada/go-compose/pkg/optional"
	"github.com/askiada/go-compose/pkg/pipeline/model"
)

func (p *Pipeline) addMerger(parents []*model.StepInfo, step *model.StepInfo) error {
	return p.register(parents, step, func(opt model.PipelineOption) error {
		return errors.Wrap(opt.PrepareMerger(parents, step), "unable to run prepare merger function")
	})
}

// AddMerger joins two steps built on the same input. mergeFn is only called when both produced a value, and the
// right step is not evaluated when the left one produced nothing. Steps shared by both sides run once per Run.
func AddMerger[I, A, B, O any](p *Pipeline, name string, left *Step[I, A], right *Step[I, B], mergeFn func(A, B) O) (*Step[I, O], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}

	if left == nil || right == nil {
		return nil, ErrInputMustBeSet
	}

	if left.pipe != p || right.pipe != p {
		return nil, ErrInputFromOtherPipeline
	}

	if mergeFn == nil {
		return nil, ErrStepFnMustBeSet
	}

	details := &model.StepInfo{
		Type:   model.MergerStepType,
		Name:   name,
		Parent: left.details.Name,
		Depth:  max(left.details.Depth, right.details.Depth) + 1,
	}

	parents := []*model.StepInfo{left.details}
	if right.details != left.details {
		parents = append(parents, right.details)
	}

	err := p.addMerger(parents, details)
	if err != nil {
		return nil, err
	}

	merge := compose.Curry(mergeFn)
	leftFn, rightFn := left.fn, right.fn

	return &Step[I, O]{
		pipe:    p,
		details: details,
		chain:   mergeChains(left.chain, right.chain, []*model.StepInfo{details}),
		fn: func(in I) optional.Optional[O] {
			return optional.Bind(leftFn(in), func(a A) optional.Optional[O] {
				return optional.Ap(optional.Some(merge(a)), rightFn(in))
			})
		},
		eval: memoize(details, func(r *run, in I) optional.Optional[O] {
			return optional.Bind(left.eval(r, in), func(a A) optional.Optional[O] {
				return optional.Bind(right.eval(r, in), observe(r, details, func(b B) optional.Optional[O] {
					return optional.Some(merge(a)(b))
				}))
			})
		}),
	}, nil
}
