package pipeline

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/askiada/go-compose/pkg/optional"
	"github.com/askiada/go-compose/pkg/pipeline/model"
)

// run holds the state of a single evaluation. It only records the first error returned by an option and stops
// calling options afterwards.
type run struct {
	pipe      *Pipeline
	info      *model.RunInfo
	evaluated map[*model.StepInfo]struct{}
	// outputs keeps the output of every step reached during the run, so that a step shared by the two inputs of a
	// merger is evaluated once.
	outputs map[*model.StepInfo]any
	err     error
}

func newRun(pipe *Pipeline) *run {
	return &run{
		pipe: pipe,
		info: &model.RunInfo{
			ID:        uuid.NewString(),
			StartTime: time.Now(),
		},
		evaluated: make(map[*model.StepInfo]struct{}),
		outputs:   make(map[*model.StepInfo]any),
	}
}

func (r *run) hook(msg string, fn func(opt model.PipelineOption) error) {
	if r.err != nil {
		return
	}

	for _, opt := range r.pipe.opts {
		err := fn(opt)
		if err != nil {
			r.err = errors.Wrap(err, msg)
			return
		}
	}
}

func (r *run) start() {
	r.hook("unable to run run start function", func(opt model.PipelineOption) error {
		return opt.OnRunStart(r.info)
	})
}

// end reports every step of chain left unevaluated as skipped, then ends the run.
func (r *run) end(chain []*model.StepInfo, present bool) {
	for _, step := range chain {
		if _, ok := r.evaluated[step]; ok {
			continue
		}

		r.hook("unable to run step skipped function", func(opt model.PipelineOption) error {
			return opt.OnStepSkipped(r.info, step)
		})
	}

	totalDuration := time.Since(r.info.StartTime)
	r.hook("unable to run run end function", func(opt model.PipelineOption) error {
		return opt.OnRunEnd(r.info, present, totalDuration)
	})
}

// observe wraps stepFn so that every call is timed and reported to the options of the run.
func observe[I, O any](r *run, step *model.StepInfo, stepFn func(I) optional.Optional[O]) func(I) optional.Optional[O] {
	return func(in I) optional.Optional[O] {
		start := time.Now()
		out := stepFn(in)
		computationDuration := time.Since(start)
		r.evaluated[step] = struct{}{}

		if out.IsPresent() {
			r.hook("unable to run step output function", func(opt model.PipelineOption) error {
				return opt.OnStepOutput(r.info, step, computationDuration)
			})
		} else {
			r.hook("unable to run step empty function", func(opt model.PipelineOption) error {
				return opt.OnStepEmpty(r.info, step, computationDuration)
			})
		}

		return out
	}
}

// memoize makes eval run at most once per run.
func memoize[I, O any](step *model.StepInfo, eval func(r *run, in I) optional.Optional[O]) func(r *run, in I) optional.Optional[O] {
	return func(r *run, in I) optional.Optional[O] {
		if out, ok := r.outputs[step]; ok {
			return out.(optional.Optional[O])
		}

		out := eval(r, in)
		r.outputs[step] = out

		return out
	}
}

// mergeChains returns the steps of both chains, each once, in the order they appear.
func mergeChains(chains ...[]*model.StepInfo) []*model.StepInfo {
	seen := make(map[*model.StepInfo]struct{})
	res := []*model.StepInfo{}

	for _, chain := range chains {
		for _, step := range chain {
			if _, ok := seen[step]; ok {
				continue
			}

			seen[step] = struct{}{}
			res = append(res, step)
		}
	}

	return res
}
