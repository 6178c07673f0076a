package pipeline

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-compose/pkg/optional"
)

// RunBatch runs step on every input and returns the outputs in the order of the inputs. Inputs are evaluated one at
// a time unless BatchConcurrency is given. It stops on the first error returned by an option or on cancellation of
// ctx.
func RunBatch[I, O any](ctx context.Context, step *Step[I, O], inputs []I, opts ...BatchOption) ([]optional.Optional[O], error) {
	if step == nil {
		return nil, ErrInputMustBeSet
	}

	cfg := &batchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.concurrent <= 0 {
		cfg.concurrent = 1
	}

	outputs := make([]optional.Optional[O], len(inputs))

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(cfg.concurrent)

	for idx, in := range inputs {
		localIdx, localIn := idx, in

		// we check the context before scheduling so that a cancelled batch stops as early as possible
		if dCtx.Err() != nil {
			break
		}

		errGrp.Go(func() error {
			if err := dCtx.Err(); err != nil {
				return errors.Wrapf(err, "input %d", localIdx)
			}

			out, err := step.Run(localIn)
			if err != nil {
				return errors.Wrapf(err, "input %d", localIdx)
			}

			outputs[localIdx] = out

			return nil
		})
	}

	err := errGrp.Wait()
	if err != nil {
		return nil, err
	}

	// the group context is cancelled by Wait, the caller context tells whether we stopped early
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "batch interrupted")
	}

	return outputs, nil
}
