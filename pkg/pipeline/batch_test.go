package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-compose/pkg/optional"
	"github.com/askiada/go-compose/pkg/pipeline"
	"github.com/askiada/go-compose/pkg/pipeline/measure"
)

func halfStep(i int) optional.Optional[int] {
	if i%2 != 0 {
		return optional.None[int]()
	}

	return optional.Some(i / 2)
}

func TestRunBatch(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		concurrent int
	}{
		"sequential":     {concurrent: 1},
		"sequential v2":  {concurrent: 0},
		"concurrent 2":   {concurrent: 2},
		"concurrent 100": {concurrent: 100},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := measure.NewDefaultMeasure()
			pipe, err := pipeline.New(measure.PipelineMeasure(m))
			require.NoError(t, err)
			step, err := pipeline.AddRootStep(pipe, "half", halfStep)
			require.NoError(t, err)

			inputs := make([]int, 10)
			for i := range inputs {
				inputs[i] = i
			}

			got, err := pipeline.RunBatch(context.Background(), step, inputs, pipeline.BatchConcurrency(tc.concurrent))
			require.NoError(t, err)
			require.Len(t, got, 10)

			for i, out := range got {
				assert.Equal(t, halfStep(i), out)
			}

			assert.EqualValues(t, 5, m.GetMetric("half").Outputs())
			assert.EqualValues(t, 5, m.GetMetric("half").Empties())
		})
	}
}

func TestRunBatchNilStep(t *testing.T) {
	t.Parallel()

	_, err := pipeline.RunBatch[int, int](context.Background(), nil, []int{1})
	assert.ErrorIs(t, err, pipeline.ErrInputMustBeSet)
}

func TestRunBatchCancelled(t *testing.T) {
	t.Parallel()

	pipe, err := pipeline.New()
	require.NoError(t, err)
	step, err := pipeline.AddRootStep(pipe, "half", halfStep)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = pipeline.RunBatch(ctx, step, []int{1, 2, 3})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBatchOptionError(t *testing.T) {
	t.Parallel()

	pipe, err := pipeline.New(&recorder{failOn: "empty half"})
	require.NoError(t, err)
	step, err := pipeline.AddRootStep(pipe, "half", halfStep)
	require.NoError(t, err)

	_, err = pipeline.RunBatch(context.Background(), step, []int{2, 4, 5, 6}, pipeline.BatchConcurrency(2))
	assert.Error(t, err)
}

func TestRunBatchEmptyInputs(t *testing.T) {
	t.Parallel()

	pipe, err := pipeline.New()
	require.NoError(t, err)
	step, err := pipeline.AddRootStep(pipe, "half", halfStep)
	require.NoError(t, err)

	got, err := pipeline.RunBatch(context.Background(), step, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
