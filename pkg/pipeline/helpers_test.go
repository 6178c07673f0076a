package pipeline_test

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-compose/pkg/optional"
	"github.com/askiada/go-compose/pkg/pipeline"
	"github.com/askiada/go-compose/pkg/pipeline/model"
)

const latticeConstant = 5.47

type protoHKL struct {
	h, k, l float64
}

type integerHKL struct {
	h, k, l int
}

func almostInteger(value float64) bool {
	return math.Abs(math.Round(value)-value) < 1e-1
}

func createProtoHKL(hkl []float64) optional.Optional[protoHKL] {
	if len(hkl) != 3 {
		return optional.None[protoHKL]()
	}

	return optional.Some(protoHKL{h: hkl[0], k: hkl[1], l: hkl[2]})
}

func toIntegerHKL(p protoHKL) optional.Optional[integerHKL] {
	if !almostInteger(p.h) || !almostInteger(p.k) || !almostInteger(p.l) {
		return optional.None[integerHKL]()
	}

	return optional.Some(integerHKL{
		h: int(math.Round(p.h)),
		k: int(math.Round(p.k)),
		l: int(math.Round(p.l)),
	})
}

func squaredNorm(hkl integerHKL) int {
	return hkl.h*hkl.h + hkl.k*hkl.k + hkl.l*hkl.l
}

func cubicSpacing(norm int) optional.Optional[float64] {
	if norm == 0 {
		return optional.None[float64]()
	}

	return optional.Some(latticeConstant / math.Sqrt(float64(norm)))
}

// buildHKLPipeline chains parse -> round -> norm -> spacing.
func buildHKLPipeline(t *testing.T, opts ...model.PipelineOption) (*pipeline.Pipeline, *pipeline.Step[[]float64, float64]) {
	t.Helper()

	pipe, err := pipeline.New(opts...)
	require.NoError(t, err)

	parse, err := pipeline.AddRootStep(pipe, "parse", createProtoHKL)
	require.NoError(t, err)
	round, err := pipeline.AddStep(pipe, "round", parse, toIntegerHKL)
	require.NoError(t, err)
	norm, err := pipeline.AddMapStep(pipe, "norm", round, squaredNorm)
	require.NoError(t, err)
	spacing, err := pipeline.AddStep(pipe, "spacing", norm, cubicSpacing)
	require.NoError(t, err)

	return pipe, spacing
}

// recorder is a pipeline option keeping a trace of every hook call.
type recorder struct {
	mu     sync.Mutex
	events []string
	failOn string
}

func (r *recorder) record(event string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	if event == r.failOn {
		return fmt.Errorf("failing on %s", event)
	}

	return nil
}

func (r *recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]string, len(r.events))
	copy(res, r.events)

	return res
}

func (r *recorder) New() error {
	return r.record("new")
}

func (r *recorder) PrepareStep(parentStep, step *model.StepInfo) error {
	return r.record("prepare " + parentStep.Name + " -> " + step.Name)
}

func (r *recorder) PrepareMerger(parentSteps []*model.StepInfo, step *model.StepInfo) error {
	names := make([]string, len(parentSteps))
	for i, parentStep := range parentSteps {
		names[i] = parentStep.Name
	}

	return r.record("prepare " + strings.Join(names, ",") + " -> " + step.Name)
}

func (r *recorder) OnRunStart(run *model.RunInfo) error {
	return r.record("run start")
}

func (r *recorder) OnRunEnd(run *model.RunInfo, present bool, totalDuration time.Duration) error {
	return r.record(fmt.Sprintf("run end %t", present))
}

func (r *recorder) OnStepOutput(run *model.RunInfo, step *model.StepInfo, computationDuration time.Duration) error {
	return r.record("output " + step.Name)
}

func (r *recorder) OnStepEmpty(run *model.RunInfo, step *model.StepInfo, computationDuration time.Duration) error {
	return r.record("empty " + step.Name)
}

func (r *recorder) OnStepSkipped(run *model.RunInfo, step *model.StepInfo) error {
	return r.record("skipped " + step.Name)
}

func (r *recorder) Finish() error {
	return r.record("finish")
}
