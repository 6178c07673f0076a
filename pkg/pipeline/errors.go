package pipeline

import (
	"github.com/pkg/errors"
)

var (
	ErrPipelineMustBeSet      = errors.New("p must be set")
	ErrInputMustBeSet         = errors.New("input must be set")
	ErrStepFnMustBeSet        = errors.New("step function must be set")
	ErrStepAlreadyExists      = errors.New("step already exists")
	ErrReservedStepName       = errors.New("step name is reserved")
	ErrInputFromOtherPipeline = errors.New("input belongs to another pipeline")
)
