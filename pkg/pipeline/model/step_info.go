package model

import "time"

type StepType string

const (
	RootStepType   StepType = "root"
	BindStepType   StepType = "bind"
	MapStepType    StepType = "map"
	MergerStepType StepType = "merger"
)

// StepInfo describes a step of a pipeline.
type StepInfo struct {
	Type StepType
	Name string
	// Parent is the name of the step feeding this one, the first one for a merger.
	Parent string
	// Depth is the length of the longest chain leading to the step, the root step being 0.
	Depth int
}

var (
	StartStep = &StepInfo{Name: "start"}
	EndStep   = &StepInfo{Name: "end"}
)

// RunInfo identifies a single evaluation of a pipeline.
type RunInfo struct {
	ID        string
	StartTime time.Time
}
