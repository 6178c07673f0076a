// Package pipeline provides named pipelines of fallible steps.
//
// A pipeline is built one step at a time. Each step is a function returning an optional.Optional, and the steps are
// chained with monadic composition: as soon as a step produces no value the remaining steps are skipped and the run
// produces no value either. Pure steps that cannot fail are added with AddMapStep.
//
// Adding a step never changes the steps built before it. The value returned by AddRootStep, AddStep or AddMapStep
// is the pipeline from its input up to that step and can be run on its own, or extended in several directions.
// AddMerger joins two of those directions back into one step, evaluating the steps they share once per run.
//
// Unlike the bare functions returned by optional.ComposeK, a named pipeline is observable. Pipeline options receive
// a callback when a step is added, when a step produces or fails to produce a value, and when a run starts and ends.
// The measure, drawer and logging sub-packages provide options to collect metrics, render the pipeline as a DOT graph,
// and log every run.
//
// Building a pipeline is not safe for concurrent use. Running it is, as long as the options are: runs share no state
// other than the options, which is what RunBatch relies on to evaluate many inputs in parallel.
package pipeline
