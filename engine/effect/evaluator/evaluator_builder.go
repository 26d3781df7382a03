package evaluator

import "github.com/cogentcore/webgpu/wgpu"

// EvaluatorBuilderOption is a function that configures an evaluator instance
// during construction.
type EvaluatorBuilderOption func(*evaluator)

// WithWorkers is an option builder that sets the number of compute workers
// evaluating instances in parallel. Values below 1 are ignored; the default
// is NumCPU - 1.
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - EvaluatorBuilderOption: a function that applies the worker count option to an evaluator
func WithWorkers(workers int) EvaluatorBuilderOption {
	return func(e *evaluator) {
		if workers >= 1 {
			e.workers = workers
		}
	}
}

// WithParamsBuffer is an option builder that sets the GPU buffer receiving
// the per-frame effect parameter block.
//
// Parameters:
//   - buf: the effect params uniform buffer
//
// Returns:
//   - EvaluatorBuilderOption: a function that applies the params buffer option to an evaluator
func WithParamsBuffer(buf *wgpu.Buffer) EvaluatorBuilderOption {
	return func(e *evaluator) {
		e.paramsBuffer = buf
	}
}

// WithStateBuffer is an option builder that sets the GPU buffer receiving
// per-instance evaluation state.
//
// Parameters:
//   - buf: the instance state storage buffer
//
// Returns:
//   - EvaluatorBuilderOption: a function that applies the state buffer option to an evaluator
func WithStateBuffer(buf *wgpu.Buffer) EvaluatorBuilderOption {
	return func(e *evaluator) {
		e.stateBuffer = buf
	}
}
