// package evaluator runs one frame of effect evaluation: it snapshots the
// material configuration, evaluates every pooled instance through the
// lifecycle clock, the animation driver, and the cutout compositor, and
// stages the resulting uniform data for GPU upload.
//
// Instances have no cross-instance dependency, so evaluation is spread
// across a bounded worker pool; workers persist across frames.
package evaluator

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/emotive-go/common"
	"github.com/Carmen-Shannon/emotive-go/engine/effect/animation"
	"github.com/Carmen-Shannon/emotive-go/engine/effect/cutout"
	"github.com/Carmen-Shannon/emotive-go/engine/effect/instance"
	"github.com/Carmen-Shannon/emotive-go/engine/effect/material"
	"github.com/Carmen-Shannon/emotive-go/engine/effect/uniform"
)

// InstanceResult is the combined per-instance output of one frame: the
// anchor offset and visibility from the animation driver, the cutout mask,
// and the lifecycle opacity. These feed the per-element shading stage.
type InstanceResult struct {
	// Offset is the animation-driven position offset at the instance anchor.
	Offset [3]float32
	// Mask is the cutout mask multiplied by the animation visibility scalar.
	Mask float32
	// Visible is the cutout compositor's binary visibility decision.
	Visible bool
	// CompositeOpacity is the lifecycle opacity from the instance clock.
	CompositeOpacity float32
	// LocalAge is the trail-lagged instance age in seconds.
	LocalAge float32
}

// evaluator is the implementation of the Evaluator interface.
type evaluator struct {
	mat  material.EffectMaterial
	pool *instance.Pool

	workers     int
	computePool worker.DynamicWorkerPool
	stager      *uniform.Stager

	// Optional GPU targets. When nil, evaluation still runs and results are
	// returned to the caller; nothing is staged for that target.
	paramsBuffer *wgpu.Buffer
	stateBuffer  *wgpu.Buffer

	// Reusable per-frame scratch to avoid heap allocations in the frame loop.
	instScratch   []instance.Instance
	resultScratch []InstanceResult

	nextTaskID int
}

// Evaluator drives per-frame effect evaluation for one material and its
// instance pool.
//
// EvaluateFrame must be called from a single goroutine (the animation loop);
// configuration setters on the material may run concurrently because the
// evaluator works from a frame-start snapshot.
type Evaluator interface {
	// Material retrieves the material this evaluator reads configuration from.
	//
	// Returns:
	//   - material.EffectMaterial: the evaluated material
	Material() material.EffectMaterial

	// Pool retrieves the instance pool this evaluator iterates.
	//
	// Returns:
	//   - *instance.Pool: the evaluated pool
	Pool() *instance.Pool

	// EvaluateFrame evaluates every active instance at the given global time
	// and stages GPU uniform writes for the configured buffers.
	//
	// The returned slice is scratch owned by the evaluator and is
	// overwritten by the next call; callers needing to keep results must
	// copy them.
	//
	// Parameters:
	//   - globalTime: the shared global-clock timestamp in seconds
	//
	// Returns:
	//   - []InstanceResult: one result per active instance, in pool order
	EvaluateFrame(globalTime float32) []InstanceResult

	// StagedWriteData returns and clears the pending GPU buffer writes.
	// The render thread should drain these and submit them via uniform.Flush.
	//
	// Returns:
	//   - []uniform.BufferWrite: the slice of pending buffer writes
	StagedWriteData() []uniform.BufferWrite

	// SetParamsBuffer sets the GPU buffer receiving the per-frame effect
	// parameter block. A nil buffer disables params staging.
	//
	// Parameters:
	//   - buf: the effect params uniform buffer
	SetParamsBuffer(buf *wgpu.Buffer)

	// SetStateBuffer sets the GPU buffer receiving per-instance evaluation
	// state. A nil buffer disables instance-state staging.
	//
	// Parameters:
	//   - buf: the instance state storage buffer
	SetStateBuffer(buf *wgpu.Buffer)
}

var _ Evaluator = &evaluator{}

// NewEvaluator creates an Evaluator for the given material and pool. Both
// are required and NewEvaluator panics if either is nil.
//
// Parameters:
//   - mat: the material whose configuration drives evaluation (must not be nil)
//   - pool: the instance pool to evaluate (must not be nil)
//   - options: variadic list of EvaluatorBuilderOption functions to configure the evaluator
//
// Returns:
//   - Evaluator: the newly created evaluator
func NewEvaluator(mat material.EffectMaterial, pool *instance.Pool, options ...EvaluatorBuilderOption) Evaluator {
	if mat == nil {
		panic("evaluator: NewEvaluator requires a non-nil EffectMaterial")
	}
	if pool == nil {
		panic("evaluator: NewEvaluator requires a non-nil Pool")
	}

	e := &evaluator{
		mat:     mat,
		pool:    pool,
		workers: max(runtime.NumCPU()-1, 1),
		stager:  &uniform.Stager{},
	}
	for _, opt := range options {
		opt(e)
	}

	// Initialized after options so WithWorkers can override the default.
	// Queue size of 64 covers the chunk count of any realistic pool.
	e.computePool = worker.NewDynamicWorkerPool(e.workers, 64, 1*time.Second)
	return e
}

func (e *evaluator) Material() material.EffectMaterial {
	return e.mat
}

func (e *evaluator) Pool() *instance.Pool {
	return e.pool
}

func (e *evaluator) EvaluateFrame(globalTime float32) []InstanceResult {
	snap := e.mat.Snapshot()
	e.instScratch = e.pool.Snapshot(e.instScratch)
	insts := e.instScratch

	n := len(insts)
	if cap(e.resultScratch) < n {
		e.resultScratch = make([]InstanceResult, n)
	}
	results := e.resultScratch[:n]

	if n > 0 {
		e.evaluateInstances(globalTime, snap, insts, results)
	}

	e.stageParams(snap)
	e.stageInstanceState(insts, results)
	return results
}

// evaluateInstances spreads the per-instance work across the compute pool.
// Chunks are disjoint slices of the results array, so tasks need no
// synchronization beyond the frame barrier.
func (e *evaluator) evaluateInstances(globalTime float32, snap material.Snapshot, insts []instance.Instance, results []InstanceResult) {
	n := len(insts)
	chunk := (n + e.workers - 1) / e.workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		lo, hi := start, end
		e.nextTaskID++
		e.computePool.SubmitTask(worker.Task{
			ID: e.nextTaskID,
			Do: func() (any, error) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					results[i] = evaluateOne(globalTime, snap, insts[i])
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
}

// evaluateOne runs the full per-instance pipeline: clock -> animation driver
// -> cutout compositor.
func evaluateOne(globalTime float32, snap material.Snapshot, inst instance.Instance) InstanceResult {
	clock := instance.EvaluateClock(globalTime, inst, snap.Timing)
	anim := animation.Evaluate(snap.Animation, inst.Anchor, snap.Progress, inst.RandomSeed)
	cut := cutout.Evaluate(snap.Cutout, inst.Anchor, clock.LocalAge, snap.Progress)
	return InstanceResult{
		Offset:           anim.Offset,
		Mask:             cut.Mask * anim.Visibility,
		Visible:          cut.Visible,
		CompositeOpacity: clock.CompositeOpacity,
		LocalAge:         clock.LocalAge,
	}
}

// stageParams marshals the material parameter block for upload.
func (e *evaluator) stageParams(snap material.Snapshot) {
	if e.paramsBuffer == nil {
		return
	}
	params := material.ParamsFromSnapshot(snap)
	e.stager.Stage(uniform.BufferWrite{
		Buffer: e.paramsBuffer,
		Offset: 0,
		Data:   params.Marshal(),
	})
}

// stageInstanceState packs every instance result into one contiguous write.
func (e *evaluator) stageInstanceState(insts []instance.Instance, results []InstanceResult) {
	if e.stateBuffer == nil || len(results) == 0 {
		return
	}
	// Staged data must outlive the frame until the render thread drains it,
	// so the state slice is allocated per frame rather than reused.
	states := make([]material.GPUInstanceState, len(results))
	for i, r := range results {
		states[i] = material.GPUInstanceState{
			Offset:           r.Offset,
			Mask:             r.Mask,
			CompositeOpacity: r.CompositeOpacity,
			LocalAge:         r.LocalAge,
			Seed:             insts[i].RandomSeed,
		}
		if r.Visible {
			states[i].Visible = 1
		}
	}
	e.stager.Stage(uniform.BufferWrite{
		Buffer: e.stateBuffer,
		Offset: 0,
		Data:   common.SliceToBytes(states),
	})
}

func (e *evaluator) StagedWriteData() []uniform.BufferWrite {
	return e.stager.Drain()
}

func (e *evaluator) SetParamsBuffer(buf *wgpu.Buffer) {
	e.paramsBuffer = buf
}

func (e *evaluator) SetStateBuffer(buf *wgpu.Buffer) {
	e.stateBuffer = buf
}
