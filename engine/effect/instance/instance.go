// package instance holds the per-copy state of GPU-instanced effect elements
// and the timing math that turns the single global clock into independent
// spawn, fade, and trail timing for each copy.
package instance

import (
	"fmt"
	"sync"
)

// Instance is one GPU-instanced copy of an effect element, including the
// dimmer, time-delayed trail copies used to fake motion streaking.
type Instance struct {
	// SpawnTime is the global-clock timestamp when the copy was created.
	// Immutable after creation.
	SpawnTime float32
	// ExitTime is the global-clock timestamp when fade-out begins. Zero
	// until exit is triggered; set at most once via MarkExit.
	ExitTime float32
	// TrailIndex is -1 for the primary copy and 0..2 for trailing ghost
	// copies of the same logical element.
	TrailIndex int32
	// RandomSeed is stable per-instance and drives phase offsets so
	// identical models look unique.
	RandomSeed float32
	// Opacity is the externally driven master opacity in [0, 1].
	Opacity float32
	// Anchor is the effect-local sampling position used when the engine
	// evaluates this copy on the CPU; the GPU path evaluates per-vertex.
	Anchor [3]float32
}

// MarkExit records the fade-out start timestamp. The first call wins;
// subsequent calls are no-ops. A timestamp earlier than SpawnTime is raised
// to SpawnTime to preserve the ExitTime >= SpawnTime invariant.
//
// Parameters:
//   - t: the global-clock timestamp when fade-out begins
func (i *Instance) MarkExit(t float32) {
	if i.ExitTime > 0 {
		return
	}
	i.ExitTime = max(t, i.SpawnTime)
}

// Pool manages a growable slot array of instances. Removal uses a
// swap-remove strategy so slots stay contiguous for GPU upload; capacity
// doubles when exhausted.
type Pool struct {
	mu        sync.Mutex
	instances []Instance
	count     uint32
	maxSize   uint32
}

// NewPool creates a Pool with the given initial capacity. A non-positive
// capacity defaults to 16.
//
// Parameters:
//   - capacity: the initial number of slots
//
// Returns:
//   - *Pool: the newly created pool
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = 16
	}
	return &Pool{
		instances: make([]Instance, capacity),
		maxSize:   uint32(capacity),
	}
}

// Add registers a new instance, growing the pool when capacity is exceeded.
//
// Parameters:
//   - inst: the instance data to store
//
// Returns:
//   - uint32: the slot index of the new instance
//   - error: an error if the instance data is invalid
func (p *Pool) Add(inst Instance) (uint32, error) {
	if inst.TrailIndex < -1 {
		return 0, fmt.Errorf("instance: trail index %d out of range", inst.TrailIndex)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.count >= p.maxSize {
		p.growLocked(p.maxSize * 2)
	}
	idx := p.count
	p.instances[idx] = inst
	p.count++
	return idx, nil
}

// Remove removes the instance at index using swap-remove: the last instance
// is moved into the vacated slot. Returns the old last index and whether a
// swap occurred, so callers tracking indices can follow the move.
//
// Parameters:
//   - index: the slot index to remove
//
// Returns:
//   - uint32: the old last index that was swapped into the removed slot (only meaningful when bool is true)
//   - bool: true if the last instance was swapped into the removed slot
func (p *Pool) Remove(index uint32) (uint32, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index >= p.count {
		return 0, false
	}
	last := p.count - 1
	swapped := index != last
	if swapped {
		p.instances[index] = p.instances[last]
	}
	p.instances[last] = Instance{}
	p.count = last
	return last, swapped
}

// Grow increases the pool capacity to newMax, preserving all existing data.
// No-op if newMax is less than or equal to the current capacity.
//
// Parameters:
//   - newMax: the new maximum number of instances to support
func (p *Pool) Grow(newMax uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.growLocked(newMax)
}

func (p *Pool) growLocked(newMax uint32) {
	if newMax <= p.maxSize {
		return
	}
	grown := make([]Instance, newMax)
	copy(grown, p.instances)
	p.instances = grown
	p.maxSize = newMax
}

// Count returns the number of active instances.
//
// Returns:
//   - uint32: the active instance count
func (p *Pool) Count() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

// MaxInstances returns the current pool capacity.
//
// Returns:
//   - uint32: the maximum number of instances before the next Grow
func (p *Pool) MaxInstances() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxSize
}

// At returns a copy of the instance at index.
//
// Parameters:
//   - index: the slot index to read
//
// Returns:
//   - Instance: the instance data
//   - bool: false if the index is out of range
func (p *Pool) At(index uint32) (Instance, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index >= p.count {
		return Instance{}, false
	}
	return p.instances[index], true
}

// Set replaces the instance at index. Out-of-range indices are ignored.
//
// Parameters:
//   - index: the slot index to write
//   - inst: the new instance data
func (p *Pool) Set(index uint32, inst Instance) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index >= p.count {
		return
	}
	p.instances[index] = inst
}

// MarkExit records the fade-out timestamp on the instance at index.
// Out-of-range indices are ignored.
//
// Parameters:
//   - index: the slot index to update
//   - t: the global-clock timestamp when fade-out begins
func (p *Pool) MarkExit(index uint32, t float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index >= p.count {
		return
	}
	p.instances[index].MarkExit(t)
}

// Snapshot copies the active instances into dst, growing it as needed, and
// returns the filled slice. Evaluators call this once per frame so instance
// reads do not hold the pool lock during evaluation.
//
// Parameters:
//   - dst: a reusable destination slice, may be nil
//
// Returns:
//   - []Instance: dst resized to the active count and filled
func (p *Pool) Snapshot(dst []Instance) []Instance {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := int(p.count)
	if cap(dst) < n {
		dst = make([]Instance, n)
	}
	dst = dst[:n]
	copy(dst, p.instances[:n])
	return dst
}
