// package uniform stages GPU buffer writes produced by the effect engine.
// Writes accumulate on the CPU during frame evaluation and are flushed to the
// wgpu queue in one pass at submission time, so evaluation never touches the
// GPU directly.
package uniform

import (
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// BufferWrite describes a single GPU buffer write operation targeting a
// specific buffer at a given byte offset.
type BufferWrite struct {
	Buffer *wgpu.Buffer
	Offset uint64
	Data   []byte
}

// Stager collects buffer writes from concurrent evaluation tasks. It is safe
// for use from multiple goroutines; Drain hands the batch to the render
// thread and resets the stager for the next frame.
type Stager struct {
	mu     sync.Mutex
	writes []BufferWrite
}

// Stage appends one pending write.
//
// Parameters:
//   - w: the buffer write to stage
func (s *Stager) Stage(w BufferWrite) {
	if w.Buffer == nil || len(w.Data) == 0 {
		return
	}
	s.mu.Lock()
	s.writes = append(s.writes, w)
	s.mu.Unlock()
}

// Drain returns and clears the pending writes. The returned slice is owned
// by the caller; the stager starts a fresh batch.
//
// Returns:
//   - []BufferWrite: the staged writes, in staging order
func (s *Stager) Drain() []BufferWrite {
	s.mu.Lock()
	defer s.mu.Unlock()
	writes := s.writes
	s.writes = nil
	return writes
}

// Pending returns the number of writes currently staged.
//
// Returns:
//   - int: the staged write count
func (s *Stager) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.writes)
}

// Flush submits a batch of writes to the GPU queue. Writes with a nil buffer
// are skipped; wgpu copies the data internally before returning, so staged
// byte slices may be reused afterwards.
//
// Parameters:
//   - queue: the wgpu queue to write through
//   - writes: the writes to submit
func Flush(queue *wgpu.Queue, writes []BufferWrite) {
	if queue == nil {
		return
	}
	for _, w := range writes {
		if w.Buffer == nil || len(w.Data) == 0 {
			continue
		}
		queue.WriteBuffer(w.Buffer, w.Offset, w.Data)
	}
}
