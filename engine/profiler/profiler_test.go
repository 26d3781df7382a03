package profiler

import (
	"testing"
	"time"
)

func TestTickLogsAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.AddInstances(128)
	p.AddInstances(64)
	if p.instanceCount != 192 {
		t.Fatalf("instance counter = %d, want 192", p.instanceCount)
	}
	if p.Tick() {
		t.Fatal("Tick logged before the update interval elapsed")
	}

	// Backdate the interval start so the next tick crosses it.
	p.lastTime = time.Now().Add(-2 * time.Second)
	if !p.Tick() {
		t.Fatal("Tick did not log after the update interval elapsed")
	}
	if p.instanceCount != 0 {
		t.Errorf("instance counter not reset after logging: %d", p.instanceCount)
	}
	if p.frameCount != 0 {
		t.Errorf("frame counter not reset after logging: %d", p.frameCount)
	}

	// A fresh interval starts after the logging tick.
	if p.Tick() {
		t.Error("Tick logged again immediately after resetting")
	}
}
