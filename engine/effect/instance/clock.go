package instance

import "github.com/Carmen-Shannon/emotive-go/common"

// trailDelayStep is the fixed per-index lag between a trail copy and the
// primary, in seconds.
const trailDelayStep = 0.05

// trailFadeStep dims each successive trail copy; with three supported trail
// copies, index 2 sits at 0.25 opacity and a hypothetical index 3 would be
// fully invisible.
const trailFadeStep = 0.25

// Timing holds the material-level fade constants, in absolute seconds.
type Timing struct {
	// FadeInDuration is the spawner's opacity ramp length. The clock does
	// not re-derive a fade-in here: spawn pop-in is masked by the spawner's
	// own opacity ramp, which arrives through Instance.Opacity.
	FadeInDuration float32
	// FadeOutDuration is the time from ExitTime to full transparency.
	FadeOutDuration float32
}

// ClockResult is the per-instance timing output for one frame.
type ClockResult struct {
	// LocalAge is the instance's age in seconds, lagged by the trail delay
	// and never negative.
	LocalAge float32
	// TrailDelay is the lag behind the primary copy, in seconds.
	TrailDelay float32
	// FadeScalar is the fade-out multiplier in [0, 1]: 1 before exit, 0
	// once FadeOutDuration has elapsed past ExitTime.
	FadeScalar float32
	// CompositeOpacity is fadeScalar * master opacity * trail dimming,
	// always in [0, 1].
	CompositeOpacity float32
}

// EvaluateClock computes the per-instance lifecycle timing from the global
// clock. It is a pure function: instances are read, never mutated.
//
// Parameters:
//   - globalTime: the shared global-clock timestamp in seconds
//   - inst: the instance to evaluate
//   - timing: the material-level fade constants
//
// Returns:
//   - ClockResult: the timing outputs for this frame
func EvaluateClock(globalTime float32, inst Instance, timing Timing) ClockResult {
	trailDelay := float32(max(inst.TrailIndex, 0)) * trailDelayStep
	localAge := max((globalTime-inst.SpawnTime)-trailDelay, 0)

	fadeOut := float32(1)
	if inst.ExitTime > 0 {
		d := max(timing.FadeOutDuration, 0.01)
		fadeOut = common.Clamp01(1 - (globalTime-inst.ExitTime)/d)
	}

	trailFade := float32(1)
	if inst.TrailIndex >= 0 {
		trailFade = max(1-float32(inst.TrailIndex+1)*trailFadeStep, 0)
	}

	return ClockResult{
		LocalAge:         localAge,
		TrailDelay:       trailDelay,
		FadeScalar:       fadeOut,
		CompositeOpacity: common.Clamp01(fadeOut * common.Clamp01(inst.Opacity) * trailFade),
	}
}
