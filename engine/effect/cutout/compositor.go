package cutout

import (
	"github.com/Carmen-Shannon/emotive-go/common"
	"github.com/Carmen-Shannon/emotive-go/engine/effect/pattern"
)

// BlendMode selects how the two layer masks combine into one.
type BlendMode int32

const (
	// BlendMultiply multiplies the masks: holes from either layer show through.
	BlendMultiply BlendMode = iota
	// BlendMin takes the darker mask: a point must be a hole in both layers to be cut.
	BlendMin
	// BlendMax takes the lighter mask: the least restrictive combination.
	BlendMax
	// BlendAdd is the clamped additive blend: clamp(m1 + m2 - 1, 0, 1).
	BlendAdd
)

// shortCircuitStrength is the strength at or below which the compositor
// skips all pattern work and reports full visibility.
const shortCircuitStrength = 0.01

// visibilityThreshold is the binary cutoff on the final mask. The edge is
// deliberately hard rather than alpha-blended: semi-transparent cutout edges
// produced dark-outline artifacts in the renderer.
const visibilityThreshold = 0.5

// Result is the compositor output for one sampling position: the continuous
// mask for soft consumers and the binary visibility decision for the
// discard path.
type Result struct {
	Mask    float32
	Visible bool
}

// Blend combines two layer masks with the given mode. For every mode,
// Blend(1, 1) == 1: two fully visible layers never produce a hole.
//
// Parameters:
//   - mode: the blend mode
//   - m1: the primary layer mask in [0, 1]
//   - m2: the secondary layer mask in [0, 1]
//
// Returns:
//   - float32: the combined mask in [0, 1]
func Blend(mode BlendMode, m1, m2 float32) float32 {
	switch mode {
	case BlendMin:
		return min(m1, m2)
	case BlendMax:
		return max(m1, m2)
	case BlendAdd:
		return common.Clamp01(m1 + m2 - 1)
	default:
		return m1 * m2
	}
}

// Evaluate composites both cutout layers at one sampling position.
//
// The pipeline is: strength envelope -> per-layer travel transform ->
// pattern sample -> weight mix toward 1 -> blend -> lerp(1, blended,
// curvedStrength). The compositor short-circuits to full visibility when
// strength is negligible or the primary layer is disabled.
//
// Parameters:
//   - cfg: the cutout configuration (evaluated as an immutable snapshot)
//   - pos: the sampling position in effect-local space
//   - localTime: the instance-local time driving pattern motion
//   - progress: gesture progress in [0, 1]
//
// Returns:
//   - Result: the continuous mask and the binary visibility decision
func Evaluate(cfg Config, pos [3]float32, localTime, progress float32) Result {
	if cfg.Strength <= shortCircuitStrength || cfg.Layer1.Pattern == pattern.Disabled {
		return Result{Mask: 1, Visible: true}
	}

	curved := cfg.StrengthCurve.Evaluate(progress, cfg.FadeInDuration, cfg.FadeOutDuration, cfg.BellPeakAt)
	curvedStrength := common.Clamp01(cfg.Strength) * curved

	m1 := evaluateLayer(cfg, cfg.Layer1, pos, localTime, progress)
	m2 := evaluateLayer(cfg, cfg.Layer2, pos, localTime, progress)
	blended := Blend(cfg.Blend, m1, m2)

	mask := common.Lerp(1, blended, curvedStrength)
	return Result{Mask: mask, Visible: mask >= visibilityThreshold}
}

// evaluateLayer samples one layer's pattern behind its resolved travel
// transform and mixes the raw mask toward 1 by (1 - weight).
func evaluateLayer(cfg Config, l Layer, pos [3]float32, localTime, progress float32) float32 {
	if l.Pattern == pattern.Disabled {
		return 1
	}
	mode, speed := cfg.resolveTravel(l)
	sample := Travel(pos, mode, speed, progress, cfg.TravelDir)
	raw := pattern.Evaluate(l.Pattern, sample, l.Scale, localTime+cfg.Phase)
	return common.Lerp(1, raw, common.Clamp01(l.Weight))
}

// String returns the lowercase name of the blend mode.
//
// Returns:
//   - string: the mode name
func (m BlendMode) String() string {
	switch m {
	case BlendMin:
		return "min"
	case BlendMax:
		return "max"
	case BlendAdd:
		return "add"
	default:
		return "multiply"
	}
}

// ParseBlendMode resolves a blend mode name. Unknown names fall back to
// BlendMultiply.
//
// Parameters:
//   - name: the lowercase mode name
//
// Returns:
//   - BlendMode: the matching mode, or BlendMultiply
func ParseBlendMode(name string) BlendMode {
	switch name {
	case "min":
		return BlendMin
	case "max":
		return BlendMax
	case "add":
		return BlendAdd
	default:
		return BlendMultiply
	}
}
