package cutout

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/emotive-go/common"
)

// StrengthCurve shapes the overall cutout intensity over one gesture,
// independent of the pattern shape itself.
type StrengthCurve int32

const (
	// CurveConstant holds intensity at 1 for the whole gesture.
	CurveConstant StrengthCurve = iota
	// CurveFadeIn ramps 0 -> 1 over the first FadeInDuration of progress.
	CurveFadeIn
	// CurveFadeOut holds at 1 then ramps 1 -> 0 over the final FadeOutDuration.
	CurveFadeOut
	// CurveBell ramps 0 -> 1 up to BellPeakAt, then 1 -> 0 for the remainder.
	CurveBell
	// CurvePulse oscillates twice across the gesture: 0.5 + 0.5*sin(progress*4*pi).
	CurvePulse
)

// Evaluate returns the intensity multiplier for the curve at the given
// gesture progress. Duration and peak parameters are clamped to a 0.01
// minimum before use, and the result is always in [0, 1].
//
// Parameters:
//   - progress: gesture progress in [0, 1]
//   - fadeIn: fadeIn ramp length as a fraction of gesture length
//   - fadeOut: fadeOut ramp length as a fraction of gesture length
//   - bellPeak: progress at which the bell curve peaks
//
// Returns:
//   - float32: the intensity multiplier in [0, 1]
func (c StrengthCurve) Evaluate(progress, fadeIn, fadeOut, bellPeak float32) float32 {
	progress = common.Clamp01(progress)
	fadeIn = common.Clamp(fadeIn, minDuration, 1)
	fadeOut = common.Clamp(fadeOut, minDuration, 1)
	bellPeak = common.Clamp(bellPeak, minDuration, 1-minDuration)

	switch c {
	case CurveFadeIn:
		return common.Clamp01(progress / fadeIn)
	case CurveFadeOut:
		start := 1 - fadeOut
		if progress <= start {
			return 1
		}
		return common.Clamp01(1 - (progress-start)/fadeOut)
	case CurveBell:
		if progress <= bellPeak {
			return common.Clamp01(progress / bellPeak)
		}
		return common.Clamp01((1 - progress) / (1 - bellPeak))
	case CurvePulse:
		return 0.5 + 0.5*math32.Sin(progress*4*math32.Pi)
	default:
		return 1
	}
}

// String returns the lowercase name of the curve.
//
// Returns:
//   - string: the curve name
func (c StrengthCurve) String() string {
	switch c {
	case CurveFadeIn:
		return "fadeIn"
	case CurveFadeOut:
		return "fadeOut"
	case CurveBell:
		return "bell"
	case CurvePulse:
		return "pulse"
	default:
		return "constant"
	}
}

// ParseStrengthCurve resolves a curve name. Unknown names fall back to
// CurveConstant.
//
// Parameters:
//   - name: the curve name
//
// Returns:
//   - StrengthCurve: the matching curve, or CurveConstant
func ParseStrengthCurve(name string) StrengthCurve {
	switch name {
	case "fadeIn", "fadein":
		return CurveFadeIn
	case "fadeOut", "fadeout":
		return CurveFadeOut
	case "bell":
		return CurveBell
	case "pulse":
		return CurvePulse
	default:
		return CurveConstant
	}
}
