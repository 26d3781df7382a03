package material

import "github.com/Carmen-Shannon/emotive-go/common"

// EasingCurve selects the interpolation shape of the gesture glow ramp.
type EasingCurve int32

const (
	// EasingLinear interpolates glow proportionally to progress.
	EasingLinear EasingCurve = iota
	// EasingEaseIn starts slow and accelerates.
	EasingEaseIn
	// EasingEaseOut starts fast and decelerates.
	EasingEaseOut
	// EasingEaseInOut accelerates then decelerates.
	EasingEaseInOut
)

// GlowConfig is the gesture glow ramp: glow interpolates from BaseGlow at
// progress 0 to PeakGlow at progress 1 through the easing curve.
type GlowConfig struct {
	BaseGlow float32
	PeakGlow float32
	Curve    EasingCurve
}

// glowAt interpolates the ramp at the given progress.
func (g GlowConfig) glowAt(progress float32) float32 {
	return common.Lerp(g.BaseGlow, g.PeakGlow, g.Curve.apply(common.Clamp01(progress)))
}

// apply shapes a clamped progress value through the easing curve.
func (c EasingCurve) apply(p float32) float32 {
	switch c {
	case EasingEaseIn:
		return p * p
	case EasingEaseOut:
		return 1 - (1-p)*(1-p)
	case EasingEaseInOut:
		return p * p * (3 - 2*p)
	default:
		return p
	}
}

// String returns the name of the easing curve.
//
// Returns:
//   - string: the curve name
func (c EasingCurve) String() string {
	switch c {
	case EasingEaseIn:
		return "easeIn"
	case EasingEaseOut:
		return "easeOut"
	case EasingEaseInOut:
		return "easeInOut"
	default:
		return "linear"
	}
}

// ParseEasingCurve resolves an easing curve name. Unknown names fall back to
// EasingLinear.
//
// Parameters:
//   - name: the curve name
//
// Returns:
//   - EasingCurve: the matching curve, or EasingLinear
func ParseEasingCurve(name string) EasingCurve {
	switch name {
	case "easeIn", "easein":
		return EasingEaseIn
	case "easeOut", "easeout":
		return EasingEaseOut
	case "easeInOut", "easeinout":
		return EasingEaseInOut
	default:
		return EasingLinear
	}
}
