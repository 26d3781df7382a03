// package cutout implements the two-layer procedural mask compositing system
// shared by every elemental material: per-layer pattern sampling behind a
// travel transform, a time-varying strength envelope, and the blend algebra
// that folds both layers into one visibility decision.
package cutout

import (
	"github.com/Carmen-Shannon/emotive-go/common"
	"github.com/Carmen-Shannon/emotive-go/engine/effect/pattern"
)

// minDuration is the floor applied to envelope durations and the bell peak
// position so curve evaluation never divides by zero.
const minDuration = 0.01

// Layer is one independently configured cutout layer.
type Layer struct {
	// Pattern selects the procedural mask generator. pattern.Disabled makes
	// the layer contribute full visibility.
	Pattern pattern.Pattern
	// Scale is the pattern scale factor; clamped to a small positive minimum.
	Scale float32
	// Weight in [0, 1] mixes the raw pattern toward 1.0: weight 0 bypasses
	// the layer entirely, weight 1 applies the pattern at full effect.
	Weight float32
	// Travel overrides the config-level travel mode for this layer.
	// TravelInherit (the default) inherits the primary travel configuration.
	Travel TravelMode
	// TravelSpeed overrides the config-level travel speed when non-zero.
	// Zero means unset and inherits the primary speed; a layer that must not
	// move sets Travel to TravelNone rather than a zero speed.
	TravelSpeed float32
}

// Config is the full cutout configuration for one material. It is treated as
// an immutable snapshot during frame evaluation; mutation happens only
// through the owning material between frames.
type Config struct {
	// Strength in [0, 1] scales the overall cutout intensity. At or below
	// 0.01 the compositor short-circuits to full visibility.
	Strength float32
	// Phase offsets the local time fed to the pattern generators, so
	// identical materials do not animate in lockstep.
	Phase float32
	// Layer1 is the primary layer. If its pattern is disabled the whole
	// cutout is a no-op regardless of Layer2.
	Layer1 Layer
	// Layer2 is the secondary layer, blended with Layer1 via Blend.
	Layer2 Layer
	// Blend selects how the two layer masks combine.
	Blend BlendMode
	// Travel is the primary travel mode, inherited by layers that do not
	// override it.
	Travel TravelMode
	// TravelSpeed is the primary travel speed multiplier.
	TravelSpeed float32
	// TravelDir resolves gesture progress into travel progress.
	TravelDir TravelDirection
	// StrengthCurve shapes the cutout intensity over one gesture.
	StrengthCurve StrengthCurve
	// FadeInDuration is the fraction of gesture length the fadeIn curve
	// ramps over, in (0, 1].
	FadeInDuration float32
	// FadeOutDuration is the fraction of gesture length the fadeOut curve
	// ramps over, in (0, 1].
	FadeOutDuration float32
	// BellPeakAt is the gesture progress at which the bell curve peaks,
	// in (0, 1).
	BellPeakAt float32
}

// DefaultLayer returns a disabled layer with documented defaults: unit scale,
// full weight, travel inherited from the primary configuration.
//
// Returns:
//   - Layer: the default layer
func DefaultLayer() Layer {
	return Layer{
		Pattern: pattern.Disabled,
		Scale:   1,
		Weight:  1,
		Travel:  TravelInherit,
	}
}

// DefaultConfig returns the documented default cutout configuration:
// strength 0, both layers disabled, multiply blend, no travel at unit speed,
// forward direction, constant strength curve.
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	return Config{
		Strength:        0,
		Phase:           0,
		Layer1:          DefaultLayer(),
		Layer2:          DefaultLayer(),
		Blend:           BlendMultiply,
		Travel:          TravelNone,
		TravelSpeed:     1,
		TravelDir:       DirectionForward,
		StrengthCurve:   CurveConstant,
		FadeInDuration:  0.25,
		FadeOutDuration: 0.25,
		BellPeakAt:      0.5,
	}
}

// Clamped returns a copy of the configuration with every numeric field
// forced into its valid range. Invalid values are corrected, never rejected;
// cutout configuration is best-effort cosmetic state.
//
// Returns:
//   - Config: the sanitized configuration
func (c Config) Clamped() Config {
	c.Strength = common.Clamp01(c.Strength)
	c.Layer1 = c.Layer1.clamped()
	c.Layer2 = c.Layer2.clamped()
	if c.TravelSpeed < 0 {
		c.TravelSpeed = 0
	}
	c.FadeInDuration = common.Clamp(c.FadeInDuration, minDuration, 1)
	c.FadeOutDuration = common.Clamp(c.FadeOutDuration, minDuration, 1)
	c.BellPeakAt = common.Clamp(c.BellPeakAt, minDuration, 1-minDuration)
	return c
}

func (l Layer) clamped() Layer {
	if l.Scale <= 0 {
		l.Scale = minDuration
	}
	l.Weight = common.Clamp01(l.Weight)
	if l.TravelSpeed < 0 {
		l.TravelSpeed = 0
	}
	return l
}

// resolveTravel returns the travel mode and speed for a layer, falling back
// to the primary configuration when the layer does not override them. The
// unset sentinels are TravelInherit for the mode and zero for the speed.
func (c Config) resolveTravel(l Layer) (TravelMode, float32) {
	mode := l.Travel
	if mode == TravelInherit {
		mode = c.Travel
	}
	speed := common.Coalesce(l.TravelSpeed, c.TravelSpeed)
	return mode, speed
}
