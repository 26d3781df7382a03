package material

import (
	"github.com/Carmen-Shannon/emotive-go/engine/effect/animation"
	"github.com/Carmen-Shannon/emotive-go/engine/effect/cutout"
)

// EffectMaterialBuilderOption is a function that configures an effect
// material instance during construction.
type EffectMaterialBuilderOption func(*effectMaterial)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - EffectMaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) EffectMaterialBuilderOption {
	return func(m *effectMaterial) {
		m.name = name
	}
}

// WithFadeInDuration is an option builder that sets the spawner fade-in
// duration in seconds. Non-positive values are ignored and the 0.2s default
// is kept.
//
// Parameters:
//   - seconds: the fade-in duration
//
// Returns:
//   - EffectMaterialBuilderOption: a function that applies the fade-in option to a material
func WithFadeInDuration(seconds float32) EffectMaterialBuilderOption {
	return func(m *effectMaterial) {
		if seconds > 0 {
			m.timing.FadeInDuration = seconds
		}
	}
}

// WithFadeOutDuration is an option builder that sets the exit fade-out
// duration in seconds. Non-positive values are ignored and the 0.4s default
// is kept.
//
// Parameters:
//   - seconds: the fade-out duration
//
// Returns:
//   - EffectMaterialBuilderOption: a function that applies the fade-out option to a material
func WithFadeOutDuration(seconds float32) EffectMaterialBuilderOption {
	return func(m *effectMaterial) {
		if seconds > 0 {
			m.timing.FadeOutDuration = seconds
		}
	}
}

// WithAnimation is an option builder that sets the initial animation
// configuration.
//
// Parameters:
//   - cfg: the animation configuration
//
// Returns:
//   - EffectMaterialBuilderOption: a function that applies the animation option to a material
func WithAnimation(cfg animation.Config) EffectMaterialBuilderOption {
	return func(m *effectMaterial) {
		m.anim = cfg
	}
}

// WithCutout is an option builder that sets the initial cutout
// configuration. Numeric fields are clamped into their valid ranges.
//
// Parameters:
//   - cfg: the cutout configuration
//
// Returns:
//   - EffectMaterialBuilderOption: a function that applies the cutout option to a material
func WithCutout(cfg cutout.Config) EffectMaterialBuilderOption {
	return func(m *effectMaterial) {
		m.cut = cfg.Clamped()
	}
}

// WithGlowScale is an option builder that sets the static glow multiplier.
// Negative values clamp to 0.
//
// Parameters:
//   - scale: the glow scale
//
// Returns:
//   - EffectMaterialBuilderOption: a function that applies the glow scale option to a material
func WithGlowScale(scale float32) EffectMaterialBuilderOption {
	return func(m *effectMaterial) {
		m.glowScale = max(scale, 0)
	}
}

// WithGestureGlow is an option builder that installs a gesture glow ramp at
// construction time.
//
// Parameters:
//   - cfg: the glow ramp configuration
//
// Returns:
//   - EffectMaterialBuilderOption: a function that applies the gesture glow option to a material
func WithGestureGlow(cfg GlowConfig) EffectMaterialBuilderOption {
	return func(m *effectMaterial) {
		cfg.BaseGlow = max(cfg.BaseGlow, 0)
		cfg.PeakGlow = max(cfg.PeakGlow, 0)
		m.glowConfig = &cfg
		m.currentGlow = cfg.glowAt(m.progress)
	}
}
