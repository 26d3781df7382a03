// package material implements the per-material effect configuration store:
// the mutable surface the gesture system writes between frames, and the
// immutable snapshot the evaluator reads at frame start.
package material

import (
	"sync"

	"github.com/Carmen-Shannon/emotive-go/common"
	"github.com/Carmen-Shannon/emotive-go/engine/effect/animation"
	"github.com/Carmen-Shannon/emotive-go/engine/effect/cutout"
	"github.com/Carmen-Shannon/emotive-go/engine/effect/instance"
	"github.com/Carmen-Shannon/emotive-go/engine/effect/pattern"
)

// effectMaterial is the implementation of the EffectMaterial interface.
type effectMaterial struct {
	mu sync.Mutex

	name      string
	anim      animation.Config
	cut       cutout.Config
	timing    instance.Timing
	progress  float32
	glowScale float32

	// Gesture glow animator state: the configured ramp (nil when cleared)
	// and the interpolated glow for the current progress.
	glowConfig  *GlowConfig
	currentGlow float32
}

// Snapshot is the immutable per-frame view of a material's configuration.
// The evaluator takes one at frame start so setters called from another
// goroutine never mutate configuration mid-frame.
type Snapshot struct {
	Name        string
	Animation   animation.Config
	Cutout      cutout.Config
	Timing      instance.Timing
	Progress    float32
	GlowScale   float32
	CurrentGlow float32
}

// EffectMaterial is the configuration store for one elemental material
// instance: the animation archetype, the two-layer cutout, the gesture glow
// ramp, and gesture progress.
//
// All setters follow the effect-configuration error taxonomy: calls on a nil
// material are silent no-ops, numeric inputs are clamped into valid ranges,
// and nothing here returns an error. Callers cannot observe a failure, only
// a possibly-defaulted configuration.
type EffectMaterial interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Animation retrieves the current animation configuration snapshot.
	//
	// Returns:
	//   - animation.Config: the animation configuration
	Animation() animation.Config

	// Cutout retrieves the current cutout configuration snapshot.
	//
	// Returns:
	//   - cutout.Config: the cutout configuration
	Cutout() cutout.Config

	// Timing retrieves the material-level fade constants.
	//
	// Returns:
	//   - instance.Timing: the fade-in/fade-out durations in seconds
	Timing() instance.Timing

	// Progress retrieves the current gesture progress.
	//
	// Returns:
	//   - float32: gesture progress in [0, 1]
	Progress() float32

	// GlowScale retrieves the static glow multiplier.
	//
	// Returns:
	//   - float32: the glow scale, >= 0
	GlowScale() float32

	// CurrentGlow retrieves the gesture-glow value interpolated for the
	// current progress, or 1 when no gesture glow is configured.
	//
	// Returns:
	//   - float32: the interpolated glow value
	CurrentGlow() float32

	// SetAnimation replaces the animation configuration wholesale. A new
	// gesture always installs a fresh snapshot; per-field mutation of a
	// running gesture is not supported.
	//
	// Parameters:
	//   - cfg: the new animation configuration
	SetAnimation(cfg animation.Config)

	// ResetAnimation restores the default animation configuration.
	ResetAnimation()

	// SetCutout replaces the cutout configuration. Numeric fields are
	// clamped into their valid ranges before storage.
	//
	// Parameters:
	//   - cfg: the new cutout configuration
	SetCutout(cfg cutout.Config)

	// SetCutoutStrength is the legacy shorthand: it installs the default
	// cutout configuration with the given strength and the primary layer's
	// pattern set to Cellular.
	//
	// Parameters:
	//   - strength: the cutout strength in [0, 1]
	SetCutoutStrength(strength float32)

	// ResetCutout restores the documented default cutout configuration.
	ResetCutout()

	// SetGestureGlow installs the glow ramp interpolated by UpdateProgress.
	//
	// Parameters:
	//   - cfg: the glow ramp configuration
	SetGestureGlow(cfg GlowConfig)

	// ClearGestureGlow removes the glow ramp and restores the neutral glow of 1.
	ClearGestureGlow()

	// SetGlowScale sets the static glow multiplier. Negative values clamp to 0.
	//
	// Parameters:
	//   - scale: the glow scale
	SetGlowScale(scale float32)

	// UpdateProgress advances gesture progress and re-interpolates the
	// gesture glow through the configured easing curve. Progress is clamped
	// to [0, 1]; monotonicity within a gesture is the caller's convention,
	// not enforced here.
	//
	// Parameters:
	//   - progress: the new gesture progress
	UpdateProgress(progress float32)

	// Snapshot copies the full configuration under the lock for one frame
	// of evaluation.
	//
	// Returns:
	//   - Snapshot: the immutable per-frame configuration view
	Snapshot() Snapshot
}

var _ EffectMaterial = &effectMaterial{}

// NewEffectMaterial creates a new EffectMaterial configured with the
// provided options. Defaults: no animation (TypeNone), cutout disabled,
// fade-in 0.2s, fade-out 0.4s, glow scale 1, no gesture glow.
//
// Parameters:
//   - options: variadic list of EffectMaterialBuilderOption functions to configure the material
//
// Returns:
//   - EffectMaterial: a new EffectMaterial instance
func NewEffectMaterial(options ...EffectMaterialBuilderOption) EffectMaterial {
	m := &effectMaterial{
		anim: animation.DefaultConfig(),
		cut:  cutout.DefaultConfig(),
		timing: instance.Timing{
			FadeInDuration:  0.2,
			FadeOutDuration: 0.4,
		},
		glowScale:   1,
		currentGlow: 1,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *effectMaterial) Name() string {
	if m == nil {
		return ""
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.name
}

func (m *effectMaterial) Animation() animation.Config {
	if m == nil {
		return animation.DefaultConfig()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.anim
}

func (m *effectMaterial) Cutout() cutout.Config {
	if m == nil {
		return cutout.DefaultConfig()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cut
}

func (m *effectMaterial) Timing() instance.Timing {
	if m == nil {
		return instance.Timing{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timing
}

func (m *effectMaterial) Progress() float32 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress
}

func (m *effectMaterial) GlowScale() float32 {
	if m == nil {
		return 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.glowScale
}

func (m *effectMaterial) CurrentGlow() float32 {
	if m == nil {
		return 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentGlow
}

func (m *effectMaterial) SetAnimation(cfg animation.Config) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.anim = cfg
}

func (m *effectMaterial) ResetAnimation() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.anim = animation.DefaultConfig()
}

func (m *effectMaterial) SetCutout(cfg cutout.Config) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cut = cfg.Clamped()
}

func (m *effectMaterial) SetCutoutStrength(strength float32) {
	if m == nil {
		return
	}
	cfg := cutout.DefaultConfig()
	cfg.Strength = common.Clamp01(strength)
	cfg.Layer1.Pattern = pattern.Cellular
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cut = cfg
}

func (m *effectMaterial) ResetCutout() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cut = cutout.DefaultConfig()
}

func (m *effectMaterial) SetGestureGlow(cfg GlowConfig) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg.BaseGlow = max(cfg.BaseGlow, 0)
	cfg.PeakGlow = max(cfg.PeakGlow, 0)
	m.glowConfig = &cfg
	m.currentGlow = cfg.glowAt(m.progress)
}

func (m *effectMaterial) ClearGestureGlow() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.glowConfig = nil
	m.currentGlow = 1
}

func (m *effectMaterial) SetGlowScale(scale float32) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.glowScale = max(scale, 0)
}

func (m *effectMaterial) UpdateProgress(progress float32) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress = common.Clamp01(progress)
	if m.glowConfig != nil {
		m.currentGlow = m.glowConfig.glowAt(m.progress)
	}
}

func (m *effectMaterial) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{
			Animation:   animation.DefaultConfig(),
			Cutout:      cutout.DefaultConfig(),
			GlowScale:   1,
			CurrentGlow: 1,
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Name:        m.name,
		Animation:   m.anim,
		Cutout:      m.cut,
		Timing:      m.timing,
		Progress:    m.progress,
		GlowScale:   m.glowScale,
		CurrentGlow: m.currentGlow,
	}
}
