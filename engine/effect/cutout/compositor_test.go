package cutout

import (
	"testing"

	"github.com/Carmen-Shannon/emotive-go/engine/effect/pattern"
)

func TestBlendAlgebra(t *testing.T) {
	tests := []struct {
		mode   BlendMode
		m1, m2 float32
		want   float32
	}{
		{BlendMultiply, 1, 1, 1},
		{BlendMultiply, 0, 0.7, 0},
		{BlendMultiply, 0.5, 0.5, 0.25},
		{BlendMin, 0.3, 0.8, 0.3},
		{BlendMax, 0.3, 0.8, 0.8},
		{BlendAdd, 1, 1, 1},
		{BlendAdd, 0.5, 0.5, 0},
		{BlendAdd, 0.9, 0.6, 0.5},
	}
	for _, tt := range tests {
		got := Blend(tt.mode, tt.m1, tt.m2)
		if !almostEqual(got, tt.want) {
			t.Errorf("Blend(%s, %v, %v) = %v, want %v", tt.mode, tt.m1, tt.m2, got, tt.want)
		}
	}
}

func TestBlendCommutative(t *testing.T) {
	pairs := [][2]float32{{0.2, 0.9}, {0, 1}, {0.4, 0.4}}
	for _, mode := range []BlendMode{BlendMin, BlendMax, BlendMultiply, BlendAdd} {
		for _, pr := range pairs {
			if Blend(mode, pr[0], pr[1]) != Blend(mode, pr[1], pr[0]) {
				t.Errorf("%s is not commutative for %v", mode, pr)
			}
		}
	}
}

func TestBlendFullVisibilityNeverCuts(t *testing.T) {
	for _, mode := range []BlendMode{BlendMultiply, BlendMin, BlendMax, BlendAdd} {
		if got := Blend(mode, 1, 1); got != 1 {
			t.Errorf("Blend(%s, 1, 1) = %v, want 1", mode, got)
		}
	}
}

func TestEvaluateShortCircuits(t *testing.T) {
	pos := [3]float32{0.5, 0.5, 0.5}

	// Negligible strength.
	cfg := DefaultConfig()
	cfg.Strength = 0.01
	cfg.Layer1.Pattern = pattern.Cellular
	got := Evaluate(cfg, pos, 1, 0.5)
	if got.Mask != 1 || !got.Visible {
		t.Errorf("negligible strength should short-circuit, got %+v", got)
	}

	// Disabled primary layer, even with full strength and an active layer2.
	cfg = DefaultConfig()
	cfg.Strength = 1
	cfg.Layer2.Pattern = pattern.Embers
	got = Evaluate(cfg, pos, 1, 0.5)
	if got.Mask != 1 || !got.Visible {
		t.Errorf("disabled primary layer should short-circuit, got %+v", got)
	}
}

func TestEvaluateZeroWeightBypassesLayer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strength = 1
	cfg.Layer1.Pattern = pattern.Embers
	cfg.Layer1.Weight = 0
	got := Evaluate(cfg, [3]float32{0.3, 0.8, -0.2}, 2, 0.5)
	if got.Mask != 1 || !got.Visible {
		t.Errorf("zero-weight layer should contribute full visibility, got %+v", got)
	}
}

func TestEvaluateEnvelopeZeroPoints(t *testing.T) {
	// Bell curve at progress 0 and 1 has multiplier 0, so the final mask is
	// exactly 1 regardless of the pattern underneath.
	cfg := DefaultConfig()
	cfg.Strength = 1
	cfg.Layer1.Pattern = pattern.Embers
	cfg.StrengthCurve = CurveBell
	cfg.BellPeakAt = 0.5

	for _, progress := range []float32{0, 1} {
		got := Evaluate(cfg, [3]float32{0.4, 0.9, 0.1}, 3, progress)
		if got.Mask != 1 || !got.Visible {
			t.Errorf("bell zero point at progress %v: got %+v, want full visibility", progress, got)
		}
	}

	// At the peak the envelope is 1 and the mask follows the raw pattern.
	atPeak := Evaluate(cfg, [3]float32{0.4, 0.9, 0.1}, 3, 0.5)
	if atPeak.Mask < 0 || atPeak.Mask > 1 {
		t.Errorf("mask out of range at bell peak: %v", atPeak.Mask)
	}
}

func TestEvaluateMaskInRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strength = 0.8
	cfg.Layer1 = Layer{Pattern: pattern.Voronoi, Scale: 2, Weight: 1, Travel: TravelAngular, TravelSpeed: 1}
	cfg.Layer2 = Layer{Pattern: pattern.Waves, Scale: 1.5, Weight: 0.6, Travel: TravelInherit}
	cfg.Blend = BlendMin
	cfg.TravelDir = DirectionPingPong

	for _, progress := range []float32{0, 0.25, 0.5, 0.75, 1} {
		for _, time := range []float32{0, 1.3, 6} {
			got := Evaluate(cfg, [3]float32{0.7, -0.4, 0.2}, time, progress)
			if got.Mask < 0 || got.Mask > 1 {
				t.Errorf("mask out of range at progress=%v time=%v: %v", progress, time, got.Mask)
			}
			if got.Visible != (got.Mask >= 0.5) {
				t.Errorf("visible flag disagrees with threshold: %+v", got)
			}
		}
	}
}

func TestLayerTravelInheritance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Travel = TravelAngular
	cfg.TravelSpeed = 2

	mode, speed := cfg.resolveTravel(cfg.Layer1)
	if mode != TravelAngular || speed != 2 {
		t.Errorf("inheriting layer resolved to (%v, %v), want (angular, 2)", mode, speed)
	}

	l := Layer{Pattern: pattern.Waves, Scale: 1, Weight: 1, Travel: TravelWave, TravelSpeed: 0.5}
	mode, speed = cfg.resolveTravel(l)
	if mode != TravelWave || speed != 0.5 {
		t.Errorf("overriding layer resolved to (%v, %v), want (wave, 0.5)", mode, speed)
	}

	// A zero layer speed is the unset sentinel: the mode override holds but
	// the speed still inherits from the primary configuration.
	l = Layer{Pattern: pattern.Waves, Scale: 1, Weight: 1, Travel: TravelWave, TravelSpeed: 0}
	mode, speed = cfg.resolveTravel(l)
	if mode != TravelWave || speed != 2 {
		t.Errorf("zero-speed layer resolved to (%v, %v), want (wave, 2)", mode, speed)
	}
}

func TestClampedConfig(t *testing.T) {
	cfg := Config{
		Strength:        1.5,
		Layer1:          Layer{Pattern: pattern.Cellular, Scale: -3, Weight: 2, Travel: TravelInherit},
		Layer2:          Layer{Pattern: pattern.Disabled, Scale: 0, Weight: -1, Travel: TravelInherit},
		TravelSpeed:     -2,
		FadeInDuration:  0,
		FadeOutDuration: 5,
		BellPeakAt:      1,
	}.Clamped()

	if cfg.Strength != 1 {
		t.Errorf("strength not clamped: %v", cfg.Strength)
	}
	if cfg.Layer1.Scale <= 0 || cfg.Layer2.Scale <= 0 {
		t.Errorf("scales not raised above zero: %v, %v", cfg.Layer1.Scale, cfg.Layer2.Scale)
	}
	if cfg.Layer1.Weight != 1 || cfg.Layer2.Weight != 0 {
		t.Errorf("weights not clamped: %v, %v", cfg.Layer1.Weight, cfg.Layer2.Weight)
	}
	if cfg.TravelSpeed != 0 {
		t.Errorf("travel speed not clamped: %v", cfg.TravelSpeed)
	}
	if cfg.FadeInDuration != 0.01 || cfg.FadeOutDuration != 1 {
		t.Errorf("durations not clamped: %v, %v", cfg.FadeInDuration, cfg.FadeOutDuration)
	}
	if cfg.BellPeakAt != 0.99 {
		t.Errorf("bell peak not clamped: %v", cfg.BellPeakAt)
	}
}

func TestParseBlendModeFallback(t *testing.T) {
	for _, m := range []BlendMode{BlendMultiply, BlendMin, BlendMax, BlendAdd} {
		if got := ParseBlendMode(m.String()); got != m {
			t.Errorf("ParseBlendMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if got := ParseBlendMode("screen"); got != BlendMultiply {
		t.Errorf("unknown blend mode resolved to %v, want BlendMultiply", got)
	}
}
