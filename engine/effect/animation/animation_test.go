package animation

import (
	"testing"

	"github.com/chewxy/math32"
)

const eps = 1e-5

func almostEqual(a, b float32) bool {
	return math32.Abs(a-b) < eps
}

var allTypes = []Type{
	TypeNone, TypeRotatingArc, TypeRipplePulse, TypeDripFall, TypeFlowStream,
	TypeSurfaceShimmer, TypeSpiralTwist, TypePulseBeat, TypeFragmentBurst,
}

func TestNoneIsIdentity(t *testing.T) {
	cfg := DefaultConfig()
	got := Evaluate(cfg, [3]float32{1, 2, 3}, 0.5, 0.7)
	if got.Offset != [3]float32{} {
		t.Errorf("TypeNone produced an offset: %v", got.Offset)
	}
	if got.Visibility != 1 {
		t.Errorf("TypeNone visibility = %v, want 1", got.Visibility)
	}
}

func TestSurfaceShimmerLeavesVerticesAlone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Type = TypeSurfaceShimmer
	got := Evaluate(cfg, [3]float32{0.4, -0.1, 0.9}, 0.8, 0.3)
	if got.Offset != [3]float32{} || got.Visibility != 1 {
		t.Errorf("surface shimmer should be a vertex no-op, got %+v", got)
	}
}

func TestVisibilityInRangeAcrossTypes(t *testing.T) {
	positions := [][3]float32{
		{0, 0, 0},
		{1, 0.5, -0.5},
		{-0.3, 1.2, 0.7},
	}
	for _, typ := range allTypes {
		cfg := DefaultConfig()
		cfg.Type = typ
		for _, pos := range positions {
			for _, progress := range []float32{0, 0.25, 0.5, 0.75, 1} {
				for _, seed := range []float32{0, 0.42, 0.99} {
					got := Evaluate(cfg, pos, progress, seed)
					if got.Visibility < 0 || got.Visibility > 1 {
						t.Errorf("%s visibility out of range at pos=%v progress=%v seed=%v: %v",
							typ, pos, progress, seed, got.Visibility)
					}
					for _, c := range got.Offset {
						if c != c {
							t.Errorf("%s produced NaN offset at pos=%v progress=%v", typ, pos, progress)
						}
					}
				}
			}
		}
	}
}

func TestRotatingArcBandScalesWithWidth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Type = TypeRotatingArc
	cfg.ArcCount = 1
	cfg.ArcWidth = 0.8

	// With seed 0 and progress 0 the sweep is zero, so the angular proximity
	// scalar is 0.5 + 0.5*sin(angle) and positions can be picked directly.
	if got := Evaluate(cfg, [3]float32{0, 0, 1}, 0, 0); !almostEqual(got.Visibility, 1) {
		t.Errorf("arc center visibility = %v, want 1", got.Visibility)
	}
	if got := Evaluate(cfg, [3]float32{0, 0, -1}, 0, 0); !almostEqual(got.Visibility, 0) {
		t.Errorf("opposite side visibility = %v, want 0", got.Visibility)
	}

	// Proximity 0.3 sits exactly halfway through the 0.8-width arc's
	// transition band, which starts at 0.2 and spans a quarter of the width.
	edge := math32.Asin(-0.4)
	pos := [3]float32{math32.Cos(edge), 0, math32.Sin(edge)}
	if got := Evaluate(cfg, pos, 0, 0); !almostEqual(got.Visibility, 0.5) {
		t.Errorf("band midpoint visibility = %v, want 0.5", got.Visibility)
	}

	// A narrower arc moves its band inward; the same position falls fully
	// outside and is invisible.
	cfg.ArcWidth = 0.2
	if got := Evaluate(cfg, pos, 0, 0); !almostEqual(got.Visibility, 0) {
		t.Errorf("narrow arc visibility at same position = %v, want 0", got.Visibility)
	}
}

func TestCountGuardsPreventDivideByZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Type = TypeRotatingArc
	cfg.ArcCount = 0
	got := Evaluate(cfg, [3]float32{1, 0, 0}, 0.3, 0)
	if got.Visibility != got.Visibility {
		t.Fatal("rotating arc with zero count produced NaN")
	}

	cfg = DefaultConfig()
	cfg.Type = TypeRipplePulse
	cfg.RippleCount = -2
	got = Evaluate(cfg, [3]float32{1, 0, 0}, 0.3, 0)
	if got.Visibility != got.Visibility {
		t.Fatal("ripple pulse with negative count produced NaN")
	}
}

func TestDripFallAccumulatesDownwardDrift(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Type = TypeDripFall
	pos := [3]float32{0.2, 0.5, 0.1}
	early := Evaluate(cfg, pos, 0.2, 0)
	late := Evaluate(cfg, pos, 0.9, 0)
	if late.Offset[1] >= early.Offset[1] {
		t.Errorf("drip fall should drift further down over progress: early=%v late=%v",
			early.Offset[1], late.Offset[1])
	}
	if early.Visibility != 1 || late.Visibility != 1 {
		t.Error("drip fall should stay fully visible")
	}
}

func TestSpiralTwistPreservesHeightAndRadius(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Type = TypeSpiralTwist
	pos := [3]float32{0.6, 1.1, -0.3}
	got := Evaluate(cfg, pos, 0.4, 0)
	if got.Offset[1] != 0 {
		t.Errorf("spiral twist moved the vertex vertically: %v", got.Offset[1])
	}
	nx := pos[0] + got.Offset[0]
	nz := pos[2] + got.Offset[2]
	r0 := pos[0]*pos[0] + pos[2]*pos[2]
	r1 := nx*nx + nz*nz
	if !almostEqual(r0, r1) {
		t.Errorf("spiral twist changed the radius: %v -> %v", r0, r1)
	}
	if got.Visibility != 1 {
		t.Errorf("spiral twist visibility = %v, want 1", got.Visibility)
	}
}

func TestPulseBeatRestsAtPhaseZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Type = TypePulseBeat
	got := Evaluate(cfg, [3]float32{1, 1, 1}, 0, 0)
	for _, c := range got.Offset {
		if !almostEqual(c, 0) {
			t.Errorf("pulse beat at progress 0 seed 0 should have no offset, got %v", got.Offset)
		}
	}
	if !almostEqual(got.Visibility, 0.5) {
		t.Errorf("pulse beat visibility at phase zero = %v, want 0.5", got.Visibility)
	}
}

func TestFragmentBurstDissipates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Type = TypeFragmentBurst
	pos := [3]float32{0.5, 0.5, 0}
	if got := Evaluate(cfg, pos, 0, 0); !almostEqual(got.Visibility, 1) {
		t.Errorf("burst at progress 0 should be fully visible, got %v", got.Visibility)
	}
	if got := Evaluate(cfg, pos, 0.5, 0); !almostEqual(got.Visibility, 0.5) {
		t.Errorf("burst at progress 0.5 visibility = %v, want 0.5", got.Visibility)
	}
	if got := Evaluate(cfg, pos, 1, 0); !almostEqual(got.Visibility, 0) {
		t.Errorf("burst at progress 1 should be invisible, got %v", got.Visibility)
	}
	// A vertex at the exact center must not produce NaN from normalization.
	center := Evaluate(cfg, [3]float32{}, 0.5, 0)
	for _, c := range center.Offset {
		if c != c {
			t.Fatal("burst at center produced NaN offset")
		}
	}
}

func TestOutOfRangeTypeBehavesAsNone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Type = Type(42)
	got := Evaluate(cfg, [3]float32{1, 2, 3}, 0.5, 0.5)
	if got.Offset != [3]float32{} || got.Visibility != 1 {
		t.Errorf("out-of-range type should behave as TypeNone, got %+v", got)
	}
}
