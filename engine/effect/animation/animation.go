// package animation implements the shader-animation archetypes: nine motion
// types that map gesture progress and a vertex position to a position offset
// and a visibility scalar. Dispatch goes through a fixed strategy table so
// each archetype is independently testable.
package animation

// Type identifies one of the nine animation archetypes.
type Type int32

const (
	// TypeNone applies no offset and full visibility.
	TypeNone Type = iota
	// TypeRotatingArc reveals N angular arcs sweeping around the vertical axis.
	TypeRotatingArc
	// TypeRipplePulse expands concentric rings outward from the center.
	TypeRipplePulse
	// TypeDripFall elongates vertically and drifts downward like a falling droplet.
	TypeDripFall
	// TypeFlowStream drives a traveling wave along a flow direction.
	TypeFlowStream
	// TypeSurfaceShimmer delegates entirely to the fragment shading stage.
	TypeSurfaceShimmer
	// TypeSpiralTwist rotates positions helically around the vertical axis.
	TypeSpiralTwist
	// TypePulseBeat scales uniformly with a sinusoidal heartbeat.
	TypePulseBeat
	// TypeFragmentBurst explodes positions outward with accelerating distance.
	TypeFragmentBurst

	typeCount = int(TypeFragmentBurst) + 1
)

// Config is the immutable per-gesture animation configuration. A new gesture
// replaces the whole snapshot; nothing in here is mutated mid-gesture.
type Config struct {
	Type Type

	// Rotating arc parameters.
	ArcCount int32
	ArcWidth float32
	ArcSpeed float32

	// Ripple parameters.
	RippleCount     int32
	RippleSpeed     float32
	RippleAmplitude float32

	// Flow stream direction in effect-local space.
	FlowDir [3]float32

	// Spiral twist parameters.
	SpiralTightness float32
	SpiralSpeed     float32

	// Pulse beat parameters.
	PulseFrequency float32
	PulseAmplitude float32
}

// DefaultConfig returns the documented default animation configuration:
// TypeNone with usable parameter defaults for every archetype, so switching
// the type alone produces a sensible motion.
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	return Config{
		Type:            TypeNone,
		ArcCount:        2,
		ArcWidth:        0.35,
		ArcSpeed:        1,
		RippleCount:     3,
		RippleSpeed:     1,
		RippleAmplitude: 0.05,
		FlowDir:         [3]float32{1, 0, 0},
		SpiralTightness: 1,
		SpiralSpeed:     1,
		PulseFrequency:  2,
		PulseAmplitude:  0.1,
	}
}

// Result is the archetype output for one vertex.
type Result struct {
	// Offset is added to the vertex position in effect-local space.
	Offset [3]float32
	// Visibility is the archetype's own mask in [0, 1], multiplied with the
	// cutout mask downstream.
	Visibility float32
}

// driverFunc is one archetype implementation: a pure function of the
// configuration, vertex position, gesture progress, and per-instance seed.
type driverFunc func(cfg Config, pos [3]float32, progress, seed float32) Result

// drivers is the dispatch table, indexed by Type.
var drivers = [typeCount]driverFunc{
	TypeNone:           driveNone,
	TypeRotatingArc:    driveRotatingArc,
	TypeRipplePulse:    driveRipplePulse,
	TypeDripFall:       driveDripFall,
	TypeFlowStream:     driveFlowStream,
	TypeSurfaceShimmer: driveNone,
	TypeSpiralTwist:    driveSpiralTwist,
	TypePulseBeat:      drivePulseBeat,
	TypeFragmentBurst:  driveFragmentBurst,
}

func init() {
	for i, d := range drivers {
		if d == nil {
			panic("animation: missing driver for type " + Type(i).String())
		}
	}
}

// Evaluate runs the archetype driver for the configured type. Out-of-range
// types behave as TypeNone.
//
// Parameters:
//   - cfg: the animation configuration snapshot
//   - pos: the vertex position in effect-local space
//   - progress: gesture progress in [0, 1]
//   - seed: the stable per-instance random seed driving phase offsets
//
// Returns:
//   - Result: the position offset and visibility scalar
func Evaluate(cfg Config, pos [3]float32, progress, seed float32) Result {
	if cfg.Type < 0 || int(cfg.Type) >= typeCount {
		return driveNone(cfg, pos, progress, seed)
	}
	return drivers[cfg.Type](cfg, pos, progress, seed)
}

// String returns the name of the animation type.
//
// Returns:
//   - string: the type name, or "none" for unknown values
func (t Type) String() string {
	switch t {
	case TypeRotatingArc:
		return "rotatingArc"
	case TypeRipplePulse:
		return "ripplePulse"
	case TypeDripFall:
		return "dripFall"
	case TypeFlowStream:
		return "flowStream"
	case TypeSurfaceShimmer:
		return "surfaceShimmer"
	case TypeSpiralTwist:
		return "spiralTwist"
	case TypePulseBeat:
		return "pulseBeat"
	case TypeFragmentBurst:
		return "fragmentBurst"
	default:
		return "none"
	}
}
