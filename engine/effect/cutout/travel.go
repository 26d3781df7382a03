package cutout

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/emotive-go/common"
)

// TravelMode selects how a layer's sampling position sweeps over time,
// making a static pattern appear to move.
type TravelMode int32

const (
	// TravelInherit is the per-layer sentinel: use the primary travel configuration.
	TravelInherit TravelMode = iota - 1
	// TravelNone leaves the sampling position untouched.
	TravelNone
	// TravelAngular rotates the XZ sampling position over the gesture.
	TravelAngular
	// TravelRadial scales the sampling position outward then inward.
	TravelRadial
	// TravelSpiral composes rotation with a mild outward scale.
	TravelSpiral
	// TravelOscillate drives a half-rotation back-and-forth oscillation.
	TravelOscillate
	// TravelWave scales the position by a distance-dependent sine, reading
	// as a ripple propagating through the pattern.
	TravelWave
)

// TravelDirection resolves gesture progress into travel progress before the
// mode is applied.
type TravelDirection int32

const (
	// DirectionForward maps progress directly: progress * speed.
	DirectionForward TravelDirection = iota
	// DirectionReverse runs the sweep backwards: (1 - progress) * speed.
	DirectionReverse
	// DirectionPingPong folds progress into a period-1 triangle wave.
	DirectionPingPong
)

// travelProgress resolves direction before speed: direction shapes progress
// first, then speed scales the result.
func travelProgress(dir TravelDirection, progress, speed float32) float32 {
	switch dir {
	case DirectionReverse:
		return (1 - progress) * speed
	case DirectionPingPong:
		return common.PingPong(progress) * speed
	default:
		return progress * speed
	}
}

// Travel remaps a sampling position according to the travel mode before it
// reaches the pattern library.
//
// Parameters:
//   - pos: the sampling position in effect-local space
//   - mode: the travel mode to apply
//   - speed: the travel speed multiplier
//   - progress: gesture progress in [0, 1]
//   - dir: the travel direction resolution
//
// Returns:
//   - [3]float32: the transformed sampling position
func Travel(pos [3]float32, mode TravelMode, speed, progress float32, dir TravelDirection) [3]float32 {
	tp := travelProgress(dir, progress, speed)
	switch mode {
	case TravelAngular:
		return rotateXZ(pos, tp*2*math32.Pi)
	case TravelRadial:
		s := 1 + (tp-0.5)*2
		return [3]float32{pos[0] * s, pos[1] * s, pos[2] * s}
	case TravelSpiral:
		s := 1 + tp*0.25
		p := rotateXZ(pos, tp*2*math32.Pi)
		return [3]float32{p[0] * s, p[1] * s, p[2] * s}
	case TravelOscillate:
		return rotateXZ(pos, math32.Sin(tp*2*math32.Pi)*math32.Pi)
	case TravelWave:
		r := math32.Hypot(pos[0], pos[2])
		s := 1 + 0.2*math32.Sin(r*4-tp*2*math32.Pi)
		return [3]float32{pos[0] * s, pos[1] * s, pos[2] * s}
	default:
		return pos
	}
}

// rotateXZ rotates a position around the vertical axis by angle radians.
func rotateXZ(pos [3]float32, angle float32) [3]float32 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return [3]float32{
		pos[0]*c - pos[2]*s,
		pos[1],
		pos[0]*s + pos[2]*c,
	}
}

// String returns the lowercase name of the travel mode.
//
// Returns:
//   - string: the mode name
func (m TravelMode) String() string {
	switch m {
	case TravelInherit:
		return "inherit"
	case TravelAngular:
		return "angular"
	case TravelRadial:
		return "radial"
	case TravelSpiral:
		return "spiral"
	case TravelOscillate:
		return "oscillate"
	case TravelWave:
		return "wave"
	default:
		return "none"
	}
}

// ParseTravelMode resolves a travel mode name. Unknown names fall back to
// TravelNone.
//
// Parameters:
//   - name: the lowercase mode name
//
// Returns:
//   - TravelMode: the matching mode, or TravelNone
func ParseTravelMode(name string) TravelMode {
	switch name {
	case "angular":
		return TravelAngular
	case "radial":
		return TravelRadial
	case "spiral":
		return TravelSpiral
	case "oscillate":
		return TravelOscillate
	case "wave":
		return TravelWave
	default:
		return TravelNone
	}
}

// String returns the lowercase name of the travel direction.
//
// Returns:
//   - string: the direction name
func (d TravelDirection) String() string {
	switch d {
	case DirectionReverse:
		return "reverse"
	case DirectionPingPong:
		return "pingpong"
	default:
		return "forward"
	}
}

// ParseTravelDirection resolves a direction name. Unknown names fall back to
// DirectionForward.
//
// Parameters:
//   - name: the lowercase direction name
//
// Returns:
//   - TravelDirection: the matching direction, or DirectionForward
func ParseTravelDirection(name string) TravelDirection {
	switch name {
	case "reverse":
		return DirectionReverse
	case "pingpong":
		return DirectionPingPong
	default:
		return DirectionForward
	}
}
