package animation

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/emotive-go/common"
)

func driveNone(_ Config, _ [3]float32, _, _ float32) Result {
	return Result{Visibility: 1}
}

// driveRotatingArc reveals N angular arcs that sweep at ArcSpeed revolutions
// per full gesture. ArcWidth sets the angular coverage of each arc, and the
// smooth transition band at the arc boundary spans a quarter of ArcWidth, so
// wider arcs also get proportionally softer edges. Inside an arc visibility
// is 1, outside it is 0.
func driveRotatingArc(cfg Config, pos [3]float32, progress, seed float32) Result {
	count := max(cfg.ArcCount, 1)
	a := math32.Atan2(pos[2], pos[0])
	sweep := progress*cfg.ArcSpeed*2*math32.Pi + seed*2*math32.Pi
	s := 0.5 + 0.5*math32.Sin(a*float32(count)-sweep)
	width := common.Clamp(cfg.ArcWidth, 0.01, 1)
	band := width * 0.25
	vis := common.Smoothstep(1-width, 1-width+band, s)
	return Result{Visibility: vis}
}

// driveRipplePulse expands concentric rings from the center at RippleSpeed.
// Visibility is boosted at ring crests and the crests push vertices upward.
func driveRipplePulse(cfg Config, pos [3]float32, progress, seed float32) Result {
	count := max(cfg.RippleCount, 1)
	r := math32.Hypot(pos[0], pos[2])
	phase := (r-progress*cfg.RippleSpeed)*float32(count)*2*math32.Pi + seed*2*math32.Pi
	w := math32.Sin(phase)
	crest := max(w, 0)
	return Result{
		Offset:     [3]float32{0, crest * cfg.RippleAmplitude, 0},
		Visibility: common.Clamp01(0.6 + 0.4*w),
	}
}

// driveDripFall elongates vertically with progress while compressing
// horizontally to preserve apparent volume, accumulates downward drift, and
// adds a horizontal wobble that grows as the drip falls.
func driveDripFall(_ Config, pos [3]float32, progress, seed float32) Result {
	stretch := 1 + progress*0.6
	squash := 1 / math32.Sqrt(stretch)
	drift := -progress * progress * 0.5
	wobble := math32.Sin(progress*10+seed*2*math32.Pi) * 0.05 * progress
	return Result{
		Offset: [3]float32{
			pos[0]*(squash-1) + wobble,
			pos[1]*(stretch-1) + drift,
			pos[2] * (squash - 1),
		},
		Visibility: 1,
	}
}

// driveFlowStream projects the position onto the flow axis and drives a
// traveling wave along it; visibility follows the wave phase.
func driveFlowStream(cfg Config, pos [3]float32, progress, seed float32) Result {
	d := normalize(cfg.FlowDir)
	along := pos[0]*d[0] + pos[1]*d[1] + pos[2]*d[2]
	phase := along*3 - progress*2*math32.Pi + seed*2*math32.Pi
	w := math32.Sin(phase)
	amp := w * 0.05
	return Result{
		Offset:     [3]float32{d[0] * amp, d[1] * amp, d[2] * amp},
		Visibility: common.Clamp01(0.5 + 0.5*w),
	}
}

// driveSpiralTwist rotates the position around the vertical axis by an angle
// proportional to height plus progress times speed, producing a helical twist.
func driveSpiralTwist(cfg Config, pos [3]float32, progress, _ float32) Result {
	ang := pos[1]*cfg.SpiralTightness + progress*cfg.SpiralSpeed*2*math32.Pi
	c := math32.Cos(ang)
	s := math32.Sin(ang)
	return Result{
		Offset: [3]float32{
			pos[0]*c - pos[2]*s - pos[0],
			0,
			pos[0]*s + pos[2]*c - pos[2],
		},
		Visibility: 1,
	}
}

// drivePulseBeat scales uniformly with a sinusoid at PulseFrequency beats
// per gesture; visibility tracks the same sinusoid.
func drivePulseBeat(cfg Config, pos [3]float32, progress, seed float32) Result {
	phase := progress*cfg.PulseFrequency*2*math32.Pi + seed*2*math32.Pi
	w := math32.Sin(phase)
	s := cfg.PulseAmplitude * w
	return Result{
		Offset:     [3]float32{pos[0] * s, pos[1] * s, pos[2] * s},
		Visibility: common.Clamp01(0.5 + 0.5*w),
	}
}

// driveFragmentBurst explodes the position outward along its own direction
// from center with quadratically accelerating distance, adds a tumbling
// rotation, and fades visibility linearly as the burst dissipates.
func driveFragmentBurst(_ Config, pos [3]float32, progress, seed float32) Result {
	dir := normalize(pos)
	dist := progress * progress
	tumble := progress * (2 + seed) * math32.Pi
	c := math32.Cos(tumble)
	s := math32.Sin(tumble)
	burst := [3]float32{
		pos[0] + dir[0]*dist,
		pos[1] + dir[1]*dist,
		pos[2] + dir[2]*dist,
	}
	return Result{
		Offset: [3]float32{
			burst[0]*c - burst[2]*s - pos[0],
			burst[1] - pos[1],
			burst[0]*s + burst[2]*c - pos[2],
		},
		Visibility: common.Clamp01(1 - progress),
	}
}

// normalize returns the unit vector for v, or the up axis when v is
// degenerate (a vertex exactly at the burst center).
func normalize(v [3]float32) [3]float32 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
