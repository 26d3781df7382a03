package pattern

import (
	"github.com/chewxy/math32"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/Carmen-Shannon/emotive-go/common"
)

// Shared simplex noise source for the organic generators. The seed is fixed
// so a pattern evaluated twice at the same (pos, scale, time) yields the same
// mask; per-instance variation comes from the caller's seed-driven phase, not
// from reseeding the basis.
var noise = opensimplex.NewNormalized(1337)

// fbm2 sums octaves of normalized simplex noise, halving amplitude and
// doubling frequency per octave. Output stays in [0, 1].
func fbm2(x, y float32, octaves int) float32 {
	var total, amplitude, frequency, maxValue float32 = 0, 1, 1, 0
	for range octaves {
		total += float32(noise.Eval2(float64(x*frequency), float64(y*frequency))) * amplitude
		maxValue += amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	return total / maxValue
}

// cellular carves organic blob holes from low-frequency simplex noise.
func cellular(pos [3]float32, scale, time float32) float32 {
	n := fbm2(pos[0]*scale+time*0.3, (pos[1]+pos[2])*scale, 3)
	return common.Smoothstep(0.35, 0.6, n)
}

// streaks cuts angular stripes swept along the flow direction, broken up by
// a touch of noise so the stripes read as organic rather than ruled.
func streaks(pos [3]float32, scale, time float32) float32 {
	band := math32.Sin((pos[0]+pos[1]*0.5)*scale*4 - time*1.5)
	n := fbm2(pos[0]*scale, pos[1]*scale*0.5+time*0.2, 2)
	return common.Smoothstep(-0.2, 0.3, band+n*0.4-0.2)
}

// radial cuts bursts emanating from the center: rays in angle, eroded with
// distance so holes open near the rim first.
func radial(pos [3]float32, scale, time float32) float32 {
	a := math32.Atan2(pos[2], pos[0])
	r := math32.Hypot(pos[0], pos[2]) * scale
	rays := math32.Sin(a*6 + time)
	return common.Smoothstep(-0.4, 0.4, rays-r*0.5+0.5)
}

// voronoiF12 returns the distances to the nearest (f1) and second-nearest
// (f2) feature points of a jittered grid around the sampling point.
func voronoiF12(x, y float32) (f1, f2 float32) {
	cx := math32.Floor(x)
	cy := math32.Floor(y)
	f1, f2 = 8, 8
	for ox := float32(-1); ox <= 1; ox++ {
		for oy := float32(-1); oy <= 1; oy++ {
			px := cx + ox + common.Hash21(cx+ox, cy+oy)
			py := cy + oy + common.Hash21(cy+oy, cx+ox)
			dx := px - x
			dy := py - y
			d := dx*dx + dy*dy
			if d < f1 {
				f2 = f1
				f1 = d
			} else if d < f2 {
				f2 = d
			}
		}
	}
	return math32.Sqrt(f1), math32.Sqrt(f2)
}

// voronoi produces angular shattered-glass cells: cell interiors stay
// visible, the borders between cells are cut. The lattice drifts slowly so
// the shatter pattern is alive without discontinuities.
func voronoi(pos [3]float32, scale, time float32) float32 {
	x := pos[0]*scale + time*0.1
	y := (pos[1]+pos[2]*0.5)*scale - time*0.07
	f1, f2 := voronoiF12(x, y)
	return common.Smoothstep(0.02, 0.12, f2-f1)
}

// waves overlays two traveling sine fields into interference bands.
func waves(pos [3]float32, scale, time float32) float32 {
	w1 := math32.Sin(pos[0]*scale*3 + time)
	w2 := math32.Sin(pos[2]*scale*3.7 - time*0.7)
	return common.Smoothstep(-0.5, 0.5, w1*w2+0.25)
}

// embers cuts clusters of burning holes that drift upward; the bias term
// opens more holes near the top of the effect, like rising sparks.
func embers(pos [3]float32, scale, time float32) float32 {
	n := fbm2(pos[0]*scale*2, (pos[1]-time*0.5)*scale*2, 3)
	bias := common.Clamp01(pos[1]*0.5 + 0.5)
	return 1 - common.Smoothstep(0.55, 0.75, n*bias+bias*0.15)
}

// spiral produces rotating N-armed spiral bands around the vertical axis.
func spiral(pos [3]float32, scale, time float32) float32 {
	a := math32.Atan2(pos[2], pos[0])
	r := math32.Hypot(pos[0], pos[2]) * scale
	arms := math32.Sin(a*3 + r*4 - time*2)
	return common.Smoothstep(-0.3, 0.3, arms)
}

// dissolve erodes from the rim inward over time: the noise threshold rises
// with both distance from center and elapsed time, so edges crumble first
// and the erosion front spreads.
func dissolve(pos [3]float32, scale, time float32) float32 {
	r := math32.Sqrt(pos[0]*pos[0]+pos[1]*pos[1]+pos[2]*pos[2]) * scale
	n := fbm2(pos[0]*scale*2+7.3, pos[1]*scale*2-2.1, 3)
	front := common.Clamp01(time*0.25)
	return common.Smoothstep(-0.1, 0.15, n-(r*0.4+front)*0.8+0.4)
}

// cracks cuts thin fracture lines along voronoi cell borders. The lattice is
// warped by slow noise so the lines branch and wander instead of tiling.
func cracks(pos [3]float32, scale, time float32) float32 {
	warp := fbm2(pos[0]*scale+time*0.05, pos[1]*scale, 2)
	x := pos[0]*scale*1.5 + warp*0.6
	y := (pos[1]+pos[2]*0.5)*scale*1.5 - warp*0.4
	f1, f2 := voronoiF12(x, y)
	return common.Smoothstep(0, 0.05, f2-f1)
}
