// package pattern provides the procedural scalar-mask library used by the
// cutout compositor. Each pattern maps a sampling position, a scale, and a
// time value to a visibility mask in [0, 1], where 1.0 is fully visible and
// 0.0 is fully cut. Patterns are continuous in time; the only sharp features
// are intentional smoothstep thresholds.
package pattern

// Pattern identifies one of the procedural mask generators, or Disabled.
type Pattern int32

const (
	// Disabled bypasses the library entirely; the layer contributes full visibility.
	Disabled Pattern = iota - 1
	// Cellular produces organic blob-shaped holes.
	Cellular
	// Streaks produces angular stripes aligned to a flow direction.
	Streaks
	// Radial produces bursts emanating from the center.
	Radial
	// Voronoi produces angular shattered-glass cells.
	Voronoi
	// Waves produces interference-pattern bands.
	Waves
	// Embers produces upward-drifting, height-biased burning-hole clusters.
	Embers
	// Spiral produces N-armed rotating spiral bands.
	Spiral
	// Dissolve produces edge-biased erosion that spreads over time.
	Dissolve
	// Cracks produces thin branching fracture lines.
	Cracks

	patternCount = int(Cracks) + 1
)

// Generator is a pure mask function. Implementations must return values in
// [0, 1] and be continuous in time.
type Generator func(pos [3]float32, scale, time float32) float32

// generators is the dispatch table, indexed by Pattern. Exhaustiveness is
// checked at init time so a new Pattern constant without a generator fails fast.
var generators = [patternCount]Generator{
	Cellular: cellular,
	Streaks:  streaks,
	Radial:   radial,
	Voronoi:  voronoi,
	Waves:    waves,
	Embers:   embers,
	Spiral:   spiral,
	Dissolve: dissolve,
	Cracks:   cracks,
}

func init() {
	for i, g := range generators {
		if g == nil {
			panic("pattern: missing generator for pattern " + Pattern(i).String())
		}
	}
}

// Evaluate runs the generator for p at the given sampling position.
// Disabled and out-of-range patterns return 1.0 (fully visible), so an
// unconfigured layer is a true no-op.
//
// Parameters:
//   - p: the pattern to evaluate
//   - pos: the sampling position in effect-local space
//   - scale: the pattern scale factor (larger = finer features)
//   - time: the local time driving pattern motion
//
// Returns:
//   - float32: the visibility mask in [0, 1]
func Evaluate(p Pattern, pos [3]float32, scale, time float32) float32 {
	if p < 0 || int(p) >= patternCount {
		return 1
	}
	return generators[p](pos, scale, time)
}

// String returns the lowercase name of the pattern.
//
// Returns:
//   - string: the pattern name, or "disabled" for Disabled/unknown values
func (p Pattern) String() string {
	switch p {
	case Cellular:
		return "cellular"
	case Streaks:
		return "streaks"
	case Radial:
		return "radial"
	case Voronoi:
		return "voronoi"
	case Waves:
		return "waves"
	case Embers:
		return "embers"
	case Spiral:
		return "spiral"
	case Dissolve:
		return "dissolve"
	case Cracks:
		return "cracks"
	default:
		return "disabled"
	}
}

// Parse resolves a pattern name to its Pattern value. Unknown names resolve
// to Disabled rather than failing; effect configuration is best-effort.
//
// Parameters:
//   - name: the lowercase pattern name
//
// Returns:
//   - Pattern: the matching pattern, or Disabled
func Parse(name string) Pattern {
	switch name {
	case "cellular":
		return Cellular
	case "streaks":
		return Streaks
	case "radial":
		return Radial
	case "voronoi", "cracked":
		return Voronoi
	case "waves":
		return Waves
	case "embers":
		return Embers
	case "spiral":
		return Spiral
	case "dissolve":
		return Dissolve
	case "cracks":
		return Cracks
	default:
		return Disabled
	}
}
