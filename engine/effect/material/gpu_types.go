package material

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/emotive-go/common"
)

// GPUEffectParamsSource is the canonical WGSL definition of the EffectParams
// struct. Matches GPUEffectParams layout exactly (96 bytes, std430 aligned).
//
//go:embed assets/effect_params.wgsl
var GPUEffectParamsSource string

// GPUEffectParams is the GPU-aligned mirror of one material's effect
// configuration, uploaded once per frame for the shading stage.
// Size: 96 bytes (24 scalars = 6 x vec4, std430 aligned).
type GPUEffectParams struct {
	AnimationType   int32   // offset 0
	GestureProgress float32 // offset 4
	GlowScale       float32 // offset 8
	CurrentGlow     float32 // offset 12
	CutoutStrength  float32 // offset 16
	CutoutPhase     float32 // offset 20
	Blend           int32   // offset 24
	StrengthCurve   int32   // offset 28
	Pattern1        int32   // offset 32
	Scale1          float32 // offset 36
	Weight1         float32 // offset 40
	Travel1         int32   // offset 44
	Pattern2        int32   // offset 48
	Scale2          float32 // offset 52
	Weight2         float32 // offset 56
	Travel2         int32   // offset 60
	TravelSpeed     float32 // offset 64
	TravelDir       int32   // offset 68
	FadeInDuration  float32 // offset 72
	FadeOutDuration float32 // offset 76
	BellPeakAt      float32 // offset 80
	_pad0           float32 // offset 84
	_pad1           float32 // offset 88
	_pad2           float32 // offset 92
}

// ParamsFromSnapshot flattens a material snapshot into the GPU-aligned
// parameter block. Layer travel modes are resolved here so the shader never
// sees the inherit sentinel.
//
// Parameters:
//   - s: the per-frame material snapshot
//
// Returns:
//   - GPUEffectParams: the flattened parameter block
func ParamsFromSnapshot(s Snapshot) GPUEffectParams {
	cut := s.Cutout
	travel1 := cut.Layer1.Travel
	if travel1 < 0 {
		travel1 = cut.Travel
	}
	travel2 := cut.Layer2.Travel
	if travel2 < 0 {
		travel2 = cut.Travel
	}
	return GPUEffectParams{
		AnimationType:   int32(s.Animation.Type),
		GestureProgress: s.Progress,
		GlowScale:       s.GlowScale,
		CurrentGlow:     s.CurrentGlow,
		CutoutStrength:  cut.Strength,
		CutoutPhase:     cut.Phase,
		Blend:           int32(cut.Blend),
		StrengthCurve:   int32(cut.StrengthCurve),
		Pattern1:        int32(cut.Layer1.Pattern),
		Scale1:          cut.Layer1.Scale,
		Weight1:         cut.Layer1.Weight,
		Travel1:         int32(travel1),
		Pattern2:        int32(cut.Layer2.Pattern),
		Scale2:          cut.Layer2.Scale,
		Weight2:         cut.Layer2.Weight,
		Travel2:         int32(travel2),
		TravelSpeed:     cut.TravelSpeed,
		TravelDir:       int32(cut.TravelDir),
		FadeInDuration:  s.Timing.FadeInDuration,
		FadeOutDuration: s.Timing.FadeOutDuration,
		BellPeakAt:      cut.BellPeakAt,
	}
}

// Size returns the size of the GPUEffectParams struct in bytes.
//
// Returns:
//   - int: The size of the struct in bytes.
func (g *GPUEffectParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal reinterprets the GPUEffectParams struct as a byte slice suitable for GPU upload.
// WARNING: The returned slice shares memory with the struct - do not modify.
//
// Returns:
//   - []byte: 96-byte view of the struct, ready for GPU upload.
func (g *GPUEffectParams) Marshal() []byte {
	return common.StructToBytes(g)
}

// GPUInstanceStateSource is the canonical WGSL definition of the
// InstanceState struct. Matches GPUInstanceState layout exactly (32 bytes,
// std430 aligned).
//
//go:embed assets/instance_state.wgsl
var GPUInstanceStateSource string

// GPUInstanceState is the GPU-aligned per-instance evaluation output: the
// vertex offset at the instance anchor, the composite cutout mask, the
// lifecycle opacity, and the binary visibility decision.
// Size: 32 bytes (vec3 + 5 scalars, std430 aligned).
type GPUInstanceState struct {
	Offset           [3]float32 // offset 0: anchor position offset
	Mask             float32    // offset 12: continuous cutout mask in [0, 1]
	CompositeOpacity float32    // offset 16: lifecycle opacity in [0, 1]
	LocalAge         float32    // offset 20: trail-lagged instance age in seconds
	Visible          uint32     // offset 24: 1 when mask passes the binary threshold
	Seed             float32    // offset 28: per-instance random seed
}

// Size returns the size of the GPUInstanceState struct in bytes.
//
// Returns:
//   - int: The size of the struct in bytes.
func (g *GPUInstanceState) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal reinterprets the GPUInstanceState struct as a byte slice suitable for GPU upload.
// WARNING: The returned slice shares memory with the struct - do not modify.
//
// Returns:
//   - []byte: 32-byte view of the struct, ready for GPU upload.
func (g *GPUInstanceState) Marshal() []byte {
	return common.StructToBytes(g)
}
