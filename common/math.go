package common

import (
	"unsafe"

	"github.com/chewxy/math32"
)

// Clamp restricts v to the inclusive range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: the lower bound
//   - hi: the upper bound
//
// Returns:
//   - float32: v clamped into [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to the inclusive range [0, 1].
//
// Parameters:
//   - v: the value to clamp
//
// Returns:
//   - float32: v clamped into [0, 1]
func Clamp01(v float32) float32 {
	return Clamp(v, 0, 1)
}

// Lerp linearly interpolates between a and b by t.
// t is not clamped; callers clamp first when they need a bounded result.
//
// Parameters:
//   - a: the value at t = 0
//   - b: the value at t = 1
//   - t: the interpolation factor
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Smoothstep performs a Hermite interpolation between 0 and 1 as x moves
// across [edge0, edge1]. Output saturates to exactly 0 below edge0 and
// exactly 1 above edge1.
//
// Parameters:
//   - edge0: the lower edge of the transition
//   - edge1: the upper edge of the transition
//   - x: the input value
//
// Returns:
//   - float32: the smoothed value in [0, 1]
func Smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Fract returns the fractional part of x, always in [0, 1).
//
// Parameters:
//   - x: the input value
//
// Returns:
//   - float32: x minus floor(x)
func Fract(x float32) float32 {
	return x - math32.Floor(x)
}

// PingPong folds t into a triangle wave with period 1: 0 -> 1 over the first
// half period, 1 -> 0 over the second. Used for ping-pong travel direction.
//
// Parameters:
//   - t: the input value
//
// Returns:
//   - float32: the folded value in [0, 1]
func PingPong(t float32) float32 {
	return 1 - math32.Abs(2*Fract(t)-1)
}

// Hash21 maps a 2D coordinate to a pseudo-random scalar in [0, 1).
// Uses the classic sine-fract construction; stable across calls for the
// same input, which is what the cellular pattern generators need.
//
// Parameters:
//   - x: the first coordinate
//   - y: the second coordinate
//
// Returns:
//   - float32: a deterministic pseudo-random value in [0, 1)
func Hash21(x, y float32) float32 {
	return Fract(math32.Sin(x*127.1+y*311.7) * 43758.5453)
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}
