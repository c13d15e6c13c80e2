// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reshape

// Full-scale values per component type. The full-scale value is the
// representation of "maximum/saturated" magnitude and serves two
// roles: it fills channels synthesized during padding (an opaque alpha
// of 1.0, 0xFF, ...), and it is the normalization bound when rescaling
// a value from one representation's dynamic range into another's.
const (
	fullScaleUByte uint8   = 0xff
	fullScaleHalf  uint16  = 0x3c00 // 1.0 in half-float bits
	fullScaleFloat float32 = 1.0
	fullScaleInt   int32   = 0x7fffffff
	fullScaleUInt  uint32  = 0xffffffff
)

// fullScale returns the full-scale value of T at its native width.
// Resolved per instantiation, not per pixel.
func fullScale[T Component]() T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = fullScaleUByte
	case *uint16:
		*p = fullScaleHalf
	case *float32:
		*p = fullScaleFloat
	case *int32:
		*p = fullScaleInt
	case *uint32:
		*p = fullScaleUInt
	}
	return v
}

// fullScale64 returns the full-scale magnitude of T as a float64, for
// use as a normalization numerator or denominator. Every value is
// exactly representable (2^32-1 < 2^53). Only defined for the linear
// types; Half's constant is a bit pattern, not a magnitude.
func fullScale64[T linearComponent]() float64 {
	var v T
	switch any(v).(type) {
	case uint8:
		return float64(fullScaleUByte)
	case float32:
		return float64(fullScaleFloat)
	case int32:
		return float64(fullScaleInt)
	default:
		return float64(fullScaleUInt)
	}
}
