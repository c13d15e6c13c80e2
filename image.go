// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reshape

import "math"

// ConvertImage converts a 4-channel interleaved image of S components
// into dstChannels interleaved D components, row by row.
//
// The source always carries exactly 4 channels per pixel. Each channel
// value is rescaled from S's dynamic range into D's:
//
//	out = in * fullScale(D) / fullScale(S)
//
// computed in a widened float64 intermediate, rounded to nearest and
// clamped to D's representable range for integer destinations. A
// full-scale source value therefore maps exactly onto a full-scale
// destination value for every supported pair. With swizzle set,
// source channels 0 and 2 are exchanged before being placed (red/blue
// order swap); channels 1 and 3 are unaffected.
//
// Destination channels beyond the source's 4 are filled with D's
// full-scale value, mirroring Reshape; with dstChannels limited to 3
// or 4 that branch never runs. Rows advance by the independent byte
// strides srcRowBytes and dstRowBytes; bytes past width pixels within
// a destination row are left untouched, so alignment padding never
// receives pixel data.
func ConvertImage[D, S linearComponent](dst, src []byte, srcRowBytes, dstRowBytes, width, dstChannels, height int, swizzle bool) {
	const srcChannels = 4
	srcSize := componentSize[S]()
	dstSize := componentSize[D]()
	scale := fullScale64[D]() / fullScale64[S]()
	fill := fullScale[D]()
	minChannels := min(srcChannels, dstChannels)

	idx := [srcChannels]int{0, 1, 2, 3}
	if swizzle {
		idx = [srcChannels]int{2, 1, 0, 3}
	}

	for row := range height {
		si := row * srcRowBytes
		di := row * dstRowBytes
		for range width {
			for c := range minChannels {
				v := loadComponent[S](src, si+idx[c]*srcSize)
				storeComponent(dst, di+c*dstSize, convertValue[D](v, scale))
			}
			for c := srcChannels; c < dstChannels; c++ {
				storeComponent(dst, di+c*dstSize, fill)
			}
			si += srcChannels * srcSize
			di += dstChannels * dstSize
		}
	}
}

// convertValue rescales one component by the precomputed full-scale
// ratio. Integer destinations round to nearest and clamp; Go leaves
// out-of-range float-to-int conversions unspecified, so clamping is
// mandatory, not defensive.
func convertValue[D, S linearComponent](v S, scale float64) D {
	f := float64(v) * scale
	var out D
	switch p := any(&out).(type) {
	case *float32:
		*p = float32(f)
	case *uint8:
		*p = uint8(clampF64(math.Round(f), 0, math.MaxUint8))
	case *int32:
		*p = int32(clampF64(math.Round(f), math.MinInt32, math.MaxInt32))
	case *uint32:
		*p = uint32(clampF64(math.Round(f), 0, math.MaxUint32))
	}
	return out
}

// clampF64 limits v to [lo, hi].
func clampF64(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// imageKernel is the signature shared by all ConvertImage instantiations.
type imageKernel func(dst, src []byte, srcRowBytes, dstRowBytes, width, dstChannels, height int, swizzle bool)

// imageKernels maps (destination type, source type) to the concrete
// conversion kernel. The Half row and column stay nil: half data has
// no linear full-scale multiplier, and ReshapeImage rejects it.
var imageKernels = [componentTypeCount][componentTypeCount]imageKernel{
	ComponentUByte: {
		ComponentUByte: ConvertImage[uint8, uint8],
		ComponentFloat: ConvertImage[uint8, float32],
		ComponentInt:   ConvertImage[uint8, int32],
		ComponentUInt:  ConvertImage[uint8, uint32],
	},
	ComponentFloat: {
		ComponentUByte: ConvertImage[float32, uint8],
		ComponentFloat: ConvertImage[float32, float32],
		ComponentInt:   ConvertImage[float32, int32],
		ComponentUInt:  ConvertImage[float32, uint32],
	},
	ComponentInt: {
		ComponentUByte: ConvertImage[int32, uint8],
		ComponentFloat: ConvertImage[int32, float32],
		ComponentInt:   ConvertImage[int32, int32],
		ComponentUInt:  ConvertImage[int32, uint32],
	},
	ComponentUInt: {
		ComponentUByte: ConvertImage[uint32, uint8],
		ComponentFloat: ConvertImage[uint32, float32],
		ComponentInt:   ConvertImage[uint32, int32],
		ComponentUInt:  ConvertImage[uint32, uint32],
	},
}

// ReshapeImage reshapes a 4-channel interleaved source image into the
// destination described by dst, converting component representations
// as needed.
//
// The source is srcType components, 4 per pixel, rows srcRowBytes
// apart. The destination row stride is recomputed from the descriptor
// (see [PixelBuffer.RowBytes]); dst.Data must hold height rows at that
// stride. With swizzle set, source channels 0 and 2 are exchanged.
//
// ReshapeImage returns false, leaving the destination untouched, when
// the destination format is not RGB or RGBA or when either component
// type falls outside the supported conversion set (UByte, Float, Int,
// UInt). Callers needing to distinguish failure causes should check
// the format and types, or [PixelBuffer.Validate], before calling.
func ReshapeImage(dst *PixelBuffer, srcType ComponentType, src []byte, srcRowBytes, width, height int, swizzle bool) bool {
	dstChannels := dst.Format.Channels()
	if dstChannels == 0 {
		Logger().Debug("reshape: unsupported destination format", "format", dst.Format)
		return false
	}
	if !dst.Type.IsValid() || !srcType.IsValid() {
		Logger().Debug("reshape: unsupported component type",
			"dstType", dst.Type, "srcType", srcType)
		return false
	}
	kernel := imageKernels[dst.Type][srcType]
	if kernel == nil {
		Logger().Debug("reshape: no conversion kernel",
			"dstType", dst.Type, "srcType", srcType)
		return false
	}
	kernel(dst.Data, src, srcRowBytes, dst.RowBytes(width), width, dstChannels, height, swizzle)
	return true
}
