// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reshape

// Reshape pads or truncates interleaved channel data within a single
// component representation T.
//
// src is treated as a flat sequence of pixels of srcChannels
// interleaved T components each; trailing bytes that do not form a
// whole pixel are ignored. For each pixel, min(srcChannels,
// dstChannels) channels are copied verbatim. When dstChannels exceeds
// srcChannels the remaining destination channels are filled with T's
// full-scale value (an opaque alpha); when it is smaller the extra
// source channels are dropped. No rescaling occurs.
//
// dst must hold at least pixelCount*dstChannels components. Reshape
// holds no state and is safe for concurrent use on disjoint regions;
// src and dst must not overlap.
func Reshape[T Component](dst, src []byte, srcChannels, dstChannels int) {
	size := componentSize[T]()
	pixels := (len(src) / size) / srcChannels
	minChannels := min(srcChannels, dstChannels)

	copyBytes := minChannels * size
	srcPixelBytes := srcChannels * size
	dstPixelBytes := dstChannels * size

	fill := fullScale[T]()
	si, di := 0, 0
	for range pixels {
		copy(dst[di:di+copyBytes], src[si:si+copyBytes])
		for c := srcChannels; c < dstChannels; c++ {
			storeComponent(dst, di+c*size, fill)
		}
		si += srcPixelBytes
		di += dstPixelBytes
	}
}
