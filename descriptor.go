// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reshape

import (
	"errors"
	"fmt"
)

// Common errors for descriptor validation.
var (
	// ErrInvalidFormat is returned when the pixel format is not recognized.
	ErrInvalidFormat = errors.New("reshape: invalid pixel format")

	// ErrInvalidType is returned when the component type is not recognized.
	ErrInvalidType = errors.New("reshape: invalid component type")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("reshape: invalid dimensions")

	// ErrInvalidAlignment is returned when the row alignment is negative.
	ErrInvalidAlignment = errors.New("reshape: invalid row alignment")

	// ErrBufferTooSmall is returned when the destination buffer cannot
	// hold height rows at the computed row stride.
	ErrBufferTooSmall = errors.New("reshape: destination buffer too small")
)

// PixelBuffer describes a destination region for a reshape operation.
//
// The buffer is owned by the caller; the engine only writes pixel data
// into it for the duration of one call. The row byte stride is always
// recomputed from Format, Type, Stride and Alignment — a PixelBuffer
// carries no independent row byte count that could disagree with them.
type PixelBuffer struct {
	// Data is the destination region. It must hold at least
	// height * RowBytes(width) bytes.
	Data []byte

	// Format is the channel layout of destination pixels.
	Format Format

	// Type is the component representation of destination channels.
	Type ComponentType

	// Stride is the row length in pixels. Zero means "use the image
	// width". A stride larger than the width leaves a tail of
	// untouched pixels in every row.
	Stride int

	// Alignment rounds each row up to this byte boundary. Zero or one
	// means tightly packed. Typical values are 4 (GL-style unpack
	// alignment) or 256 (wgpu copy rows).
	Alignment int
}

// RowBytes returns the destination row stride in bytes for an image of
// the given width: stride-or-width pixels at the format's channel
// count and the type's component width, rounded up to Alignment.
func (d *PixelBuffer) RowBytes(width int) int {
	pixels := d.Stride
	if pixels == 0 {
		pixels = width
	}
	row := pixels * d.Format.Channels() * d.Type.Size()
	if d.Alignment > 1 {
		row = alignUp(row, d.Alignment)
	}
	return row
}

// Validate reports whether the descriptor can receive a width x height
// image. ReshapeImage performs the same format and type checks but
// reports only a boolean; Validate is for callers that want diagnosis.
func (d *PixelBuffer) Validate(width, height int) error {
	if !d.Format.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidFormat, d.Format)
	}
	if !d.Type.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidType, d.Type)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if d.Alignment < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAlignment, d.Alignment)
	}
	if need := height * d.RowBytes(width); len(d.Data) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(d.Data), need)
	}
	return nil
}

// alignUp rounds n up to the next multiple of align.
func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}
