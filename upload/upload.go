// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package upload

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/reshape"
)

// CopyRowAlignment is the row alignment wgpu requires for
// buffer-to-texture copies (COPY_BYTES_PER_ROW_ALIGNMENT).
const CopyRowAlignment = 256

// Common errors returned by staging and upload operations.
var (
	// ErrNoSourceData is returned when the source carries no pixels.
	ErrNoSourceData = errors.New("upload: source has no pixel data")

	// ErrSourceTooSmall is returned when the source buffer cannot hold
	// the declared dimensions.
	ErrSourceTooSmall = errors.New("upload: source buffer too small")

	// ErrUnsupportedLayout is returned when the reshape engine has no
	// kernel for the requested source/destination combination.
	ErrUnsupportedLayout = errors.New("upload: unsupported source/destination layout")

	// ErrNoTextureFormat is returned when the staged layout has no
	// wgpu-compatible texture format.
	ErrNoTextureFormat = errors.New("upload: layout has no wgpu texture format")

	// ErrNotUpdatable is returned when a texture does not implement
	// gpucontext.TextureUpdater.
	ErrNotUpdatable = errors.New("upload: texture does not support updates")

	// ErrNilCreator is returned when a nil TextureCreator is passed.
	ErrNilCreator = errors.New("upload: nil texture creator")

	// ErrNotRGBA8 is returned when texture creation is requested for a
	// staged layout other than 8-bit RGBA.
	ErrNotRGBA8 = errors.New("upload: texture creation requires an RGBA UByte staging layout")
)

// Source describes caller-supplied pixel data awaiting upload.
type Source struct {
	// Data holds the interleaved pixels.
	Data []byte

	// Type is the component representation of each channel.
	Type reshape.ComponentType

	// Width and Height are the image dimensions in pixels.
	Width, Height int

	// Channels is the number of interleaved channels per pixel, 3 or
	// 4. Zero means 4. 3-channel sources are widened to 4 channels
	// (full-scale alpha) before conversion.
	Channels int

	// RowBytes is the byte distance between row starts.
	// Zero means tightly packed (Width * Channels * Type.Size()).
	RowBytes int

	// BGRA indicates the pixels arrive blue-first. Staging swizzles
	// them into red-first order.
	BGRA bool
}

// channels returns the effective channel count.
func (s *Source) channels() int {
	if s.Channels == 0 {
		return 4
	}
	return s.Channels
}

// rowBytes returns the effective source row stride.
func (s *Source) rowBytes() int {
	if s.RowBytes != 0 {
		return s.RowBytes
	}
	return s.Width * s.channels() * s.Type.Size()
}

// validate checks the source against its declared dimensions.
func (s *Source) validate() error {
	if len(s.Data) == 0 || s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d, %d bytes", ErrNoSourceData, s.Width, s.Height, len(s.Data))
	}
	if c := s.channels(); c != 3 && c != 4 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedLayout, c)
	}
	packed := s.Width * s.channels() * s.Type.Size()
	row := s.rowBytes()
	if row < packed {
		return fmt.Errorf("%w: row stride %d below packed row %d", ErrSourceTooSmall, row, packed)
	}
	// The last row needs only its packed span, not the full stride.
	if need := (s.Height-1)*row + packed; len(s.Data) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrSourceTooSmall, len(s.Data), need)
	}
	return nil
}

// widened returns s as a tightly packed 4-channel source, padding each
// pixel with a full-scale alpha. Returns s unchanged when it already
// has 4 channels.
func (s *Source) widened() *Source {
	if s.channels() == 4 {
		return s
	}

	var padRow func(dst, src []byte)
	switch s.Type {
	case reshape.ComponentUByte:
		padRow = func(dst, src []byte) { reshape.Reshape[uint8](dst, src, 3, 4) }
	case reshape.ComponentHalf:
		padRow = func(dst, src []byte) { reshape.Reshape[uint16](dst, src, 3, 4) }
	case reshape.ComponentFloat:
		padRow = func(dst, src []byte) { reshape.Reshape[float32](dst, src, 3, 4) }
	case reshape.ComponentInt:
		padRow = func(dst, src []byte) { reshape.Reshape[int32](dst, src, 3, 4) }
	case reshape.ComponentUInt:
		padRow = func(dst, src []byte) { reshape.Reshape[uint32](dst, src, 3, 4) }
	default:
		return s // invalid type, left for ReshapeImage to reject
	}

	size := s.Type.Size()
	srcRow := s.rowBytes()
	packed := s.Width * 3 * size
	wideRow := s.Width * 4 * size
	out := make([]byte, s.Height*wideRow)
	for y := range s.Height {
		padRow(out[y*wideRow:(y+1)*wideRow], s.Data[y*srcRow:y*srcRow+packed])
	}
	return &Source{
		Data:   out,
		Type:   s.Type,
		Width:  s.Width,
		Height: s.Height,
		BGRA:   s.BGRA,
	}
}

// Layout describes the pixel layout a device accepts.
type Layout struct {
	// Format is the destination channel layout.
	Format reshape.Format

	// Type is the destination component representation.
	Type reshape.ComponentType

	// RowAlignment rounds each staged row up to this byte boundary.
	// Use CopyRowAlignment for wgpu buffer-to-texture copies; zero
	// means tightly packed.
	RowAlignment int
}

// Staged is pixel data reshaped into a device-acceptable layout,
// ready for a texture write.
type Staged struct {
	// Data is the staging buffer, Height rows of BytesPerRow bytes.
	Data []byte

	// Width and Height are the image dimensions in pixels.
	Width, Height int

	// BytesPerRow is the staged row stride, including alignment padding.
	BytesPerRow int

	// Format is the destination channel layout.
	Format reshape.Format

	// Type is the destination component representation.
	Type reshape.ComponentType
}

// TextureFormat returns the wgpu texture format matching the staged
// layout. ok is false when no wgpu format exists for the combination
// (wgpu has no 3-channel formats — that is what staging to RGBA is
// for).
func (s *Staged) TextureFormat() (format gputypes.TextureFormat, ok bool) {
	return textureFormat(s.Format, s.Type)
}

// textureFormat maps a (Format, ComponentType) pair onto the
// wgpu-compatible gputypes format.
func textureFormat(f reshape.Format, t reshape.ComponentType) (gputypes.TextureFormat, bool) {
	if f != reshape.FormatRGBA {
		return 0, false
	}
	switch t {
	case reshape.ComponentUByte:
		return gputypes.TextureFormatRGBA8Unorm, true
	case reshape.ComponentHalf:
		return gputypes.TextureFormatRGBA16Float, true
	case reshape.ComponentFloat:
		return gputypes.TextureFormatRGBA32Float, true
	case reshape.ComponentInt:
		return gputypes.TextureFormatRGBA32Sint, true
	case reshape.ComponentUInt:
		return gputypes.TextureFormatRGBA32Uint, true
	default:
		return 0, false
	}
}

// Stage reshapes src into a freshly allocated staging buffer in the
// given layout. The source is not modified; the staging buffer is
// owned by the caller.
//
// Pick the layout for the destination: RowAlignment CopyRowAlignment
// for buffers headed into a wgpu buffer-to-texture copy, zero
// (tightly packed) for [CreateTexture], which rejects padded rows.
func Stage(src *Source, layout Layout) (*Staged, error) {
	if err := src.validate(); err != nil {
		return nil, err
	}
	src = src.widened()

	dst := reshape.PixelBuffer{
		Format:    layout.Format,
		Type:      layout.Type,
		Alignment: layout.RowAlignment,
	}
	bytesPerRow := dst.RowBytes(src.Width)
	if bytesPerRow <= 0 {
		return nil, fmt.Errorf("%w: format %v, type %v", ErrUnsupportedLayout, layout.Format, layout.Type)
	}
	dst.Data = make([]byte, src.Height*bytesPerRow)

	if !reshape.ReshapeImage(&dst, src.Type, src.Data, src.rowBytes(), src.Width, src.Height, src.BGRA) {
		return nil, fmt.Errorf("%w: %v/%v from %v", ErrUnsupportedLayout, layout.Format, layout.Type, src.Type)
	}

	reshape.Logger().Debug("upload: staged pixels",
		"width", src.Width, "height", src.Height,
		"srcType", src.Type, "dstFormat", layout.Format, "dstType", layout.Type,
		"bytesPerRow", bytesPerRow, "swizzle", src.BGRA)

	return &Staged{
		Data:        dst.Data,
		Width:       src.Width,
		Height:      src.Height,
		BytesPerRow: bytesPerRow,
		Format:      layout.Format,
		Type:        layout.Type,
	}, nil
}

// Update pushes staged pixels into an existing GPU texture.
// The texture must implement gpucontext.TextureUpdater, which gogpu
// textures do.
func Update(texture any, staged *Staged) error {
	updater, ok := texture.(gpucontext.TextureUpdater)
	if !ok {
		return ErrNotUpdatable
	}
	if err := updater.UpdateData(staged.Data); err != nil {
		return fmt.Errorf("upload: texture update failed: %w", err)
	}
	return nil
}

// CreateTexture creates a GPU texture from staged pixels through a
// gpucontext.TextureCreator (obtained from a gogpu renderer).
//
// NewTextureFromRGBA consumes 8-bit RGBA, so the staged layout must be
// FormatRGBA with ComponentUByte and tightly packed rows: stage with
// Layout{Format: FormatRGBA, Type: ComponentUByte} and RowAlignment
// zero.
func CreateTexture(creator gpucontext.TextureCreator, staged *Staged) (any, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}
	if staged.Format != reshape.FormatRGBA || staged.Type != reshape.ComponentUByte ||
		staged.BytesPerRow != staged.Width*4 {
		return nil, ErrNotRGBA8
	}
	tex, err := creator.NewTextureFromRGBA(staged.Width, staged.Height, staged.Data)
	if err != nil {
		return nil, fmt.Errorf("upload: texture creation failed: %w", err)
	}
	return tex, nil
}
