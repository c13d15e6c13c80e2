// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package upload

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/reshape"
)

// Pixels wraps an image.Image as an upload Source in the engine's
// canonical layout: 4 interleaved 8-bit channels, red first.
//
// *image.RGBA inputs are wrapped without copying (the Source aliases
// img.Pix, stride preserved); everything else is redrawn into a fresh
// RGBA buffer. Returns a Source with no data if img is nil or empty.
func Pixels(img image.Image) *Source {
	if img == nil {
		return &Source{Type: reshape.ComponentUByte}
	}
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok {
		return &Source{
			Data:     rgba.Pix,
			Type:     reshape.ComponentUByte,
			Width:    b.Dx(),
			Height:   b.Dy(),
			RowBytes: rgba.Stride,
		}
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	return &Source{
		Data:     rgba.Pix,
		Type:     reshape.ComponentUByte,
		Width:    b.Dx(),
		Height:   b.Dy(),
		RowBytes: rgba.Stride,
	}
}

// Resized redraws img at width x height and wraps it as a Source.
// Uses Catmull-Rom resampling, the quality/speed trade-off gg uses for
// bitmap glyph scaling.
func Resized(img image.Image, width, height int) *Source {
	if img == nil || width <= 0 || height <= 0 {
		return &Source{Type: reshape.ComponentUByte}
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return Pixels(dst)
}

// MipLevels builds the full mip chain for img: level 0 is the original
// size, each following level halves both dimensions (minimum 1) until
// 1x1. Levels are resampled from the original image, not from each
// other, so repeated box-filter drift does not accumulate.
func MipLevels(img image.Image) []*Source {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	levels := []*Source{Pixels(img)}
	for w > 1 || h > 1 {
		w = max(1, w/2)
		h = max(1, h/2)
		levels = append(levels, Resized(img, w, h))
	}
	return levels
}
