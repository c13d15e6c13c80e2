// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package upload

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/reshape"
)

func TestPixels_WrapsRGBAWithoutCopy(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 40})

	src := Pixels(img)

	if src.Width != 2 || src.Height != 2 {
		t.Fatalf("Pixels() = %dx%d, want 2x2", src.Width, src.Height)
	}
	if src.Type != reshape.ComponentUByte {
		t.Errorf("Type = %v, want UByte", src.Type)
	}
	if src.RowBytes != img.Stride {
		t.Errorf("RowBytes = %d, want stride %d", src.RowBytes, img.Stride)
	}
	if &src.Data[0] != &img.Pix[0] {
		t.Error("Pixels() copied an *image.RGBA instead of aliasing it")
	}
}

func TestPixels_ConvertsOtherFormats(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	src := Pixels(img)

	if src.Width != 1 || src.Height != 1 {
		t.Fatalf("Pixels() = %dx%d, want 1x1", src.Width, src.Height)
	}
	got := src.Data[:4]
	want := []byte{10, 20, 30, 255}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pixel = %v, want %v", got, want)
		}
	}
}

func TestPixels_OffsetBounds(t *testing.T) {
	base := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	base.SetNRGBA(2, 2, color.NRGBA{R: 77, A: 255})
	sub, _ := base.SubImage(image.Rect(2, 2, 4, 4)).(*image.NRGBA)

	src := Pixels(sub)

	if src.Width != 2 || src.Height != 2 {
		t.Fatalf("Pixels() = %dx%d, want 2x2", src.Width, src.Height)
	}
	if src.Data[0] != 77 {
		t.Errorf("pixel (0,0) red = %d, want 77", src.Data[0])
	}
}

func TestPixels_Nil(t *testing.T) {
	src := Pixels(nil)
	if len(src.Data) != 0 {
		t.Errorf("Pixels(nil) carries %d bytes, want none", len(src.Data))
	}
	if _, err := Stage(src, Layout{Format: reshape.FormatRGBA, Type: reshape.ComponentUByte}); err == nil {
		t.Error("staging a nil-image source should fail")
	}
}

func TestResized(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	src := Resized(img, 4, 2)

	if src.Width != 4 || src.Height != 2 {
		t.Fatalf("Resized() = %dx%d, want 4x2", src.Width, src.Height)
	}
	if len(src.Data) != 4*2*4 {
		t.Errorf("len(Data) = %d, want %d", len(src.Data), 4*2*4)
	}
}

func TestResized_SolidColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			img.SetRGBA(x, y, color.RGBA{R: 100, G: 150, B: 200, A: 255})
		}
	}

	src := Resized(img, 2, 2)

	// Resampling a solid color must reproduce it exactly.
	for i := 0; i < len(src.Data); i += 4 {
		if src.Data[i] != 100 || src.Data[i+1] != 150 || src.Data[i+2] != 200 || src.Data[i+3] != 255 {
			t.Fatalf("pixel %d = %v, want (100 150 200 255)", i/4, src.Data[i:i+4])
		}
	}
}

func TestMipLevels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 3))
	levels := MipLevels(img)

	wantDims := [][2]int{{8, 3}, {4, 1}, {2, 1}, {1, 1}}
	if len(levels) != len(wantDims) {
		t.Fatalf("MipLevels() produced %d levels, want %d", len(levels), len(wantDims))
	}
	for i, want := range wantDims {
		if levels[i].Width != want[0] || levels[i].Height != want[1] {
			t.Errorf("level %d = %dx%d, want %dx%d",
				i, levels[i].Width, levels[i].Height, want[0], want[1])
		}
	}

	// Level 0 aliases the original image.
	if &levels[0].Data[0] != &img.Pix[0] {
		t.Error("level 0 should wrap the original image without copying")
	}
}

func TestMipLevels_Nil(t *testing.T) {
	if levels := MipLevels(nil); levels != nil {
		t.Errorf("MipLevels(nil) = %v, want nil", levels)
	}
}

// Staging a mip level end to end: resized source through the reshape
// engine into an aligned staging buffer.
func TestMipLevelStaging(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	levels := MipLevels(img)

	for _, level := range levels {
		staged, err := Stage(level, Layout{
			Format:       reshape.FormatRGBA,
			Type:         reshape.ComponentUByte,
			RowAlignment: CopyRowAlignment,
		})
		if err != nil {
			t.Fatalf("Stage(level %dx%d) error = %v", level.Width, level.Height, err)
		}
		if staged.BytesPerRow%CopyRowAlignment != 0 {
			t.Errorf("BytesPerRow = %d, want multiple of %d", staged.BytesPerRow, CopyRowAlignment)
		}
	}
}
