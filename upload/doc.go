// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package upload stages pixel data for GPU texture writes.
//
// It sits between caller-supplied images and a wgpu-style device: the
// caller describes the pixels it has (channel order, component type,
// row stride) and the layout the device accepts, and Stage produces a
// staging buffer in exactly that layout by driving the reshape engine
// — padding RGB to RGBA, swapping red/blue byte order, converting
// component representations, and aligning rows for copy commands.
//
// Staged buffers can be pushed into textures created by a gogpu
// context through the gpucontext texture interfaces.
package upload
