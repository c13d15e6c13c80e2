// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package reshape converts interleaved pixel data between channel
// layouts and component representations for GPU texture upload.
//
// Graphics APIs are picky about the data they accept: a device may
// take only 4-channel RGBA when the caller has 3-channel RGB, require
// float pixels where the caller has bytes, or expect blue-first byte
// order. This package adapts caller-supplied pixel buffers into the
// exact layout a device accepts:
//
//   - channel padding and truncation (RGB <-> RGBA) within one
//     component representation, with synthesized channels filled at
//     full scale ([Reshape])
//   - per-channel numeric conversion between representations (8-bit
//     unsigned, 32-bit float, 32-bit signed and unsigned integer),
//     with an optional red/blue swizzle ([ConvertImage])
//   - a validating entry point that dispatches over a destination
//     descriptor and drives the right kernel across all rows
//     ([ReshapeImage])
//
// The engine owns no memory: it reads from and writes into regions
// supplied by the caller, and holds no state between calls. All
// functions are safe for concurrent use as long as each call operates
// on disjoint buffer regions.
//
// Rows are addressed by byte stride. Source and destination strides
// are independent; destination rows may carry alignment padding, which
// the engine never writes pixel data into.
//
// The upload subpackage builds on this engine to stage pixel data for
// wgpu-style texture writes.
package reshape
