// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reshape

import (
	"encoding/binary"
	"math"
)

// Component is the set of storage types a channel can use.
//
// ComponentHalf data is carried as uint16 raw bits; the other four
// members map directly onto their ComponentType counterparts.
type Component interface {
	uint8 | uint16 | float32 | int32 | uint32
}

// linearComponent is the subset of Component whose full-scale value is
// a linear multiplier, i.e. the types the numeric conversion path
// supports. Half is excluded: its full-scale constant is a bit
// pattern, not a magnitude.
type linearComponent interface {
	uint8 | float32 | int32 | uint32
}

// componentSize returns the storage width of T in bytes.
func componentSize[T Component]() int {
	var v T
	switch any(v).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	default:
		return 4
	}
}

// loadComponent reads one component from b at byte offset off.
// Components are stored in host byte order, matching the memory layout
// GPU APIs consume.
func loadComponent[T Component](b []byte, off int) T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = b[off]
	case *uint16:
		*p = binary.NativeEndian.Uint16(b[off:])
	case *float32:
		*p = math.Float32frombits(binary.NativeEndian.Uint32(b[off:]))
	case *int32:
		*p = int32(binary.NativeEndian.Uint32(b[off:]))
	case *uint32:
		*p = binary.NativeEndian.Uint32(b[off:])
	}
	return v
}

// storeComponent writes one component to b at byte offset off.
func storeComponent[T Component](b []byte, off int, v T) {
	switch x := any(v).(type) {
	case uint8:
		b[off] = x
	case uint16:
		binary.NativeEndian.PutUint16(b[off:], x)
	case float32:
		binary.NativeEndian.PutUint32(b[off:], math.Float32bits(x))
	case int32:
		binary.NativeEndian.PutUint32(b[off:], uint32(x))
	case uint32:
		binary.NativeEndian.PutUint32(b[off:], x)
	}
}
