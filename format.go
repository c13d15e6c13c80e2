// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reshape

// Format represents the channel layout of destination pixels.
//
// Only the two layouts that differ in channel count are modeled here;
// byte-order variants (BGRA) are expressed through the swizzle flag on
// the conversion entry points instead of separate formats.
type Format uint8

const (
	// FormatRGB is 3-channel interleaved data, no alpha.
	FormatRGB Format = iota

	// FormatRGBA is 4-channel interleaved data.
	FormatRGBA

	// formatCount is the number of formats (for internal use).
	formatCount
)

// Channels returns the number of interleaved channels per pixel,
// or 0 if the format is unknown.
func (f Format) Channels() int {
	switch f {
	case FormatRGB:
		return 3
	case FormatRGBA:
		return 4
	default:
		return 0
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}

// ComponentType represents the numeric storage type of one channel.
type ComponentType uint8

const (
	// ComponentUByte is an 8-bit unsigned integer channel.
	ComponentUByte ComponentType = iota

	// ComponentHalf is a 16-bit half-float channel, handled as raw
	// bits. It participates in channel padding and truncation but not
	// in numeric conversion.
	ComponentHalf

	// ComponentFloat is a 32-bit IEEE float channel.
	ComponentFloat

	// ComponentInt is a 32-bit signed integer channel.
	ComponentInt

	// ComponentUInt is a 32-bit unsigned integer channel.
	ComponentUInt

	// componentTypeCount is the number of component types (for internal use).
	componentTypeCount
)

// componentTypeInfo contains metadata about a component type.
type componentTypeInfo struct {
	size int    // storage width in bytes
	name string // human-readable name
}

// componentTypeInfoTable contains metadata for each component type.
var componentTypeInfoTable = [componentTypeCount]componentTypeInfo{
	ComponentUByte: {size: 1, name: "UByte"},
	ComponentHalf:  {size: 2, name: "Half"},
	ComponentFloat: {size: 4, name: "Float"},
	ComponentInt:   {size: 4, name: "Int"},
	ComponentUInt:  {size: 4, name: "UInt"},
}

// Size returns the storage width of one channel in bytes,
// or 0 if the type is unknown.
func (t ComponentType) Size() int {
	if t >= componentTypeCount {
		return 0
	}
	return componentTypeInfoTable[t].size
}

// IsValid returns true if the type is a valid known component type.
func (t ComponentType) IsValid() bool {
	return t < componentTypeCount
}

// String returns a string representation of the component type.
func (t ComponentType) String() string {
	if t >= componentTypeCount {
		return "Unknown"
	}
	return componentTypeInfoTable[t].name
}
