/*
DESCRIPTION
  tables.go holds the fixed constant tables from ISO/IEC 11172-2: the
  zig-zag scan order, aspect ratio and frame rate code lookups, and the
  default intra/non-intra quantizer matrices.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mpeg1video

// ZigZag maps a coefficient's position in decode order (0..63) to its
// position in the 8x8 block, row-major.
var ZigZag = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// AspectRatio maps a 4-bit aspect_ratio_information code to its display
// aspect ratio. Index 0 is reserved (forbidden).
var AspectRatio = [16]float64{
	0, 1.0000, 0.6735, 0.7031, 0.7615, 0.8055, 0.8437, 0.8935,
	0.9157, 0.9815, 1.0255, 1.0695, 1.0950, 1.1575, 1.2015, 0,
}

// FrameRate maps a 4-bit frame_rate_code to frames per second. Index 0 is
// reserved (forbidden).
var FrameRate = [16]float64{
	0, 23.976, 24, 25, 29.97, 30, 50, 59.94,
	60, 0, 0, 0, 0, 0, 0, 0,
}

// DefaultIntraQuantizerMatrix is the default quantizer matrix used for
// intra-coded blocks, in natural (row-major) order, when
// load_intra_quantizer_matrix is not set in the sequence header. Values
// are indexed via ZigZag when applied to a coefficient at a given scan
// position (see dequantizeIntraAC).
var DefaultIntraQuantizerMatrix = [64]int{
	8, 16, 19, 22, 26, 27, 29, 34,
	16, 16, 22, 24, 27, 29, 34, 37,
	19, 22, 26, 27, 29, 34, 34, 38,
	22, 22, 26, 27, 29, 34, 37, 40,
	22, 26, 27, 29, 32, 35, 40, 48,
	26, 27, 29, 32, 35, 40, 48, 58,
	26, 27, 29, 34, 38, 46, 56, 69,
	27, 29, 35, 38, 46, 56, 69, 83,
}

// DefaultNonIntraQuantizerMatrix is the default quantizer matrix used for
// non-intra-coded blocks: a flat matrix of 16s.
var DefaultNonIntraQuantizerMatrix = [64]int{
	16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16,
}

// Picture coding types.
const (
	PictureTypeI = 1
	PictureTypeP = 2
	PictureTypeB = 3
)

// Start codes relevant to video elementary stream parsing.
const (
	PictureStartCode        = 0x00
	SliceStartCodeMin       = 0x01
	SliceStartCodeMax       = 0xAF
	UserDataStartCode       = 0xB2
	SequenceHeaderCode      = 0xB3
	SequenceErrorCode       = 0xB4
	ExtensionStartCode      = 0xB5
	SequenceEndCode         = 0xB7
	GroupStartCode          = 0xB8
)
