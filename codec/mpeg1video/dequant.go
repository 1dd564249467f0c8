/*
DESCRIPTION
  dequant.go implements coefficient dequantization with odd-rounding and
  saturation, as specified for both intra and non-intra coded blocks.

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

// clampCoefficient saturates a dequantized coefficient to the signed
// 12-bit range used by the reconstruction pipeline.
func clampCoefficient(v int) int {
	switch {
	case v < -2048:
		return -2048
	case v > 2047:
		return 2047
	default:
		return v
	}
}

// dequantizeNonIntra dequantizes a single coefficient of a non-intra-coded
// block (DC included: non-intra blocks carry no differential DC term) at
// zig-zag scan position idx, given the quantizer matrix in natural
// (row-major) order and quantizer_scale. The +-1 term biases the
// reconstructed magnitude away from zero, per the reference decoder's
// dequantize(intra=false) branch.
func dequantizeNonIntra(level, idx, quantizerScale int, matrix *[64]int) int {
	if level == 0 {
		return 0
	}
	v := (signOf(level)*(2*abs(level)+1) * matrix[ZigZag[idx]] * quantizerScale) >> 4
	if v&1 == 0 {
		v -= signOf(v)
	}
	return clampCoefficient(v)
}

// dequantizeIntraAC dequantizes a single AC coefficient of an intra-coded
// block at zig-zag scan position idx. The intra path carries no +-1
// rounding term before quantizer-matrix scaling, unlike
// dequantizeNonIntra; only the final odd-rounding and saturation are
// shared, per the reference decoder's dequantize(intra=true) branch. The
// DC coefficient of an intra block never goes through this path: it is
// reconstructed directly from its differential by dequantizeIntraDC.
func dequantizeIntraAC(level, idx, quantizerScale int, matrix *[64]int) int {
	if level == 0 {
		return 0
	}
	v := (2 * level * quantizerScale * matrix[ZigZag[idx]]) >> 4
	if v&1 == 0 {
		v -= signOf(v)
	}
	return clampCoefficient(v)
}

// dequantizeIntraDC saturates a reconstructed intra DC coefficient (the
// DC predictor plus the decoded differential times 8, as computed by
// decodeBlock) to the coefficient range. No quantizer-matrix or
// odd-rounding treatment applies to the DC term.
func dequantizeIntraDC(value int) int {
	return clampCoefficient(value)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func signOf(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func clampSample(v int) byte {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return byte(v)
	}
}
