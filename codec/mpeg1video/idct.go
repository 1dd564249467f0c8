/*
DESCRIPTION
  idct.go implements the separable inverse discrete cosine transform
  used to reconstruct an 8x8 block of samples from its dequantized
  coefficients, built on the Arai-Agui-Nakajima scaling factors s0..s7:
  an even-part butterfly plus an odd part evaluated from its cosine
  sums. This is a fixed 8-point separable
  transform with hardwired constants, not a general linear-algebra
  problem, so it is hand-written rather than built on a numerics library.

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

import "math"

var (
	idctS0 = 1.0
	idctS1 = math.Cos(1 * math.Pi / 16) * math.Sqrt2
	idctS2 = math.Cos(2 * math.Pi / 16) * math.Sqrt2
	idctS3 = math.Cos(3 * math.Pi / 16) * math.Sqrt2
	idctS4 = math.Cos(4 * math.Pi / 16) * math.Sqrt2
	idctS5 = math.Cos(5 * math.Pi / 16) * math.Sqrt2
	idctS6 = math.Cos(6 * math.Pi / 16) * math.Sqrt2
	idctS7 = math.Cos(7 * math.Pi / 16) * math.Sqrt2
)

// idct8 runs the one-dimensional 8-point inverse DCT pass over v in
// place, unnormalised: the result is 2*sqrt(2) times the orthonormal
// inverse DCT (idct2D divides it out).
func idct8(v *[8]float64) {
	v0, v1, v2, v3, v4, v5, v6, v7 := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]

	p0 := (v0 + v4) * idctS0
	p1 := (v0 - v4) * idctS0
	p2 := v2*idctS6 - v6*idctS2
	p3 := v2*idctS2 + v6*idctS6

	e0 := p0 + p3
	e3 := p0 - p3
	e1 := p1 + p2
	e2 := p1 - p2

	o := computeOddPart(v1, v3, v5, v7)

	v[0] = e0 + o[0]
	v[7] = e0 - o[0]
	v[1] = e1 + o[1]
	v[6] = e1 - o[1]
	v[2] = e2 + o[2]
	v[5] = e2 - o[2]
	v[3] = e3 + o[3]
	v[4] = e3 - o[3]
}

// computeOddPart evaluates the four odd-part butterfly outputs directly
// from their defining sums over the s1..s7 scaling factors, equivalent to
// but more legible than chaining the m2/m5 intermediate terms.
func computeOddPart(v1, v3, v5, v7 float64) [4]float64 {
	o0 := v1*idctS1 + v3*idctS3 + v5*idctS5 + v7*idctS7
	o1 := v1*idctS3 - v3*idctS7 - v5*idctS1 - v7*idctS5
	o2 := v1*idctS5 - v3*idctS1 + v5*idctS7 + v7*idctS3
	o3 := v1*idctS7 - v3*idctS5 + v5*idctS3 - v7*idctS1
	return [4]float64{o0, o1, o2, o3}
}

// idct2D performs the two-pass (columns then rows) separable 8x8 inverse
// DCT over block, which holds dequantized coefficients in row-major
// natural (not zig-zag) order. Each pass is divided by 2*sqrt(2), which
// makes the result the orthonormal inverse DCT: a DC-only input F
// reconstructs to a flat block of F/8.
func idct2D(block *[64]float64) {
	var col [8]float64
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			col[y] = block[y*8+x]
		}
		idct8(&col)
		for y := 0; y < 8; y++ {
			block[y*8+x] = col[y] / (2 * math.Sqrt2)
		}
	}

	var row [8]float64
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			row[x] = block[y*8+x]
		}
		idct8(&row)
		for x := 0; x < 8; x++ {
			block[y*8+x] = row[x] / (2 * math.Sqrt2)
		}
	}
}
