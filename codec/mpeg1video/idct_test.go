package mpeg1video

import (
	"math"
	"testing"
)

func TestIDCT2DDCOnlyIsFlat(t *testing.T) {
	const dc = 800.0
	var block [64]float64
	block[0] = dc
	idct2D(&block)

	want := dc / 8
	for i, v := range block {
		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("block[%d] = %v, want %v (flat DC-only response)", i, v, want)
		}
	}
}

func TestIDCT2DZeroInputIsZeroOutput(t *testing.T) {
	var block [64]float64
	idct2D(&block)
	for i, v := range block {
		if v != 0 {
			t.Fatalf("block[%d] = %v, want 0", i, v)
		}
	}
}

func TestIDCT8Linear(t *testing.T) {
	// idct8 must be linear: scaling the input scales the output.
	a := [8]float64{10, -3, 5, 0, 7, -1, 2, 4}
	doubled := a
	for i := range doubled {
		doubled[i] *= 2
	}
	idct8(&a)
	idct8(&doubled)
	for i := range a {
		if math.Abs(doubled[i]-2*a[i]) > 1e-9 {
			t.Fatalf("idct8 not linear at %d: idct8(2x)=%v, 2*idct8(x)=%v", i, doubled[i], 2*a[i])
		}
	}
}
