package mpeg1video

import "testing"

func TestDequantizeNonIntraZeroLevel(t *testing.T) {
	if v := dequantizeNonIntra(0, 5, 8, &DefaultNonIntraQuantizerMatrix); v != 0 {
		t.Fatalf("zero level must dequantize to 0, got %d", v)
	}
}

func TestDequantizeNonIntraSaturates(t *testing.T) {
	var matrix [64]int
	for i := range matrix {
		matrix[i] = 255
	}
	v := dequantizeNonIntra(127, 0, 31, &matrix)
	if v != 2047 {
		t.Fatalf("expected saturation at 2047, got %d", v)
	}
	v = dequantizeNonIntra(-127, 0, 31, &matrix)
	if v != -2048 {
		t.Fatalf("expected saturation at -2048, got %d", v)
	}
}

func TestDequantizeNonIntraOddRounding(t *testing.T) {
	var matrix [64]int
	matrix[ZigZag[0]] = 16
	v := dequantizeNonIntra(1, 0, 1, &matrix)
	// (2*1+1)*16*1/16 = 3, already odd: no adjustment.
	if v != 3 {
		t.Fatalf("got %d, want 3", v)
	}
}

func TestDequantizeNonIntraNegativeLevel(t *testing.T) {
	var matrix [64]int
	matrix[ZigZag[0]] = 16
	// signOf(-1)*(2*1+1)*16*1 >> 4 = -3, already odd: no adjustment.
	if v := dequantizeNonIntra(-1, 0, 1, &matrix); v != -3 {
		t.Fatalf("got %d, want -3", v)
	}
}

func TestDequantizeIntraACNegativeLevel(t *testing.T) {
	var matrix [64]int
	matrix[ZigZag[0]] = 16
	// 2*-1*1*16 >> 4 = -2, even: adjusted to -1.
	if v := dequantizeIntraAC(-1, 0, 1, &matrix); v != -1 {
		t.Fatalf("got %d, want -1", v)
	}
	// Unadjusted magnitude diverges from the non-intra path for the same
	// inputs: no +-1 rounding term is added before matrix scaling.
	if v := dequantizeIntraAC(1, 0, 1, &matrix); v != 1 {
		t.Fatalf("got %d, want 1", v)
	}
}

func TestDequantizeIntraDCClampsOnly(t *testing.T) {
	if v := dequantizeIntraDC(3000); v != 2047 {
		t.Fatalf("got %d, want 2047", v)
	}
	if v := dequantizeIntraDC(100); v != 100 {
		t.Fatalf("got %d, want 100 (unscaled)", v)
	}
}

func TestClampSample(t *testing.T) {
	cases := []struct {
		in   int
		want byte
	}{
		{-10, 0}, {0, 0}, {128, 128}, {255, 255}, {300, 255},
	}
	for _, c := range cases {
		if got := clampSample(c.in); got != c.want {
			t.Errorf("clampSample(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
