package mpeg1video

import (
	"testing"

	"github.com/ausocean/mpeg1video/bits"
)

func decodeString(t *testing.T, table *vlcTable, bitstring string) int {
	t.Helper()
	w := &bitWriter{}
	w.writeBitString(bitstring)
	w.align()
	r := bits.NewReader(fixedRefill(w.bytes))
	v, err := table.decode(r)
	if err != nil {
		t.Fatalf("decode(%q) returned error: %v", bitstring, err)
	}
	return v
}

func TestVLCTableSimple(t *testing.T) {
	table := newVLCTable([]vlcEntry{
		{"0", 10},
		{"10", 20},
		{"11", 30},
	})
	cases := map[string]int{"0": 10, "10": 20, "11": 30}
	for bitstring, want := range cases {
		if got := decodeString(t, table, bitstring); got != want {
			t.Errorf("decode(%q) = %d, want %d", bitstring, got, want)
		}
	}
}

func TestVLCTableInvalidCode(t *testing.T) {
	table := newVLCTable([]vlcEntry{{"0", 1}, {"10", 2}})
	w := &bitWriter{}
	w.writeBitString("11")
	w.align()
	r := bits.NewReader(fixedRefill(w.bytes))
	if _, err := table.decode(r); err != ErrInvalidVLC {
		t.Fatalf("decode of illegal prefix: got err %v, want ErrInvalidVLC", err)
	}
}

func TestMacroblockAddressIncrementTable(t *testing.T) {
	cases := []struct {
		bits string
		want int
	}{
		{"1", 1},
		{"011", 2},
		{"00000001000", macroblockAddrEscapeValue},
		{"00000001111", macroblockAddrStuffingValue},
	}
	for _, c := range cases {
		if got := decodeString(t, macroblockAddressIncrementTable, c.bits); got != c.want {
			t.Errorf("decode(%q) = %d, want %d", c.bits, got, c.want)
		}
	}
}

func TestMotionCodeTable(t *testing.T) {
	cases := []struct {
		bits string
		want int
	}{
		{"1", 0},
		{"010", 1},
		{"011", -1},
		{"00000011000", 16},
		{"00000011001", -16},
	}
	for _, c := range cases {
		if got := decodeString(t, motionCodeTable, c.bits); got != c.want {
			t.Errorf("decode(%q) = %d, want %d", c.bits, got, c.want)
		}
	}
}

func TestDCTSizeTables(t *testing.T) {
	if got := decodeString(t, dctSizeLuminanceTable, "100"); got != 0 {
		t.Errorf("luminance size(100) = %d, want 0", got)
	}
	if got := decodeString(t, dctSizeChrominanceTable, "00"); got != 0 {
		t.Errorf("chrominance size(00) = %d, want 0", got)
	}
}

func TestDCTCoeffEscapeValue(t *testing.T) {
	if got := decodeString(t, dctCoeffTable, dctCoeffEscape); got != dctCoeffEscapeValue {
		t.Errorf("escape decode = %d, want %d", got, dctCoeffEscapeValue)
	}
}

func TestEncodeDecodeRunLevel(t *testing.T) {
	cases := []struct{ run, level int }{
		{0, 1}, {0, -1}, {31, 127}, {1, -128},
	}
	for _, c := range cases {
		v := encodeRunLevel(c.run, c.level)
		run, level := decodeRunLevel(v)
		if run != c.run || level != c.level {
			t.Errorf("round trip (%d,%d) -> (%d,%d)", c.run, c.level, run, level)
		}
	}
}
