package mpeg1video

import (
	"context"
	"testing"

	"github.com/ausocean/mpeg1video/bits"
)

func newTestReader(data []byte) *bits.Reader {
	return bits.NewReader(fixedRefill(data))
}

func TestRunEmptyStream(t *testing.T) {
	d := New(discardLogger{}, newTestReader(nil))
	var frames int
	if err := d.Run(context.Background(), func(*Frame) { frames++ }); err != nil {
		t.Fatalf("unexpected error on empty stream: %v", err)
	}
	if frames != 0 {
		t.Fatalf("got %d frames, want 0", frames)
	}
}

func TestRunSequenceHeaderOnly(t *testing.T) {
	w := &bitWriter{}
	w.startCode(SequenceHeaderCode)
	w.writeBits(12, 16) // width
	w.writeBits(12, 16) // height
	w.writeBits(4, 1)   // aspect_ratio_information
	w.writeBits(4, 1)   // frame_rate_code
	w.writeBits(18, 1)  // bit_rate
	w.writeBits(1, 1)   // marker_bit
	w.writeBits(10, 0)  // vbv_buffer_size
	w.writeBits(1, 0)   // constrained_parameters_flag
	w.writeBits(1, 0)   // load_intra_quantizer_matrix
	w.writeBits(1, 0)   // load_non_intra_quantizer_matrix
	w.startCode(SequenceEndCode)

	d := New(discardLogger{}, newTestReader(w.bytes))
	var frames int
	if err := d.Run(context.Background(), func(*Frame) { frames++ }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frames != 0 {
		t.Fatalf("got %d frames, want 0", frames)
	}
	params := d.SequenceParameters()
	if params.Width != 16 || params.Height != 16 {
		t.Fatalf("got %dx%d, want 16x16", params.Width, params.Height)
	}
	if params.MBWidth != 1 || params.MBHeight != 1 {
		t.Fatalf("got mb %dx%d, want 1x1", params.MBWidth, params.MBHeight)
	}
}

func TestRunCancelledContext(t *testing.T) {
	d := New(discardLogger{}, newTestReader(nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Run(ctx, func(*Frame) {}); err == nil {
		t.Fatal("expected an error from a pre-cancelled context")
	}
}

// newSingleMBDecoder builds a Decoder with a 16x16 (one macroblock)
// sequence already established, ready to decode one slice directly.
func newSingleMBDecoder(data []byte) *Decoder {
	d := New(discardLogger{}, newTestReader(data))
	d.seq = SequenceParams{Width: 16, Height: 16, MBWidth: 1, MBHeight: 1}
	d.intraQuant = DefaultIntraQuantizerMatrix
	d.nonIntraQuant = DefaultNonIntraQuantizerMatrix
	d.currentFrame = newFrame(16, 16)
	d.previousFrame = newFrame(16, 16)
	d.pictureType = PictureTypeI
	d.pastIntraAddress = -2
	return d
}

// TestSliceAllZeroIntraMacroblock decodes one slice containing a single
// intra macroblock whose DC differentials and AC coefficients are all
// zero, and checks the reconstructed luma plane is the flat value implied
// by the initial DC predictor (1024) after dequantization and IDCT.
func TestSliceAllZeroIntraMacroblock(t *testing.T) {
	w := &bitWriter{}
	w.writeBits(5, 1)       // quantizer_scale
	w.writeBitString("0")   // extra_bit_slice: none
	w.writeBitString("1")   // macroblock_address_increment = 1
	w.writeBitString("1")   // macroblock_type (I-picture): intra, no quant

	// Six blocks: four luminance, then Cb, then Cr. Each carries DC size
	// code 0 (no differential bits) followed by the one-bit-then-one-bit
	// end-of-block sequence ("1" then "0").
	for i := 0; i < 4; i++ {
		w.writeBitString("100") // dct_size_luminance: size 0
		w.writeBitString("10")  // end of block
	}
	for i := 0; i < 2; i++ {
		w.writeBitString("00") // dct_size_chrominance: size 0
		w.writeBitString("10") // end of block
	}
	w.startCode(SliceStartCodeMax) // terminate the macroblock loop

	d := newSingleMBDecoder(w.bytes)
	if err := d.slice(1); err != nil {
		t.Fatalf("slice decode failed: %v", err)
	}

	// DC predictor starts at 1024; dequantizeIntraDC clamps only, so the
	// reconstructed DC coefficient is 1024, and idct2D spreads a DC-only
	// coefficient evenly across the block at value dc/8 (see idct_test.go).
	wantLuma := clampSample(int(1024.0 / 8))
	for i, v := range d.currentFrame.Y {
		if v != wantLuma {
			t.Fatalf("Y[%d] = %d, want %d", i, v, wantLuma)
		}
	}
	for i, v := range d.currentFrame.Cb {
		if v != wantLuma {
			t.Fatalf("Cb[%d] = %d, want %d", i, v, wantLuma)
		}
	}
}
