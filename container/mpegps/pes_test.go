/*
DESCRIPTION
  pes_test.go exercises parsePESHeader's PES header field decoding
  directly, including the rarely-hit STD marker skip_bytes_while path.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mpegps

import (
	"testing"

	"github.com/ausocean/mpeg1video/bits"
)

// fixedRefill serves data once, then reports end of stream.
func fixedRefill(data []byte) bits.Refiller {
	served := false
	return func(r *bits.Reader) error {
		if served {
			r.Ended = true
			return nil
		}
		served = true
		r.Grow(data)
		return nil
	}
}

// TestParsePESHeaderSTDMarkerSkipsVariableRun exercises the STD marker
// branch's byte-aligned skip_bytes_while(16) scan with a run length (3
// bytes) that a fixed 14-bit skip would not correctly consume, and
// confirms the reader lands exactly on the payload afterward.
func TestParsePESHeaderSTDMarkerSkipsVariableRun(t *testing.T) {
	payload := []byte{0xAA, 0xBB, 0xCC}
	header := []byte{
		0x40,             // '01' STD marker prefix; remaining 6 bits discarded by alignment.
		0x10, 0x10, 0x10, // three bytes of value 16, consumed by skip_bytes_while(16).
		0x0F, // '0000 1111': no PTS or DTS.
	}
	length := len(header) + len(payload)
	data := append([]byte{byte(length >> 8), byte(length)}, header...)
	data = append(data, payload...)

	r := bits.NewReader(fixedRefill(data))
	_, _, err := parsePESHeader(r, Video)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, want := range payload {
		if got := r.Consume(8); got != int(want) {
			t.Fatalf("payload byte %d: got %#x, want %#x", i, got, want)
		}
	}
}

// TestParsePESHeaderNoSTDMarker confirms the STD marker branch is skipped
// entirely, and ordinary PTS-less headers still parse correctly, when the
// following bits don't start with '01'.
func TestParsePESHeaderNoSTDMarker(t *testing.T) {
	payload := []byte{0x01, 0x02}
	header := []byte{0x0F} // '0000 1111': no PTS or DTS.
	length := len(header) + len(payload)
	data := append([]byte{byte(length >> 8), byte(length)}, header...)
	data = append(data, payload...)

	r := bits.NewReader(fixedRefill(data))
	pkt, payloadLen, err := parsePESHeader(r, Video)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkt.HasPTS {
		t.Fatal("expected no PTS")
	}
	if payloadLen != len(payload) {
		t.Fatalf("got payloadLen %d, want %d", payloadLen, len(payload))
	}
}
