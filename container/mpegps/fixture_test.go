/*
DESCRIPTION
  fixture_test.go builds small synthetic program streams for demuxer
  tests, rather than relying on checked-in binary fixtures.

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

import "github.com/Comcast/gots/v2"

// pesBuilder assembles one PES packet: start code, stream ID, a 16-bit
// length patched in at build time, and a payload with optional PTS.
type pesBuilder struct {
	streamID byte
	withPTS  bool
	pts      uint64
	payload  []byte
}

func (b pesBuilder) bytes() []byte {
	var header []byte
	if b.withPTS {
		ptsField := make([]byte, 5)
		gots.InsertPTS(ptsField, b.pts)
		header = append(header, ptsField...)
	} else {
		header = append(header, 0x0F) // '0000 1111': no PTS, no DTS
	}

	length := len(header) + len(b.payload)
	out := []byte{0x00, 0x00, 0x01, b.streamID, byte(length >> 8), byte(length)}
	out = append(out, header...)
	out = append(out, b.payload...)
	return out
}

// concatFixture concatenates any number of byte slices into one stream.
func concatFixture(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
