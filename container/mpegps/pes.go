/*
DESCRIPTION
  pes.go decodes MPEG-1 PES packet headers as they appear in a program
  stream: packet length, stuffing, the optional STD buffer scale/size
  field, and the PTS/DTS marker fields.

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
	"fmt"

	"github.com/ausocean/mpeg1video/bits"
)

// maxStuffingBytes bounds the 0xFF stuffing run so a corrupt stream can't
// spin the scan indefinitely; the format allows at most 16 stuffing bytes.
const maxStuffingBytes = 16

// decodeTimestamp reads the 36-bit marker-interleaved timestamp field that
// follows a 4-bit PTS or DTS prefix ('0010', '0011' or '0001') and returns
// it in seconds. The layout is 3 bits, a marker bit, 15 bits, a marker
// bit, 15 bits, a marker bit; markers are not validated beyond being
// consumed, matching scope.
func decodeTimestamp(r *bits.Reader) float64 {
	top := r.Consume(3)
	r.Consume(1) // marker_bit
	mid := r.Consume(15)
	r.Consume(1) // marker_bit
	low := r.Consume(15)
	r.Consume(1) // marker_bit
	ticks := uint64(top)<<30 | uint64(mid)<<15 | uint64(low)
	return float64(ticks) / 90000.0
}

// parsePESHeader reads a PES header immediately following a start code and
// stream ID already consumed by the caller. It returns the packet
// described by the header and the number of payload bytes that follow
// (packetLength minus the bytes consumed by the header fields read after
// the length field itself).
func parsePESHeader(r *bits.Reader, typ PacketType) (Packet, int, error) {
	length := r.Consume(16)
	if length < 0 {
		return Packet{}, 0, fmt.Errorf("mpegps: %w: truncated PES length", ErrUnexpectedEndOfStream)
	}
	remaining := length

	for i := 0; i < maxStuffingBytes && r.Peek(8) == 0xFF; i++ {
		r.Consume(8)
		remaining--
	}

	if r.Peek(2) == 0x01 {
		r.Consume(2)
		// The source implementation does not read the STD buffer scale/size
		// as a fixed 14-bit field here: it performs a byte-aligned scan
		// consuming every subsequent byte equal to decimal 16, and the
		// accounting below only ever subtracts 2 regardless of how many
		// bytes that scan actually consumes. Reproduced byte-for-byte.
		r.SkipBytesWhile(16)
		remaining -= 2
	}

	pkt := Packet{Type: typ, Length: remaining}

	switch marker := r.Peek(4); marker {
	case 0x02: // '0010': PTS only
		r.Consume(4)
		pkt.PTS = decodeTimestamp(r)
		pkt.HasPTS = true
		remaining -= 5
	case 0x03: // '0011': PTS and DTS
		r.Consume(4)
		pkt.PTS = decodeTimestamp(r)
		pkt.HasPTS = true
		remaining -= 5
		if r.Consume(4) != 0x01 {
			return Packet{}, 0, fmt.Errorf("mpegps: %w: expected DTS marker after PTS", ErrMalformedHeader)
		}
		decodeTimestamp(r)
		remaining -= 5
	case 0x00: // '0000 1111': no PTS or DTS
		r.Consume(4)
		if r.Consume(4) != 0x0F {
			return Packet{}, 0, fmt.Errorf("mpegps: %w: expected no-timestamp marker", ErrMalformedHeader)
		}
		remaining -= 1
	default:
		return Packet{}, 0, fmt.Errorf("mpegps: %w: unrecognised PTS/DTS marker %#x", ErrMalformedHeader, marker)
	}

	pkt.Length = remaining
	return pkt, remaining, nil
}
