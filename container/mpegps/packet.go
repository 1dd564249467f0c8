/*
DESCRIPTION
  packet.go defines the packet descriptor produced by start-code scanning
  of an MPEG-1 program stream.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package mpegps demultiplexes an MPEG-1 program stream into its
// constituent elementary streams.
package mpegps

// PacketType identifies which elementary stream a demultiplexed packet
// belongs to.
type PacketType int

const (
	// Video identifies the MPEG-1 video elementary stream, carried under
	// stream IDs 0xE0-0xEF.
	Video PacketType = iota
	// Audio identifies the MPEG-1 audio elementary stream, carried under
	// stream IDs 0xC0-0xDF. Audio decoding itself is out of scope; the
	// type exists so the demultiplexer can recognise audio packets, parse
	// their headers and skip their payloads.
	Audio
)

// videoStreamID and audioStreamID are the base stream IDs this demuxer
// recognises. A real program stream may carry several audio/video streams
// distinguished by the low bits of the stream ID; streamType maps every
// ID in each range to the same PacketType, so packets of several video
// streams are not told apart.
const (
	videoStreamID = 0xE0
	audioStreamID = 0xC0
)

func streamType(id byte) (PacketType, bool) {
	switch {
	case id&0xF0 == videoStreamID:
		return Video, true
	case id&0xE0 == audioStreamID:
		return Audio, true
	default:
		return 0, false
	}
}

// Packet describes one PES payload spliced into a virtual elementary
// stream reader.
type Packet struct {
	Type   PacketType
	Length int
	PTS    float64 // seconds, decoded from the PES header when present
	HasPTS bool
}
