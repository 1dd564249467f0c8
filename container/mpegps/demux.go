/*
DESCRIPTION
  demux.go implements Demuxer, which splits an MPEG-1 program stream into
  its video elementary stream by scanning for start codes, parsing PES
  headers, and splicing payload bytes into a virtual bit reader.

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
	"io"
	"os"

	"github.com/ausocean/mpeg1video/bits"
	"github.com/ausocean/utils/logging"
)

// fileReadSize is the chunk size used to refill the physical reader from
// the underlying file, matching the block size the reference player reads
// with.
const fileReadSize = 32 * 1024

// Demuxer splits a program stream into elementary streams. Only the video
// elementary stream is exposed; audio packets are scanned past and
// discarded, matching scope (audio decoding is a non-goal).
type Demuxer struct {
	Log logging.Logger

	file io.Reader
	phys *bits.Reader
	vid  *bits.Reader
}

// New returns a Demuxer reading a program stream from file.
func New(l logging.Logger, file io.Reader) *Demuxer {
	d := &Demuxer{Log: l, file: file}
	d.phys = bits.NewReader(d.fileRefill)
	d.vid = bits.NewReader(d.videoRefill)
	return d
}

// Open opens path and returns a Demuxer reading from it.
func Open(l logging.Logger, path string) (*Demuxer, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mpegps: %w: %v", ErrFileOpen, err)
	}
	return New(l, f), f, nil
}

// VideoReader returns the bit reader over the demultiplexed video
// elementary stream. Reads against it trigger demuxing as needed.
func (d *Demuxer) VideoReader() *bits.Reader { return d.vid }

func (d *Demuxer) fileRefill(r *bits.Reader) error {
	buf := make([]byte, fileReadSize)
	n, err := d.file.Read(buf)
	if n > 0 {
		r.Grow(buf[:n])
	}
	if err != nil {
		if err == io.EOF {
			r.Ended = true
			return nil
		}
		return err
	}
	return nil
}

// videoRefill scans the physical stream for the next video PES packet,
// splicing its payload into r. Non-video packets (audio, or any start
// code this demuxer does not recognise as a stream ID) are skipped and
// the scan continues; this is a loop, not the recursive retry the
// reference demuxer uses for the same behaviour, since unbounded
// recursion on a long run of non-video packets is not a trade a Go
// rewrite should make.
func (d *Demuxer) videoRefill(r *bits.Reader) error {
	for {
		d.phys.NextStartCode()
		if err := d.phys.Err(); err != nil {
			return err
		}
		if d.phys.StartCode == bits.NoStartCode {
			r.Ended = true
			return nil
		}

		typ, ok := streamType(byte(d.phys.StartCode))
		if !ok {
			// Not a stream_id we demux (pack header, system header,
			// padding stream, etc). Keep scanning.
			continue
		}

		pkt, payloadLen, err := parsePESHeader(d.phys, typ)
		if err != nil {
			return err
		}
		if payloadLen < 0 {
			return fmt.Errorf("mpegps: %w: negative PES payload length", ErrMalformedHeader)
		}

		if !d.phys.HasRemaining(payloadLen * 8) {
			return fmt.Errorf("mpegps: %w: truncated packet payload", ErrUnexpectedEndOfStream)
		}
		start := d.phys.ByteIndex()
		payload := d.phys.Data[start : start+payloadLen]
		d.phys.Skip(payloadLen * 8)

		if typ != Video {
			d.Log.Debug("discarding non-video packet", "type", typ, "length", payloadLen)
			continue
		}

		r.Splice(payload)
		if pkt.HasPTS {
			d.Log.Debug("spliced video packet", "length", payloadLen, "pts", pkt.PTS)
		} else {
			d.Log.Debug("spliced video packet", "length", payloadLen)
		}
		return nil
	}
}
