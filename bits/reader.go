/*
DESCRIPTION
  reader.go provides a refillable bit reader implementation that services
  arbitrary-width bit reads on top of a chunked, callback-refilled byte
  buffer, and locates byte-aligned start codes.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits provides a refillable bit reader for parsing byte-aligned
// start-code-delimited bitstreams such as MPEG program streams and
// elementary video streams.
package bits

import "io"

// NoStartCode is the sentinel value of StartCode when no 00 00 01 prefix
// has yet been found, or the stream ended before one was found.
const NoStartCode = -1

// Refiller is called by a Reader when it cannot satisfy a read from its
// current buffer. It must either grow Data (increasing Size by the number
// of freshly appended bytes) or set Ended to true. A Refiller must not
// modify BitIndex.
//
// Returning io.EOF is not treated as a failure; the Reader sets Ended and
// callers observe exhaustion through HasRemaining, Consume and Peek
// returning false/-1, not through a propagated error. Any other error is
// fatal: the read that triggered the refill fails (false/-1), every later
// refill is refused, and the error is reported by Err.
type Refiller func(r *Reader) error

// Reader is a bit reader over a growable byte buffer, refilled on demand
// by a Refiller supplied at construction.
//
// The zero value is not usable; construct with NewReader.
type Reader struct {
	Data     []byte
	Size     int
	BitIndex int
	Ended    bool
	StartCode int

	refill Refiller
	err    error
}

// NewReader returns a Reader that calls refill to grow its buffer whenever
// a read cannot be satisfied from the data already held.
func NewReader(refill Refiller) *Reader {
	return &Reader{StartCode: NoStartCode, refill: refill}
}

// Err returns the first fatal error encountered by the Reader's Refiller,
// if any. End-of-stream (Ended) is not an error and does not set Err.
func (r *Reader) Err() error { return r.err }

// HasRemaining reports whether n more bits are available, invoking the
// refill callback if not and reporting based on the resulting state.
func (r *Reader) HasRemaining(n int) bool {
	if r.Size*8-r.BitIndex >= n {
		return true
	}
	if r.err != nil {
		return false
	}
	if err := r.refill(r); err == io.EOF {
		r.Ended = true
	} else if err != nil {
		r.err = err
		return false
	}
	return !r.Ended && r.Size*8-r.BitIndex >= n
}

// Consume reads the next n bits (1 <= n <= 32) MSB-first, advancing the
// cursor by n. It returns -1 if the stream could not be refilled to
// contain n bits.
func (r *Reader) Consume(n int) int {
	if !r.HasRemaining(n) {
		return -1
	}

	value := 0
	for n > 0 {
		currentByte := int(r.Data[r.BitIndex>>3])

		remaining := 8 - (r.BitIndex & 7)
		read := remaining
		if n < read {
			read = n
		}
		shift := remaining - read
		mask := 0xFF >> uint(8-read)

		value = (value << uint(read)) | ((currentByte & (mask << uint(shift))) >> uint(shift))

		r.BitIndex += read
		n -= read
	}
	return value
}

// Peek behaves as Consume but does not advance the cursor.
func (r *Reader) Peek(n int) int {
	if !r.HasRemaining(n) {
		return -1
	}
	save := r.BitIndex
	v := r.Consume(n)
	r.BitIndex = save
	return v
}

// Skip advances the cursor by n bits if available; otherwise it is a
// silent no-op.
func (r *Reader) Skip(n int) {
	if r.HasRemaining(n) {
		r.BitIndex += n
	}
}

// Align rounds BitIndex up to the next byte boundary.
func (r *Reader) Align() {
	r.BitIndex = ((r.BitIndex + 7) >> 3) << 3
}

// SkipBytesWhile aligns to a byte boundary, then consumes consecutive
// bytes equal to b, returning how many were skipped.
func (r *Reader) SkipBytesWhile(b byte) int {
	r.Align()
	var skipped int
	for r.HasRemaining(8) && r.Data[r.BitIndex>>3] == b {
		r.BitIndex += 8
		skipped++
	}
	return skipped
}

// NextStartCode aligns to a byte, then scans for the three-byte prefix
// 00 00 01. On success it sets StartCode to the following byte and
// positions BitIndex just after it. On exhaustion it sets StartCode to
// NoStartCode.
//
// BUG fixed relative to the reference implementation: the reference scan
// compares data[i] against 0x00 three times instead of checking
// data[i], data[i+1] and data[i+2], so its condition can never be true; it
// happens to work there only because its video-elementary reader is fed
// packet-aligned payloads by the demuxer. This Reader is meant to scan
// arbitrary byte streams (the physical, file-backed reader in particular),
// so it checks all three bytes.
func (r *Reader) NextStartCode() {
	r.Align()
	for r.HasRemaining(4 << 3) {
		i := r.BitIndex >> 3
		if r.Data[i] == 0x00 && r.Data[i+1] == 0x00 && r.Data[i+2] == 0x01 {
			r.BitIndex = (i + 4) << 3
			r.StartCode = int(r.Data[i+3])
			return
		}
		r.BitIndex += 8
	}
	r.StartCode = NoStartCode
}

// NoStartCode reports whether the next aligned byte triple is not the
// 00 00 01 start-code prefix.
func (r *Reader) NoStartCode() bool {
	if !r.HasRemaining(5 << 3) {
		return false
	}
	i := (r.BitIndex + 7) >> 3
	return !(r.Data[i] == 0x00 && r.Data[i+1] == 0x00 && r.Data[i+2] == 0x01)
}

// Grow appends b to Data, growing the underlying buffer as needed, and
// increases Size accordingly. Refillers use this to deliver freshly read
// bytes.
func (r *Reader) Grow(b []byte) {
	r.Data = append(r.Data, b...)
	r.Size += len(b)
}

// Splice appends b to Data exactly like Grow; it exists as a distinct name
// so packet-payload refillers (which splice a PES payload into a virtual
// stream's buffer) read distinctly from whole-block file refillers at
// call sites.
func (r *Reader) Splice(b []byte) { r.Grow(b) }

// ByteIndex returns the byte-aligned index one byte past the last fully
// consumed byte; refillers that copy directly out of a parent Reader's
// buffer use this to find the start of unconsumed payload.
func (r *Reader) ByteIndex() int { return r.BitIndex >> 3 }
