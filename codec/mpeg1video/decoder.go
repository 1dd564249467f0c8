/*
DESCRIPTION
  decoder.go defines Decoder, the top-level MPEG-1 video elementary
  stream decoder, and its entry points: Run, which drives the
  video_sequence syntax, and SequenceParameters, which exposes the
  geometry and timing signalled by the most recently parsed sequence
  header.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package mpeg1video decodes an MPEG-1 video elementary stream into a
// sequence of reconstructed frames, per ISO/IEC 11172-2.
package mpeg1video

import (
	"context"
	"fmt"

	"github.com/ausocean/mpeg1video/bits"
	"github.com/ausocean/utils/logging"
)

// Decoder decodes one MPEG-1 video elementary stream read from r. A
// Decoder is not safe for concurrent use and is not reusable once Run
// has returned.
type Decoder struct {
	Log logging.Logger

	r   *bits.Reader
	seq SequenceParams

	intraQuant    [64]int
	nonIntraQuant [64]int

	currentFrame  *Frame
	previousFrame *Frame

	macroblockAddress int
	firstMBInSlice    bool
	pastIntraAddress  int
	dctDCPast         [3]int
	quantizerScale    int

	pictureType          int
	forwardFCode         int
	fullPelForwardVector bool
	motionForward        struct{ right, down int }

	scPrimed bool
}

// New returns a Decoder reading the elementary stream produced by r.
func New(l logging.Logger, r *bits.Reader) *Decoder {
	return &Decoder{Log: l, r: r}
}

// SequenceParameters returns the geometry and timing parsed from the
// most recently decoded sequence_header. It is only meaningful once Run
// has processed at least one sequence header.
func (d *Decoder) SequenceParameters() SequenceParams { return d.seq }

// Run decodes video_sequence: a loop over sequence headers, each
// followed by a run of groups of pictures, until sequence_end_code or
// the stream is exhausted. onFrame is called with the current frame
// each time a picture finishes decoding; the Frame is reused and
// overwritten on the next call, so onFrame must not retain it across
// calls.
func (d *Decoder) Run(ctx context.Context, onFrame func(*Frame)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.nextStartCode()
		if err := d.r.Err(); err != nil {
			return err
		}
		if d.r.StartCode == bits.NoStartCode {
			return nil
		}

		switch d.r.StartCode {
		case SequenceHeaderCode:
			d.consumeStartCode()
			if err := d.sequenceHeader(); err != nil {
				return fmt.Errorf("mpeg1video: sequence header: %w", err)
			}
		case GroupStartCode:
			d.consumeStartCode()
			if err := d.groupOfPictures(ctx, onFrame); err != nil {
				return fmt.Errorf("mpeg1video: group of pictures: %w", err)
			}
		case SequenceEndCode:
			d.consumeStartCode()
			return nil
		default:
			// Unrecognised or unsupported start code (extension_start_code,
			// user_data_start_code, and so on) at the top level: skip it.
			d.consumeStartCode()
		}
	}
}
