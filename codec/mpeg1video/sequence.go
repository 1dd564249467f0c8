/*
DESCRIPTION
  sequence.go decodes the sequence_header syntax element: picture
  geometry, aspect ratio, frame rate, and the optional custom quantizer
  matrices, and allocates the frame buffers sized from it.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mpeg1video

// SequenceParams describes the picture geometry and timing signalled by
// a sequence_header.
type SequenceParams struct {
	Width, Height     int
	MBWidth, MBHeight int
	AspectRatio       float64
	FrameRate         float64
}

func (d *Decoder) sequenceHeader() error {
	s := newSyntaxReader(d.r)
	width := s.bits(12)
	height := s.bits(12)
	aspect := s.bits(4)
	frameRateCode := s.bits(4)
	s.bits(18) // bit_rate
	s.flag()   // marker_bit
	s.bits(10) // vbv_buffer_size
	s.flag()   // constrained_parameters_flag
	if s.Err() != nil {
		return s.Err()
	}

	d.intraQuant = DefaultIntraQuantizerMatrix
	if s.flag() { // load_intra_quantizer_matrix
		for i := range d.intraQuant {
			d.intraQuant[ZigZag[i]] = s.bits(8)
		}
	}
	d.nonIntraQuant = DefaultNonIntraQuantizerMatrix
	if s.flag() { // load_non_intra_quantizer_matrix
		for i := range d.nonIntraQuant {
			d.nonIntraQuant[ZigZag[i]] = s.bits(8)
		}
	}
	if s.Err() != nil {
		return s.Err()
	}

	mbWidth := (width + 15) / 16
	mbHeight := (height + 15) / 16

	d.seq = SequenceParams{
		Width:       width,
		Height:      height,
		MBWidth:     mbWidth,
		MBHeight:    mbHeight,
		AspectRatio: AspectRatio[aspect],
		FrameRate:   FrameRate[frameRateCode],
	}
	d.Log.Info("sequence header",
		"width", width, "height", height,
		"mb_width", mbWidth, "mb_height", mbHeight,
		"frame_rate", d.seq.FrameRate)

	d.currentFrame = newFrame(mbWidth*16, mbHeight*16)
	d.previousFrame = newFrame(mbWidth*16, mbHeight*16)
	return nil
}
