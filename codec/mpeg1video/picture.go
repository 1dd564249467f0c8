/*
DESCRIPTION
  picture.go decodes one picture: its header, the run of slices that make
  it up, and publication of the reconstructed frame. B-pictures are
  scanned past and discarded; B-picture reconstruction is out of scope.

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

import "fmt"

func (d *Decoder) picture(onFrame func(*Frame)) error {
	s := newSyntaxReader(d.r)
	s.bits(10) // temporal_reference
	pictureType := s.bits(3)
	s.bits(16) // vbv_delay
	if s.Err() != nil {
		return s.Err()
	}

	d.pictureType = pictureType

	switch pictureType {
	case PictureTypeI:
		// no forward vector fields
	case PictureTypeP:
		d.fullPelForwardVector = s.flag()
		d.forwardFCode = s.bits(3)
		if s.Err() != nil {
			return s.Err()
		}
		if d.forwardFCode == 0 {
			return fmt.Errorf("mpeg1video: %w: forward_f_code of 0 is forbidden", ErrMalformedHeader)
		}
	default:
		// B-pictures, and any other coding type, are discarded: scan to
		// the next start code without touching frame state.
		d.r.NextStartCode()
		d.scPrimed = true
		return d.r.Err()
	}

	// extra_information_picture
	for {
		bit := d.r.Consume(1)
		if bit < 0 {
			return ErrUnexpectedEndOfStream
		}
		if bit == 0 {
			break
		}
		d.r.Consume(8)
	}

	for {
		d.nextStartCode()
		if err := d.r.Err(); err != nil {
			return err
		}
		if d.r.StartCode < SliceStartCodeMin || d.r.StartCode > SliceStartCodeMax {
			break
		}
		verticalPosition := d.r.StartCode
		d.consumeStartCode()
		if err := d.slice(verticalPosition); err != nil {
			return err
		}
	}

	onFrame(d.currentFrame)
	d.previousFrame.copyFrom(d.currentFrame)
	return nil
}
