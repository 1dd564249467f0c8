/*
DESCRIPTION
  slice.go decodes the slice syntax element: its quantizer_scale and
  optional extra slice information, followed by a run of macroblocks
  until the next start code is reached.

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

func (d *Decoder) slice(verticalPosition int) error {
	s := newSyntaxReader(d.r)
	d.quantizerScale = s.bits(5)
	if s.Err() != nil {
		return s.Err()
	}

	// extra_bit_slice
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

	d.macroblockAddress = (verticalPosition-1)*d.seq.MBWidth - 1
	d.firstMBInSlice = true
	d.pastIntraAddress = -2
	d.dctDCPast = [3]int{1024, 1024, 1024}
	d.motionForward.right = 0
	d.motionForward.down = 0

	for d.r.NoStartCode() {
		if err := d.macroblock(); err != nil {
			return err
		}
	}
	return nil
}
