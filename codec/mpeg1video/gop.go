/*
DESCRIPTION
  gop.go decodes group_of_pictures: its header fields, followed by a run
  of pictures until the next start code is not picture_start_code.

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

import "context"

func (d *Decoder) groupOfPictures(ctx context.Context, onFrame func(*Frame)) error {
	s := newSyntaxReader(d.r)
	s.bits(25) // time_code
	s.flag()   // closed_gop
	s.flag()   // broken_link
	if s.Err() != nil {
		return s.Err()
	}

	frameCount := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.nextStartCode()
		if err := d.r.Err(); err != nil {
			return err
		}
		if d.r.StartCode != PictureStartCode {
			d.Log.Debug("group of pictures complete", "frames", frameCount)
			return nil
		}
		d.consumeStartCode()

		if err := d.picture(onFrame); err != nil {
			return err
		}
		frameCount++
	}
}

// nextStartCode scans for the next start code only if the previously
// found one has been consumed, so a lookahead performed by one decode
// level can be acted on by its caller without re-scanning.
func (d *Decoder) nextStartCode() {
	if d.scPrimed {
		return
	}
	d.r.NextStartCode()
	d.scPrimed = true
}

func (d *Decoder) consumeStartCode() { d.scPrimed = false }
