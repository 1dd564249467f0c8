/*
DESCRIPTION
  macroblock.go decodes one macroblock: the address increment (handling
  skipped macroblocks and the escape/stuffing codes), macroblock_type,
  the optional quantizer_scale and motion vectors, the coded block
  pattern, and the six constituent blocks, then reconstructs the
  macroblock into the current frame.

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

// macroblock decodes the next macroblock in the current slice, including
// any skipped macroblocks implied by an address increment greater than 1.
//
// The slice's first macroblock is special-cased: if its address
// increment is greater than 1, the addresses it skips over are never
// motion-predicted (macroblock_address simply advances), since there is
// no preceding macroblock in this slice to predict from. Skips between
// later macroblocks in the same slice do get the usual motion-compensated
// copy from the previous frame via skippedMacroblock.
func (d *Decoder) macroblock() error {
	increment, err := d.decodeAddressIncrement()
	if err != nil {
		return err
	}

	if d.firstMBInSlice {
		d.firstMBInSlice = false
		d.macroblockAddress += increment
	} else {
		for i := 1; i < increment; i++ {
			d.macroblockAddress++
			if err := d.skippedMacroblock(); err != nil {
				return err
			}
		}
		d.macroblockAddress++
	}

	return d.codedMacroblock()
}

func (d *Decoder) decodeAddressIncrement() (int, error) {
	total := 0
	for {
		v, err := macroblockAddressIncrementTable.decode(d.r)
		if err != nil {
			return 0, err
		}
		switch v {
		case macroblockAddrStuffingValue:
			continue
		case macroblockAddrEscapeValue:
			total += 33
			continue
		default:
			return total + v, nil
		}
	}
}

func (d *Decoder) geometry() (row, col int, err error) {
	col = d.macroblockAddress % d.seq.MBWidth
	row = d.macroblockAddress / d.seq.MBWidth
	if row < 0 || row >= d.seq.MBHeight {
		return 0, 0, ErrGeometry
	}
	return row, col, nil
}

// skippedMacroblock reconstructs an uncoded (skipped) macroblock: a
// direct copy of the co-located region from the previous frame at zero
// motion, matching the reference decoder's handling of skipped
// macroblocks in P-pictures. I-pictures cannot contain skipped
// macroblocks; one occurring there is logged and otherwise ignored.
func (d *Decoder) skippedMacroblock() error {
	row, col, err := d.geometry()
	if err != nil {
		return err
	}
	if d.pictureType == PictureTypeI {
		d.Log.Warning("skipped macroblock in I-picture, ignoring", "address", d.macroblockAddress)
		return nil
	}
	d.motionForward.right = 0
	d.motionForward.down = 0
	d.dctDCPast = [3]int{1024, 1024, 1024}
	d.copyMacroblockFromPrevious(row, col)
	return nil
}

func (d *Decoder) codedMacroblock() error {
	row, col, err := d.geometry()
	if err != nil {
		return err
	}

	var mbType int
	if d.pictureType == PictureTypeI {
		mbType, err = macroblockTypeITable.decode(d.r)
	} else {
		mbType, err = macroblockTypePTable.decode(d.r)
	}
	if err != nil {
		return err
	}

	if mbType&mbQuant != 0 {
		v := d.r.Consume(5)
		if v < 0 {
			return ErrUnexpectedEndOfStream
		}
		d.quantizerScale = v
	}

	var mvRight, mvDown int
	if mbType&mbMotionForward != 0 {
		mvRight, mvDown, err = d.decodeMotionVectors()
		if err != nil {
			return err
		}
	} else {
		d.motionForward.right = 0
		d.motionForward.down = 0
	}

	cbp := 0x3F
	if mbType&mbIntra == 0 {
		if mbType&mbPattern != 0 {
			cbp, err = codeBlockPatternTable.decode(d.r)
			if err != nil {
				return err
			}
		} else {
			cbp = 0
		}
	}

	intra := mbType&mbIntra != 0
	if intra {
		d.motionForward.right = 0
		d.motionForward.down = 0
	}

	var blocks [6]*[64]float64
	for i := 0; i < 6; i++ {
		bit := uint(5 - i)
		if !intra && cbp&(1<<bit) == 0 {
			continue
		}
		component := blockComponent(i)
		blk, err := d.decodeBlock(component, intra, d.quantizerScale)
		if err != nil {
			return fmt.Errorf("mpeg1video: decoding block %d: %w", i, err)
		}
		idct2D(blk)
		blocks[i] = blk
	}

	if intra {
		d.writeIntraMacroblock(row, col, &blocks)
	} else {
		d.predictMacroblock(row, col, mvRight, mvDown)
		d.addResidualMacroblock(row, col, &blocks)
	}

	if intra {
		d.pastIntraAddress = d.macroblockAddress
	} else {
		d.dctDCPast = [3]int{1024, 1024, 1024}
	}

	return nil
}

// blockComponent maps a macroblock's block index (0-3 luma, 4 Cb, 5 Cr)
// to the DC-predictor/component index used by decodeBlock.
func blockComponent(i int) int {
	switch {
	case i < 4:
		return 0
	case i == 4:
		return 1
	default:
		return 2
	}
}
