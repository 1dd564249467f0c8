/*
DESCRIPTION
  block.go decodes one 8x8 block of DCT coefficients: the intra DC
  predictor and differential for intra blocks, and the run-length/escape
  coded AC coefficient loop shared by intra and non-intra blocks.

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

import (
	"fmt"

	"github.com/ausocean/mpeg1video/bits"
)

// decodeBlock decodes one block for component componentIdx (0=Y, 1=Cb,
// 2=Cr), returning 64 dequantized coefficients in natural (row-major, not
// zig-zag) order ready for the inverse DCT.
func (d *Decoder) decodeBlock(componentIdx int, intra bool, quantizerScale int) (*[64]float64, error) {
	matrix := &d.nonIntraQuant
	if intra {
		matrix = &d.intraQuant
	}

	var zz [64]int
	startIndex := 0
	if intra {
		sizeTable := dctSizeLuminanceTable
		if componentIdx != 0 {
			sizeTable = dctSizeChrominanceTable
		}
		size, err := sizeTable.decode(d.r)
		if err != nil {
			return nil, err
		}
		diff, err := decodeDCDifferential(d.r, size)
		if err != nil {
			return nil, err
		}
		dc := d.dctDCPast[componentIdx] + diff*8
		d.dctDCPast[componentIdx] = dc
		zz[0] = dequantizeIntraDC(dc)
		startIndex = 1
	}

	if err := d.decodeCoefficients(&zz, startIndex, quantizerScale, matrix, intra); err != nil {
		return nil, err
	}

	var natural [64]float64
	for i, c := range zz {
		natural[ZigZag[i]] = float64(c)
	}
	return &natural, nil
}

// decodeDCDifferential reconstructs a signed DC differential from its
// size (number of bits) and the following raw code.
func decodeDCDifferential(r *bits.Reader, size int) (int, error) {
	if size == 0 {
		return 0, nil
	}
	code := r.Consume(size)
	if code < 0 {
		return 0, ErrUnexpectedEndOfStream
	}
	half := 1 << uint(size-1)
	if code < half {
		return code - (1 << uint(size)) + 1, nil
	}
	return code, nil
}

// decodeCoefficients decodes the run-length coded AC coefficient loop
// into zz (in zig-zag order) starting at startIndex (1 for an intra
// block's AC coefficients, 0 for a non-intra block's full coefficient
// set), stopping at end-of-block.
//
// The short run=0/level=1 code is ambiguous with end-of-block once the
// coefficient index has advanced past 0, and is then followed by one
// more bit to disambiguate: 0 means end-of-block, 1 means the
// coefficient is a genuine run=0/level=1, whose sign bit then follows as
// for any other table code. A non-intra block's first
// coefficient sits at index 0, so that first decode can't be
// end-of-block (a coded block always carries at least one coefficient);
// an intra block's AC run starts at index 1, so its very first decode
// is already eligible for immediate end-of-block. This mirrors the
// exact bit-consumption order of the implementation this decoder is
// grounded on, rather than a first-principles reading of the syntax
// tables.
//
// intra selects which dequantization path AC coefficients take: an
// intra-coded block's AC coefficients carry no +-1 rounding bias before
// quantizer-matrix scaling, unlike every coefficient of a non-intra
// block (see dequantizeIntraAC vs dequantizeNonIntra).
func (d *Decoder) decodeCoefficients(zz *[64]int, startIndex, quantizerScale int, matrix *[64]int, intra bool) error {
	dequantize := dequantizeNonIntra
	if intra {
		dequantize = dequantizeIntraAC
	}

	index := startIndex
	first := index == 0
	for {
		v, err := dctCoeffTable.decode(d.r)
		if err != nil {
			return err
		}

		if v == dctCoeffEscapeValue {
			run, level, err := d.decodeEscapeCoefficient()
			if err != nil {
				return err
			}
			index += run
			if index >= 64 {
				return fmt.Errorf("mpeg1video: %w: coefficient index out of range", ErrInvalidVLC)
			}
			zz[index] = dequantize(level, index, quantizerScale, matrix)
			index++
			first = false
			continue
		}

		run, level := decodeRunLevel(v)

		if run == 0 && level == 1 && !first {
			bit := d.r.Consume(1)
			if bit < 0 {
				return ErrUnexpectedEndOfStream
			}
			if bit == 0 {
				return nil
			}
		}
		sign := d.r.Consume(1)
		if sign < 0 {
			return ErrUnexpectedEndOfStream
		}
		if sign == 1 {
			level = -level
		}

		index += run
		if index >= 64 {
			return fmt.Errorf("mpeg1video: %w: coefficient index out of range", ErrInvalidVLC)
		}
		zz[index] = dequantize(level, index, quantizerScale, matrix)
		index++
		first = false
	}
}

// decodeEscapeCoefficient reads a 6-bit run and an 8-bit level following
// the escape prefix, extending to a 16-bit level for the two raw values
// (0 and 128) that the 8-bit encoding can't represent directly.
func (d *Decoder) decodeEscapeCoefficient() (run, level int, err error) {
	run = d.r.Consume(6)
	if run < 0 {
		return 0, 0, ErrUnexpectedEndOfStream
	}
	raw := d.r.Consume(8)
	if raw < 0 {
		return 0, 0, ErrUnexpectedEndOfStream
	}
	switch {
	case raw == 0:
		level = d.r.Consume(8)
		if level < 0 {
			return 0, 0, ErrUnexpectedEndOfStream
		}
	case raw == 128:
		v := d.r.Consume(8)
		if v < 0 {
			return 0, 0, ErrUnexpectedEndOfStream
		}
		level = v - 256
	case raw > 128:
		level = raw - 256
	default:
		level = raw
	}
	return run, level, nil
}
