/*
DESCRIPTION
  frame.go defines Frame, the decoded picture type. Chroma planes are
  stored at full luma resolution, written via 2x2 replication at
  reconstruction time, matching how motion-compensated prediction reads
  them back (see motion.go) and the original decoder's frame buffer
  sizing.

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
	"image"
	"image/color"
)

// Frame is one decoded picture. Width and Height are rounded up to a
// multiple of 16 (the macroblock grid); callers that need the signalled
// display size should crop against SequenceParams.
type Frame struct {
	Width, Height int
	Y, Cb, Cr      []byte
}

func newFrame(width, height int) *Frame {
	n := width * height
	return &Frame{
		Width: width, Height: height,
		Y:  make([]byte, n),
		Cb: make([]byte, n),
		Cr: make([]byte, n),
	}
}

// Frame satisfies image.Image so it can be handed directly to
// image/draw or any other standard-library image consumer without this
// package needing an RGB conversion dependency (conversion itself remains
// out of scope).
var _ image.Image = (*Frame)(nil)

func (f *Frame) ColorModel() color.Model { return color.YCbCrModel }

func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.Width, f.Height) }

func (f *Frame) At(x, y int) color.Color {
	i := y*f.Width + x
	return color.YCbCr{Y: f.Y[i], Cb: f.Cb[i], Cr: f.Cr[i]}
}

func (f *Frame) copyFrom(other *Frame) {
	copy(f.Y, other.Y)
	copy(f.Cb, other.Cb)
	copy(f.Cr, other.Cr)
}
