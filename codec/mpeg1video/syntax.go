/*
DESCRIPTION
  syntax.go provides syntaxReader, a small helper that accumulates the
  first error across a run of fixed-width field reads so multi-field
  syntax elements (sequence header, picture header, slice header) read
  linearly without an "if err != nil" after every field, mirroring
  nalunit.go's fieldReader in the h264 decoder.

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

import "github.com/ausocean/mpeg1video/bits"

type syntaxReader struct {
	r   *bits.Reader
	err error
}

func newSyntaxReader(r *bits.Reader) *syntaxReader { return &syntaxReader{r: r} }

// bits reads n bits, recording the first failure and returning 0 for every
// read after it so call sites don't need to check the error after each
// field.
func (s *syntaxReader) bits(n int) int {
	if s.err != nil {
		return 0
	}
	v := s.r.Consume(n)
	if v < 0 {
		s.err = ErrUnexpectedEndOfStream
		return 0
	}
	return v
}

func (s *syntaxReader) flag() bool { return s.bits(1) == 1 }

func (s *syntaxReader) Err() error { return s.err }
