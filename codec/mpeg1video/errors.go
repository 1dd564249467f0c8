/*
DESCRIPTION
  errors.go defines the typed error taxonomy for video syntax decoding.

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

import "github.com/pkg/errors"

// Sentinel errors a caller can match against with errors.Is. Call sites
// wrap these with fmt.Errorf's %w to add context without losing the
// sentinel identity.
var (
	ErrFileOpen              = errors.New("mpeg1video: failed to open file")
	ErrUnexpectedEndOfStream = errors.New("mpeg1video: unexpected end of stream")
	ErrMalformedHeader       = errors.New("mpeg1video: malformed header")
	ErrInvalidVLC            = errors.New("mpeg1video: invalid variable-length code")
	ErrGeometry              = errors.New("mpeg1video: macroblock address out of picture bounds")
)
