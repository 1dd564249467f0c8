/*
DESCRIPTION
  errors.go defines the typed error taxonomy for program stream demuxing.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mpegps

import "github.com/pkg/errors"

// Sentinel errors a caller can match against with errors.Is, wrapped with
// call-site context via fmt.Errorf's %w.
var (
	ErrFileOpen              = errors.New("mpegps: failed to open file")
	ErrUnexpectedEndOfStream = errors.New("mpegps: unexpected end of stream")
	ErrMalformedHeader       = errors.New("mpegps: malformed header")
)
