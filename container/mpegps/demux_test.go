/*
DESCRIPTION
  demux_test.go exercises Demuxer against synthetic program streams.

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

import (
	"bytes"
	"testing"

	"github.com/ausocean/utils/logging"
)

type discardLogger struct{}

func (discardLogger) SetLevel(int8)                           {}
func (discardLogger) Debug(msg string, args ...interface{})   {}
func (discardLogger) Info(msg string, args ...interface{})    {}
func (discardLogger) Warning(msg string, args ...interface{}) {}
func (discardLogger) Error(msg string, args ...interface{})   {}
func (discardLogger) Fatal(msg string, args ...interface{})   {}

var _ logging.Logger = discardLogger{}

func TestDemuxerSplicesSingleVideoPacket(t *testing.T) {
	payload := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	stream := concatFixture(pesBuilder{streamID: 0xE0, payload: payload}.bytes())

	d := New(discardLogger{}, bytes.NewReader(stream))
	vr := d.VideoReader()

	for i, want := range payload {
		got := vr.Consume(8)
		if got != int(want) {
			t.Fatalf("byte %d: got %#x, want %#x", i, got, want)
		}
	}
}

func TestDemuxerSkipsAudioPacket(t *testing.T) {
	audio := pesBuilder{streamID: 0xC0, payload: []byte{0x11, 0x22}}.bytes()
	video := pesBuilder{streamID: 0xE0, payload: []byte{0x33, 0x44}}.bytes()
	stream := concatFixture(audio, video)

	d := New(discardLogger{}, bytes.NewReader(stream))
	vr := d.VideoReader()

	if got := vr.Consume(8); got != 0x33 {
		t.Fatalf("first video byte = %#x, want 0x33", got)
	}
	if got := vr.Consume(8); got != 0x44 {
		t.Fatalf("second video byte = %#x, want 0x44", got)
	}
}

func TestDemuxerEndsWhenStreamExhausted(t *testing.T) {
	stream := concatFixture(pesBuilder{streamID: 0xE0, payload: []byte{0x01}}.bytes())
	d := New(discardLogger{}, bytes.NewReader(stream))
	vr := d.VideoReader()

	if got := vr.Consume(8); got != 0x01 {
		t.Fatalf("got %#x, want 0x01", got)
	}
	if vr.Consume(8) != -1 {
		t.Fatal("expected exhaustion after the single buffered byte")
	}
	if !vr.Ended {
		t.Fatal("expected Ended once no further video packets are found")
	}
}

func TestDemuxerMultipleVideoPackets(t *testing.T) {
	first := pesBuilder{streamID: 0xE0, payload: []byte{0x01, 0x02}}.bytes()
	second := pesBuilder{streamID: 0xE0, payload: []byte{0x03, 0x04}}.bytes()
	stream := concatFixture(first, second)

	d := New(discardLogger{}, bytes.NewReader(stream))
	vr := d.VideoReader()

	want := []byte{0x01, 0x02, 0x03, 0x04}
	for i, w := range want {
		if got := vr.Consume(8); got != int(w) {
			t.Fatalf("byte %d: got %#x, want %#x", i, got, w)
		}
	}
}
