/*
DESCRIPTION
  mpeg1dump decodes an MPEG-1 program stream file to completion, reporting
  sequence parameters and per-frame progress to a logger.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// mpeg1dump decodes an MPEG-1 program stream file to completion, printing
// sequence parameters once and a summary (frame count, elapsed time) at
// the end.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/mpeg1video/codec/mpeg1video"
	"github.com/ausocean/mpeg1video/container/mpegps"
	"github.com/ausocean/utils/logging"
)

// Logging configuration.
const (
	logMaxSize   = 500 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logSuppress  = true
)

func main() {
	logLevel := flag.Int("loglevel", int(logging.Info), "log level: 0=Debug 1=Info 2=Warning 3=Error 4=Fatal")
	logFile := flag.String("logfile", "", "optional log file path; stderr is always used")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mpeg1dump [-loglevel N] [-logfile path] <file>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	var out io.Writer = os.Stderr
	if *logFile != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		})
	}
	log := logging.New(int8(*logLevel), out, logSuppress)

	if err := run(log, path); err != nil {
		log.Error("decode failed", "error", err)
		os.Exit(1)
	}
}

func run(log logging.Logger, path string) error {
	demuxer, file, err := mpegps.Open(log, path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	dec := mpeg1video.New(log, demuxer.VideoReader())

	var frameCount int
	start := time.Now()
	onFrame := func(f *mpeg1video.Frame) {
		frameCount++
		if frameCount == 1 {
			params := dec.SequenceParameters()
			log.Info("sequence parameters",
				"width", params.Width, "height", params.Height,
				"frame_rate", params.FrameRate, "aspect_ratio", params.AspectRatio)
		}
		log.Debug("decoded frame", "frame", frameCount, "width", f.Width, "height", f.Height)
	}

	if err := dec.Run(context.Background(), onFrame); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	log.Info("decode complete", "frames", frameCount, "elapsed", time.Since(start))
	return nil
}
