// SPDX-License-Identifier: EPL-2.0

// Command hrtfplay renders an audio file as a source circling the listener.
//
//	hrtfplay -data ./full -in song.mp3 -out circling.wav
//	hrtfplay -data ./full -in song.ogg -play
package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/ik5/audhrtf/audio"
	"github.com/ik5/audhrtf/formats/aiff"
	"github.com/ik5/audhrtf/formats/mp3"
	"github.com/ik5/audhrtf/formats/vorbis"
	"github.com/ik5/audhrtf/formats/wav"
	"github.com/ik5/audhrtf/hrtf"
)

type config struct {
	dataDir  string
	in       string
	out      string
	rate     int
	block    int
	radius   float64
	height   float64
	speed    float64
	play     bool
	logLevel string
	logJSON  bool
}

func parseFlags(args []string) (config, error) {
	var c config

	fs := flag.NewFlagSet("hrtfplay", flag.ContinueOnError)
	fs.StringVar(&c.dataDir, "data", "./", "HRTF dataset root (contains elev*/ directories)")
	fs.StringVar(&c.in, "in", "", "input audio file (wav, mp3, ogg, aif, aiff)")
	fs.StringVar(&c.out, "out", "", "write the binaural result to this WAV file")
	fs.IntVar(&c.rate, "rate", 44100, "sample rate of the dataset; input is resampled to it")
	fs.IntVar(&c.block, "block", 512, "frames per processing block")
	fs.Float64Var(&c.radius, "radius", 1, "orbit radius")
	fs.Float64Var(&c.height, "height", -1, "source height relative to the listener")
	fs.Float64Var(&c.speed, "speed", math.Pi/10, "orbit speed in radians per second")
	fs.BoolVar(&c.play, "play", false, "play through the default audio device")
	fs.StringVar(&c.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.BoolVar(&c.logJSON, "log-json", false, "log as JSON")

	if err := fs.Parse(args); err != nil {
		return c, err
	}

	if c.in == "" {
		return c, errors.New("-in is required")
	}
	if c.out == "" && !c.play {
		return c, errors.New("nothing to do: set -out and/or -play")
	}
	if c.rate <= 0 || c.block <= 0 {
		return c, errors.New("-rate and -block must be positive")
	}

	return c, nil
}

func newLogger(c config) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return nil, fmt.Errorf("-log-level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.logJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return reg
}

// trace wraps a trajectory to log the source position about once a second.
func trace(logger *slog.Logger, next hrtf.Trajectory) hrtf.Trajectory {
	var lastSecond int64 = -1

	return func(e *hrtf.Engine, frame int64, sampleRate int) {
		next(e, frame, sampleRate)

		if sec := frame / int64(sampleRate); sec != lastSecond {
			lastSecond = sec
			logger.Debug("source moved", "second", sec, "position", e.SourcePosition().String())
		}
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	engine, err := hrtf.Open(cfg.dataDir, hrtf.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("dataset ready", "root", cfg.dataDir, "took", time.Since(start))

	dec, ok := newRegistry().ForFile(cfg.in)
	if !ok {
		return fmt.Errorf("unsupported format: %s", cfg.in)
	}

	inFile, err := os.Open(cfg.in)
	if err != nil {
		return err
	}
	defer inFile.Close()

	src, err := dec.Decode(inFile)
	if err != nil {
		return fmt.Errorf("decode %s: %w", cfg.in, err)
	}
	defer src.Close()

	logger.Info("input opened",
		"file", cfg.in,
		"rate", src.SampleRate(),
		"channels", src.Channels())

	var stream audio.Source = src
	if src.SampleRate() != cfg.rate {
		stream = audio.NewResampler(stream, cfg.rate)
	}
	stream = audio.NewStereoMixer(stream)

	binaural, err := hrtf.NewSource(stream, engine, cfg.block,
		trace(logger, hrtf.Orbit(cfg.radius, cfg.height, cfg.speed)))
	if err != nil {
		return err
	}

	if cfg.out == "" {
		return play(ctx, logger, cfg.rate, audio.NewPCMReader(binaural, 2*cfg.block))
	}

	pcm, err := audio.ReadAll(binaural, 2*cfg.block)
	if err != nil {
		return err
	}
	if n := binaural.Skipped(); n > 0 {
		logger.Warn("blocks passed through unprocessed", "count", n)
	}

	if err := writeWAV(cfg.out, cfg.rate, pcm); err != nil {
		return err
	}
	logger.Info("wrote", "file", cfg.out, "frames", len(pcm)/2)

	if !cfg.play {
		return nil
	}

	raw := make([]byte, 2*len(pcm))
	for i, s := range pcm {
		binary.LittleEndian.PutUint16(raw[2*i:], uint16(s))
	}

	return play(ctx, logger, cfg.rate, bytes.NewReader(raw))
}

func writeWAV(path string, rate int, pcm []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := wav.WritePCM16(f, rate, 2, pcm); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

// play streams little-endian stereo PCM to the default output device until
// r is drained or ctx is cancelled.
func play(ctx context.Context, logger *slog.Logger, rate int, r io.Reader) error {
	otoCtx, ready, err := oto.NewContext(rate, 2, oto.FormatSignedInt16LE)
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	player := otoCtx.NewPlayer(r)
	defer player.Close()

	player.Play()
	logger.Info("playing", "rate", rate)

	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			logger.Info("stopped")
			return nil
		case <-tick.C:
		}
	}

	return player.Err()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("hrtfplay failed", "err", err)
		stop()
		os.Exit(1)
	}
}
