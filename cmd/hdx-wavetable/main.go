/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"hdxwave/internal/codec"
	"hdxwave/internal/config"
	"hdxwave/internal/container"
	"hdxwave/internal/logging"
	"hdxwave/pkg/audioengine"

	"go.uber.org/zap"
)

const (
	version_major      = 1
	version_minor      = 0
	developer_title    = "Developer Hardiyanto"
	developer_subtitle = "Build 27/12/2025 -Ebiet Version"
	app_name           = "HDX-Wavetable"
	preview_width      = 75
	spectrum_periods   = 64
	plot_scale         = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.ParseWavetable(app_name, args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "%s version %d.%d\n", app_name, version_major, version_minor)
			fmt.Fprintf(stderr, "%s - %s\n", developer_title, developer_subtitle)
			return 0
		}
		fmt.Fprintf(stderr, "[FAIL] %v\n", err)
		return 2
	}

	logger := logging.New(stderr, cfg.Verbose)
	defer logger.Sync()

	if err := generate(cfg, stdout, stderr, logger); err != nil {
		logger.Error("wave table generation failed", zap.Error(err))
		return 1
	}
	return 0
}

func generate(cfg *config.Wavetable, stdout, stderr io.Writer, logger *zap.Logger) error {
	gen, err := audioengine.NewGenerator(cfg.Frequency,
		audioengine.WithSampleRate(cfg.SampleRate),
		audioengine.WithCeiling(cfg.Ceiling),
	)
	if err != nil {
		return err
	}

	table, err := gen.Table()
	if err != nil {
		return err
	}

	stats := audioengine.AnalyzeTable(table)
	logger.Debug("period detected",
		zap.Float64("freq", cfg.Frequency),
		zap.Float64("rate", cfg.SampleRate),
		zap.Int("samples", stats.Length),
		zap.Uint8("min", stats.Min),
		zap.Uint8("max", stats.Max),
		zap.String("fingerprint", codec.Fingerprint(table)),
	)

	err = audioengine.WriteLiteral(stdout, table, audioengine.LiteralOptions{
		Name:            cfg.Name,
		TrailingNewline: cfg.TrailingNewline,
		Columns:         cfg.Columns,
	})
	if err != nil {
		return fmt.Errorf("write literal: %w", err)
	}

	if cfg.Preview {
		loopFreq, err := codec.DominantFrequency(table, cfg.SampleRate, spectrum_periods)
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "%s\n", codec.RenderSparkline(table, preview_width))
		fmt.Fprintf(stderr, "%d samples, loop tone %.1f Hz (requested %.1f Hz)\n", len(table), loopFreq, cfg.Frequency)
	}

	if cfg.PNGPath != "" {
		img, err := codec.GeneratePlot(table, plot_scale)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.PNGPath, img, 0o644); err != nil {
			return err
		}
		logger.Info("plot written", zap.String("path", cfg.PNGPath), zap.Int("bytes", len(img)))
	}

	if cfg.WavPath == "" && cfg.OpusPath == "" {
		return nil
	}

	loop := audioengine.TileTable(table, int(cfg.Seconds*cfg.SampleRate))

	if cfg.WavPath != "" {
		if err := container.WriteWavFile(cfg.WavPath, loop, int(cfg.SampleRate)); err != nil {
			return fmt.Errorf("write wav: %w", err)
		}
		logger.Info("wav written", zap.String("path", cfg.WavPath), zap.Int("samples", len(loop)))
	}

	if cfg.OpusPath != "" {
		f, err := os.Create(cfg.OpusPath)
		if err != nil {
			return err
		}
		sum, err := codec.WriteOpusStream(f, loop, int(cfg.SampleRate), cfg.Gain)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		logger.Info("opus written",
			zap.String("path", cfg.OpusPath),
			zap.Int("frames", sum.Frames),
			zap.Uint64("bytes", sum.Bytes),
			zap.Float64("duration", sum.Duration),
		)
	}
	return nil
}
