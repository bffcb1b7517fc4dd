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
	"os"

	"hdxwave/internal/config"
	"hdxwave/internal/container"
	"hdxwave/internal/logging"
	"hdxwave/internal/morse"
	"hdxwave/pkg/audioengine"
	"hdxwave/pkg/spec"

	"go.uber.org/zap"
)

const (
	version_major      = 1
	version_minor      = 0
	developer_title    = "Developer Hardiyanto"
	developer_subtitle = "Build 27/12/2025 -Ebiet Version"
	usage_text         = "Usage: hdx-morse [-text KD9KJV] [-wpm 20] [-output output.wav] [-play] [-interactive]"
	app_name           = "HDX-Morse"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.ParseMorse(app_name, args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Printf("%s version %d.%d\n", app_name, version_major, version_minor)
			fmt.Printf("%s - %s\n", developer_title, developer_subtitle)
			fmt.Printf("%s\n", usage_text)
			return 0
		}
		fmt.Fprintf(os.Stderr, "[FAIL] %v\n", err)
		return 2
	}

	if cfg.Interactive {
		if err := runInterview(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "[FAIL] %v\n", err)
			return 2
		}
	}

	logger := logging.New(os.Stderr, cfg.Verbose)
	defer logger.Sync()

	samples, err := renderCallSign(cfg, logger)
	if err != nil {
		logger.Error("render failed", zap.Error(err))
		return 1
	}

	if err := container.WriteWavFile(cfg.Output, samples, int(spec.SampleRate)); err != nil {
		logger.Error("write failed", zap.String("path", cfg.Output), zap.Error(err))
		return 1
	}
	logger.Info("morse written",
		zap.String("text", cfg.Text),
		zap.String("path", cfg.Output),
		zap.Int("samples", len(samples)),
	)

	if cfg.Play {
		if err := playFile(cfg.Output); err != nil {
			logger.Error("playback failed", zap.Error(err))
			return 1
		}
	}
	return 0
}

func renderCallSign(cfg *config.Morse, logger *zap.Logger) ([]uint8, error) {
	gen, err := audioengine.NewGenerator(cfg.Frequency)
	if err != nil {
		return nil, err
	}
	table, err := gen.Table()
	if err != nil {
		return nil, err
	}

	unit, err := morse.SamplesPerElement(cfg.WPM, spec.SampleRate)
	if err != nil {
		return nil, err
	}
	logger.Debug("keying",
		zap.Int("wpm", cfg.WPM),
		zap.Int("samples_per_element", unit),
		zap.Int("table_len", len(table)),
	)

	events, err := morse.ScheduleWord(unit, cfg.Text)
	if err != nil {
		return nil, err
	}
	return morse.Render(events, table)
}
