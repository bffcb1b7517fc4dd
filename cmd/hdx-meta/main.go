/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"hdxwave/internal/codec"
	"hdxwave/internal/container"
	"hdxwave/pkg/audioengine"
	"hdxwave/pkg/spec"
)

const (
	version_minor      = 0
	version_major      = 1
	developer_title    = "Developer Hardiyanto"
	developer_subtitle = "Build 27/12/2025 Ebiet Version"
	app_name           = "HDX-Meta"
	general_usage      = "Usage: ./hdx-meta -wav <path file name .wav>"
	preview_usage      = "Usage: ./hdx-meta -wav <path file name .wav> -preview"
	opus_usage         = "Usage: ./hdx-meta -opus <path file name .opus>"
	preview_width      = 60
)

func main() {
	pathFlag := flag.String("wav", "", "full path file name of .wav file")
	opusFlag := flag.String("opus", "", "full path file name of .opus stream from hdx-wavetable")
	preview := flag.Bool("preview", false, "print waveform preview")
	flag.Parse()

	if *opusFlag != "" {
		if err := inspectOpus(os.Stdout, *opusFlag); err != nil {
			fmt.Printf("[!] %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *pathFlag == "" {
		fmt.Printf("\n%s %d.%d\n", app_name, version_major, version_minor)
		fmt.Printf("%s %s\n", developer_title, developer_subtitle)
		fmt.Printf("%s\n", general_usage)
		fmt.Printf("%s\n", preview_usage)
		fmt.Printf("%s\n", opus_usage)
		return
	}

	f, err := os.Open(*pathFlag)
	if err != nil {
		fmt.Printf("Gagal buka file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	stat, _ := f.Stat()
	info, err := container.ReadWav(f)
	if err != nil {
		fmt.Printf("[!] %v\n", err)
		os.Exit(1)
	}

	printInfo(os.Stdout, info, stat.Size(), *preview)
}

func printInfo(w io.Writer, info *container.WavInfo, fileSize int64, preview bool) {
	stats := audioengine.AnalyzeTable(info.Samples)

	tone := "n/a"
	if freq, err := codec.DominantFrequencyPCM(info.Samples, float64(info.SampleRate)); err == nil {
		tone = fmt.Sprintf("%.1f Hz", freq)
	}

	fmt.Fprintln(w, strings.Repeat("=", 75))
	fmt.Fprintf(w, " FORMAT        : PCM %d-bit, %d channel(s)\n", info.BitDepth, info.Channels)
	fmt.Fprintf(w, " SAMPLE RATE   : %d Hz\n", info.SampleRate)
	fmt.Fprintf(w, " DURATION      : %02d:%06.3f\n", int(info.Duration.Minutes()), info.Duration.Seconds()-float64(int(info.Duration.Minutes())*60))
	fmt.Fprintf(w, " FILE SIZE     : %s\n", formatSize(fileSize))
	fmt.Fprintln(w, strings.Repeat("-", 75))
	fmt.Fprintf(w, " SAMPLES       : %d\n", stats.Length)
	fmt.Fprintf(w, " RANGE         : %d .. %d\n", stats.Min, stats.Max)
	fmt.Fprintf(w, " DOMINANT TONE : %s\n", tone)
	fmt.Fprintf(w, " FINGERPRINT   : %s\n", codec.Fingerprint(info.Samples))

	if preview {
		fmt.Fprintln(w, strings.Repeat("-", 75))
		fmt.Fprintf(w, " %s\n", codec.RenderSparkline(info.Samples, preview_width))
	}
	fmt.Fprintln(w, strings.Repeat("=", 75))
}

func inspectOpus(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("gagal buka file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return err
	}
	sum, err := codec.InspectOpusStream(f)
	if err != nil {
		return err
	}
	printOpusInfo(w, sum, stat.Size())
	return nil
}

func printOpusInfo(w io.Writer, sum codec.OpusSummary, fileSize int64) {
	minutes := int(sum.Duration / 60)
	fmt.Fprintln(w, strings.Repeat("=", 75))
	fmt.Fprintf(w, " FORMAT        : Opus %d Hz, %d channel(s), %d ms frames\n", spec.OpusSampleRate, spec.OpusChannels, spec.OpusFrameMs)
	fmt.Fprintf(w, " FRAMES        : %d\n", sum.Frames)
	fmt.Fprintf(w, " DURATION      : %02d:%06.3f\n", minutes, sum.Duration-float64(minutes*60))
	fmt.Fprintf(w, " FILE SIZE     : %s\n", formatSize(fileSize))
	if sum.Duration > 0 {
		fmt.Fprintf(w, " BITRATE       : %.1f kbps\n", float64(sum.Bytes)*8/sum.Duration/1000)
	}
	fmt.Fprintln(w, strings.Repeat("=", 75))
}

// Helper untuk format size yang human friendly
func formatSize(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	if exp == 0 {
		return fmt.Sprintf("%.2f Kb", float64(b)/float64(unit))
	}
	return fmt.Sprintf("%.2f Mb", float64(b)/float64(div))
}
