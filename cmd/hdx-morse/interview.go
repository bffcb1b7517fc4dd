package main

import (
	"fmt"
	"strconv"
	"strings"

	"hdxwave/internal/config"

	"github.com/chzyer/readline"
)

func runInterview(cfg *config.Morse) error {
	rl, err := readline.NewEx(&readline.Config{Prompt: ">> "})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Printf("\n%s version %d.%d\n", app_name, version_major, version_minor)
	fmt.Printf("%s\n", developer_title)
	fmt.Printf("%s\n", developer_subtitle)

	cfg.Text = ask(rl, "1. Text / Call Sign", cfg.Text)
	cfg.Output = ask(rl, "2. Output WAV", cfg.Output)

	wpm, err := strconv.Atoi(ask(rl, "3. Words Per Minute", strconv.Itoa(cfg.WPM)))
	if err != nil {
		return fmt.Errorf("wpm: %w", err)
	}
	cfg.WPM = wpm

	freq, err := strconv.ParseFloat(ask(rl, "4. Tone (Hz)", strconv.FormatFloat(cfg.Frequency, 'f', -1, 64)), 64)
	if err != nil {
		return fmt.Errorf("tone: %w", err)
	}
	cfg.Frequency = freq

	play := ask(rl, "5. Play after render (y/n)", yesNo(cfg.Play))
	cfg.Play = strings.HasPrefix(strings.ToLower(play), "y")

	return cfg.Validate()
}

func ask(rl *readline.Instance, prompt, def string) string {
	rl.SetPrompt(fmt.Sprintf("%s [%s]: ", prompt, def))
	line, _ := rl.Readline()
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
