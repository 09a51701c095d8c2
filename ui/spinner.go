package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

type SpinnerCfg struct {
	Message  string
	Tokens   []string
	Duration time.Duration
}

var (
	s        = &spinner.Spinner{}
	spinning bool
)

// StartSpinner is a no-op when stdout is not a terminal.
func StartSpinner(cfg *SpinnerCfg) {
	if !SupportsANSICodes() {
		return
	}
	if cfg.Tokens == nil {
		cfg.Tokens = spinner.CharSets[14]
	}
	if cfg.Duration.Microseconds() == 0 {
		cfg.Duration = time.Duration(100) * time.Millisecond
	}
	s = spinner.New(cfg.Tokens, cfg.Duration)
	s.Writer = os.Stdout

	if cfg.Message != "" {
		s.Suffix = " " + cfg.Message
	}

	s.Start()
	spinning = true
}

func StopSpinner(msg string) {
	if !spinning {
		if msg != "" {
			os.Stdout.WriteString(msg + "\n")
		}
		return
	}
	if msg != "" {
		s.FinalMSG = msg + "\n"
	}

	s.Stop()
	spinning = false
}
