// Package ui holds small terminal helpers for long-running commands.
package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// Progress is a TTY-aware spinner. Off-TTY (pipes, CI) it is a no-op so
// report output stays clean.
type Progress struct {
	s *spinner.Spinner
}

// NewProgress creates a spinner with the given message. It renders on
// stderr so stdout remains machine-readable.
func NewProgress(message string) *Progress {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return &Progress{}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	return &Progress{s: s}
}

func (p *Progress) Start() {
	if p.s != nil {
		p.s.Start()
	}
}

func (p *Progress) Stop() {
	if p.s != nil {
		p.s.Stop()
	}
}

// SetMessage swaps the message while running.
func (p *Progress) SetMessage(message string) {
	if p.s != nil {
		p.s.Suffix = " " + message
	}
}
