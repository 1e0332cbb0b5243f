package common

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

// Progress wraps github.com/briandowns/spinner to provide CLI feedback while
// the facade analyzes a corpus or runs the greedy selector, without tearing
// the terminal when Info/Warning/Error print underneath it.
type Progress struct {
	s *spinner.Spinner
}

// NewProgress creates a spinner with the given initial message.
func NewProgress(msg string) *Progress {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Progress{s: s}
}

// Start starts the spinner, unless verbose logging is enabled (in which case
// the debug lines underneath would otherwise fight it for the terminal).
func (p *Progress) Start() {
	if !VerboseEnabled {
		p.s.Start()
	}
}

// Stop stops the spinner.
func (p *Progress) Stop() {
	p.s.Stop()
}

// UpdateMessage changes the spinner's suffix text.
func (p *Progress) UpdateMessage(format string, args ...any) {
	p.s.Suffix = " " + fmt.Sprintf(format, args...)
}

// LogInfo stops the spinner, logs an info line, and restarts it so the
// message doesn't get overwritten mid-frame.
func (p *Progress) LogInfo(format string, args ...any) {
	wasRunning := p.s.Active()
	if wasRunning {
		p.s.Stop()
	}
	Info(format, args...)
	if wasRunning && !VerboseEnabled {
		p.s.Start()
	}
}
