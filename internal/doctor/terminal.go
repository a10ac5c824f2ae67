package doctor

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// TTYCheck reports whether stdout is a terminal. Without one the page
// falls back to a single static render.
type TTYCheck struct{}

func (c *TTYCheck) Name() string     { return "tty" }
func (c *TTYCheck) Category() string { return "TERMINAL" }

func (c *TTYCheck) Run() CheckResult {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "stdout is not a terminal",
			Suggestion: "'folio' will print a static page; run it directly in a terminal for the animated view",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "stdout is a terminal",
	}
}

func (c *TTYCheck) Fix() error { return nil }

// ColorProfileCheck reports the detected terminal color capability.
type ColorProfileCheck struct{}

func (c *ColorProfileCheck) Name() string     { return "color_profile" }
func (c *ColorProfileCheck) Category() string { return "TERMINAL" }

func (c *ColorProfileCheck) Run() CheckResult {
	profile := termenv.ColorProfile()

	var name string
	switch profile {
	case termenv.TrueColor:
		name = "truecolor"
	case termenv.ANSI256:
		name = "256 colors"
	case termenv.ANSI:
		name = "16 colors"
	default:
		name = "no color"
	}

	if profile == termenv.Ascii {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Terminal reports no color support",
			Suggestion: "Themes look identical without color; check $TERM and $COLORTERM",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Color profile: %s", name),
	}
}

func (c *ColorProfileCheck) Fix() error { return nil }

// SizeCheck warns when the terminal is too narrow for the wide layout.
type SizeCheck struct{}

func (c *SizeCheck) Name() string     { return "terminal_size" }
func (c *SizeCheck) Category() string { return "TERMINAL" }

func (c *SizeCheck) Run() CheckResult {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Not a terminal; fixed-width static layout applies",
		}
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusWarn,
			Message: fmt.Sprintf("Cannot read terminal size: %v", err),
		}
	}

	if width < 80 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Terminal is %dx%d", width, height),
			Suggestion: "Below 80 columns the nav collapses into the 'm' overlay",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Terminal is %dx%d", width, height),
	}
}

func (c *SizeCheck) Fix() error { return nil }

// NewTerminalChecks returns the terminal capability checks.
func NewTerminalChecks() []Check {
	return []Check{&TTYCheck{}, &ColorProfileCheck{}, &SizeCheck{}}
}
