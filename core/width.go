package core

import (
	"os"

	"golang.org/x/term"
)

const (
	defaultScreenWidth = 80
	minScreenWidth     = 20
)

// Mockable for testing
var (
	isTerminalFn   = term.IsTerminal
	terminalSizeFn = term.GetSize
)

// detectWidth returns the width of the controlling terminal, or the default
// of 80 columns when stdout is not a terminal or is implausibly narrow.
func detectWidth() int {
	fd := int(os.Stdout.Fd())
	if isTerminalFn(fd) {
		if w, _, err := terminalSizeFn(fd); err == nil && w >= minScreenWidth {
			return w
		}
	}
	return defaultScreenWidth
}

// ScreenWidth returns the display width used by the diagnostic renderer and
// the generated documentation.
func (p *Parser) ScreenWidth() int {
	return p.screenWidth
}

// SetScreenWidth overrides the detected display width. Widths below 20 are
// clamped; the column renderer cannot produce useful output below that.
func (p *Parser) SetScreenWidth(width int) {
	if width < minScreenWidth {
		width = minScreenWidth
	}
	p.screenWidth = width
}
