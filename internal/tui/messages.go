package tui

import (
	"time"

	"github.com/foliodev/folio/internal/content"
)

// tickMsg drives the animation frame loop.
type tickMsg time.Time

// contentLoadedMsg carries the parsed experience document.
type contentLoadedMsg struct {
	doc *content.Document
}

// contentFailedMsg carries the terminal load failure.
type contentFailedMsg struct {
	err error
}
