package tui

import (
	"strings"
)

// navState is the nav overlay state machine: closed or open.
type navState int

const (
	navClosed navState = iota
	navOpen
)

// nav owns the link list, the overlay state, and the selection cursor.
// On wide terminals the full link row fits in the header and the
// overlay is inert, mirroring a hidden toggle control.
type nav struct {
	links    []string // section IDs in document order
	state    navState
	cursor   int
	inert    bool // true when the toggle control is absent (wide layout)
	activeID string
}

func newNav(width int) nav {
	return nav{
		links: navSections,
		inert: width >= navBreakpoint,
	}
}

// setWidth recomputes inertness on resize; an open overlay on a
// now-wide terminal closes.
func (n *nav) setWidth(width int) {
	n.inert = width >= navBreakpoint
	if n.inert {
		n.state = navClosed
	}
}

// toggle flips the overlay state. Inert navs ignore it.
func (n *nav) toggle() {
	if n.inert {
		return
	}
	if n.state == navOpen {
		n.state = navClosed
	} else {
		n.state = navOpen
	}
}

// close forces the closed state. Safe in any state.
func (n *nav) close() {
	n.state = navClosed
}

// isOpen reports whether the overlay is showing.
func (n *nav) isOpen() bool {
	return n.state == navOpen
}

// moveCursor moves the overlay selection, clamped to the link list.
func (n *nav) moveCursor(delta int) {
	n.cursor += delta
	if n.cursor < 0 {
		n.cursor = 0
	}
	if n.cursor >= len(n.links) {
		n.cursor = len(n.links) - 1
	}
}

// selected returns the section ID under the cursor. Selecting a link
// always closes the overlay, whether or not the target exists.
func (n *nav) selected() string {
	if len(n.links) == 0 {
		return ""
	}
	id := n.links[n.cursor]
	n.close()
	return id
}

// setActive records the section currently highlighted in the nav.
func (n *nav) setActive(id string) {
	n.activeID = id
}

// activeSection returns the ID of the last section (in document order)
// whose top minus the lookahead is at or above the scroll offset: the
// last section the viewport has scrolled past. Empty when none qualify.
func activeSection(layout []layoutSection, offset int) string {
	active := ""
	for _, s := range layout {
		if s.ID == sectionHero {
			continue
		}
		if s.Top-lookahead <= offset {
			active = s.ID
		}
	}
	return active
}

// renderBar renders the inline nav row for the wide header. Exactly one
// link is styled active; all others are cleared first.
func (n *nav) renderBar(st styles, titles map[string]string) string {
	parts := make([]string, 0, len(n.links))
	for _, id := range n.links {
		label := titles[id]
		if label == "" {
			label = id
		}
		if id == n.activeID {
			parts = append(parts, st.navActive.Render(label))
		} else {
			parts = append(parts, st.navInactive.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

// renderOverlay renders the open overlay panel.
func (n *nav) renderOverlay(st styles, titles map[string]string) string {
	var b strings.Builder
	for i, id := range n.links {
		label := titles[id]
		if label == "" {
			label = id
		}
		cursor := "  "
		if i == n.cursor {
			cursor = "> "
		}
		if id == n.activeID {
			b.WriteString(cursor + st.navActive.Render(label))
		} else {
			b.WriteString(cursor + st.body.Render(label))
		}
		if i < len(n.links)-1 {
			b.WriteString("\n")
		}
	}
	return st.overlay.Render(b.String())
}
