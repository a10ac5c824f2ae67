package tui

import "github.com/foliodev/folio/internal/ui"

// scrollPercent computes the progress percentage for an offset. The
// denominator-zero case (content shorter than the viewport) reports 100:
// everything is already visible. Output is always in [0, 100].
func scrollPercent(offset, contentHeight, viewHeight int) float64 {
	denom := contentHeight - viewHeight
	if denom <= 0 {
		return 100
	}
	return ui.ClampPercent(float64(offset) / float64(denom) * 100)
}

// scrollTargetFor resolves a section ID to a scroll offset: the section
// top minus the fixed header offset, floored at zero. The second return
// is false when no section matches; the caller still consumes the
// navigation but moves nothing.
func scrollTargetFor(layout []layoutSection, id string, contentHeight, viewHeight int) (int, bool) {
	for _, s := range layout {
		if s.ID != id {
			continue
		}
		target := s.Top - headerOffset
		if target < 0 {
			target = 0
		}
		if max := contentHeight - viewHeight; max >= 0 && target > max {
			target = max
		}
		return target, true
	}
	return 0, false
}

// scrollStep eases the offset one animation frame toward target,
// covering a quarter of the remaining distance but at least one row.
// Returns the new offset and whether the animation has finished.
func scrollStep(offset, target int) (int, bool) {
	delta := target - offset
	if delta == 0 {
		return offset, true
	}

	step := delta / 4
	if step == 0 {
		if delta > 0 {
			step = 1
		} else {
			step = -1
		}
	}

	next := offset + step
	if (delta > 0 && next >= target) || (delta < 0 && next <= target) {
		return target, true
	}
	return next, false
}

// revealedFraction returns how much of a section is inside the viewport
// extended by the bottom reveal bias.
func revealedFraction(s layoutSection, offset, viewHeight int) float64 {
	if s.Height <= 0 {
		return 0
	}

	top := s.Top
	bottom := s.Top + s.Height
	winTop := offset
	winBottom := offset + viewHeight + revealBias

	visTop := top
	if winTop > visTop {
		visTop = winTop
	}
	visBottom := bottom
	if winBottom < visBottom {
		visBottom = winBottom
	}

	visible := visBottom - visTop
	if visible <= 0 {
		return 0
	}
	return float64(visible) / float64(s.Height)
}
