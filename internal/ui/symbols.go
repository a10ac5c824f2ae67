package ui

// Unicode symbols for status and content markers.
const (
	SymbolSuccess = "✓" // Check passed
	SymbolFail    = "✗" // Check or load failed
	SymbolWarn    = "⚠" // Check passed with a caveat
	SymbolMarker  = "◆" // Timeline item marker
	SymbolBullet  = "▸" // Highlight bullet
	SymbolNavDot  = "·" // Inactive nav separator
)
