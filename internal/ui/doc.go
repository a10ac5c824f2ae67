// Package ui provides shared terminal UI primitives for folio.
//
// The package holds the ANSI color constants, status symbols, the branded
// header, and the block-character bar used for the scroll progress
// indicator. Section-specific styling lives with the TUI model; only
// pieces shared between the TUI and plain CLI output belong here.
//
// Colors are defined as ANSI codes for broad terminal compatibility.
// Theme-dependent colors (light/dark palettes) live in internal/theme;
// the constants here are theme-neutral status colors.
package ui
