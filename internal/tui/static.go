package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/foliodev/folio/internal/config"
	"github.com/foliodev/folio/internal/content"
	"github.com/foliodev/folio/internal/particles"
	"github.com/foliodev/folio/internal/theme"
)

// staticWidth is the render width for non-TTY output.
const staticWidth = 72

// RunStatic renders the whole page once to w: one static hero frame,
// every section revealed, the timeline loaded synchronously. This is
// both the non-TTY fallback and the reduced-motion-friendly export.
func RunStatic(cfg *config.Config, store *theme.Store, w io.Writer) error {
	th := store.Load()
	palette := theme.PaletteFor(th)
	st := newStyles(palette)

	renderer := content.NewRenderer(palette, staticWidth)
	loader := content.NewLoader(contentTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), contentTimeout)
	defer cancel()

	var timeline string
	if doc, err := loader.Fetch(ctx, cfg.Content.Experience); err != nil {
		timeline = renderer.Error(err)
	} else {
		timeline = renderer.Timeline(doc.Experience)
	}

	// One static frame; nothing is ever scheduled after it.
	field := particles.NewField(particles.Config{
		NodeCount:      cfg.UI.NodeCount,
		MaxDistance:    cfg.UI.MaxDistance,
		MouseInfluence: cfg.UI.MouseInfluence,
	}, staticWidth-1, heroHeight-1, time.Now().UnixNano())
	hero := renderHero(particles.RenderFrame(field, palette), cfg, st)

	sections := buildSections(cfg, st, palette, staticWidth, hero, timeline)
	body, _ := assemble(sections, st, func(string) bool { return true })

	_, err := fmt.Fprintln(w, body)
	return err
}
