package cli

import (
	"fmt"
	"os"

	"github.com/foliodev/folio/internal/errors"
	"github.com/foliodev/folio/internal/tui"
)

// Export renders the full page once and writes it to the given path, or
// stdout when the path is empty.
func Export(output string) error {
	cfg, store, err := loadConfigAndStore()
	if err != nil {
		return err
	}

	if output == "" {
		return tui.RunStatic(cfg, store, os.Stdout)
	}

	f, err := os.Create(output)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Failed to create output file: "+output,
			"Check directory permissions")
	}
	defer f.Close()

	if err := tui.RunStatic(cfg, store, f); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", output)
	return nil
}
