package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/foliodev/folio/internal/config"
	"github.com/foliodev/folio/internal/theme"
)

// StateDirCheck verifies the theme state directory can be written. The
// theme toggle degrades gracefully without it, so failures warn rather
// than fail.
type StateDirCheck struct{}

func (c *StateDirCheck) Name() string     { return "state_dir" }
func (c *StateDirCheck) Category() string { return "STATE" }

func (c *StateDirCheck) Run() CheckResult {
	dir, err := config.StateDir()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Cannot resolve state directory: %v", err),
			Suggestion: "Theme preference will not persist across sessions",
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("State directory not writable: %v", err),
			Suggestion: "Theme preference will not persist across sessions",
		}
	}

	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("State directory not writable: %v", err),
			Suggestion: "Theme preference will not persist across sessions",
		}
	}
	os.Remove(probe)

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("State directory writable: %s", dir),
	}
}

func (c *StateDirCheck) Fix() error { return nil }

// ThemeStateCheck verifies the persisted theme value parses.
type ThemeStateCheck struct{}

func (c *ThemeStateCheck) Name() string     { return "theme_state" }
func (c *ThemeStateCheck) Category() string { return "STATE" }

func (c *ThemeStateCheck) Run() CheckResult {
	dir, err := config.StateDir()
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No persisted theme; default applies",
		}
	}

	store := theme.NewStore(dir)
	if _, statErr := os.Stat(store.Path()); statErr != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No persisted theme; default applies",
		}
	}

	// Load never fails, it degrades to the default on bad state.
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Persisted theme: %s", store.Load()),
	}
}

func (c *ThemeStateCheck) Fix() error { return nil }

// NewStateChecks returns the state persistence checks.
func NewStateChecks() []Check {
	return []Check{&StateDirCheck{}, &ThemeStateCheck{}}
}
