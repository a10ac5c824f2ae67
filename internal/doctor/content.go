package doctor

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/foliodev/folio/internal/config"
)

// probeTimeout bounds the HTTP reachability probe.
const probeTimeout = 5 * time.Second

// ExperienceSourceCheck verifies the experience timeline source is
// reachable: a readable file for local paths, a HEAD-able URL otherwise.
type ExperienceSourceCheck struct {
	Cfg *config.Config
}

func (c *ExperienceSourceCheck) Name() string     { return "experience_source" }
func (c *ExperienceSourceCheck) Category() string { return "CONTENT" }

func (c *ExperienceSourceCheck) Run() CheckResult {
	source := c.Cfg.Content.Experience
	if source == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "No experience source configured",
			Suggestion: "Set content.experience to a JSON file path or URL",
		}
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return c.probeURL(source)
	}
	return c.probeFile(source)
}

func (c *ExperienceSourceCheck) probeFile(path string) CheckResult {
	info, err := os.Stat(path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Experience file not readable: %v", err),
			Suggestion: "Run 'folio init' to scaffold a starter experience file",
			Fixable:    true,
		}
	}
	if info.IsDir() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Experience source is a directory: %s", path),
			Suggestion: "Point content.experience at a JSON file",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Experience file: %s", path),
	}
}

func (c *ExperienceSourceCheck) probeURL(url string) CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: fmt.Sprintf("Invalid experience URL: %v", err),
		}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Experience URL unreachable: %v", err),
			Suggestion: "The page still renders; the timeline shows an error block until the URL responds",
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Experience URL returned HTTP %d", resp.StatusCode),
			Suggestion: "Check that the URL serves the experience JSON document",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Experience URL reachable (HTTP %d)", resp.StatusCode),
	}
}

func (c *ExperienceSourceCheck) Fix() error { return nil }

// NewContentChecks returns the content source checks.
func NewContentChecks(cfg *config.Config) []Check {
	return []Check{&ExperienceSourceCheck{Cfg: cfg}}
}
