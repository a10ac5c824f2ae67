package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/foliodev/folio/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but folio only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest folio release")
	}

	if strings.TrimSpace(cfg.Content.Experience) == "" {
		return errors.New(errors.ErrConfig,
			"content.experience is empty",
			"Point it at an experience.json path or URL")
	}

	if isURL(cfg.Content.Experience) {
		if _, err := url.Parse(cfg.Content.Experience); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"content.experience is not a valid URL",
				"Use a plain file path or a full http(s) URL")
		}
	}

	if cfg.Contact.Endpoint != "" {
		u, err := url.Parse(cfg.Contact.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("contact.endpoint '%s' is not an http(s) URL", cfg.Contact.Endpoint),
				"Use the full form endpoint URL, e.g. https://formspree.io/f/abc123")
		}
	}

	if err := validateUI(cfg.UI); err != nil {
		return err
	}

	for _, link := range cfg.Profile.Links {
		if strings.TrimSpace(link.Label) == "" {
			return errors.New(errors.ErrConfig,
				"A profile link is missing its label",
				"Every profile.links entry needs both label and url")
		}
	}

	return nil
}

// validateUI checks the animation settings.
func validateUI(ui UIConfig) error {
	if ui.NodeCount < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("ui.node_count %d is negative", ui.NodeCount),
			"Use a count between 0 and 500")
	}
	if ui.NodeCount > 500 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("ui.node_count %d is too large", ui.NodeCount),
			"Counts above 500 make the pairwise connection pass too slow; use 500 or fewer")
	}
	if ui.MaxDistance < 0 || ui.MouseInfluence < 0 {
		return errors.New(errors.ErrConfig,
			"ui.max_distance and ui.mouse_influence must be non-negative",
			"Remove the setting to fall back to the default")
	}
	if ui.FPS < 1 || ui.FPS > 60 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("ui.fps %d is out of range", ui.FPS),
			"Use a frame rate between 1 and 60")
	}
	return nil
}
