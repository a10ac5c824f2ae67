package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/foliodev/folio/internal/config"
	"github.com/foliodev/folio/internal/errors"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Name           string // Pre-specified display name
	Force          bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// starterExperience is the scaffolded timeline document. It is valid
// JSON in the shape the timeline loader expects, ready to edit.
const starterExperience = `{
  "experience": [
    {
      "title": "Your Most Recent Role",
      "organization": "Company Name",
      "startDate": "2023",
      "endDate": "Present",
      "location": "City, Country",
      "description": "What you did there, in a sentence or two.",
      "highlights": [
        "A shipped thing you are proud of",
        "Another one"
      ]
    }
  ]
}
`

// Init creates a new .folio.yaml configuration file and a starter
// experience document next to it.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// Collect profile values
	var name, title, tagline, location, endpoint string

	if opts.NonInteractive {
		name = opts.Name
		if name == "" {
			return errors.New(errors.ErrConfig,
				"A display name is required in non-interactive mode",
				"Provide --name or run interactively")
		}
	} else {
		name = opts.Name
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Display name").
					Description("Shown large in the hero section").
					Placeholder("Ada Example").
					Value(&name).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("a display name is required")
						}
						return nil
					}),
				huh.NewInput().
					Title("Title").
					Description("Professional title under the name").
					Placeholder("Game Designer").
					Value(&title),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Tagline (optional)").
					Description("A one-liner for the about section").
					Value(&tagline),
				huh.NewInput().
					Title("Location (optional)").
					Placeholder("Berlin, Germany").
					Value(&location),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Contact form endpoint (optional)").
					Description("A formspree-style URL; leave empty to print messages locally").
					Placeholder("https://formspree.io/f/abcdwxyz").
					Value(&endpoint).
					Validate(func(s string) error {
						s = strings.TrimSpace(s)
						if s == "" {
							return nil
						}
						if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
							return fmt.Errorf("endpoint must be an http(s) URL")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try --non-interactive with --name for scripted setup")
		}
	}

	cfg := config.DefaultConfig()
	cfg.Profile.Name = strings.TrimSpace(name)
	cfg.Profile.Title = strings.TrimSpace(title)
	cfg.Profile.Tagline = strings.TrimSpace(tagline)
	cfg.Profile.Location = strings.TrimSpace(location)
	cfg.Contact.Endpoint = strings.TrimSpace(endpoint)
	cfg.Content.Experience = "experience.json"

	if err := writeConfig(configPath, cfg); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", configPath)

	// Scaffold the timeline document unless one already exists.
	expPath := filepath.Join(".", "experience.json")
	if _, err := os.Stat(expPath); os.IsNotExist(err) {
		if err := os.WriteFile(expPath, []byte(starterExperience), 0o644); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to write starter experience file",
				"Check directory permissions")
		}
		fmt.Printf("Created %s\n", expPath)
	}

	fmt.Println("\nRun 'folio' to see your page.")
	return nil
}

// writeConfig marshals the config to YAML with a header comment.
func writeConfig(path string, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This is a bug; please report it")
	}

	content := "# folio configuration\n# See 'folio --help' for what each field does.\n" + string(data)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check directory permissions")
	}
	return nil
}
