package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .folio.yaml configuration file.
type Config struct {
	Version int           `yaml:"version" mapstructure:"version"`
	Profile ProfileConfig `yaml:"profile" mapstructure:"profile"`
	Content ContentConfig `yaml:"content" mapstructure:"content"`
	Contact ContactConfig `yaml:"contact" mapstructure:"contact"`
	UI      UIConfig      `yaml:"ui" mapstructure:"ui"`
}

// ProfileConfig holds the identity rendered in the hero and about sections.
type ProfileConfig struct {
	// Name is the display name in the hero section.
	Name string `yaml:"name" mapstructure:"name"`

	// Title is the professional title under the name.
	Title string `yaml:"title" mapstructure:"title"`

	// Tagline is an optional one-liner below the title.
	Tagline string `yaml:"tagline" mapstructure:"tagline"`

	// Location shown in the about section.
	Location string `yaml:"location" mapstructure:"location"`

	// Links are labeled URLs (github, linkedin, site) shown in the hero.
	Links []Link `yaml:"links" mapstructure:"links"`

	// Expertise cards for the expertise section.
	Expertise []Card `yaml:"expertise" mapstructure:"expertise"`

	// Press cards for the press section.
	Press []Card `yaml:"press" mapstructure:"press"`

	// Games cards for the games/projects section.
	Games []Card `yaml:"games" mapstructure:"games"`
}

// Link is a labeled URL.
type Link struct {
	Label string `yaml:"label" mapstructure:"label"`
	URL   string `yaml:"url" mapstructure:"url"`
}

// Card is one entry in a card-style section (expertise, press, games).
type Card struct {
	Title string `yaml:"title" mapstructure:"title"`
	Blurb string `yaml:"blurb" mapstructure:"blurb"`
	URL   string `yaml:"url" mapstructure:"url"`
}

// ContentConfig points at external content documents.
type ContentConfig struct {
	// Experience is the experience timeline document: a filesystem path
	// or an http(s) URL returning the expected JSON shape.
	Experience string `yaml:"experience" mapstructure:"experience"`
}

// ContactConfig controls the contact form delegation.
type ContactConfig struct {
	// Endpoint is the hosted form service URL the composed message is
	// POSTed to (formspree-style). Empty means print-only.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
}

// UIConfig controls rendering and animation behavior.
type UIConfig struct {
	// ReducedMotion disables all animation: the hero renders one static
	// frame and entrance reveals are skipped.
	ReducedMotion bool `yaml:"reduced_motion" mapstructure:"reduced_motion"`

	// NodeCount is the number of points in the hero animation.
	NodeCount int `yaml:"node_count" mapstructure:"node_count"`

	// MaxDistance is the connection distance threshold in cells.
	MaxDistance float64 `yaml:"max_distance" mapstructure:"max_distance"`

	// MouseInfluence is the pointer attraction radius in cells.
	MouseInfluence float64 `yaml:"mouse_influence" mapstructure:"mouse_influence"`

	// FPS is the animation frame rate. Clamped to [1, 60].
	FPS int `yaml:"fps" mapstructure:"fps"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Content: ContentConfig{
			Experience: "src/data/experience.json",
		},
		UI: UIConfig{
			ReducedMotion:  false,
			NodeCount:      50,
			MaxDistance:    20,
			MouseInfluence: 15,
			FPS:            30,
		},
	}
}
