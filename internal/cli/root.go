package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/foliodev/folio/internal/config"
	"github.com/foliodev/folio/internal/theme"
	"github.com/foliodev/folio/internal/tui"
)

// Global flags available to all subcommands
var (
	configFlag  string
	noColorFlag bool
)

// rootCmd renders the portfolio page when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A personal portfolio for your terminal",
	Long: `Render an interactive portfolio page in the terminal: animated hero,
section navigation, experience timeline, and a contact form.

Without a terminal attached (pipes, CI), the page prints once as
static text instead.

Examples:
  folio                Render the interactive page
  folio init           Create a .folio.yaml config
  folio theme toggle   Flip between light and dark
  folio export         Print the page as plain text`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := loadConfigAndStore()
		if err != nil {
			return err
		}
		return tui.Run(cfg, store)
	},
}

// Config returns the value of the --config flag.
func Config() string {
	return configFlag
}

// loadConfigAndStore resolves the config (explicit flag, search, or
// defaults) and the theme state store. Missing config is not an error;
// the page renders from defaults.
func loadConfigAndStore() (*config.Config, *theme.Store, error) {
	path, err := config.Find(configFlag)
	if err != nil {
		return nil, nil, err
	}

	var cfg *config.Config
	if path == "" {
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, nil, err
		}
		if err := config.Validate(cfg); err != nil {
			return nil, nil, err
		}
	}

	stateDir, err := config.StateDir()
	if err != nil {
		return nil, nil, err
	}
	return cfg, theme.NewStore(stateDir), nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (default: search for .folio.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	cobra.OnInitialize(func() {
		if noColorFlag || os.Getenv("NO_COLOR") != "" {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	})
}

// Execute runs the root command and reports errors on stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
