package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foliodev/folio/internal/config"
	"github.com/foliodev/folio/internal/errors"
	"github.com/foliodev/folio/internal/theme"
)

// themeCmd groups the theme subcommands
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the color theme",
	Long: `Show or change the persisted color theme. The preference survives
across sessions; 't' inside the page toggles it too.

Examples:
  folio theme          Show the current theme
  folio theme set dark
  folio theme toggle`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := themeStore()
		if err != nil {
			return err
		}
		fmt.Println(store.Load())
		return nil
	},
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := themeStore()
		if err != nil {
			return err
		}
		fmt.Println(store.Load())
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set [light|dark]",
	Short:     "Set the theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "dark"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !theme.Valid(args[0]) {
			return errors.New(errors.ErrTheme,
				fmt.Sprintf("Unknown theme: %s", args[0]),
				"Valid themes are 'light' and 'dark'")
		}
		t := theme.Parse(args[0])

		store, err := themeStore()
		if err != nil {
			return err
		}
		if err := store.Save(t); err != nil {
			return err
		}
		fmt.Println(t)
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between light and dark",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := themeStore()
		if err != nil {
			return err
		}
		next, err := store.Toggle()
		if err != nil {
			return err
		}
		fmt.Println(next)
		return nil
	},
}

func themeStore() (*theme.Store, error) {
	dir, err := config.StateDir()
	if err != nil {
		return nil, err
	}
	return theme.NewStore(dir), nil
}

func init() {
	themeCmd.AddCommand(themeGetCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeToggleCmd)
	rootCmd.AddCommand(themeCmd)
}
