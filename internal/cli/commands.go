package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	initForce          bool
	initNonInteractive bool
	initName           string
	exportOutput       string
	contactName        string
	contactEmail       string
	contactMessage     string
	contactDryRun      bool
)

// initCmd scaffolds a .folio.yaml config and starter content
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .folio.yaml config file",
	Long: `Create a .folio.yaml configuration file in the current directory,
along with a starter experience.json for the timeline.

Runs interactively by default; use --non-interactive with --name for
scripted setup.

Examples:
  folio init
  folio init --force
  folio init --non-interactive --name "Ada Example"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Name:           initName,
			Force:          initForce,
			NonInteractive: initNonInteractive,
		})
	},
}

// exportCmd renders the page once as plain text
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the page as static text",
	Long: `Render the whole portfolio page once, fully revealed, and print it.

This is the same output the root command produces when stdout is not a
terminal. Useful for README generation or piping into other tools.

Examples:
  folio export
  folio export --output portfolio.txt
  folio export | less`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Export(exportOutput)
	},
}

// contactCmd composes and sends a contact message
var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Compose and send a contact message",
	Long: `Compose a contact message and submit it to the configured form
endpoint. Without an endpoint the message prints locally instead of
being sent.

Fields left unset are prompted for interactively.

Examples:
  folio contact
  folio contact --name "Ada" --email ada@example.com --message "Hi!"
  folio contact --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Contact(ContactOptions{
			Name:    contactName,
			Email:   contactEmail,
			Message: contactMessage,
			DryRun:  contactDryRun,
			Out:     os.Stdout,
		})
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config without asking")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "Skip prompts, use flags and defaults")
	initCmd.Flags().StringVar(&initName, "name", "", "Display name for the hero section")

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")

	contactCmd.Flags().StringVar(&contactName, "name", "", "Sender name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "Sender email")
	contactCmd.Flags().StringVar(&contactMessage, "message", "", "Message body")
	contactCmd.Flags().BoolVar(&contactDryRun, "dry-run", false, "Print the message instead of sending it")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(contactCmd)
}
