package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/foliodev/folio/internal/config"
	"github.com/foliodev/folio/internal/doctor"
	"github.com/foliodev/folio/internal/ui"
)

var (
	doctorJSON bool
	doctorFix  bool
)

// doctorCmd diagnoses config, content, state, and terminal issues
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and rendering issues",
	Long: `Run diagnostic checks: config file and schema, experience source
reachability, theme state persistence, and terminal capabilities.

Examples:
  folio doctor
  folio doctor --json
  folio doctor --fix`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "attempt automatic fixes where possible")
	rootCmd.AddCommand(doctorCmd)
}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Fixable  int  `json:"fixable"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand implements the doctor command logic.
func doctorCommand() error {
	cfgPath, _ := config.Find(Config())

	cfg, err := config.LoadOrDefault()
	if err != nil {
		// Config checks will report the details; defaults keep the
		// content checks runnable.
		cfg = config.DefaultConfig()
	}

	checks := collectChecks(cfgPath, cfg)
	results := doctor.RunAll(checks)

	if doctorFix {
		results = attemptFixes(checks, results)
	}

	if doctorJSON {
		return outputDoctorJSON(checks, results)
	}
	return outputDoctorText(checks, results)
}

// collectChecks gathers all diagnostic checks.
func collectChecks(cfgPath string, cfg *config.Config) []doctor.Check {
	var checks []doctor.Check
	checks = append(checks, doctor.NewConfigChecks(cfgPath)...)
	checks = append(checks, doctor.NewContentChecks(cfg)...)
	checks = append(checks, doctor.NewStateChecks()...)
	checks = append(checks, doctor.NewTerminalChecks()...)
	return checks
}

// attemptFixes tries to fix issues where possible.
func attemptFixes(checks []doctor.Check, results []doctor.CheckResult) []doctor.CheckResult {
	for i, result := range results {
		if result.Fixable && (result.Status == doctor.StatusFail || result.Status == doctor.StatusWarn) {
			if err := checks[i].Fix(); err == nil {
				results[i] = checks[i].Run()
			}
		}
	}
	return results
}

// outputDoctorJSON outputs results in JSON format.
func outputDoctorJSON(checks []doctor.Check, results []doctor.CheckResult) error {
	grouped := make(map[string][]doctor.CheckResult)
	categoryOrder := []string{}

	for i, check := range checks {
		cat := check.Category()
		if _, exists := grouped[cat]; !exists {
			categoryOrder = append(categoryOrder, cat)
		}
		grouped[cat] = append(grouped[cat], results[i])
	}

	output := DoctorOutput{
		Categories: make([]CategoryOutput, 0, len(categoryOrder)),
	}
	for _, cat := range categoryOrder {
		output.Categories = append(output.Categories, CategoryOutput{
			Name:    cat,
			Results: grouped[cat],
		})
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		Fixable:  doctor.FixableCount(results),
		AllClear: !doctor.HasIssues(results),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputDoctorText outputs results in human-readable format.
func outputDoctorText(checks []doctor.Check, results []doctor.CheckResult) error {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Println()
	ui.PrintHeader(ui.HeaderInfo{
		Name:    "folio",
		Title:   "Diagnostic Report",
		Version: formatVersion(version),
	})

	categoryOrder := []string{"CONFIG", "CONTENT", "STATE", "TERMINAL"}
	grouped := make(map[string][]int)
	for i, check := range checks {
		cat := check.Category()
		grouped[cat] = append(grouped[cat], i)
	}

	for _, cat := range categoryOrder {
		indices, ok := grouped[cat]
		if !ok {
			continue
		}

		fmt.Println()
		fmt.Println(headerStyle.Render(cat))

		for _, i := range indices {
			r := results[i]
			var symbol string
			switch r.Status {
			case doctor.StatusPass:
				symbol = successStyle.Render(ui.SymbolSuccess)
			case doctor.StatusWarn:
				symbol = warnStyle.Render(ui.SymbolWarn)
			case doctor.StatusFail:
				symbol = errorStyle.Render(ui.SymbolFail)
			}

			fmt.Printf("  %s %s\n", symbol, r.Message)
			if r.Suggestion != "" && r.Status != doctor.StatusPass {
				fmt.Printf("    %s\n", mutedStyle.Render(r.Suggestion))
			}
		}
	}

	counts := doctor.CountByStatus(results)
	fmt.Println()
	fmt.Printf("%d passed, %d warnings, %d failures\n",
		counts[doctor.StatusPass], counts[doctor.StatusWarn], counts[doctor.StatusFail])

	if doctor.HasFailures(results) {
		return fmt.Errorf("doctor found failures")
	}
	return nil
}
