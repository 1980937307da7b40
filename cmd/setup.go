package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/copgauge/copgauge/internal/config"
	"github.com/copgauge/copgauge/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config so re-running setup edits instead of resetting.
	cfg, _ := config.Load()

	org := cfg.General.Organization
	token := ""
	days := cfg.General.DefaultDays
	themeName := cfg.Appearance.Theme
	if themeName == "" {
		themeName = theme.Default
	}

	tokenDesc := "Needs `manage_billing:copilot` or `read:org` scope."
	if existing := config.GetToken(cfg); existing != "" {
		tokenDesc = fmt.Sprintf("Currently %s. Leave blank to keep it.", maskToken(existing))
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Label, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GitHub organization").
				Description("The org whose Copilot metrics to analyze.").
				Value(&org).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("organization is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("GitHub token").
				Description(tokenDesc).
				EchoMode(huh.EchoModePassword).
				Value(&token),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Default time window").
				Options(
					huh.NewOption("7 days", 7),
					huh.NewOption("28 days", 28),
					huh.NewOption("90 days", 90),
				).
				Value(&days),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&themeName),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	cfg.General.Organization = strings.TrimSpace(org)
	if t := strings.TrimSpace(token); t != "" {
		cfg.GitHub.Token = t
	}
	cfg.General.DefaultDays = days
	cfg.Appearance.Theme = themeName

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `copgauge` to see your org's usage, or `copgauge tui` for the dashboard.")
	fmt.Println()

	return nil
}

func maskToken(key string) string {
	if len(key) > 12 {
		return key[:7] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
