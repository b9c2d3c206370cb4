package commands

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/payoff/internal/config"
	"github.com/cleared-dev/payoff/internal/render"
	"github.com/cleared-dev/payoff/internal/tui"
)

func newTUICommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit a loan interactively and watch the payoff update",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file seeding the form")

	return cmd
}

func runTUI(configPath string) error {
	cfg, path, err := config.Resolve(configPath)
	if err != nil {
		return err
	}
	slog.Debug("config resolved", "path", path)

	model := tui.NewModel(tui.Options{
		Loan:  cfg.Loan,
		Chart: cfg.Chart,
		Color: render.ColorEnabled(os.Stdout),
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
