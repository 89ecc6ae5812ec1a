package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ryan-rushton/omni/internal/app"
	"github.com/ryan-rushton/omni/internal/config"
	"github.com/ryan-rushton/omni/internal/location"
	"github.com/ryan-rushton/omni/internal/messages"
	_ "github.com/ryan-rushton/omni/internal/tools" // registers tool renderers via init()
	"github.com/ryan-rushton/omni/internal/updater"
)

const updateCheckTimeout = 5 * time.Second

var version = "dev"

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	version = v
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "omni",
		Short:         "All-in-one tool catalog",
		Long:          "omni - browse, search and open hundreds of everyday tools from the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	root.PersistentFlags().String("config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().Bool("ephemeral", false, "keep recent searches in memory for this run only")
	root.Flags().String("location", "", "open at a location token: a tool id or category slug")

	root.AddCommand(
		searchCmd(),
		categoriesCmd(),
		listCmd(),
		resolveCmd(),
		recentCmd(),
		toolCmd(),
		updateCmd(),
	)
	return root
}

func runTUI(cmd *cobra.Command, _ []string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	start, _ := cmd.Flags().GetString("location")
	if start == "" {
		start = e.cfg.UI.StartLocation
	}

	m := app.New(app.Options{
		Catalog:     e.catalog,
		Port:        location.NewMemory(start),
		History:     e.history,
		Logger:      e.logger,
		Version:     version,
		CheckUpdate: checkUpdate(e.logger),
	})
	defer m.Close()

	e.logger.Info("starting", "version", version, "location", start, "tools", e.catalog.Len())
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// checkUpdate looks for a newer release in the background. Failures are only
// logged; the TUI never waits on the network.
func checkUpdate(logger *slog.Logger) tea.Cmd {
	if version == "dev" {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), updateCheckTimeout)
		defer cancel()

		latest, err := updater.New().LatestRelease(ctx)
		if err != nil {
			logger.Debug("update check failed", "error", err)
			return nil
		}
		if !updater.IsNewer(version, latest) {
			return nil
		}
		return messages.UpdateAvailableMsg{Tag: latest}
	}
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
