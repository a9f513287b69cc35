// Package cmd provides Cobra CLI commands for docking.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/docking/internal/cli"
	"github.com/bnema/docking/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "docking",
		Short: "A docking layout engine for tiled panels",
		Long: `Docking - split a rectangle into resizable, dockable panels.

Panels dock into a binary tree of splits. Every split owns a splitter
that can be dragged, and panels can be dragged onto the left, right,
top, bottom or center zone of another panel.

Use 'docking demo' for an interactive editor in the terminal, or
'docking inspect' to build a layout from the command line and print
its tree.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("docking %s\n", buildInfo.Version)
		fmt.Printf("commit: %s\n", buildInfo.Commit)
		fmt.Printf("built: %s\n", buildInfo.BuildDate)
		if buildInfo.GoVersion != "" {
			fmt.Printf("go: %s\n", buildInfo.GoVersion)
		}
		fmt.Println(build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
