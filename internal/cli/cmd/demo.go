package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/docking/internal/cli/model"
	"github.com/bnema/docking/internal/infrastructure/config"
	"github.com/bnema/docking/internal/logging"
)

var demoNoWatch bool

var demoCmd = &cobra.Command{
	Use:   "demo [panel...]",
	Short: "Edit a dock layout interactively",
	Long: `Open a full-screen dock editor in the terminal.

Drag a splitter with the mouse to resize, or drag a panel by its title
bar onto another panel. The highlighted zone shows where it will dock.

Keys:
  n        dock a new (or the last detached) panel
  x        detach the focused panel
  tab      focus the next panel
  + / -    grow or shrink the focused panel
  H J K L  move the nearest splitter left, down, up or right
  esc      cancel a drag
  ?        toggle help
  q        quit

Changes to the config file are applied while the editor runs.

Examples:
  docking demo                       # editor, code and console panels
  docking demo files editor preview`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolVar(&demoNoWatch, "no-watch", false, "do not reload the config file on change")
}

func runDemo(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	log := logging.FromContext(app.Ctx())

	panels := args
	if len(panels) == 0 {
		panels = []string{"editor", "code", "console"}
	}

	m := model.NewDockDemoModel(app.Ctx(), app.Theme, model.DockDemoConfig{
		Docks:  app.Docks,
		Dock:   app.Config.Dock,
		Panels: panels,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if mgr := app.ConfigManager; mgr != nil && !demoNoWatch {
		mgr.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigChangedMsg{Config: cfg})
		})
		if err := mgr.Watch(); err != nil {
			log.Warn().Err(err).Msg("config hot reload disabled")
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dock editor: %w", err)
	}
	return nil
}
