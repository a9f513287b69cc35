package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/docking/internal/cli"
	"github.com/bnema/docking/internal/cli/styles"
	"github.com/bnema/docking/internal/domain/entity"
)

var (
	inspectSize   string
	inspectName   string
	inspectDetach []string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect NAME[@TARGET][:ZONE[:RATIO]]...",
	Short: "Build a layout and print its dock tree",
	Long: `Dock one panel per argument and print the resulting tree.

Each argument docks a panel called NAME next to TARGET, or next to the
previously docked panel when TARGET is omitted. ZONE is one of left,
right, top, bottom or center and defaults to right. RATIO is the share
of the left or top child.

Examples:
  docking inspect editor console:bottom:0.7
  docking inspect editor files@editor:left:0.2 --size 1920x1080
  docking inspect a b c --detach b`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectSize, "size", "800x600", "container size as WIDTHxHEIGHT")
	inspectCmd.Flags().StringVar(&inspectName, "name", "main", "dock container name")
	inspectCmd.Flags().StringSliceVar(&inspectDetach, "detach", nil, "panels to detach after docking")
}

func runInspect(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	size, err := cli.ParseSize(inspectSize)
	if err != nil {
		return err
	}
	ops, err := cli.ParseDockOps(args)
	if err != nil {
		return err
	}

	container, err := cli.BuildLayout(
		app.Ctx(), app.Docks, inspectName,
		entity.NewRect(0, 0, size.X, size.Y),
		ops, inspectDetach,
	)
	if err != nil {
		return err
	}

	fmt.Println(styles.NewDockTreeRenderer(app.Theme).Render(container))
	return nil
}
