package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/docking/internal/cli"
	"github.com/bnema/docking/internal/domain/entity"
)

var placementBounds string

var placementCmd = &cobra.Command{
	Use:   "placement X Y",
	Short: "Show which drop zone a point falls in",
	Long: `Classify a cursor position against a panel's bounds and print the
drop zone with its highlight polygon.

Examples:
  docking placement 10 50 --bounds 0,0,200,100    # left
  docking placement 100 50 --bounds 0,0,200,100   # center`,
	Args: cobra.ExactArgs(2),
	RunE: runPlacement,
}

func init() {
	rootCmd.AddCommand(placementCmd)
	placementCmd.Flags().StringVar(&placementBounds, "bounds", "0,0,100,100", "panel bounds as X,Y,WIDTH,HEIGHT")
}

func runPlacement(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	bounds, err := cli.ParseRect(placementBounds)
	if err != nil {
		return err
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid X %q: %w", args[0], err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid Y %q: %w", args[1], err)
	}

	zone, quad := entity.ClassifyPlacement(x, y, bounds)

	t := app.Theme
	fmt.Println(t.Title.Render(zone.String()))
	for _, v := range quad {
		fmt.Println(t.Subtle.Render(fmt.Sprintf("  %g,%g", v.X, v.Y)))
	}
	return nil
}
