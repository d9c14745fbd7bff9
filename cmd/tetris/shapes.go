package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the configured pieces",
	Long:  `Shows every piece in the active configuration with its color and cells.`,
	Args:  cobra.NoArgs,
	RunE:  runShapes,
}

func runShapes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defs, err := tetris.ShapesFromConfig(cfg.Shapes)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Pieces:")
	for _, d := range defs {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %s (%s)\n", d.Name, d.Color)
		for _, row := range strings.Split(d.Shape.String(), "/") {
			fmt.Fprintf(out, "    %s\n", strings.NewReplacer("#", "██", ".", "  ").Replace(row))
		}
	}
	return nil
}
