package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	gperror "github.com/msto63/gopress/core/error"
	"github.com/msto63/gopress/ui"
)

var colorAlpha float64

var colorCmd = &cobra.Command{
	Use:   "color <hex>",
	Short: "Parse a six digit hex color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok := ui.ColorFromHex(args[0], colorAlpha)
		if !ok {
			return gperror.New(fmt.Sprintf("invalid hex color %q", args[0])).WithCode(gperror.CodeInvalidFormat)
		}
		swatch := lipgloss.NewStyle().Background(c.Terminal()).Render("      ")
		fmt.Fprintf(cmd.OutOrStdout(), "%s rgb(%d, %d, %d) alpha %.2f %s\n", c.Hex(), c.R, c.G, c.B, c.A, swatch)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(colorCmd)
	colorCmd.Flags().Float64Var(&colorAlpha, "alpha", 1, "alpha component 0..1")
}
