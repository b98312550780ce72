package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Purchase-order allocation engine CLI",
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewFigure("Inventory GO", "slant", true).Print()
		_ = cmd.Help()
	},
}

// Execute runs the CLI. Custom commands registered via Register are applied first.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
