// Command raydiant is the CLI entry point: render (the default) and
// example subcommands, per spec.md §6.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "raydiant",
		Short: "Offline Monte Carlo renderer",
	}
	renderCmd := newRenderCmd()
	root.AddCommand(renderCmd)
	root.AddCommand(newExampleCmd())
	// With no subcommand, the root renders using the render flags.
	root.Flags().AddFlagSet(renderCmd.Flags())
	root.RunE = renderCmd.RunE

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
