package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sandfall/internal/core"
)

var masksCmd = &cobra.Command{
	Use:   "masks",
	Short: "Print the predefined neighborhood masks",
	Long:  `Shows every predefined mask by name, with its stencil and center.`,
	Args:  cobra.NoArgs,
	RunE:  runMasks,
}

func runMasks(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range core.MaskNames() {
		m, err := core.MaskByName(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s (%dx%d, center %d,%d)\n", name, m.Width(), m.Height(), m.Center.X, m.Center.Y)
		fmt.Fprintln(out, m.String())
	}
	return nil
}
