package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Report the version of this executable.",
		Args:  cobra.NoArgs,
		// Skip config loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v := Version
			if v == "" {
				if info, ok := debug.ReadBuildInfo(); ok {
					v = info.Main.Version
				} else {
					v = "(unknown version)"
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ecc %s\n", v)
		},
	}
}
