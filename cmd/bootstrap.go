package cmd

import (
	"github.com/spf13/cobra"

	"sandbox-go/sandbox"
)

// bootstrapCmd is the hidden re-exec target the supervisor launches
// itself as (see sandbox.Run): it never returns on success, since
// sandbox.RunBootstrap replaces the process image via exec.
var bootstrapCmd = &cobra.Command{
	Use:    "__sandbox_init__",
	Hidden: true,
	Args:   cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		sandbox.RunBootstrap()
	},
}

func init() {
	rootCmd.AddCommand(bootstrapCmd)
}
