package cli

import (
	"github.com/spf13/cobra"

	"bussola/internal/config"
)

// NewRootCmd builds the bussolactl command tree. loadConfig is called lazily
// by the commands that need it.
func NewRootCmd(loadConfig func() *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "bussolactl",
		Short:         "Operator tooling for the Bússola actions API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newMigrateCmd(loadConfig))
	root.AddCommand(newDatesCmd(loadConfig))
	return root
}
