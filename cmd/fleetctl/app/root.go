package app

import (
	"github.com/Eursukkul/buggy-fleet/pkg/log"
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	logOpts := log.NewOptions()
	logOpts.OutputPaths = []string{"stderr"}

	cmd := &cobra.Command{
		Use:           "fleetctl",
		Short:         "Offline tools for the buggy tour fleet planner.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Init(logOpts)
		},
	}
	logOpts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewPlanCommand())
	return cmd
}
