package main

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"
)

const serviceName = "poslist"

type rootOptions struct {
	logLevel string
	log      logger.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "poslist",
		Short:        "Run workloads over an indexed positional list",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.New(opts.logLevel)
			opts.log = logger.Sugar.WithServiceName(serviceName)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.OnExit()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "INFO", "log level: DEBUG, INFO, WARN, ERROR or NOOP")

	cmd.AddCommand(newMixCmd(opts), newCupsCmd(opts))
	return cmd
}
