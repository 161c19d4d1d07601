package main

import (
	"github.com/spf13/cobra"

	"label-translator/internal/logger"
)

type rootOptions struct {
	logLevel string
	log      logger.ILogger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "label-translator",
		Short:         "Translate planetary image labels with translation tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logger.ParseLogLevel(opts.logLevel)
			if err != nil {
				return err
			}

			opts.log = logger.NewWriterLogger(cmd.ErrOrStderr(), level)

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info or error")

	cmd.AddCommand(
		newTranslateCmd(opts),
		newCheckCmd(opts),
		newUnitsCmd(opts),
		newExportCmd(opts),
	)

	return cmd
}
