package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdscan/internal/logging"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of mdscan.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")

			logger.Info("mdscan",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
			)
		},
	}

	return cmd
}
