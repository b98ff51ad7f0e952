package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/mockbrowse/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := buildInfo.Normalize()
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "mockbrowse %s\ncommit: %s\nbuilt: %s\ngo: %s\n%s\n",
			info.Version, info.Commit, info.BuildDate, info.GoVersion, build.RepoURL())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
