package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyplanner/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		v := version.String()
		if v != version.Dev && !version.IsRelease(v) {
			v += " (pre-release)"
		}
		fmt.Fprintln(cmd.OutOrStdout(), "studyplanner", v)
	},
}
