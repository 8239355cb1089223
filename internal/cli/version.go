package cli

import (
	"fmt"

	"github.com/mydehq/pagesel/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pagesel %s\n", version.String())
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
