package cli

import (
	"strings"

	"github.com/mydehq/pagesel/internal/selection"
	"github.com/mydehq/pagesel/internal/types"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <selection>...",
	Short: "Validate a selection without printing it",
	Long: `check parses the selection and reports whether it is valid.
It exits with status 1 and a localized message on the first invalid token.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ranges, err := runCheck(args)
		if err != nil {
			fail(err)
		}
		reportCheck(ranges)
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(args []string) (types.RangeSet, error) {
	return selection.Parse(strings.Join(args, ","))
}

func reportCheck(ranges types.RangeSet) {
	logger.Success(describe(ranges))
	if iv, ok := ranges.Unbounded(); ok {
		logger.Info("Selection runs to the end of the document", "from", iv.Start())
	}
}

func describe(ranges types.RangeSet) string {
	if len(ranges) == 0 {
		return "empty selection"
	}
	return ranges.String()
}
