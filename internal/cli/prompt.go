package cli

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mydehq/pagesel/internal/ui"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt [selection]",
	Short: "Enter a selection interactively",
	Long: `prompt asks for a page selection, shows errors inline until the
input is valid, and prints the canonical form once confirmed.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initial := ""
		if len(args) > 0 {
			initial = args[0]
		}
		runPrompt(cmd, initial)
	},
}

func init() {
	RootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, initial string) {
	isTTY := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if !isTTY {
		logger.Error("prompt requires an interactive terminal")
		os.Exit(1)
	}

	ui.PrintBanner(os.Stderr)

	ranges, err := ui.PromptSelection(initial, settings().ResolveLocale())
	if err != nil {
		if errors.Is(err, ui.ErrUserQuit) {
			logger.Info(ui.StyleDim.Render("Cancelled"))
			os.Exit(0)
		}
		fail(err)
	}

	if err := writeRanges(cmd.OutOrStdout(), ranges); err != nil {
		fail(err)
	}
}
