package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mydehq/pagesel/internal/config"
	"github.com/mydehq/pagesel/internal/i18n"
	"github.com/mydehq/pagesel/internal/render"
	"github.com/mydehq/pagesel/internal/selection"
	"github.com/mydehq/pagesel/internal/types"
	"github.com/mydehq/pagesel/internal/ui"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool
	flagQuiet   bool
	flagLocale  string
	flagFormat  string

	logger *ui.Logger
	cfg    *config.GlobalConfig
)

var RootCmd = &cobra.Command{
	Use:   "pagesel <selection>...",
	Short: "Normalize page selections like 2-4,10-",
	Long: `pagesel parses page selections and prints their canonical form:
merged, sorted, non-overlapping ranges with at most one open-ended range.

Each selection is a comma separated list of n, n1-n2, -n or n- tokens.
Multiple arguments are joined as one selection.`,
	Example: `  pagesel 1-5,4-10,7,15      # 1-10,15
  pagesel 2-4 5- --format json
  pagesel -- -10`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          cobra.MinimumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runParse(cmd.OutOrStdout(), args); err != nil {
			fail(err)
		}
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error(err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		RootCmd.Usage()
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Custom configuration file path")
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output")
	RootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress output except errors")
	RootCmd.PersistentFlags().StringVarP(&flagLocale, "locale", "l", "", "Language for error messages (en, it, de)")
	RootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "Output format: text, json, yaml or table")

	// Default logger setup (before flags parse)
	logger = ui.NewLogger(os.Stderr)
	ui.SetLogger(logger)

	colorizeHelp(RootCmd)
}

// setup loads the global config and applies flag overrides.
func setup(cmd *cobra.Command) error {
	logger.SetVerbosity(flagQuiet, flagVerbose)

	loaded, err := config.LoadGlobal(flagConfig)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("locale") {
		loaded.Locale = flagLocale
	}
	if cmd.Flags().Changed("format") {
		loaded.Output.Format = flagFormat
	}
	if err := config.Validate(loaded); err != nil {
		return err
	}

	cfg = loaded
	logger.Debug("Configuration loaded", "format", cfg.Output.Format, "locale", cfg.ResolveLocale())
	return nil
}

// settings returns the active configuration, or defaults when setup has not run.
func settings() *config.GlobalConfig {
	if cfg == nil {
		defaults := config.DefaultGlobalConfig()
		return &defaults
	}
	return cfg
}

func runParse(w io.Writer, args []string) error {
	ranges, err := selection.Parse(strings.Join(args, ","))
	if err != nil {
		return err
	}
	logger.Debug("Parsed selection", "input", strings.Join(args, ","), "intervals", len(ranges))
	return writeRanges(w, ranges)
}

func writeRanges(w io.Writer, ranges types.RangeSet) error {
	format := settings().Output.Format

	if format == "yaml" && isTerminal(w) {
		var buf bytes.Buffer
		if err := render.Write(&buf, ranges, format); err != nil {
			return err
		}
		_, err := fmt.Fprint(w, ui.HighlightYAML(buf.String()))
		return err
	}

	return render.Write(w, ranges, format)
}

// fail logs err in the configured locale and exits.
func fail(err error) {
	var selErr types.SelectionError
	if errors.As(err, &selErr) {
		logger.Error(i18n.Message(err, settings().ResolveLocale()), "kind", selErr.Kind())
	} else {
		logger.Error("Operation failed", "error", err)
	}
	os.Exit(1)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
