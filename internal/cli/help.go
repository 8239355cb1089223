package cli

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mydehq/pagesel/internal/ui"
	"github.com/spf13/cobra"
)

const coloredUsageTmpl = `{{Header "Usage:"}}
  {{if .Runnable}}{{Usage .UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{Command .CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{Header "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{Header "Examples:"}}
{{Example .Example}}{{end}}{{if .HasAvailableSubCommands}}

{{Header "Available Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{Command (printf "%-15s" .Name)}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{Header "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces | Flags}}{{end}}{{if .HasAvailableInheritedFlags}}

{{Header "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces | Flags}}{{end}}{{if .HasHelpSubCommands}}

{{Header "Additional help topics:"}}{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{Command (printf "%-15s" .Name)}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

{{Header "Use"}} {{Command (printf "%s [command] --help" .CommandPath)}} {{Header "for more information about a command."}}{{end}}
`

var (
	reFlags    = regexp.MustCompile(`(-\w|--[\w-]+)`)
	reArgs     = regexp.MustCompile(`<[a-zA-Z0-9_.-]+>`)
	reOptional = regexp.MustCompile(`\[[a-zA-Z0-9_.-]+\]`)
	reCmdName  = regexp.MustCompile(`^\w+`)
	// selection literals in examples, e.g. 1-5,4-10,7
	reSelection = regexp.MustCompile(`(^|\s)(-?\d+(?:-\d*)?(?:,-?\d+(?:-\d*)?)*)`)
)

func colorizeHelp(cmd *cobra.Command) {
	cobra.AddTemplateFunc("Header", func(s string) string {
		out := ui.StyleHeader.Render(s)
		if s == "Usage:" {
			return "\n" + out
		}
		return out
	})
	cobra.AddTemplateFunc("Command", func(s string) string { return ui.StyleCommand.Render(s) })

	cobra.AddTemplateFunc("Flags", func(s string) string {
		s = reFlags.ReplaceAllStringFunc(s, styled(ui.StyleFlag))
		return strings.ReplaceAll(s, ", ", ui.StyleDim.Render(", "))
	})

	// <required> args blue, [optional] dimmed, command name cyan
	cobra.AddTemplateFunc("Usage", func(s string) string {
		s = reArgs.ReplaceAllStringFunc(s, styled(ui.StylePath))
		s = reOptional.ReplaceAllStringFunc(s, styled(ui.StyleDim))
		return reCmdName.ReplaceAllStringFunc(s, styled(ui.StyleCommand))
	})

	cobra.AddTemplateFunc("Example", func(s string) string {
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			code, comment, found := strings.Cut(line, "#")
			code = reSelection.ReplaceAllString(code, "$1"+ui.StylePattern.Render("$2"))
			if found {
				code += ui.StyleDim.Render("#" + comment)
			}
			lines[i] = code
		}
		return strings.Join(lines, "\n")
	})

	cmd.SetUsageTemplate(coloredUsageTmpl)
}

func styled(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}
