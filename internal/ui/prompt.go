package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/mydehq/pagesel/internal/i18n"
	"github.com/mydehq/pagesel/internal/selection"
	"github.com/mydehq/pagesel/internal/types"
)

// ValidateSelection is the huh validator for selection inputs. Parse
// errors are rendered in the given locale so the form can show them inline.
func ValidateSelection(locale string) func(string) error {
	return func(s string) error {
		if _, err := selection.Parse(s); err != nil {
			return errors.New(i18n.Message(err, locale))
		}
		return nil
	}
}

// PromptSelection asks for a page selection until the user enters one that
// parses and confirms its canonical form.
// input → confirm, esc on confirm goes back to input.
func PromptSelection(initial, locale string) (types.RangeSet, error) {
	theme := Theme()
	input := initial
	step := 0

	var ranges types.RangeSet
	for {
		switch step {
		case 0:
			err := RunForm(huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Page selection").
						Description("\nComma separated pages and ranges, e.g. 1-3,7,10-\n").
						Placeholder("1-3,7,10-").
						Validate(ValidateSelection(locale)).
						Value(&input),
				),
			).WithTheme(theme).WithKeyMap(KeyMap()))

			if err != nil {
				if errors.Is(HandleAbort(err), ErrUserBack) {
					input = ""
					continue
				}
				return nil, HandleAbort(err)
			}

			ranges, err = selection.Parse(input)
			if err != nil {
				// Validate already rejected this; keep the user in the input step
				continue
			}
			if logger != nil {
				logger.Debug("Parsed selection", "input", input, "canonical", ranges.String())
			}
			step++

		case 1:
			confirmed := true
			err := RunForm(huh.NewForm(
				huh.NewGroup(
					huh.NewNote().
						Title("Canonical selection").
						Description(fmt.Sprintf("\n%s\n", StyleCommand.Render(describe(ranges)))),

					huh.NewConfirm().
						Title("Use this selection?").
						Value(&confirmed),
				),
			).WithTheme(theme).WithKeyMap(KeyMap()))

			if err != nil {
				if errors.Is(HandleAbort(err), ErrUserBack) {
					step--
					continue
				}
				return nil, HandleAbort(err)
			}

			if !confirmed {
				step--
				continue
			}
			return ranges, nil
		}
	}
}

func describe(rs types.RangeSet) string {
	if len(rs) == 0 {
		return "(no pages)"
	}
	return rs.String()
}
