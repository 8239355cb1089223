// Package render presents canonical range sets to users and downstream tools.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mydehq/pagesel/internal/types"
	"github.com/mydehq/pagesel/internal/ui"
	"gopkg.in/yaml.v3"
)

// Result is the serialized form of a normalized selection
type Result struct {
	Canonical string         `json:"canonical" yaml:"canonical"`
	Ranges    types.RangeSet `json:"ranges" yaml:"ranges"`
}

// NewResult wraps a range set for serialization
func NewResult(rs types.RangeSet) Result {
	if rs == nil {
		rs = types.RangeSet{}
	}
	return Result{Canonical: rs.String(), Ranges: rs}
}

// Write renders rs to w in the given format: text, json, yaml or table.
func Write(w io.Writer, rs types.RangeSet, format string) error {
	switch format {
	case "", "text":
		_, err := fmt.Fprintln(w, rs.String())
		return err

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewResult(rs))

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewResult(rs)); err != nil {
			return err
		}
		return enc.Close()

	case "table":
		_, err := fmt.Fprintln(w, Table(rs))
		return err
	}

	return fmt.Errorf("unknown output format: %s", format)
}

// Table renders rs as a bordered start/end table
func Table(rs types.RangeSet) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(ui.StyleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return ui.StyleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("START", "END", "PAGES")

	for _, iv := range rs {
		end, bounded := iv.End()
		if !bounded {
			t.Row(strconv.Itoa(iv.Start()), "∞", "to end")
			continue
		}
		t.Row(strconv.Itoa(iv.Start()), strconv.Itoa(end), strconv.Itoa(end-iv.Start()+1))
	}

	return t.Render()
}
